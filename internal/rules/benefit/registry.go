package benefit

import (
	"log"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
)

// HandlerFunc expands one benefit into zero or more canonical bonuses.
// Handlers are pure functions of their arguments and are trusted to
// emit well-formed bonuses; their output does not pass through the
// normalizer again. Resolution of modifier references must use the
// base attributes, never derived scores.
type HandlerFunc func(b *Benefit, base *character.BaseAttributes, src bonus.Source) []bonus.Bonus

// Registry maps benefit type names to handlers. It is an explicit
// value constructed at startup and passed into the collector, not a
// package-level map: callers extend it with Register before first use
// and it is not meant for concurrent mutation during derivation.
type Registry struct {
	handlers    map[string]HandlerFunc
	diagnostics *bonus.Diagnostics
}

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	// Diagnostics, when set, receives a record for every benefit whose
	// type has no handler. Dispatch behavior is unchanged either way.
	Diagnostics *bonus.Diagnostics
}

// NewRegistry returns a registry with the built-in handlers installed.
func NewRegistry(cfg *RegistryConfig) *Registry {
	r := &Registry{
		handlers: make(map[string]HandlerFunc),
	}
	if cfg != nil {
		r.diagnostics = cfg.Diagnostics
	}
	registerBuiltins(r)
	return r
}

// Register adds a handler for a benefit type, overwriting any existing
// handler for the same type.
func (r *Registry) Register(benefitType string, fn HandlerFunc) {
	r.handlers[benefitType] = fn
}

// WithDiagnostics returns a registry sharing this registry's handlers
// but reporting to the given sink. The handler map is shared, so the
// copy is cheap and later Register calls are visible to both.
func (r *Registry) WithDiagnostics(d *bonus.Diagnostics) *Registry {
	clone := *r
	clone.diagnostics = d
	return &clone
}

// Dispatch expands a benefit through its registered handler. An
// unknown benefit type returns no bonuses and emits a diagnostic;
// it is not an error, so forward-compatible content degrades to a
// missing bonus instead of a broken sheet.
func (r *Registry) Dispatch(b *Benefit, base *character.BaseAttributes, src bonus.Source) []bonus.Bonus {
	if b == nil || b.Type == "" {
		return nil
	}

	fn, ok := r.handlers[b.Type]
	if !ok {
		log.Printf("benefit: no handler for type %q (source: %s)", b.Type, src.Label)
		r.diagnostics.Record(bonus.Diagnostic{
			Kind:        bonus.DiagUnknownBenefit,
			BenefitType: b.Type,
			Source:      src,
			Detail:      "no handler registered",
		})
		return nil
	}

	return fn(b, base, src)
}
