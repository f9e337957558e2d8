package derive

import (
	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/rules/benefit"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
)

// Input is everything one collection pass reads. All lists are
// optional; the base attributes are needed whenever benefits resolve
// symbolic modifier references.
type Input struct {
	Items        []SourceRecord
	Features     []SourceRecord
	Improvements []character.ASIRecord
	// Overrides are manual character-level raw bonus records entered
	// by the user, distinct from the absolute per-attribute overrides
	// applied after derivation.
	Overrides []any
	Base      *character.BaseAttributes
}

// Collector walks source lists and produces one flat, ordered list of
// canonical bonuses, each tagged with its provenance.
type Collector struct {
	registry    *benefit.Registry
	diagnostics *bonus.Diagnostics
}

// CollectorConfig configures a Collector. Registry defaults to a fresh
// registry with the built-in handlers; Diagnostics is optional and,
// when set, also receives the registry's unknown-type reports.
type CollectorConfig struct {
	Registry    *benefit.Registry
	Diagnostics *bonus.Diagnostics
}

// NewCollector creates a collector.
func NewCollector(cfg *CollectorConfig) *Collector {
	c := &Collector{}
	if cfg != nil {
		c.registry = cfg.Registry
		c.diagnostics = cfg.Diagnostics
	}
	if c.registry == nil {
		c.registry = benefit.NewRegistry(&benefit.RegistryConfig{Diagnostics: c.diagnostics})
	} else if c.diagnostics != nil {
		c.registry = c.registry.WithDiagnostics(c.diagnostics)
	}
	return c
}

// Collect flattens the input into canonical bonuses. Malformed entries
// are skipped, never fatal; the returned order matters only for audit
// display, since every aggregation operator downstream is commutative.
func (c *Collector) Collect(in *Input) []bonus.Bonus {
	if in == nil {
		return nil
	}

	var out []bonus.Bonus
	for i := range in.Items {
		out = c.collectRecord(out, &in.Items[i], bonus.SourceItem, in.Base)
	}
	for i := range in.Features {
		out = c.collectRecord(out, &in.Features[i], bonus.SourceFeature, in.Base)
	}
	for _, rec := range in.Improvements {
		out = append(out, rec.Bonuses()...)
	}

	overrideSrc := bonus.Source{Type: bonus.SourceOverride, Label: "Override"}
	for _, raw := range in.Overrides {
		out = c.appendNormalized(out, raw, &overrideSrc)
	}

	return out
}

func (c *Collector) collectRecord(out []bonus.Bonus, rec *SourceRecord, st bonus.SourceType, base *character.BaseAttributes) []bonus.Bonus {
	src := bonus.Source{Type: st, ID: rec.ID, Label: rec.DisplayName()}

	if len(rec.Bonuses) > 0 {
		for _, raw := range rec.Bonuses {
			out = c.appendNormalized(out, raw, &src)
		}
	} else if rec.Bonus != nil {
		out = c.appendNormalized(out, rec.Bonus, &src)
	}

	for i := range rec.Benefits {
		out = append(out, c.registry.Dispatch(&rec.Benefits[i], base, src)...)
	}

	return out
}

func (c *Collector) appendNormalized(out []bonus.Bonus, raw any, src *bonus.Source) []bonus.Bonus {
	b := bonus.Normalize(raw, src)
	if b == nil {
		c.diagnostics.Record(bonus.Diagnostic{
			Kind:   bonus.DiagMalformedBonus,
			Source: *src,
			Detail: "bonus record dropped during normalization",
		})
		return out
	}
	return append(out, *b)
}
