package sheet

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hearthforge/sheet-engine/internal/character"
	"github.com/hearthforge/sheet-engine/internal/clients/dnd5e"
	apperr "github.com/hearthforge/sheet-engine/internal/errors"
	"github.com/hearthforge/sheet-engine/internal/repositories/sheets"
	"github.com/hearthforge/sheet-engine/internal/rules/benefit"
	"github.com/hearthforge/sheet-engine/internal/rules/bonus"
	"github.com/hearthforge/sheet-engine/internal/rules/derive"
)

// Service assembles character sheets: it loads the persisted record,
// runs one full collection and derivation pass, and applies the
// override layer. There is no cache; any edit is followed by a full
// rebuild.
type Service interface {
	// GetSheet builds the sheet for one character.
	GetSheet(ctx context.Context, characterID string) (*Sheet, error)

	// SetOverride sets (or clears, when value is nil) the absolute
	// override for an attribute key and returns the rebuilt sheet.
	SetOverride(ctx context.Context, characterID, attrKey string, value *int) (*Sheet, error)

	// AddCustomModifier appends a user-entered additive modifier for
	// an attribute key and returns the rebuilt sheet.
	AddCustomModifier(ctx context.Context, characterID, attrKey string, mod character.CustomModifier) (*Sheet, error)
}

// ServiceConfig holds configuration for the sheet service.
type ServiceConfig struct {
	Repository sheets.Repository
	// Client resolves equipment keys; optional. Without it, records
	// referencing API equipment simply derive without those items.
	Client dnd5e.Client
	// Registry defaults to the built-in handlers; callers register
	// additional benefit types before first use.
	Registry *benefit.Registry
}

type service struct {
	repository sheets.Repository
	client     dnd5e.Client
	registry   *benefit.Registry
}

// NewService creates a sheet service.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("sheet service requires a repository")
	}

	svc := &service{
		repository: cfg.Repository,
		client:     cfg.Client,
		registry:   cfg.Registry,
	}
	if svc.registry == nil {
		svc.registry = benefit.NewRegistry(nil)
	}
	return svc
}

func (s *service) GetSheet(ctx context.Context, characterID string) (*Sheet, error) {
	record, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}
	return s.buildSheet(ctx, record)
}

func (s *service) SetOverride(ctx context.Context, characterID, attrKey string, value *int) (*Sheet, error) {
	if err := validateAttrKey(attrKey); err != nil {
		return nil, err
	}
	if err := s.repository.SetOverride(ctx, characterID, attrKey, value); err != nil {
		return nil, err
	}
	return s.GetSheet(ctx, characterID)
}

func (s *service) AddCustomModifier(ctx context.Context, characterID, attrKey string, mod character.CustomModifier) (*Sheet, error) {
	if err := validateAttrKey(attrKey); err != nil {
		return nil, err
	}
	if err := s.repository.AddCustomModifier(ctx, characterID, attrKey, mod); err != nil {
		return nil, err
	}
	return s.GetSheet(ctx, characterID)
}

// validateAttrKey accepts the dotted attribute grammar the override
// layer is defined over. Senses are excluded: a sense override has no
// defined merge semantics.
func validateAttrKey(attrKey string) error {
	target := bonus.ParseTarget(attrKey)
	switch target.Kind {
	case bonus.TargetUnknown, bonus.TargetSense:
		return apperr.InvalidArgumentf("'%s' is not an adjustable attribute key", attrKey)
	case bonus.TargetAbility:
		if _, ok := character.AbilityFromName(target.Name); !ok {
			return apperr.InvalidArgumentf("'%s' is not an ability", target.Name)
		}
	}
	return nil
}

func (s *service) buildSheet(ctx context.Context, record *sheets.SheetRecord) (*Sheet, error) {
	diagnostics := &bonus.Diagnostics{}

	items := record.Items
	if s.client != nil && len(record.EquipmentKeys) > 0 {
		fetched, err := s.fetchEquipment(ctx, record.EquipmentKeys)
		if err != nil {
			return nil, err
		}
		items = append(append([]derive.SourceRecord{}, items...), fetched...)
	}

	collector := derive.NewCollector(&derive.CollectorConfig{
		Registry:    s.registry,
		Diagnostics: diagnostics,
	})
	collected := collector.Collect(&derive.Input{
		Items:        items,
		Features:     record.Features,
		Improvements: record.Improvements,
		Overrides:    manualBonuses(record.ManualBonuses),
		Base:         &record.Base,
	})
	result := derive.Derive(&record.Base, collected)

	return assembleSheet(record, result, diagnostics.Entries()), nil
}

func (s *service) fetchEquipment(ctx context.Context, keys []string) ([]derive.SourceRecord, error) {
	fetched := make([]*derive.SourceRecord, len(keys))

	g, _ := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			record, err := s.client.GetEquipment(key)
			if err != nil {
				return apperr.Wrapf(err, "failed to fetch equipment '%s'", key)
			}
			fetched[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]derive.SourceRecord, 0, len(fetched))
	for _, record := range fetched {
		if record != nil {
			out = append(out, *record)
		}
	}
	return out, nil
}

func manualBonuses(raw []map[string]any) []any {
	if len(raw) == 0 {
		return nil
	}
	out := make([]any, len(raw))
	for i, m := range raw {
		out[i] = m
	}
	return out
}

// assembleSheet layers the persisted custom modifiers and overrides on
// top of one derivation result. Ability modifiers are recomputed from
// the post-override scores, never carried over.
func assembleSheet(record *sheets.SheetRecord, result *derive.Result, diagnostics []bonus.Diagnostic) *Sheet {
	out := &Sheet{
		ID:          record.ID,
		Name:        record.Name,
		Abilities:   make(map[character.Ability]AbilityValue, len(character.Abilities)),
		Proficiency: result.Derived.Proficiency,
		Senses:      result.Derived.Senses,
		Totals:      result.Totals,
		Sources:     result.Sources,
		Diagnostics: diagnostics,
	}

	for _, ability := range character.Abilities {
		key := "ability." + string(ability)
		score, modifier := character.FinalAbility(
			result.Derived.Abilities[ability],
			record.CustomModifiers[key],
			record.Overrides[key],
		)
		out.Abilities[ability] = AbilityValue{Score: score, Modifier: modifier}
	}

	out.MaxHP = finalScalar(record, "maxHP", result.Derived.MaxHP)
	out.AC = finalScalar(record, "ac", result.Derived.AC)
	out.Initiative = finalScalar(record, "initiative", result.Derived.Initiative)
	out.PassivePerception = finalScalar(record, "passivePerception", result.Derived.PassivePerception)

	out.Skills = finalNamed(record, "skill.", result.Derived.Skills)
	out.Saves = finalNamed(record, "save.", result.Derived.Saves)
	out.Speeds = finalNamed(record, "speed.", result.Derived.Speeds)

	return out
}

func finalScalar(record *sheets.SheetRecord, key string, computed int) int {
	return character.FinalValue(computed, record.CustomModifiers[key], record.Overrides[key])
}

// finalNamed finalizes one named bucket family. Keys present only as
// custom modifiers or overrides still surface: a user adjustment to a
// skill no bonus touched applies against a computed value of 0.
func finalNamed(record *sheets.SheetRecord, prefix string, derived map[string]int) map[string]int {
	names := make(map[string]struct{}, len(derived))
	for name := range derived {
		names[name] = struct{}{}
	}
	for key := range record.CustomModifiers {
		if name, ok := strings.CutPrefix(key, prefix); ok && name != "" {
			names[name] = struct{}{}
		}
	}
	for key := range record.Overrides {
		if name, ok := strings.CutPrefix(key, prefix); ok && name != "" {
			names[name] = struct{}{}
		}
	}

	out := make(map[string]int, len(names))
	for name := range names {
		key := prefix + name
		out[name] = character.FinalValue(derived[name], record.CustomModifiers[key], record.Overrides[key])
	}
	return out
}
