package bonus

import "strings"

// TargetKind is the closed set of buckets a bonus can route to. Raw
// target strings are parsed once into a Target; all routing downstream
// works on the parsed form.
type TargetKind int

const (
	TargetUnknown TargetKind = iota
	TargetAbility
	TargetSkill
	TargetSave
	TargetSpeed
	TargetSense
	TargetAC
	TargetInitiative
	TargetMaxHP
	TargetPassivePerception
)

// Target is a parsed target path. Name is set for the dotted shapes
// (ability, skill, save, speed, sense) and empty for the scalar ones.
type Target struct {
	Kind TargetKind
	Name string
}

// ParseTarget parses a dotted target path like "ability.strength" or
// "sense.darkvision". Speed and sense names are lower-cased. Anything
// unrecognized parses to TargetUnknown; the caller decides whether to
// drop or report it.
func ParseTarget(raw string) Target {
	switch raw {
	case "ac":
		return Target{Kind: TargetAC}
	case "initiative":
		return Target{Kind: TargetInitiative}
	case "maxHP":
		return Target{Kind: TargetMaxHP}
	case "passivePerception":
		return Target{Kind: TargetPassivePerception}
	}

	if name, ok := strings.CutPrefix(raw, "ability."); ok && name != "" {
		return Target{Kind: TargetAbility, Name: name}
	}
	if name, ok := strings.CutPrefix(raw, "skill."); ok && name != "" {
		return Target{Kind: TargetSkill, Name: name}
	}
	if name, ok := strings.CutPrefix(raw, "save."); ok && name != "" {
		return Target{Kind: TargetSave, Name: name}
	}
	if name, ok := strings.CutPrefix(raw, "speed."); ok && name != "" {
		return Target{Kind: TargetSpeed, Name: strings.ToLower(name)}
	}
	if name, ok := strings.CutPrefix(raw, "sense."); ok && name != "" {
		return Target{Kind: TargetSense, Name: strings.ToLower(name)}
	}

	return Target{Kind: TargetUnknown, Name: raw}
}

// Key returns the canonical bucket key for the target. This is the
// same dotted grammar used for custom-modifier and override keys, so
// engine output and user-entered adjustments address attributes
// identically.
func (t Target) Key() string {
	switch t.Kind {
	case TargetAbility:
		return "ability." + t.Name
	case TargetSkill:
		return "skill." + t.Name
	case TargetSave:
		return "save." + t.Name
	case TargetSpeed:
		return "speed." + t.Name
	case TargetSense:
		return "sense." + t.Name
	case TargetAC:
		return "ac"
	case TargetInitiative:
		return "initiative"
	case TargetMaxHP:
		return "maxHP"
	case TargetPassivePerception:
		return "passivePerception"
	}
	return ""
}
