package bonus

// SourceType identifies where a bonus comes from
type SourceType string

const (
	SourceItem        SourceType = "item"
	SourceFeature     SourceType = "feature"
	SourceOverride    SourceType = "override"
	SourceImprovement SourceType = "asi"
)

// TypeUntyped is the default bonus type when none is given. Untyped
// bonuses always stack with each other.
const TypeUntyped = "untyped"

// UnknownLabel is used when a bonus source has no usable display name.
const UnknownLabel = "Unknown"

// Source describes the entity that granted a bonus. It is carried on
// every bonus so inspector UIs can show a per-attribute breakdown.
type Source struct {
	Type  SourceType `json:"type"`
	ID    string     `json:"id,omitempty"`
	Label string     `json:"label"`
}

// Bonus is one normalized modifier: a routing target, a numeric value,
// a type tag, and provenance. A Bonus is a value object and is never
// mutated after creation.
type Bonus struct {
	Target string `json:"target"`
	Value  int    `json:"value"`
	Type   string `json:"type"`
	Source Source `json:"source"`
}
