package character

// Sense is one special sense with its range in feet.
type Sense struct {
	Type  string `json:"type"`
	Range int    `json:"range"`
}

// BaseAttributes is a character's unmodified numeric state: the input
// to one derivation pass, before any item, feature, or manual bonus is
// applied. The deriver treats it as immutable.
type BaseAttributes struct {
	Abilities             map[Ability]int `json:"abilities"`
	MaxHP                 int             `json:"max_hp"`
	ProficiencyBonus      int             `json:"proficiency_bonus"`
	BaseAC                int             `json:"base_ac"`
	BaseInitiative        int             `json:"base_initiative"`
	BasePassivePerception int             `json:"base_passive_perception"`
	Senses                []Sense         `json:"senses,omitempty"`
	Speeds                map[string]int  `json:"speeds,omitempty"`
}

// Score returns the base score for an ability, 0 when absent.
func (b *BaseAttributes) Score(a Ability) int {
	if b == nil || b.Abilities == nil {
		return 0
	}
	return b.Abilities[a]
}

// AbilityModifier returns the modifier computed from the base score of
// an ability that is present in the attribute map. Absent abilities
// resolve to 0 rather than Modifier(0): a missing score means "no
// contribution", not "score of zero".
func (b *BaseAttributes) AbilityModifier(a Ability) int {
	if b == nil || b.Abilities == nil {
		return 0
	}
	score, ok := b.Abilities[a]
	if !ok {
		return 0
	}
	return Modifier(score)
}
