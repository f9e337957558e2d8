package character

// CustomModifier is a user-entered additive adjustment to one derived
// attribute, persisted by the caller and layered on top of engine
// output. Aggregation is an unordered sum.
type CustomModifier struct {
	Source string `json:"source"`
	Value  int    `json:"value"`
}

// FinalValue applies the override layer to one attribute:
//
//	override ?? (computed + sum(custom modifiers))
//
// A non-nil override fully replaces the computed value; base, engine
// bonuses, and custom modifiers are all bypassed, not summed.
func FinalValue(computed int, mods []CustomModifier, override *int) int {
	if override != nil {
		return *override
	}
	total := computed
	for _, m := range mods {
		total += m.Value
	}
	return total
}

// FinalAbility finalizes an ability score and recomputes its modifier
// from the final score. The modifier must never be carried over from a
// pre-override score: overriding a 14 to an 18 moves the modifier from
// +2 to +4.
func FinalAbility(computed int, mods []CustomModifier, override *int) (score, modifier int) {
	score = FinalValue(computed, mods, override)
	return score, Modifier(score)
}
