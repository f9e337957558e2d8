package bonus

// DiagnosticKind categorizes a non-fatal collection problem.
type DiagnosticKind string

const (
	DiagMalformedBonus DiagnosticKind = "malformed_bonus"
	DiagUnknownBenefit DiagnosticKind = "unknown_benefit_type"
)

// Diagnostic records one skipped or unrecognized record. The engine
// never fails on bad input; diagnostics are how tests and tooling
// assert there was no silent data loss.
type Diagnostic struct {
	Kind        DiagnosticKind
	BenefitType string
	Source      Source
	Detail      string
}

// Diagnostics is an optional sink for collection diagnostics. A nil
// *Diagnostics is valid and records nothing, so callers that don't
// care simply pass nothing.
type Diagnostics struct {
	entries []Diagnostic
}

// Record appends one diagnostic. Safe on a nil receiver.
func (d *Diagnostics) Record(diag Diagnostic) {
	if d == nil {
		return
	}
	d.entries = append(d.entries, diag)
}

// Entries returns all recorded diagnostics in order.
func (d *Diagnostics) Entries() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.entries
}

// Len reports how many diagnostics were recorded.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}
