package patient

// Diagnosis identifies the condition a patient presented with.
type Diagnosis string

const (
	DiagnosisLaceration Diagnosis = "laceration"
	DiagnosisConcussion Diagnosis = "concussion"
	DiagnosisFracture   Diagnosis = "fracture"
	DiagnosisBurn       Diagnosis = "burn"
	DiagnosisCardiac    Diagnosis = "cardiac"
)

// severities maps each known diagnosis to its base urgency, before any waiting time weighting is applied.
var severities = map[Diagnosis]int{
	DiagnosisLaceration: 10,
	DiagnosisConcussion: 20,
	DiagnosisFracture:   30,
	DiagnosisBurn:       50,
	DiagnosisCardiac:    100,
}

// Severity returns the base urgency of the diagnosis, and whether the diagnosis is known to the library.
func (d Diagnosis) Severity() (int, bool) {
	severity, ok := severities[d]
	return severity, ok
}
