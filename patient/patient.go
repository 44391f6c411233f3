// Package patient provides the patient record held by triage queues, and the urgency scoring used to order
// them.
package patient

import (
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/caretools/triage-common/timeprovider"
)

// json is a jsoniter instance configured to be compatible with the standard library.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Patient is a single triage record. Records are immutable once admitted, a change in a patient's condition
// is handled by re-admission.
type Patient struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Diagnosis   Diagnosis `json:"diagnosis"`
	DiagnosedAt time.Time `json:"diagnosed_at"`
}

// New creates a patient record with a generated id, validating that the name is non-empty and the diagnosis
// is a known condition.
func New(name string, diagnosis Diagnosis, diagnosedAt time.Time) (Patient, error) {
	patient := Patient{ID: uuid.New(), Name: name, Diagnosis: diagnosis, DiagnosedAt: diagnosedAt}

	return patient, validate(patient)
}

// validate returns an error if the given record would not have been accepted by 'New'.
func validate(p Patient) error {
	if p.Name == "" {
		return ErrEmptyName
	}

	if _, ok := p.Diagnosis.Severity(); !ok {
		return ErrUnknownDiagnosis
	}

	return nil
}

// Marshal encodes the given patient record as JSON.
func Marshal(p Patient) ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes a patient record from JSON, rejecting records which 'New' would not have accepted.
func Unmarshal(data []byte) (Patient, error) {
	var patient Patient

	if err := json.Unmarshal(data, &patient); err != nil {
		return Patient{}, err
	}

	return patient, validate(patient)
}

// Urgency scores the given patient for queueing; the base severity of their diagnosis weighted by the number
// of whole minutes they've been waiting since it was made. Patients diagnosed with an unknown condition, or
// in the future, gain no weighting.
func Urgency(p Patient, tp timeprovider.TimeProvider) int {
	severity, ok := p.Diagnosis.Severity()
	if !ok {
		return 0
	}

	waited := int(tp.Now().Sub(p.DiagnosedAt) / time.Minute)
	if waited < 0 {
		waited = 0
	}

	return severity + waited
}
