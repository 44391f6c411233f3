package patient

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/caretools/triage-common/timeprovider"
)

func TestNew(t *testing.T) {
	diagnosedAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	patient, err := New("Alice", DiagnosisFracture, diagnosedAt)
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, patient.ID)
	require.Equal(t, "Alice", patient.Name)
	require.Equal(t, DiagnosisFracture, patient.Diagnosis)
	require.Equal(t, diagnosedAt, patient.DiagnosedAt)
}

func TestNewInvalid(t *testing.T) {
	type testCase struct {
		name      string
		patient   string
		diagnosis Diagnosis
		expected  error
	}

	cases := []testCase{
		{
			name:      "EmptyName",
			diagnosis: DiagnosisBurn,
			expected:  ErrEmptyName,
		},
		{
			name:     "UnknownDiagnosis",
			patient:  "Alice",
			expected: ErrUnknownDiagnosis,
		},
		{
			name:      "MisspelledDiagnosis",
			patient:   "Alice",
			diagnosis: Diagnosis("fractures"),
			expected:  ErrUnknownDiagnosis,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.patient, tc.diagnosis, time.Now())
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestDiagnosisSeverity(t *testing.T) {
	severity, ok := DiagnosisCardiac.Severity()
	require.True(t, ok)
	require.Equal(t, 100, severity)

	_, ok = Diagnosis("sniffles").Severity()
	require.False(t, ok)
}

func TestMarshalUnmarshal(t *testing.T) {
	expected, err := New("Alice", DiagnosisConcussion, time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	data, err := Marshal(expected)
	require.NoError(t, err)

	actual, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"name":"","diagnosis":"burn"}`))
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = Unmarshal([]byte(`{"name":"Alice","diagnosis":"sniffles"}`))
	require.ErrorIs(t, err, ErrUnknownDiagnosis)

	_, err = Unmarshal([]byte(`{`))
	require.Error(t, err)
}

func TestUrgency(t *testing.T) {
	var (
		diagnosedAt = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		provider    = timeprovider.NewFakeTimeProvider(diagnosedAt)
	)

	patient, err := New("Alice", DiagnosisConcussion, diagnosedAt)
	require.NoError(t, err)

	require.Equal(t, 20, Urgency(patient, provider))

	provider.AdvanceTimeBy(30 * time.Minute)
	require.Equal(t, 50, Urgency(patient, provider))

	// Sub-minute waiting doesn't score.
	provider.AdvanceTimeBy(59 * time.Second)
	require.Equal(t, 50, Urgency(patient, provider))
}

func TestUrgencyFutureDiagnosis(t *testing.T) {
	var (
		now      = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		provider = timeprovider.NewFakeTimeProvider(now)
	)

	patient, err := New("Alice", DiagnosisLaceration, now.Add(time.Hour))
	require.NoError(t, err)

	require.Equal(t, 10, Urgency(patient, provider))
}

func TestUrgencyUnknownDiagnosis(t *testing.T) {
	provider := timeprovider.NewFakeTimeProvider(time.Now())

	require.Zero(t, Urgency(Patient{Name: "Alice", Diagnosis: "sniffles"}, provider))
}
