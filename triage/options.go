package triage

import (
	"github.com/caretools/triage-common/log"
	"github.com/caretools/triage-common/patient"
	"github.com/caretools/triage-common/timeprovider"
)

// Options encapsulates the available options which can be used when creating a triage queue.
type Options struct {
	// Patients admitted when the queue is created.
	Patients []patient.Patient

	// Fast builds the initial heap with a single linear-time pass rather than by repeated admission.
	Fast bool

	// TimeProvider supplies the time used when scoring urgency. Defaults to the system clock.
	TimeProvider timeprovider.TimeProvider

	// Logger is the passed Logger struct that implements the Log method for logger the user wants to use.
	Logger log.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	if o.TimeProvider == nil {
		o.TimeProvider = timeprovider.CurrentTimeProvider{}
	}
}
