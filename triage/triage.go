// Package triage implements a hospital waiting queue where the most urgent patient is seen first. Urgency is
// scored at admission from the patient's diagnosis and how long they've already been waiting.
package triage

import (
	"fmt"

	"github.com/caretools/triage-common/log"
	"github.com/caretools/triage-common/patient"
	"github.com/caretools/triage-common/pq"
	"github.com/caretools/triage-common/timeprovider"
)

// Queue is a ward waiting queue. Patients are keyed by name, a patient may only be waiting once at any one
// time.
//
// NOTE: Not safe for concurrent use, access must be serialized by the caller.
type Queue struct {
	queue  *pq.IndexedQueue[patient.Patient, int]
	clock  timeprovider.TimeProvider
	logger log.WrappedLogger
}

// NewQueue creates a triage queue containing the given patients.
func NewQueue(opts Options) (*Queue, error) {
	opts.defaults()

	items := make([]pq.Item[patient.Patient, int], 0, len(opts.Patients))

	for _, p := range opts.Patients {
		items = append(items, item(p, opts.TimeProvider))
	}

	inner, err := pq.NewIndexedQueue(items, opts.Fast)
	if err != nil {
		return nil, fmt.Errorf("failed to admit initial patients: %w", err)
	}

	return &Queue{queue: inner, clock: opts.TimeProvider, logger: log.NewWrappedLogger(opts.Logger)}, nil
}

// item scores the given patient and wraps them for queueing.
func item(p patient.Patient, tp timeprovider.TimeProvider) pq.Item[patient.Patient, int] {
	return pq.Item[patient.Patient, int]{Key: p.Name, Payload: p, Priority: patient.Urgency(p, tp)}
}

// Admit adds the given patient to the queue, scoring their urgency at the time of admission.
func (q *Queue) Admit(p patient.Patient) error {
	if err := q.queue.Enqueue(item(p, q.clock)); err != nil {
		q.logger.Errorf("failed to admit patient %q: %v", p.Name, err)
		return fmt.Errorf("failed to admit patient: %w", err)
	}

	q.logger.Debugf("admitted patient %q with diagnosis %q", p.Name, p.Diagnosis)

	return nil
}

// Next removes, and returns the most urgent waiting patient.
func (q *Queue) Next() (patient.Patient, error) {
	treated, err := q.queue.Dequeue()
	if err != nil {
		return patient.Patient{}, fmt.Errorf("failed to fetch next patient: %w", err)
	}

	q.logger.Debugf("patient %q called for treatment", treated.Key)

	return treated.Payload, nil
}

// Discharge removes the named patient from the queue without treating them.
func (q *Queue) Discharge(name string) error {
	if err := q.queue.Remove(name); err != nil {
		q.logger.Errorf("failed to discharge patient %q: %v", name, err)
		return fmt.Errorf("failed to discharge patient: %w", err)
	}

	q.logger.Debugf("discharged patient %q", name)

	return nil
}

// Reassess replaces the named patient's diagnosis, re-scoring their urgency against the current time. The
// queue treats this as a removal followed by a re-admission.
func (q *Queue) Reassess(name string, diagnosis patient.Diagnosis) error {
	current, ok := q.queue.Get(name)
	if !ok {
		return fmt.Errorf("failed to reassess patient: %w", pq.ErrKeyNotFound)
	}

	if _, ok := diagnosis.Severity(); !ok {
		return fmt.Errorf("failed to reassess patient: %w", patient.ErrUnknownDiagnosis)
	}

	updated := current.Payload
	updated.Diagnosis = diagnosis
	updated.DiagnosedAt = q.clock.Now()

	if err := q.queue.Remove(name); err != nil {
		return fmt.Errorf("failed to reassess patient: %w", err)
	}

	// Cannot fail, the removal above freed the key.
	_ = q.queue.Enqueue(item(updated, q.clock))

	q.logger.Debugf("reassessed patient %q as %q", name, diagnosis)

	return nil
}

// Waiting returns the number of patients currently waiting.
func (q *Queue) Waiting() int {
	return q.queue.Len()
}

// Comparisons returns the number of priority comparisons the underlying heap has performed.
func (q *Queue) Comparisons() int {
	return q.queue.Comparisons()
}
