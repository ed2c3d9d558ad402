package ingest

import (
	"github.com/google/uuid"

	"github.com/gyeh/patientload/internal/model"
)

// Batch is the deduplication and association engine for one ingestion run.
// Patients are keyed by external patient_id with first-wins semantics: a
// later row sharing an id contributes only its appointment data and never
// overwrites patient fields. Appointments attach to exactly one owner at
// association time. A Batch is scoped to a single run and never shared.
type Batch struct {
	order []string
	byID  map[string]*model.PatientCandidate
	appts []*model.AppointmentCandidate
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{byID: make(map[string]*model.PatientCandidate)}
}

// AddPatient registers a validated candidate. If the patient_id is new the
// candidate is accepted, assigned a surrogate key, and returned with
// created=true. Otherwise the first-seen candidate is returned unchanged.
func (b *Batch) AddPatient(p *model.PatientCandidate) (owner *model.PatientCandidate, created bool) {
	if existing, ok := b.byID[p.PatientID]; ok {
		return existing, false
	}
	p.ID = uuid.New()
	b.byID[p.PatientID] = p
	b.order = append(b.order, p.PatientID)
	return p, true
}

// AddAppointment associates a non-empty appointment candidate with its
// owning patient. The owner must already be in the batch.
func (b *Batch) AddAppointment(owner *model.PatientCandidate, a *model.AppointmentCandidate) {
	a.ID = uuid.New()
	a.PatientPK = owner.ID
	b.appts = append(b.appts, a)
}

// Patient looks up a patient by external id.
func (b *Batch) Patient(patientID string) (*model.PatientCandidate, bool) {
	p, ok := b.byID[patientID]
	return p, ok
}

// Patients returns the accepted patients in first-seen order.
func (b *Batch) Patients() []*model.PatientCandidate {
	out := make([]*model.PatientCandidate, len(b.order))
	for i, id := range b.order {
		out[i] = b.byID[id]
	}
	return out
}

// Appointments returns the associated appointments in input order.
func (b *Batch) Appointments() []*model.AppointmentCandidate {
	return b.appts
}
