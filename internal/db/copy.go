package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/patientload/internal/model"
)

// PatientSource implements pgx.CopyFromSource over a batch's patients in
// first-seen order, tagging every row with the owning run.
type PatientSource struct {
	runID    uuid.UUID
	patients []*model.PatientCandidate
	idx      int
}

// NewPatientSource creates a CopyFromSource for intake.patients.
func NewPatientSource(runID uuid.UUID, patients []*model.PatientCandidate) *PatientSource {
	return &PatientSource{runID: runID, patients: patients, idx: -1}
}

func (s *PatientSource) Next() bool {
	s.idx++
	return s.idx < len(s.patients)
}

// Values returns the current row's values in model.PatientColumns order.
func (s *PatientSource) Values() ([]any, error) {
	return s.patients[s.idx].CopyValues(s.runID), nil
}

func (s *PatientSource) Err() error { return nil }

// AppointmentSource implements pgx.CopyFromSource over a batch's
// appointments in input order.
type AppointmentSource struct {
	runID uuid.UUID
	appts []*model.AppointmentCandidate
	idx   int
}

// NewAppointmentSource creates a CopyFromSource for intake.appointments.
func NewAppointmentSource(runID uuid.UUID, appts []*model.AppointmentCandidate) *AppointmentSource {
	return &AppointmentSource{runID: runID, appts: appts, idx: -1}
}

func (s *AppointmentSource) Next() bool {
	s.idx++
	return s.idx < len(s.appts)
}

// Values returns the current row's values in model.AppointmentColumns order.
func (s *AppointmentSource) Values() ([]any, error) {
	return s.appts[s.idx].CopyValues(s.runID), nil
}

func (s *AppointmentSource) Err() error { return nil }

// Compile-time checks that both sources satisfy the interface.
var (
	_ pgx.CopyFromSource = (*PatientSource)(nil)
	_ pgx.CopyFromSource = (*AppointmentSource)(nil)
)
