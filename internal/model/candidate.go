package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientCandidate is a validated, normalized patient record awaiting load.
// Candidates are value objects: once validation succeeds they are never
// mutated, only superseded (first occurrence of a patient_id wins).
type PatientCandidate struct {
	// ID is the surrogate primary key, assigned when the candidate is
	// accepted into a batch.
	ID uuid.UUID

	PatientID  string
	FirstName  *string
	LastName   *string
	DOB        *time.Time
	Email      *string
	Phone      *string
	Address    *string
	IsComplete bool

	// SourceRowNumber is the 1-based data row the candidate came from.
	SourceRowNumber int64
}

// PatientColumns returns the COPY column list for intake.patients.
func PatientColumns() []string {
	return []string{
		"id", "patient_id", "first_name", "last_name", "dob",
		"email", "phone", "address", "is_complete", "run_id",
	}
}

// CopyValues returns the candidate's values in PatientColumns order.
func (p *PatientCandidate) CopyValues(runID uuid.UUID) []any {
	return []any{
		p.ID, p.PatientID, p.FirstName, p.LastName, p.DOB,
		p.Email, p.Phone, p.Address, p.IsComplete, runID,
	}
}

// AppointmentCandidate is a validated appointment record. A candidate with
// all three payload fields nil carries no information and is discarded
// before it ever reaches a batch.
type AppointmentCandidate struct {
	ID uuid.UUID
	// PatientPK is the surrogate key of the owning patient, set at
	// association time. Every loaded appointment has exactly one owner.
	PatientPK uuid.UUID

	AppointmentID   *string
	AppointmentDate *time.Time
	AppointmentType *string

	SourceRowNumber int64
}

// Empty reports whether the candidate carries no information at all.
func (a *AppointmentCandidate) Empty() bool {
	return a.AppointmentID == nil && a.AppointmentDate == nil && a.AppointmentType == nil
}

// AppointmentColumns returns the COPY column list for intake.appointments.
func AppointmentColumns() []string {
	return []string{
		"id", "patient_pk", "appointment_id", "appointment_date",
		"appointment_type", "run_id",
	}
}

// CopyValues returns the candidate's values in AppointmentColumns order.
func (a *AppointmentCandidate) CopyValues(runID uuid.UUID) []any {
	return []any{
		a.ID, a.PatientPK, a.AppointmentID, a.AppointmentDate,
		a.AppointmentType, runID,
	}
}
