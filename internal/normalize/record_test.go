package normalize

import (
	"testing"
	"time"

	"github.com/gyeh/patientload/internal/model"
)

// row builds a shaped RawRow from the canonical field order.
func row(patientID, first, last, dob, email, phone, address, apptID, apptDate, apptType string) model.RawRow {
	return model.RawRow{patientID, first, last, dob, email, phone, address, apptID, apptDate, apptType}
}

func TestToPatientCandidate_Valid(t *testing.T) {
	r := row(" P001 ", "john", "doe", "04/25/1977", "JOHN[at]EXAMPLE.com", "555-123-4567", "123 Main St,, Apt 4", "", "", "")
	p, rej := ToPatientCandidate(r, 1, PatientOptions{})
	if rej != nil {
		t.Fatalf("unexpected rejection: %s", rej)
	}
	if p.PatientID != "P001" {
		t.Errorf("PatientID = %q, want P001", p.PatientID)
	}
	if p.FirstName == nil || *p.FirstName != "John" {
		t.Errorf("FirstName = %v, want John", p.FirstName)
	}
	if p.LastName == nil || *p.LastName != "Doe" {
		t.Errorf("LastName = %v, want Doe", p.LastName)
	}
	if p.DOB == nil || !p.DOB.Equal(time.Date(1977, time.April, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DOB = %v, want 1977-04-25", p.DOB)
	}
	if p.Email == nil || *p.Email != "john@example.com" {
		t.Errorf("Email = %v, want john@example.com", p.Email)
	}
	if p.Phone == nil || *p.Phone != "+15551234567" {
		t.Errorf("Phone = %v, want +15551234567", p.Phone)
	}
	if p.Address == nil || *p.Address != "123 Main St, Apt 4" {
		t.Errorf("Address = %v, want collapsed comma spacing", p.Address)
	}
	if !p.IsComplete {
		t.Error("expected complete patient")
	}
}

func TestToPatientCandidate_MissingID(t *testing.T) {
	r := row("   ", "bob", "white", "1970-01-01", "bob@white.org", "", "", "A1", "2024-01-01", "checkup")
	p, rej := ToPatientCandidate(r, 5, PatientOptions{})
	if p != nil || rej == nil {
		t.Fatal("expected rejection for empty patient_id")
	}
	if rej.Field != "patient_id" || rej.Row != 5 {
		t.Errorf("rejection = %+v, want patient_id at row 5", rej)
	}
}

func TestToPatientCandidate_BadEmailSyntax(t *testing.T) {
	// Survives the cleaner (has "@") but fails strict syntax validation.
	r := row("P005", "tim", "brown", "05-06-1982", "tim@@example..com", "", "", "", "", "")
	p, rej := ToPatientCandidate(r, 7, PatientOptions{})
	if p != nil || rej == nil {
		t.Fatal("expected rejection for invalid email syntax")
	}
	if rej.Field != "email" {
		t.Errorf("rejection field = %q, want email", rej.Field)
	}
}

func TestToPatientCandidate_NoAtEmailDegradesToNil(t *testing.T) {
	// An email with no "@" at all empties the field rather than rejecting.
	r := row("P004", "sam", "", "", "not-an-email", "555 0100", "", "", "", "")
	p, rej := ToPatientCandidate(r, 6, PatientOptions{})
	if rej != nil {
		t.Fatalf("unexpected rejection: %s", rej)
	}
	if p.Email != nil {
		t.Errorf("Email = %q, want nil", *p.Email)
	}
	if p.IsComplete {
		t.Error("expected incomplete patient")
	}
}

func TestToPatientCandidate_RequireLastName(t *testing.T) {
	r := row("P004", "sam", " ", "1980-01-01", "sam@example.com", "", "", "", "", "")

	if _, rej := ToPatientCandidate(r, 1, PatientOptions{}); rej != nil {
		t.Fatalf("lenient mode rejected: %s", rej)
	}
	_, rej := ToPatientCandidate(r, 1, PatientOptions{RequireLastName: true})
	if rej == nil || rej.Field != "last_name" {
		t.Fatalf("strict mode rejection = %+v, want last_name", rej)
	}
}

func TestToAppointmentCandidate(t *testing.T) {
	r := row("P001", "", "", "", "", "", "", " A1001 ", "January 5, 2024", " follow-up ")
	a := ToAppointmentCandidate(r, 2)
	if a.Empty() {
		t.Fatal("expected non-empty candidate")
	}
	if a.AppointmentID == nil || *a.AppointmentID != "A1001" {
		t.Errorf("AppointmentID = %v, want A1001", a.AppointmentID)
	}
	if a.AppointmentDate == nil || !a.AppointmentDate.Equal(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("AppointmentDate = %v, want 2024-01-05", a.AppointmentDate)
	}
	if a.AppointmentType == nil || *a.AppointmentType != "follow-up" {
		t.Errorf("AppointmentType = %v, want follow-up", a.AppointmentType)
	}
}

func TestToAppointmentCandidate_Empty(t *testing.T) {
	r := row("P001", "x", "y", "", "", "", "", "  ", "unknown", "")
	a := ToAppointmentCandidate(r, 3)
	if !a.Empty() {
		t.Errorf("expected empty candidate, got %+v", a)
	}
}

func TestCompletePatient(t *testing.T) {
	dob := time.Date(1977, time.April, 25, 0, 0, 0, 0, time.UTC)
	lastName := "Doe"
	email := "a@b.com"
	partial := "555123"
	full := "+15551234567"

	tests := []struct {
		name string
		p    model.PatientCandidate
		want bool
	}{
		{"all contact", model.PatientCandidate{PatientID: "1", LastName: &lastName, DOB: &dob, Email: &email, Phone: &full}, true},
		{"email only", model.PatientCandidate{PatientID: "1", LastName: &lastName, DOB: &dob, Email: &email}, true},
		{"contactable phone only", model.PatientCandidate{PatientID: "1", LastName: &lastName, DOB: &dob, Phone: &full}, true},
		{"partial phone only", model.PatientCandidate{PatientID: "1", LastName: &lastName, DOB: &dob, Phone: &partial}, false},
		{"no contact", model.PatientCandidate{PatientID: "1", LastName: &lastName, DOB: &dob}, false},
		{"no dob", model.PatientCandidate{PatientID: "1", LastName: &lastName, Email: &email}, false},
		{"no last name", model.PatientCandidate{PatientID: "1", DOB: &dob, Email: &email}, false},
		{"no id", model.PatientCandidate{LastName: &lastName, DOB: &dob, Email: &email}, false},
	}
	for _, tt := range tests {
		if got := CompletePatient(&tt.p); got != tt.want {
			t.Errorf("%s: CompletePatient = %v, want %v", tt.name, got, tt.want)
		}
	}
}
