package normalize

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gyeh/patientload/internal/model"
)

// emailSyntax applies the stricter email-format rule beyond CleanEmail's
// bare "@" requirement.
var emailSyntax = validator.New()

// Rejection explains why a row's patient portion was refused. Validators
// return it as an explicit result so callers branch on outcome rather than
// recover from panics.
type Rejection struct {
	Row    int64
	Field  string
	Reason string
}

func (r *Rejection) String() string {
	return r.Field + ": " + r.Reason
}

// PatientOptions adjust validation strictness.
type PatientOptions struct {
	// RequireLastName rejects rows whose last_name is empty instead of
	// accepting them as incomplete.
	RequireLastName bool
}

// ToPatientCandidate maps a shaped row's patient fields through the field
// cleaners and structural rules. patient_id must be non-empty after
// trimming, and a cleaned email must pass full syntax validation; either
// failure rejects the whole row, appointment portion included. All other
// fields degrade to nil rather than reject.
func ToPatientCandidate(row model.RawRow, rowNum int64, opts PatientOptions) (*model.PatientCandidate, *Rejection) {
	patientID := strings.TrimSpace(row.PatientID())
	if patientID == "" {
		return nil, &Rejection{Row: rowNum, Field: "patient_id", Reason: "empty"}
	}

	email := CleanEmail(row.Email())
	if email != nil {
		if err := emailSyntax.Var(*email, "email"); err != nil {
			return nil, &Rejection{Row: rowNum, Field: "email", Reason: "invalid syntax"}
		}
	}

	lastName := TitleName(row.LastName())
	if opts.RequireLastName && lastName == nil {
		return nil, &Rejection{Row: rowNum, Field: "last_name", Reason: "empty"}
	}

	p := &model.PatientCandidate{
		PatientID:       patientID,
		FirstName:       TitleName(row.FirstName()),
		LastName:        lastName,
		DOB:             ParseDate(row.DOB()),
		Email:           email,
		Phone:           CleanPhone(row.Phone()),
		Address:         CleanAddress(row.Address()),
		SourceRowNumber: rowNum,
	}
	p.IsComplete = CompletePatient(p)
	return p, nil
}

// ToAppointmentCandidate cleans a row's appointment fields. All three are
// optional and cleaned independently; a candidate that reduces to empty is
// the caller's cue to drop it silently.
func ToAppointmentCandidate(row model.RawRow, rowNum int64) *model.AppointmentCandidate {
	return &model.AppointmentCandidate{
		AppointmentID:   TrimField(row.AppointmentID()),
		AppointmentDate: ParseDate(row.AppointmentDate()),
		AppointmentType: TrimField(row.AppointmentType()),
		SourceRowNumber: rowNum,
	}
}
