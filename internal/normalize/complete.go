package normalize

import "github.com/gyeh/patientload/internal/model"

// CompletePatient reports whether a validated candidate has enough identity
// and contact data to be useful downstream: patient_id, last_name, and dob
// present, plus an email or a contactable phone. The flag is informational;
// an incomplete patient is still loaded.
func CompletePatient(p *model.PatientCandidate) bool {
	if p.PatientID == "" {
		return false
	}
	if p.LastName == nil || p.DOB == nil {
		return false
	}
	if p.Email != nil {
		return true
	}
	return p.Phone != nil && ContactablePhone(*p.Phone)
}
