package model

// NumFields is the fixed width of an input row after shaping.
const NumFields = 10

// FieldNames lists the input columns in their required positional order.
// Readers must preserve this layout exactly; downstream code indexes by it.
var FieldNames = []string{
	"patient_id",
	"first_name",
	"last_name",
	"dob",
	"email",
	"phone",
	"address",
	"appointment_id",
	"appointment_date",
	"appointment_type",
}

// RawRow is a single input row shaped to exactly NumFields cells.
// It carries no validity guarantees beyond its length.
type RawRow []string

func (r RawRow) PatientID() string       { return r[0] }
func (r RawRow) FirstName() string       { return r[1] }
func (r RawRow) LastName() string        { return r[2] }
func (r RawRow) DOB() string             { return r[3] }
func (r RawRow) Email() string           { return r[4] }
func (r RawRow) Phone() string           { return r[5] }
func (r RawRow) Address() string         { return r[6] }
func (r RawRow) AppointmentID() string   { return r[7] }
func (r RawRow) AppointmentDate() string { return r[8] }
func (r RawRow) AppointmentType() string { return r[9] }
