package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CommitError     = 4
	SourceNotFound  = 5
)
