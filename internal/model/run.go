package model

// RunStatus tracks an ingest run through its lifecycle. Transitions:
// reading → committing → completed, or reading/committing → failed.
// A missing source file never registers a run at all.
type RunStatus string

const (
	StatusReading    RunStatus = "reading"
	StatusCommitting RunStatus = "committing"
	StatusCompleted  RunStatus = "completed"
	StatusFailed     RunStatus = "failed"
)

// StatusByName returns the RunStatus for the given name, or ok=false.
func StatusByName(name string) (RunStatus, bool) {
	switch RunStatus(name) {
	case StatusReading, StatusCommitting, StatusCompleted, StatusFailed:
		return RunStatus(name), true
	}
	return "", false
}
