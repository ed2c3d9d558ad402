package model

import "time"

// RunSummary captures metrics from a single ingest run.
type RunSummary struct {
	FilePath         string
	FileSHA256       string
	RunID            string
	AlreadyLoaded    bool
	RowsRead         int64
	PatientsAccepted int64
	PatientsRejected int64
	DuplicatesFolded int64
	ApptsAccepted    int64
	ApptsDropped     int64
	DurationCollect  time.Duration
	DurationCommit   time.Duration
	DurationTotal    time.Duration
}
