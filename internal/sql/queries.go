package sql

import (
	"embed"
)

//go:embed migrations
var Migrations embed.FS

//go:embed queries/register_run.sql
var RegisterRun string

//go:embed queries/lookup_run.sql
var LookupRun string

//go:embed queries/reset_run.sql
var ResetRun string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string

//go:embed queries/finish_run.sql
var FinishRun string

//go:embed queries/delete_run_patients.sql
var DeleteRunPatients string
