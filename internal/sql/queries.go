package sql

import (
	_ "embed"
)

//go:embed queries/insert_report.sql
var InsertReport string
