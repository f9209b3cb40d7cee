package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ExtractError    = 3
	ExportError     = 4
	DBConnError     = 5
	LoadError       = 6
)
