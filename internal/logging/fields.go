package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Parse fields.
	FieldLines    = "lines"
	FieldPasses   = "passes"
	FieldNodes    = "nodes"
	FieldLanguage = "language"
	FieldMasked   = "masked"

	// Session fields.
	FieldOp       = "op"
	FieldCursor   = "cursor"
	FieldTarget   = "target"
	FieldModified = "modified"
	FieldCacheHit = "cache_hit"
	FieldMarks    = "marks"

	// Channel fields.
	FieldRequestID = "request_id"
	FieldBuffer    = "buffer"
	FieldSessions  = "sessions"

	// Watch fields.
	FieldEvent = "event"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
