package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldCommand    = "command"
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldMode     = "mode"
	FieldJobs     = "jobs"
	FieldMaxBytes = "max_bytes"

	// Highlighting fields.
	FieldLanguage = "language"
	FieldRules    = "rules"
	FieldSpans    = "spans"
	FieldBytes    = "bytes"
	FieldCursor   = "cursor"

	// Minimap fields.
	FieldLines  = "lines"
	FieldRects  = "rects"
	FieldScale  = "scale"
	FieldCanvas = "canvas"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesSkipped    = "files_skipped"
	FieldSpansTotal      = "spans_total"
	FieldUnmatched       = "unmatched_brackets"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Profile fields.
	FieldName        = "name"
	FieldTitle       = "title"
	FieldExtensions  = "extensions"
	FieldDescription = "description"
)
