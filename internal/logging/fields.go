package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldBytes      = "bytes"

	// Configuration fields.
	FieldConfig      = "config"
	FieldConfigFiles = "config_files"
	FieldTabWidth    = "tab_width"
	FieldForm        = "unicode_form"
	FieldPolicy      = "invalid_code_points"

	// Line index fields.
	FieldLines  = "lines"
	FieldLine   = "line"
	FieldBegin  = "begin"
	FieldEnd    = "end"
	FieldIndent = "indent"

	// Text fields.
	FieldCodePoint = "code_point"
	FieldChanged   = "changed"
	FieldBackup    = "backup"

	// Batch fields.
	FieldFiles    = "files"
	FieldModified = "modified"
	FieldSkipped  = "skipped"
	FieldErrored  = "errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
