// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"
	FieldHash       = "hash"

	// Wrapping fields.
	FieldWidth      = "width"
	FieldHeight     = "height"
	FieldBreakChars = "break_chars"
	FieldJustify    = "justify"
	FieldTokens     = "tokens"

	// Statistics fields.
	FieldBlocks        = "blocks"
	FieldLines         = "lines"
	FieldShortBlocks   = "short_blocks"
	FieldOversizeLines = "oversize_lines"
	FieldBytes         = "bytes"

	// Rendering fields.
	FieldFontSize = "font_size"
	FieldCanvas   = "canvas"
	FieldJobs     = "jobs"
	FieldMode     = "mode"
	FieldImages   = "images"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
