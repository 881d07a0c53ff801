package runner

import "github.com/yaklabco/breeze/pkg/langdetect"

// FileOutcome is the parse result for one file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// Language is the detected language of the file.
	Language langdetect.Language

	// Lines holds the file contents, for showing the line of a ParseErr.
	Lines []string

	// Elements is the number of elements parsed.
	Elements int

	// ParseErr is the *html.ScanError that stopped the parse, if any.
	ParseErr error

	// Error is set if the file could not be read.
	Error error
}

// Failed reports whether the file was read but did not parse.
func (o FileOutcome) Failed() bool {
	return o.Error == nil && o.ParseErr != nil
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesParsed is the number of files that parsed without error.
	FilesParsed int

	// FilesFailed is the number of files that failed to parse.
	FilesFailed int

	// FilesErrored is the number of files that could not be read.
	FilesErrored int

	// Elements is the total number of elements in parsed files.
	Elements int

	// NonMarkup counts files whose language is not a markup language.
	NonMarkup int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to parse.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

// HasErrors reports whether any file could not be read.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.ParseErr != nil:
		r.Stats.FilesFailed++
	default:
		r.Stats.FilesParsed++
		r.Stats.Elements += outcome.Elements
	}

	if !outcome.Language.IsMarkup() {
		r.Stats.NonMarkup++
	}
}
