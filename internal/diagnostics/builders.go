package diagnostics

import (
	"funlang/internal/source"
)

// MissingSourceFile reports that no source path was given on the command line
func MissingSourceFile(usage string) *Diagnostic {
	return NewError("no source file given").
		WithCode(ErrMissingSource).
		WithHelp("usage: " + usage)
}

// UnreadableFile reports a source file that could not be read
func UnreadableFile(path string, err error) *Diagnostic {
	return NewError("could not read file " + path).
		WithCode(ErrUnreadableFile).
		WithNote(err.Error())
}

// InvalidEncoding reports a source file that is not valid UTF-8
func InvalidEncoding(path string) *Diagnostic {
	return NewError("could not read file " + path).
		WithCode(ErrUnreadableFile).
		WithNote("file does not contain valid UTF-8")
}

// InvalidOptions reports an options file that could not be loaded
func InvalidOptions(path string, err error) *Diagnostic {
	return NewError("could not load options from " + path).
		WithCode(ErrInvalidOptions).
		WithNote(err.Error())
}

// DroppedTrailingText warns that text at end of input was never tokenized
func DroppedTrailingText(ctx source.Context) *Diagnostic {
	return NewWarning("trailing text was not tokenized").
		WithCode(WarnDroppedTrailer).
		WithSpan(ctx, "dropped at end of input").
		WithNote("drop_trailing is enabled, so text not followed by whitespace or punctuation is discarded").
		WithHelp("end the file with a newline, or disable drop_trailing")
}
