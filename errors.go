package optkit

import "fmt"

type ErrorKind int

const (
	// ErrUnrecognizedOption: the token matched no registered short or
	// long name.
	ErrUnrecognizedOption ErrorKind = iota
	// ErrMissingArgument: an argument-taking option was given with no
	// value available.
	ErrMissingArgument
	// ErrUnexpectedArgument: a non-argument option was given a value.
	ErrUnexpectedArgument
	// ErrConflictingOptions: two options declared as mutually exclusive
	// were both seen.
	ErrConflictingOptions
)

// ScanError reports the first token a scan could not classify. Token is
// the literal flag text; Conflict is set for ErrConflictingOptions only.
type ScanError struct {
	Kind     ErrorKind
	Token    string
	Conflict string
}

func (e *ScanError) Error() string {
	switch e.Kind {
	case ErrUnrecognizedOption:
		return fmt.Sprintf("unrecognized command line option %s", e.Token)
	case ErrMissingArgument:
		return fmt.Sprintf("%s expects an argument", e.Token)
	case ErrUnexpectedArgument:
		return fmt.Sprintf("%s does not take arguments", e.Token)
	case ErrConflictingOptions:
		return fmt.Sprintf("%s cannot be used together with %s", e.Token, e.Conflict)
	}

	return fmt.Sprintf("invalid argument %s", e.Token)
}
