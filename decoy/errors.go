package decoy

import "fmt"

// Kind classifies a renaming failure. Failures are fail-fast and
// unrecoverable; callers use the kind to decide how to report them,
// not to retry.
type Kind int

const (
	// InvalidArguments means a required input was missing or empty.
	// Raised before any I/O.
	InvalidArguments Kind = iota + 1

	// AlreadyExists means the destination exists and overwriting was
	// not requested. Raised before anything is written.
	AlreadyExists

	// IOFailure means the source could not be read or the destination
	// could not be written.
	IOFailure

	// ParseFailure means the source is not a well-formed silent file.
	ParseFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArguments:
		return "invalid arguments"
	case AlreadyExists:
		return "already exists"
	case IOFailure:
		return "io failure"
	case ParseFailure:
		return "parse failure"
	}
	return "unknown"
}

// An Error is a classified renaming failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or 0 when err is not a decoy error.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapf(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
