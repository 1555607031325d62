package contract

import (
	"errors"
	"strings"
)

// Sentinel errors for the error taxonomy of a run.
var (
	ErrMissingArgument   = errors.New("missing argument")
	ErrNotJSONFile       = errors.New("not a .json file")
	ErrTooManyArguments  = errors.New("too many arguments")
	ErrParse             = errors.New("parse error")
	ErrIO                = errors.New("io error")
	ErrMissingField      = errors.New("missing required field")
	ErrUnsupportedSource = errors.New("unsupported people source")
)

// argProblem is a single user-facing argument problem tied to a sentinel error.
type argProblem struct {
	msg  string
	kind error
}

func (p *argProblem) Error() string { return p.msg }

func (p *argProblem) Unwrap() error { return p.kind }

// ArgumentError collects every problem found in the positional arguments so
// they can all be reported before the run aborts.
type ArgumentError struct {
	Problems []error
}

// Error joins the problem messages, one per line.
func (e *ArgumentError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ArgumentError) Unwrap() []error {
	return e.Problems
}

func (e *ArgumentError) add(msg string, kind error) {
	e.Problems = append(e.Problems, &argProblem{msg: msg, kind: kind})
}
