package contract

import (
	"fmt"
	"strings"
)

// jsonExt is the required extension of both positional arguments.
const jsonExt = ".json"

// InputPaths holds the two positional arguments of a report run.
type InputPaths struct {
	People     string
	Definition string
}

// ValidateInputArgs checks that exactly two positional arguments were given and
// that both end in .json. All problems are collected into an *ArgumentError.
func ValidateInputArgs(args []string) (InputPaths, error) {
	argErr := &ArgumentError{}
	var paths InputPaths

	if len(args) == 0 {
		argErr.add("Please type 2 arguments.", ErrMissingArgument)
		return paths, argErr
	}

	paths.People = args[0]
	if !strings.HasSuffix(paths.People, jsonExt) {
		argErr.add("The sales people file you've typed is not in .json format", ErrNotJSONFile)
	}

	if len(args) < 2 {
		argErr.add("Please type a second argument as well.", ErrMissingArgument)
		return paths, argErr
	}

	paths.Definition = args[1]
	if !strings.HasSuffix(paths.Definition, jsonExt) {
		argErr.add("The report definition file you have typed is not in .json format", ErrNotJSONFile)
	}

	if len(args) > 2 {
		argErr.add(fmt.Sprintf("Expected 2 arguments but got %d.", len(args)), ErrTooManyArguments)
	}

	if len(argErr.Problems) > 0 {
		return paths, argErr
	}
	return paths, nil
}
