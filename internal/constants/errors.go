package constants

import "errors"

// Configuration errors.
var (
	ErrNotLoggedIn      = errors.New("no credentials configured, run 'intacct login' first")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// Batch file errors.
var (
	ErrFunctionsFileRequired = errors.New("--file is required")
	ErrNoFunctionsInFile     = errors.New("functions file contains no functions")
	ErrInvalidOperationKind  = errors.New("invalid operation kind")
	ErrObjectTypeRequired    = errors.New("object type is required")
	ErrArgumentsNotMapping   = errors.New("arguments must be a mapping")
)
