package catalog

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrReloadInProgress = errors.New("a reload is already running")
	ErrEmptyImport      = errors.New("no projects to import")
	ErrInvalidProject   = errors.New("project id and name are required")
	ErrInvalidTask      = errors.New("task id is required")
)
