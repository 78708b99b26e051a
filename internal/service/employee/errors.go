package employee

import "errors"

var (
	ErrNameRequired  = errors.New("employee name is required")
	ErrDuplicateName = errors.New("employee name already exists")
	ErrStorage       = errors.New("storage failure")
)
