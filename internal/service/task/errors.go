package task

import "errors"

var (
	ErrNotFound           = errors.New("task not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidAssignee    = errors.New("invalid assignee id")
	ErrStorage            = errors.New("storage failure")
)
