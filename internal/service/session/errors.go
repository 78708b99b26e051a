package session

import "errors"

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidURL          = errors.New("invalid url")
	ErrInvalidPayload      = errors.New("invalid attachment payload")
)
