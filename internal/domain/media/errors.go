package media

import "errors"

var (
	ErrMediaNotFound    = errors.New("media not found")
	ErrNoFile           = errors.New("no file selected")
	ErrTypeNotSupported = errors.New("file type not supported")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
)
