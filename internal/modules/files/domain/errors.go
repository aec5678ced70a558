package domain

import "errors"

var (
	ErrEmptyFile          = errors.New("cannot store empty file")
	ErrFileTooLarge       = errors.New("file size exceeds maximum allowed size")
	ErrInvalidFileName    = errors.New("filename contains invalid path sequence")
	ErrUploadFailed       = errors.New("failed to store file")
	ErrFileNotFound       = errors.New("file not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
