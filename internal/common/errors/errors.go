package errors

import (
	"errors"
)

var (
	// General Errors
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUnsupportedFile   = errors.New("unsupported file format")
	ErrPathNotAccessible = errors.New("path is not accessible")

	// Compression Errors
	ErrUnsupportedCompression = errors.New("unsupported compression format")
	ErrCompressionFailed      = errors.New("compression failed")
	ErrDecompressionFailed    = errors.New("decompression failed")

	// File & Directory Errors
	ErrFileNotFound   = errors.New("file not found")
	ErrFileReadError  = errors.New("error reading file")
	ErrFileWriteError = errors.New("error writing to file")
	ErrDirNotFound    = errors.New("directory not found")

	// Document Errors
	ErrInvalidDocument    = errors.New("invalid process document")
	ErrUnsupportedFormat  = errors.New("unsupported document format")
	ErrUnsupportedVersion = errors.New("unsupported document schema version")
	ErrInvalidFormData    = errors.New("invalid form data")

	// Configuration Errors
	ErrConfigInvalid      = errors.New("invalid configuration")
	ErrConfigFileNotFound = errors.New("configuration file not found")
	ErrConfigParseError   = errors.New("error parsing configuration")
	ErrNotInitialized     = errors.New("component not initialized")
)
