package errs

import "errors"

var (
	ErrRunNotFound   = errors.New("run not found")
	ErrRunInProgress = errors.New("another run is in progress")
	ErrInvalidURL    = errors.New("invalid page url (absolute http or https url required)")
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidDir    = errors.New("invalid destination directory (relative path inside the output directory required)")

	ErrPageFetch  = errors.New("page fetch failed")
	ErrExtraction = errors.New("image extraction failed")
	ErrFetch      = errors.New("fetch failed")
	ErrDownload   = errors.New("download failed")
	ErrConversion = errors.New("conversion failed")
)
