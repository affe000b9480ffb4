package media

import "errors"

// Pipeline error kinds. Every ingest failure maps onto exactly one of these
// so each request ends in a single, well-typed terminal response.
var (
	ErrRandomness      = errors.New("media: entropy source unavailable")
	ErrResizeFailed    = errors.New("media: thumbnail resize failed")
	ErrStorageUpload   = errors.New("media: storage upload failed")
	ErrPersistence     = errors.New("media: persistence failed")
	ErrVenueNotFound   = errors.New("media: venue not found")
	ErrNotFound        = errors.New("media: medium not found")
	ErrUnsupportedType = errors.New("media: unsupported mime-type")
)

// Storage-level errors the MinIO adapter maps onto.
var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
