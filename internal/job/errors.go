package job

import "errors"

var (
	// ErrNotFound is returned when no job with the requested id exists.
	ErrNotFound = errors.New("job not found")

	// ErrDuplicateID is returned when creating a job whose id is
	// already in the collection.
	ErrDuplicateID = errors.New("job id already exists")
)
