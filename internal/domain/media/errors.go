package media

import "errors"

// ErrStorageUnavailable is returned when the object storage service is
// unreachable or rejects our credentials. Callers retry by re-invoking;
// the service itself never retries.
var ErrStorageUnavailable = errors.New("object storage unavailable")
