package media

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// uploadURLTTL bounds how long a minted upload URL stays valid
const uploadURLTTL = time.Hour

// ObjectStore is the slice of object storage the presign flow needs
type ObjectStore interface {
	// EnsureBucket creates the content bucket if absent. Implementations
	// must treat "already exists" as success so concurrent first-time
	// callers never race into an error.
	EnsureBucket(ctx context.Context) error

	// PresignPut mints a time-limited URL authorizing an HTTP PUT
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}

// Service mints presigned upload URLs
type Service struct {
	store ObjectStore
}

// NewService creates media service
func NewService(store ObjectStore) *Service {
	return &Service{store: store}
}

// Presign ensures the content bucket exists and returns a one-hour PUT
// URL for the given object, plus the method and headers the client must
// use. No retry on failure.
func (s *Service) Presign(ctx context.Context, filename, contentType string) (*PresignResponse, error) {
	if err := s.store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	url, err := s.store.PresignPut(ctx, filename, contentType, uploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	log.Debug().Str("filename", filename).Str("content_type", contentType).Msg("Presigned upload URL issued")

	return &PresignResponse{
		URL:    url,
		Method: http.MethodPut,
		Headers: map[string]string{
			"Content-Type": contentType,
		},
	}, nil
}
