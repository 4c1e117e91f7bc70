package media_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/arqsuite/arqsuite-api/internal/domain/media"
)

// fakeObjectStore mimics an S3-compatible backend with an idempotent
// bucket create.
type fakeObjectStore struct {
	mu            sync.Mutex
	bucketExists  bool
	ensureCalls   int
	presignCalls  int
	ensureErr     error
	presignErr    error
	lastKey       string
	lastType      string
	lastExpiresIn time.Duration
}

func (f *fakeObjectStore) EnsureBucket(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensureCalls++
	if f.ensureErr != nil {
		return f.ensureErr
	}
	// Creating an existing bucket is success, never an error
	f.bucketExists = true
	return nil
}

func (f *fakeObjectStore) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presignCalls++
	if f.presignErr != nil {
		return "", f.presignErr
	}
	if !f.bucketExists {
		return "", errors.New("NoSuchBucket")
	}
	f.lastKey = key
	f.lastType = contentType
	f.lastExpiresIn = expires
	return fmt.Sprintf("http://minio:9000/media/%s?signature=abc", key), nil
}

func TestPresignHappyPath(t *testing.T) {
	store := &fakeObjectStore{}
	svc := media.NewService(store)

	result, err := svc.Presign(context.Background(), "sherd-042.jpg", "image/jpeg")
	if err != nil {
		t.Fatalf("presign: %v", err)
	}

	if result.Method != http.MethodPut {
		t.Fatalf("expected PUT, got %q", result.Method)
	}
	if result.Headers["Content-Type"] != "image/jpeg" {
		t.Fatalf("expected caller content type in headers, got %#v", result.Headers)
	}
	if result.URL == "" {
		t.Fatal("expected a signed URL")
	}
	if store.lastKey != "sherd-042.jpg" {
		t.Fatalf("expected object named after filename, got %q", store.lastKey)
	}
	if store.lastExpiresIn != time.Hour {
		t.Fatalf("expected 1h expiry, got %v", store.lastExpiresIn)
	}
	if store.ensureCalls != 1 {
		t.Fatalf("expected bucket ensured before presign, calls=%d", store.ensureCalls)
	}
}

func TestPresignIdempotentBucketCreation(t *testing.T) {
	store := &fakeObjectStore{}
	svc := media.NewService(store)

	for i := 0; i < 2; i++ {
		if _, err := svc.Presign(context.Background(), "plan.pdf", "application/pdf"); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if store.ensureCalls != 2 {
		t.Fatalf("expected ensure on every call, got %d", store.ensureCalls)
	}
}

func TestPresignConcurrentFirstCallers(t *testing.T) {
	store := &fakeObjectStore{}
	svc := media.NewService(store)

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Presign(context.Background(), fmt.Sprintf("photo-%d.jpg", i), "image/jpeg")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent first-time caller failed: %v", err)
		}
	}
}

func TestPresignStorageUnavailable(t *testing.T) {
	store := &fakeObjectStore{ensureErr: errors.New("connection refused")}
	svc := media.NewService(store)

	_, err := svc.Presign(context.Background(), "x.jpg", "image/jpeg")
	if !errors.Is(err, media.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if store.presignCalls != 0 {
		t.Fatal("must not presign when the bucket cannot be ensured")
	}

	store = &fakeObjectStore{presignErr: errors.New("invalid credentials")}
	svc = media.NewService(store)

	_, err = svc.Presign(context.Background(), "x.jpg", "image/jpeg")
	if !errors.Is(err, media.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if store.presignCalls != 1 {
		t.Fatalf("expected exactly one attempt, no retry, got %d", store.presignCalls)
	}
}
