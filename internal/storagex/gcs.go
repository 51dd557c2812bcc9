// Package storagex stores project photo blobs in Google Cloud Storage.
package storagex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"furniquote/internal/config"
	"furniquote/internal/logx"
)

var storeLogger = logx.GetScope("storage")

// ObjectStore is the blob surface the quoting service needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	PublicURL(key string) string
}

// ErrDisabled is returned by Open when OBJECT_STORAGE_MODE is blank.
var ErrDisabled = errors.New("object storage disabled")

type gcsStore struct {
	client    *storage.Client
	bucket    string
	cdnDomain string
	baseURL   string
}

// Open builds a GCS-backed store. Mode "gcs_emulator" talks to a fake-gcs
// server without credentials.
func Open(ctx context.Context, cfg *config.Config) (ObjectStore, func(), error) {
	sc := cfg.Storage
	mode := strings.ToLower(strings.TrimSpace(sc.Mode))
	if mode == "" {
		return nil, func() {}, ErrDisabled
	}
	if sc.Bucket == "" {
		return nil, func() {}, fmt.Errorf("missing env var PHOTO_GCS_BUCKET_NAME")
	}

	var opts []option.ClientOption
	switch mode {
	case "gcs":
		opts = append(ClientOptionsFromEnv(), option.WithScopes(storage.ScopeReadWrite))
	case "gcs_emulator":
		host := strings.TrimSpace(sc.EmulatorHost)
		if host == "" {
			return nil, func() {}, fmt.Errorf("gcs_emulator mode requires STORAGE_EMULATOR_HOST")
		}
		if !strings.HasPrefix(host, "http") {
			host = "http://" + host
		}
		opts = []option.ClientOption{
			option.WithEndpoint(strings.TrimRight(host, "/") + "/storage/v1/"),
			option.WithoutAuthentication(),
		}
	default:
		return nil, func() {}, fmt.Errorf("unsupported OBJECT_STORAGE_MODE %q", sc.Mode)
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to create storage client: %w", err)
	}
	s := &gcsStore{client: client, bucket: sc.Bucket, cdnDomain: sc.CDNDomain, baseURL: sc.PublicBaseURL}
	closer := func() {
		if err := client.Close(); err != nil {
			storeLogger.Warn("close storage client", zap.Error(err))
		}
	}
	return s, closer, nil
}

// ClientOptionsFromEnv reads service account credentials as inline JSON or a file path.
func ClientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

func (s *gcsStore) Upload(ctx context.Context, key string, r io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if ct := ContentTypeForKey(key); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return nil
}

func (s *gcsStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.client.Bucket(s.bucket).Object(key).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete GCS object %q: %w", key, err)
	}
	return nil
}

func (s *gcsStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	out := []string{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, attrs.Name)
	}
	return out, nil
}

func (s *gcsStore) PublicURL(key string) string {
	return publicURL(s.bucket, s.cdnDomain, s.baseURL, key)
}

func publicURL(bucket, cdnDomain, baseURL, key string) string {
	switch {
	case cdnDomain != "":
		return fmt.Sprintf("https://%s/%s", cdnDomain, key)
	case baseURL != "":
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), bucket, key)
	default:
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
	}
}

// ContentTypeForKey guesses an image content type from the key's extension.
func ContentTypeForKey(key string) string {
	s := strings.ToLower(strings.TrimSpace(key))
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	switch {
	case strings.HasSuffix(s, ".png"):
		return "image/png"
	case strings.HasSuffix(s, ".jpg"), strings.HasSuffix(s, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(s, ".webp"):
		return "image/webp"
	case strings.HasSuffix(s, ".gif"):
		return "image/gif"
	case strings.HasSuffix(s, ".heic"):
		return "image/heic"
	default:
		return ""
	}
}
