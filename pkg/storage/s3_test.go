package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewS3(t *testing.T) {
	t.Parallel()

	t.Run("static credentials", func(t *testing.T) {
		t.Parallel()
		store, err := NewS3(context.Background(), Config{
			Bucket:    "test-bucket",
			AccessKey: "test-access-key",
			SecretKey: "test-secret-key",
		})
		require.NoError(t, err)
		require.NotNil(t, store.client)
		require.Equal(t, DefaultRegion, store.cfg.Region)
	})

	t.Run("half a key pair", func(t *testing.T) {
		t.Parallel()
		store, err := NewS3(context.Background(), Config{AccessKey: "only-access"})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, store)
	})
}

func TestParseURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{name: "simple", uri: "s3://quotes/daily.csv", wantBucket: "quotes", wantKey: "daily.csv"},
		{name: "nested key", uri: "s3://quotes/a/b/c.html", wantBucket: "quotes", wantKey: "a/b/c.html"},
		{name: "missing key", uri: "s3://quotes/", wantErr: true},
		{name: "missing bucket", uri: "s3:///daily.csv", wantErr: true},
		{name: "wrong scheme", uri: "gs://quotes/daily.csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			bucket, key, err := ParseURI(tt.uri)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidURI)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantBucket, bucket)
			require.Equal(t, tt.wantKey, key)
		})
	}
}

func TestS3Storage_resolve(t *testing.T) {
	t.Parallel()

	s := &S3Storage{cfg: Config{Bucket: "default"}}

	bucket, key, err := s.resolve("/templates/daily.html")
	require.NoError(t, err)
	require.Equal(t, "default", bucket)
	require.Equal(t, "templates/daily.html", key)

	bucket, key, err = s.resolve("s3://other/daily.csv")
	require.NoError(t, err)
	require.Equal(t, "other", bucket)
	require.Equal(t, "daily.csv", key)

	_, _, err = (&S3Storage{}).resolve("daily.csv")
	require.ErrorIs(t, err, ErrInvalidURI)
}

func TestS3Storage_Get(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/quotes/daily.csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = io.WriteString(w, "name,quote\nAda,Hello\n")
		case "/quotes/private.csv":
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access Denied</Message></Error>`)
		default:
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
		}
	}))
	t.Cleanup(srv.Close)

	store, err := NewS3(context.Background(), Config{
		AccessKey: "test-access-key",
		SecretKey: "test-secret-key",
		Endpoint:  srv.URL,
		PathStyle: true,
	})
	require.NoError(t, err)

	t.Run("existing object", func(t *testing.T) {
		rc, err := store.Get(context.Background(), "s3://quotes/daily.csv")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, "name,quote\nAda,Hello\n", string(data))
	})

	t.Run("missing object", func(t *testing.T) {
		_, err := store.Get(context.Background(), "s3://quotes/missing.csv")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		_, err := store.Get(context.Background(), "s3://quotes/private.csv")
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}
