package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_applyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.applyDefaults()
	require.Equal(t, DefaultRegion, cfg.Region)

	cfg = &Config{Region: "eu-west-1"}
	cfg.applyDefaults()
	require.Equal(t, "eu-west-1", cfg.Region)
}

func TestConfig_validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "no credentials", cfg: Config{}},
		{name: "full key pair", cfg: Config{AccessKey: "a", SecretKey: "s"}},
		{name: "access key only", cfg: Config{AccessKey: "a"}, wantErr: true},
		{name: "secret key only", cfg: Config{SecretKey: "s"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLocal_Get(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quotes.csv"), []byte("a,b\n"), 0o600))

	t.Run("relative key resolved against root", func(t *testing.T) {
		t.Parallel()
		rc, err := NewLocal(dir).Get(context.Background(), "quotes.csv")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.Equal(t, "a,b\n", string(data))
	})

	t.Run("absolute key ignores root", func(t *testing.T) {
		t.Parallel()
		rc, err := NewLocal("/nonexistent-root").Get(context.Background(), filepath.Join(dir, "quotes.csv"))
		require.NoError(t, err)
		require.NoError(t, rc.Close())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		rc, err := NewLocal(dir).Get(context.Background(), "missing.csv")
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, rc)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewLocal(dir).Get(ctx, "quotes.csv")
		require.ErrorIs(t, err, context.Canceled)
	})
}

type stubStorage struct {
	content string
	keys    []string
}

func (s *stubStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.keys = append(s.keys, key)
	return io.NopCloser(strings.NewReader(s.content)), nil
}

func TestRouter_Get(t *testing.T) {
	t.Parallel()

	t.Run("routes by scheme", func(t *testing.T) {
		t.Parallel()
		local := &stubStorage{content: "local"}
		remote := &stubStorage{content: "remote"}
		r := NewRouter(local, remote)

		rc, err := r.Get(context.Background(), "data/quotes.csv")
		require.NoError(t, err)
		data, _ := io.ReadAll(rc)
		require.Equal(t, "local", string(data))

		rc, err = r.Get(context.Background(), "s3://bucket/quotes.csv")
		require.NoError(t, err)
		data, _ = io.ReadAll(rc)
		require.Equal(t, "remote", string(data))

		require.Equal(t, []string{"data/quotes.csv"}, local.keys)
		require.Equal(t, []string{"s3://bucket/quotes.csv"}, remote.keys)
	})

	t.Run("bare keys go remote when a bucket is set", func(t *testing.T) {
		t.Parallel()
		local := &stubStorage{content: "local"}
		remote := &stubStorage{content: "remote"}
		r := NewRouter(local, remote, RemoteByDefault(true))

		rc, err := r.Get(context.Background(), "data/quotes.csv")
		require.NoError(t, err)
		data, _ := io.ReadAll(rc)
		require.Equal(t, "remote", string(data))

		_, err = r.Get(context.Background(), "s3://other/quotes.csv")
		require.NoError(t, err)

		require.Empty(t, local.keys)
		require.Equal(t, []string{"data/quotes.csv", "s3://other/quotes.csv"}, remote.keys)
	})

	t.Run("bare keys without remote backend", func(t *testing.T) {
		t.Parallel()
		r := NewRouter(&stubStorage{}, nil, RemoteByDefault(true))
		_, err := r.Get(context.Background(), "quotes.csv")
		require.ErrorIs(t, err, ErrRemoteNotConfigured)
	})

	t.Run("remote not configured", func(t *testing.T) {
		t.Parallel()
		r := NewRouter(&stubStorage{}, nil)
		_, err := r.Get(context.Background(), "s3://bucket/quotes.csv")
		require.ErrorIs(t, err, ErrRemoteNotConfigured)
	})

	t.Run("nil local defaults to filesystem", func(t *testing.T) {
		t.Parallel()
		r := NewRouter(nil, nil)
		_, err := r.Get(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIsRemote(t *testing.T) {
	t.Parallel()

	require.True(t, IsRemote("s3://bucket/key"))
	require.False(t, IsRemote("./s3/key"))
	require.False(t, IsRemote("/tmp/quotes.csv"))
}
