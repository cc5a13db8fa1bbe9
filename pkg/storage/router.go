package storage

import (
	"context"
	"fmt"
	"io"
)

// Router dispatches Get calls to the local or the remote backend.
// s3:// keys always go to the remote backend. Bare keys go to the local
// backend unless RemoteByDefault is set.
type Router struct {
	local         Storage
	remote        Storage
	remoteDefault bool
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// RemoteByDefault sends keys without the s3:// scheme to the remote backend.
// Use it when a default bucket is configured.
func RemoteByDefault(enabled bool) RouterOption {
	return func(r *Router) {
		r.remoteDefault = enabled
	}
}

// NewRouter creates a Router. remote may be nil; keys routed to it then fail
// with ErrRemoteNotConfigured.
func NewRouter(local, remote Storage, opts ...RouterOption) *Router {
	if local == nil {
		local = NewLocal("")
	}
	r := &Router{local: local, remote: remote}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get implements Storage.
func (r *Router) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if !IsRemote(key) && !r.remoteDefault {
		return r.local.Get(ctx, key)
	}
	if r.remote == nil {
		return nil, fmt.Errorf("%w: %s", ErrRemoteNotConfigured, key)
	}
	return r.remote.Get(ctx, key)
}

var _ Storage = (*Router)(nil)
