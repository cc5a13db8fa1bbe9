package csvrow

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// Kind tells the outcome of a Select call apart.
type Kind int

const (
	// KindOK means a row was selected.
	KindOK Kind = iota
	// KindNotFound means the file is missing or has no rows at all.
	KindNotFound
	// KindNoRows means the file was read but holds no data row after the header.
	KindNoRows
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindNoRows:
		return "no_rows"
	default:
		return "unknown"
	}
}

// Selection is the result of Select. Row is set only when Kind is KindOK.
type Selection struct {
	Row  Mapping
	Kind Kind
}

// OK reports whether a row was selected.
func (s Selection) OK() bool {
	return s.Kind == KindOK
}

type selectOptions struct {
	rand   *rand.Rand
	header bool
}

// Option configures Select.
type Option func(*selectOptions)

// WithHeader controls whether the first row is a header (default true).
// Without a header every row is data and columns are named col0, col1, ...
func WithHeader(header bool) Option {
	return func(o *selectOptions) {
		o.header = header
	}
}

// WithRand sets the random source used to pick a row.
// The package-level generator is used when r is nil.
func WithRand(r *rand.Rand) Option {
	return func(o *selectOptions) {
		o.rand = r
	}
}

func (o *selectOptions) intN(n int) int {
	if o.rand != nil {
		return o.rand.IntN(n)
	}
	return rand.IntN(n)
}

// Select reads the CSV file at path and picks one data row uniformly at random.
// Missing and empty files yield KindNotFound, a header without data rows
// yields KindNoRows. Any other read failure is returned as an error wrapping
// ErrReadFailed.
func Select(ctx context.Context, store storage.Storage, path string, opts ...Option) (Selection, error) {
	o := &selectOptions{header: true}
	for _, opt := range opts {
		opt(o)
	}

	rows, err := Read(ctx, store, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Selection{Kind: KindNotFound}, nil
		}
		return Selection{}, err
	}
	if len(rows) == 0 {
		return Selection{Kind: KindNotFound}, nil
	}

	var header Row
	data := rows
	if o.header {
		header, data = rows[0], rows[1:]
	}
	if len(data) == 0 {
		return Selection{Kind: KindNoRows}, nil
	}

	return Selection{
		Kind: KindOK,
		Row:  ToMapping(data[o.intN(len(data))], header),
	}, nil
}
