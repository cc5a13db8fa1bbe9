package csvrow

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dmitrymomot/luckymail/pkg/storage"
)

// Read loads all rows of the CSV file at path.
// A missing file returns ErrNotFound; an empty file returns an empty slice.
func Read(ctx context.Context, store storage.Storage, path string) ([]Row, error) {
	rc, err := store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, errors.Join(ErrReadFailed, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(transform.NewReader(rc, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	return Parse(data)
}

// Parse splits CSV content into rows.
// encoding/csv skips blank lines, so their positions are recovered from the
// reader's line numbers and re-inserted as empty rows.
// Quoting is strict: a stray quote fails with ErrReadFailed.
func Parse(data []byte) ([]Row, error) {
	rows := make([]Row, 0)
	if len(data) == 0 {
		return rows, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	next := 1
	end := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}

		line, _ := r.FieldPos(0)
		for ; next < line; next++ {
			rows = append(rows, Row{})
		}
		rows = append(rows, Row(record))
		end = int(r.InputOffset())
		next = 1 + bytes.Count(data[:end], []byte{'\n'})
	}

	// The final Read consumes trailing blank lines before reporting EOF,
	// so they are counted from the end of the last record.
	trailing := bytes.Count(data[end:], []byte{'\n'})
	for range trailing {
		rows = append(rows, Row{})
	}

	return rows, nil
}
