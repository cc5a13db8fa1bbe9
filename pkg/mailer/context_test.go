package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildContext_NilMapReturnsData(t *testing.T) {
	t.Parallel()

	data := map[string]string{"a": "1", "b": "2"}
	ctx := BuildContext(data, nil)

	require.Equal(t, Context(data), ctx)

	// Same underlying map, not a copy.
	data["c"] = "3"
	require.Equal(t, "3", ctx["c"])
}

func TestBuildContext_MissingSourceColumns(t *testing.T) {
	t.Parallel()

	data := map[string]string{"user_name": "John", "email": "j@x.com"}
	vars := VariableMap{"name": "user_name", "contact": "email", "city": "city"}

	require.Equal(t, Context{
		"name":    "John",
		"contact": "j@x.com",
		"city":    "",
	}, BuildContext(data, vars))
}

// An empty (non-nil) map is not the same as no map: it yields an empty
// context, and rendering any placeholder against it fails.
func TestBuildContext_EmptyVariableMap(t *testing.T) {
	t.Parallel()

	ctx := BuildContext(map[string]string{"a": "1", "b": "2"}, VariableMap{})
	require.NotNil(t, ctx)
	require.Empty(t, ctx)

	_, err := Substitute("<p>{a}</p>", ctx)
	require.ErrorIs(t, err, ErrMissingPlaceholder)
}

func TestBuildContext_EmptyData(t *testing.T) {
	t.Parallel()

	vars := VariableMap{"name": "user_name", "email": "email"}
	require.Equal(t, Context{"name": "", "email": ""}, BuildContext(map[string]string{}, vars))
	require.Equal(t, Context{"name": "", "email": ""}, BuildContext(nil, vars))
}

func TestBuildContext_SameColumnTwice(t *testing.T) {
	t.Parallel()

	vars := VariableMap{"title": "quote", "preview": "quote"}
	require.Equal(t, Context{"title": "Q", "preview": "Q"}, BuildContext(map[string]string{"quote": "Q"}, vars))
}
