package mailer

// VariableMap renames row columns for a template: placeholder name -> source column.
type VariableMap map[string]string

// Context holds the values a template is rendered with.
type Context map[string]string

// BuildContext derives the render context from a row.
// A nil vars returns data itself (no copy; treat it as read-only).
// Otherwise the result has exactly the keys of vars, each taking the value of
// its source column, or "" when the column is absent.
func BuildContext(data map[string]string, vars VariableMap) Context {
	if vars == nil {
		return Context(data)
	}

	ctx := make(Context, len(vars))
	for name, column := range vars {
		ctx[name] = data[column]
	}
	return ctx
}
