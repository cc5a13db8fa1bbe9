package csvrow

import "strconv"

// Row is one CSV record as an ordered list of fields.
type Row []string

// Mapping maps column names to the values of one row.
type Mapping map[string]string

// ColumnName returns the synthetic column name used when a file has no header.
func ColumnName(i int) string {
	return "col" + strconv.Itoa(i)
}

// ToMapping converts a row into a Mapping.
// With a header the result has exactly one key per header column: missing
// trailing fields become "" and extra fields are dropped. A nil header keys
// the row's own fields as col0..colN-1.
func ToMapping(row, header Row) Mapping {
	if header == nil {
		m := make(Mapping, len(row))
		for i, v := range row {
			m[ColumnName(i)] = v
		}
		return m
	}

	m := make(Mapping, len(header))
	for i, name := range header {
		if i < len(row) {
			m[name] = row[i]
		} else {
			m[name] = ""
		}
	}
	return m
}
