// Package csvrow loads CSV files and picks a single row at random.
//
// Read returns every row of a file, Select picks one data row uniformly at
// random and turns it into a Mapping keyed by header name (or by synthetic
// col0, col1, ... names when the file has no header):
//
//	sel, err := csvrow.Select(ctx, store, "quotes.csv")
//	if err != nil {
//		return err // the file exists but could not be read
//	}
//	switch sel.Kind {
//	case csvrow.KindNotFound:
//		// file is missing or empty
//	case csvrow.KindNoRows:
//		// header only
//	case csvrow.KindOK:
//		fmt.Println(sel.Row["quote"])
//	}
//
// Parsing follows RFC 4180: double-quoted fields may contain commas, newlines
// and doubled quotes. Blank lines are kept as empty rows and rows may have
// any number of fields.
package csvrow
