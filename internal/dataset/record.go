package dataset

import "errors"

// ErrDataFormat reports a malformed input table: missing header, unknown
// columns, inconsistent field counts, or an out-of-range label.
var ErrDataFormat = errors.New("malformed dataset")

// Record is one comment row. Field values keep their original string form
// except Label, which is validated at load time. Records are never mutated
// after loading.
type Record struct {
	ID        string
	Author    string
	Timestamp string
	Content   string
	Label     int
}
