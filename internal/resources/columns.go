package resources

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lunchdesk/lunchdesk/pkg/query"
)

// Column is a rendered field of a list row
type Column struct {
	Title string
	Field string
	Width int
}

// DateLayout is how timestamps are rendered in list rows
const DateLayout = "Jan 2, 2006"

// Format renders the column's field of rec as text
func (c Column) Format(rec query.Record) string {
	return FormatValue(rec[c.Field])
}

// Row renders every column of rec
func (r *Resource) Row(rec query.Record) []string {
	row := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		row[i] = c.Format(rec)
	}
	return row
}

// FormatValue renders a decoded JSON value for display
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts.UTC().Format(DateLayout)
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(t)
	}
}
