package layout

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// TendonsCSV renders the tendon collection as CSV text with columns
// id,x,y,diameter,type in collection order, header row included.
func TendonsCSV(tendons []Tendon) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	w.Write([]string{"id", "x", "y", "diameter", "type"})
	for _, t := range tendons {
		w.Write([]string{
			strconv.Itoa(t.ID),
			strconv.FormatFloat(t.X, 'g', -1, 64),
			strconv.FormatFloat(t.Y, 'g', -1, 64),
			strconv.FormatFloat(t.Diameter, 'g', -1, 64),
			t.Placement,
		})
	}
	w.Flush()

	return sb.String()
}
