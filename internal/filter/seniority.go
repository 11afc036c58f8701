package filter

// seniorityIDs is the fixed display-label to vendor-numeric-id table. The
// vendor only understands the numeric ids; labels are what the UI shows.
// Labels missing from this table pass through unchanged so that new vendor
// levels keep working before we ship an updated table.
var seniorityIDs = map[string]int{
	"Intern":   1,
	"Entry":    2,
	"Senior":   3,
	"Manager":  4,
	"Director": 5,
	"VP":       6,
	"CXO":      7,
	"Partner":  8,
	"Owner":    9,
	"Founder":  10,
}

// TranslateSeniorities maps display labels to vendor ids, passing unknown
// labels through as-is. Never errors.
func TranslateSeniorities(labels []string) []any {
	if len(labels) == 0 {
		return nil
	}
	out := make([]any, 0, len(labels))
	for _, label := range labels {
		if id, ok := seniorityIDs[label]; ok {
			out = append(out, id)
			continue
		}
		out = append(out, label)
	}
	return out
}
