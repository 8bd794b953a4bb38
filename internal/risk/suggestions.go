package risk

import (
	"slices"

	"github.com/MKhiriev/go-medcare/models"
)

var suggestions = map[models.Label][]string{
	models.LabelLow:    {"Keep regular sleep, short daily walks, one weekly journal entry."},
	models.LabelMedium: {"Try 10 minutes breathing twice a day, reduce continuous screen time, brief walk."},
	models.LabelHigh:   {"Consider contacting a mental health professional. Start daily grounding exercises."},
}

// Suggestions returns the self-care suggestions for a label. Unknown labels
// get an empty, non-nil slice. The result is a copy and may be modified.
func Suggestions(label models.Label) []string {
	s, ok := suggestions[label]
	if !ok {
		return []string{}
	}
	return slices.Clone(s)
}
