package risk

import "github.com/MKhiriev/go-medcare/models"

// Fuse combines the questionnaire label with an optional behavioral label.
//
// High from either side wins. Otherwise the questionnaire label is used
// when present, then the behavioral label. With neither, the result is
// [models.LabelUnknown]. A behavioral label outside the persisted set is
// treated as absent; a nil behavioral pointer means no prediction was made.
func Fuse(questionnaire models.Label, behavioral *models.Label) models.Label {
	q := normalize(&questionnaire)
	b := normalize(behavioral)

	if q == models.LabelHigh || b == models.LabelHigh {
		return models.LabelHigh
	}
	if q != "" {
		return q
	}
	if b != "" {
		return b
	}
	return models.LabelUnknown
}

func normalize(l *models.Label) models.Label {
	if l == nil {
		return ""
	}
	if l.IsValid() {
		return *l
	}
	if parsed, ok := models.ParseLabel(string(*l)); ok {
		return parsed
	}
	return ""
}
