// Package risk turns questionnaire scores and behavioral predictions into
// severity labels.
//
// [Classifier] maps a score onto the Low/Medium/High bands, [Fuse] combines
// the questionnaire label with an optional behavioral label, and
// [Suggestions] returns the self-care advice attached to a final label.
// Everything in this package is pure and safe for concurrent use.
package risk
