// Package responder produces supportive chat replies.
//
// Replies come from a deterministic keyword scan. A crisis phrase always
// yields the safety message and short-circuits everything else. Only the
// generic fallback reply may be replaced by an optional language model, and
// any failure of that model is recovered with the canned reply.
package responder
