package models

import (
	"encoding/json"
	"strings"
)

// Identity carries the caller-supplied identifier. Older clients send it as
// user_id or username, newer ones as identifier; the first non-empty value
// in that order of preference wins.
type Identity struct {
	Identifier string `json:"identifier,omitempty"`
	UserID     string `json:"user_id,omitempty"`
	Username   string `json:"username,omitempty"`
}

// Raw returns the trimmed identifier or an empty string when none was sent.
func (i Identity) Raw() string {
	for _, v := range []string{i.Identifier, i.UserID, i.Username} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Identity
	Name     string `json:"name,omitempty" validate:"omitempty,max=128"`
	Email    string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Identity
	Password string `json:"password,omitempty" validate:"omitempty,max=72"`
}

// ConsentRequest is the body of POST /consent. A missing consent flag means
// consent was given.
type ConsentRequest struct {
	Identity
	Consent   *bool     `json:"consent,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
	TS        Timestamp `json:"ts"`
}

// AssessmentRequest is the body of POST /api/assessment.
type AssessmentRequest struct {
	Identity
	Score     Score           `json:"score" validate:"gte=0"`
	Label     Label           `json:"label,omitempty" validate:"omitempty,label"`
	Answers   json.RawMessage `json:"answers,omitempty"`
	Timestamp Timestamp       `json:"timestamp"`
	TS        Timestamp       `json:"ts"`
}

// When returns the first non-zero of the two accepted timestamp fields.
func (r AssessmentRequest) When() Timestamp {
	if !r.Timestamp.IsZero() {
		return r.Timestamp
	}
	return r.TS
}

// When returns the first non-zero of the two accepted timestamp fields.
func (r ConsentRequest) When() Timestamp {
	if !r.Timestamp.IsZero() {
		return r.Timestamp
	}
	return r.TS
}

// StatusResponse is the generic acknowledgement body.
type StatusResponse struct {
	Status     string `json:"status"`
	Identifier string `json:"identifier,omitempty"`
	Label      Label  `json:"label,omitempty"`
	Redirect   string `json:"redirect,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	LLMEnabled  bool   `json:"llm_enabled"`
	Version     string `json:"version,omitempty"`
}

// ChatRequest is the body of POST /chat and POST /llm_chat.
// Older clients send the message as text.
type ChatRequest struct {
	Message string `json:"message"`
	Text    string `json:"text,omitempty"`
}

// Content returns the message, falling back to the legacy text field.
func (r ChatRequest) Content() string {
	if strings.TrimSpace(r.Message) != "" {
		return r.Message
	}
	return r.Text
}

// ReplySource tells which branch of the responder produced a reply.
type ReplySource string

const (
	ReplySourceEmpty    ReplySource = "empty"
	ReplySourceCrisis   ReplySource = "crisis"
	ReplySourceKeyword  ReplySource = "keyword"
	ReplySourceFallback ReplySource = "fallback"
	ReplySourceLLM      ReplySource = "llm"
)

// ChatReply is the body returned by the chat endpoints.
type ChatReply struct {
	Reply  string      `json:"reply"`
	Source ReplySource `json:"source"`
}
