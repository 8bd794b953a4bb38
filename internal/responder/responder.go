// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package responder

//go:generate mockgen -source=responder.go -destination=../mock/llm_mock.go -package=mock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/metrics"
	"github.com/MKhiriev/go-medcare/models"
	"golang.org/x/time/rate"
)

// LLM completes a single user message.
type LLM interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Responder answers chat messages. The zero value is not usable; build one
// with New.
type Responder struct {
	llm     LLM
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Responder.
type Option func(*Responder)

// WithLLM enables the language-model fallback. Calls are bounded by timeout
// and by a token bucket of rps requests per second with the given burst.
func WithLLM(llm LLM, timeout time.Duration, rps float64, burst int) Option {
	return func(r *Responder) {
		r.llm = llm
		r.timeout = timeout
		r.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func New(opts ...Option) *Responder {
	r := &Responder{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LLMEnabled reports whether a language model is configured.
func (r *Responder) LLMEnabled() bool {
	return r.llm != nil
}

// Respond returns the deterministic reply for message.
func (r *Responder) Respond(_ context.Context, message string) models.ChatReply {
	reply, _ := match(message)
	return reply
}

// RespondWithLLM behaves like Respond but lets the language model answer
// messages that would otherwise get the generic reply.
func (r *Responder) RespondWithLLM(ctx context.Context, message string) models.ChatReply {
	reply, generic := match(message)
	if !generic || r.llm == nil {
		return reply
	}

	answer, err := r.complete(ctx, message)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("language model failed, using canned reply")
		metrics.LLMFallbacks.WithLabelValues(fallbackReason(err)).Inc()
		return reply
	}

	return models.ChatReply{Reply: answer, Source: models.ReplySourceLLM}
}

func (r *Responder) complete(ctx context.Context, message string) (string, error) {
	if !r.limiter.Allow() {
		return "", fmt.Errorf("%w: %w", ErrExternalService, errThrottled)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	answer, err := r.llm.Complete(ctx, message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("%w: %w", ErrExternalService, errEmptyAnswer)
	}
	return answer, nil
}

var (
	errThrottled   = errors.New("throttled")
	errEmptyAnswer = errors.New("empty answer")
)

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, errThrottled):
		return "throttled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, errEmptyAnswer):
		return "empty"
	default:
		return "error"
	}
}

// match runs the keyword scan. The boolean is true when the generic
// fallback was chosen.
func match(message string) (models.ChatReply, bool) {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return models.ChatReply{Reply: EmptyReply, Source: models.ReplySourceEmpty}, false
	}

	if crisisRule.matches(text) {
		return models.ChatReply{Reply: crisisRule.reply, Source: crisisRule.source}, false
	}

	for _, rl := range rules {
		if rl.matches(text) {
			return models.ChatReply{Reply: rl.reply, Source: rl.source}, false
		}
	}

	return models.ChatReply{Reply: GenericReply, Source: models.ReplySourceFallback}, true
}
