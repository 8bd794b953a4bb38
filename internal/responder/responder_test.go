// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package responder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-medcare/models"
	"github.com/stretchr/testify/assert"
)

type fakeLLM struct {
	answer string
	err    error
	delay  time.Duration
	calls  int
}

func (f *fakeLLM) Complete(ctx context.Context, message string) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.answer, f.err
}

func TestRespond_KeywordPrecedence(t *testing.T) {
	r := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    string
		source  models.ReplySource
	}{
		{"empty", "   ", EmptyReply, models.ReplySourceEmpty},
		{"crisis", "I want to kill myself", CrisisReply, models.ReplySourceCrisis},
		{"crisis uppercase", "SUICIDE thoughts", CrisisReply, models.ReplySourceCrisis},
		{"crisis beats panic", "panic and I want to die", CrisisReply, models.ReplySourceCrisis},
		{"panic", "I have a panic attack", PanicReply, models.ReplySourceKeyword},
		{"panic beats sleep", "panic keeps me from sleep", PanicReply, models.ReplySourceKeyword},
		{"sleep", "I can't sleep at night", SleepReply, models.ReplySourceKeyword},
		{"sleep beats exam", "no sleep before my exam", SleepReply, models.ReplySourceKeyword},
		{"exam", "my exam is tomorrow", ExamReply, models.ReplySourceKeyword},
		{"exam plural", "two exams this week", ExamReply, models.ReplySourceKeyword},
		{"crisis with punctuation", "i feel suicidal.", CrisisReply, models.ReplySourceCrisis},
		{"generic", "hello there", GenericReply, models.ReplySourceFallback},
		{"contest is not a test", "we won the contest", GenericReply, models.ReplySourceFallback},
		{"latest is not a test", "did you see the latest news", GenericReply, models.ReplySourceFallback},
		{"tired is not sleep", "tired of waiting in line", GenericReply, models.ReplySourceFallback},
		{"panicky is not panic", "a panicky market", GenericReply, models.ReplySourceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Respond(ctx, tt.message)
			assert.Equal(t, tt.want, got.Reply)
			assert.Equal(t, tt.source, got.Source)
		})
	}
}

func TestRespond_NeverCallsLLM(t *testing.T) {
	llm := &fakeLLM{answer: "model says hi"}
	r := New(WithLLM(llm, time.Second, 10, 10))

	got := r.Respond(context.Background(), "hello there")
	assert.Equal(t, GenericReply, got.Reply)
	assert.Zero(t, llm.calls)
}

func TestRespondWithLLM_CrisisAlwaysWins(t *testing.T) {
	llm := &fakeLLM{answer: "model says hi"}
	r := New(WithLLM(llm, time.Second, 10, 10))

	got := r.RespondWithLLM(context.Background(), "I want to kill myself")
	assert.Equal(t, CrisisReply, got.Reply)
	assert.Equal(t, models.ReplySourceCrisis, got.Source)
	assert.Zero(t, llm.calls)
}

func TestRespondWithLLM_KeywordRepliesKept(t *testing.T) {
	llm := &fakeLLM{answer: "model says hi"}
	r := New(WithLLM(llm, time.Second, 10, 10))

	got := r.RespondWithLLM(context.Background(), "exam stress")
	assert.Equal(t, ExamReply, got.Reply)
	assert.Zero(t, llm.calls)
}

func TestRespondWithLLM_ReplacesGeneric(t *testing.T) {
	llm := &fakeLLM{answer: "  model says hi  "}
	r := New(WithLLM(llm, time.Second, 10, 10))

	got := r.RespondWithLLM(context.Background(), "hello there")
	assert.Equal(t, "model says hi", got.Reply)
	assert.Equal(t, models.ReplySourceLLM, got.Source)
	assert.Equal(t, 1, llm.calls)
}

func TestRespondWithLLM_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
	}{
		{"error", &fakeLLM{err: errors.New("boom")}},
		{"empty answer", &fakeLLM{answer: "   "}},
		{"timeout", &fakeLLM{answer: "late", delay: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(WithLLM(tt.llm, 20*time.Millisecond, 10, 10))

			got := r.RespondWithLLM(context.Background(), "hello there")
			assert.Equal(t, GenericReply, got.Reply)
			assert.Equal(t, models.ReplySourceFallback, got.Source)
		})
	}
}

func TestRespondWithLLM_Throttled(t *testing.T) {
	llm := &fakeLLM{answer: "ok"}
	r := New(WithLLM(llm, time.Second, 0.001, 1))

	first := r.RespondWithLLM(context.Background(), "hello")
	second := r.RespondWithLLM(context.Background(), "hello")

	assert.Equal(t, models.ReplySourceLLM, first.Source)
	assert.Equal(t, GenericReply, second.Reply)
	assert.Equal(t, 1, llm.calls)
}

func TestRespondWithLLM_Disabled(t *testing.T) {
	r := New()
	assert.False(t, r.LLMEnabled())

	got := r.RespondWithLLM(context.Background(), "hello")
	assert.Equal(t, GenericReply, got.Reply)
}

func TestFallbackReason(t *testing.T) {
	assert.Equal(t, "throttled", fallbackReason(errThrottled))
	assert.Equal(t, "timeout", fallbackReason(context.DeadlineExceeded))
	assert.Equal(t, "empty", fallbackReason(errEmptyAnswer))
	assert.Equal(t, "error", fallbackReason(errors.New("x")))
}
