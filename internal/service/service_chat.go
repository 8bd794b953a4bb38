package service

import (
	"context"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/internal/responder"
	"github.com/MKhiriev/go-medcare/models"
)

type chatService struct {
	responder *responder.Responder
	logger    *logger.Logger
}

func NewChatService(r *responder.Responder, logger *logger.Logger) ChatService {
	return &chatService{
		responder: r,
		logger:    logger,
	}
}

func (s *chatService) LLMEnabled() bool {
	return s.responder.LLMEnabled()
}

func (s *chatService) Chat(ctx context.Context, req models.ChatRequest) models.ChatReply {
	reply := s.responder.Respond(ctx, req.Content())
	logger.FromContext(ctx).Debug().Str("source", string(reply.Source)).Msg("chat reply")
	return reply
}

func (s *chatService) LLMChat(ctx context.Context, req models.ChatRequest) models.ChatReply {
	reply := s.responder.RespondWithLLM(ctx, req.Content())
	logger.FromContext(ctx).Debug().Str("source", string(reply.Source)).Msg("llm chat reply")
	return reply
}
