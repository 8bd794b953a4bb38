package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/utils"
	"github.com/MKhiriev/go-medcare/models"
)

// chat answers from the keyword rules only.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	h.reply(w, r, h.services.ChatService.Chat)
}

// llmChat may use the language model for messages no rule matches.
func (h *Handler) llmChat(w http.ResponseWriter, r *http.Request) {
	h.reply(w, r, h.services.ChatService.LLMChat)
}

func (h *Handler) reply(w http.ResponseWriter, r *http.Request, respond func(context.Context, models.ChatRequest) models.ChatReply) {
	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeInvalidJSON(w, r, err)
		return
	}

	utils.WriteJSON(w, respond(r.Context(), req), http.StatusOK)
}
