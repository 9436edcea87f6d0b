package http

import (
	"conversational-support-assistant/internal/assistant"
)

// --- Request DTOs ---

type chatReq struct {
	// Query may be empty. An empty query still runs a turn and returns
	// the fixed apology, it is not a request error.
	Query     string `json:"query" binding:"max=4000"`
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
}

func (r chatReq) toInput() assistant.ProcessQueryInput {
	return assistant.ProcessQueryInput{
		SessionKey: r.SessionID,
		Query:      r.Query,
	}
}

// --- Response DTOs ---

type chatResp struct {
	SessionID    string `json:"session_id"`
	Category     string `json:"category"`
	Response     string `json:"response"`
	MessageCount int    `json:"message_count"`
}

func newChatResp(out assistant.ProcessQueryOutput) chatResp {
	return chatResp{
		SessionID:    out.SessionKey,
		Category:     string(out.Category),
		Response:     out.Response,
		MessageCount: out.MessageCount,
	}
}
