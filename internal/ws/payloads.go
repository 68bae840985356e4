package ws

import "github.com/mazenLavey/rock-paper-scissors-game/internal/domain"

type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// RoundPayload is one archived round, checked again before it is sent
type RoundPayload struct {
	Round    *domain.Round `json:"round"`
	Verified bool          `json:"verified"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
