package agent

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Reply is the outcome of a completion call as shown to the user: either
// generated text or a human-readable error message, never both and never an
// unresolved fault.
type Reply struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

func (r Reply) Failed() bool { return r.Error != "" }

// Gateway wraps the completion client and converts every failure into a
// displayable message. Callers always get something renderable back; the
// generated text itself is untrusted content.
type Gateway struct {
	client CompletionClient
	logger zerolog.Logger
}

func NewGateway(client CompletionClient, logger zerolog.Logger) *Gateway {
	return &Gateway{client: client, logger: logger}
}

func (g *Gateway) Generate(ctx context.Context, prompt string) Reply {
	text, err := g.client.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			g.logger.Warn().Msg("completion requested but no API key is configured")
			return Reply{Error: "AI features are unavailable: GROQ_API_KEY is not configured"}
		}
		g.logger.Error().Err(err).Msg("completion call failed")
		return Reply{Error: "Error getting AI response: " + err.Error()}
	}
	return Reply{Text: text}
}
