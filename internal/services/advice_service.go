package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const adviceModel = "gemini-2.5-flash"

// Fallback texts returned instead of errors; callers only ever see a string.
const (
	adviceMissingKey = "AI care tips are currently unavailable (Missing API Key)."
	adviceFailed     = "Could not retrieve AI tips at this time."
	adviceEmpty      = "No tips available at the moment."
)

// AdviceService answers per-card care questions through Gemini. Any failure
// at this boundary degrades to a fixed human-readable string; nothing
// propagates into cart/catalog/order state.
type AdviceService struct {
	client *genai.Client
}

// NewAdviceService builds the lookup. With no API key (or a client that
// cannot be constructed) the service still works, answering with the
// unavailable fallback.
func NewAdviceService(ctx context.Context, apiKey string) *AdviceService {
	if apiKey == "" {
		return &AdviceService{}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return &AdviceService{}
	}
	return &AdviceService{client: client}
}

// Configured reports whether a provider is wired up.
func (s *AdviceService) Configured() bool { return s.client != nil }

// CareTips returns a short expert tip for keeping the named fish. It never
// returns an error.
func (s *AdviceService) CareTips(ctx context.Context, fishName string) string {
	if s.client == nil {
		return adviceMissingKey
	}
	prompt := fmt.Sprintf(
		"Provide a concise (max 3 sentences) and helpful care tip for keeping a %s in a home aquarium. "+
			"Mention water temperature or diet if critical. Tone: Professional but friendly expert.",
		fishName)
	resp, err := s.client.Models.GenerateContent(ctx, adviceModel, genai.Text(prompt), nil)
	if err != nil {
		return adviceFailed
	}
	if text := resp.Text(); text != "" {
		return text
	}
	return adviceEmpty
}
