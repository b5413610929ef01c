package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"portfolia/internal/domain/entity"
)

const assistantPrompt = `You are the support assistant for a personal portfolio website.
A visitor has been waiting for a human reply in the support chat.
Answer their last message helpfully and briefly (2-4 sentences).
If the question needs the site owner personally (pricing, availability, contracts),
say that the owner will follow up and offer to take details.
Reply with plain text only.`

// GeminiClient generates assistant replies for conversations that have waited
// too long for a human response.
type GeminiClient struct {
	model string
}

func NewGeminiClient(model string) *GeminiClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{model: model}
}

// Reply builds the conversation transcript and asks Gemini for an answer.
func (c *GeminiClient) Reply(ctx context.Context, messages []*entity.ChatMessage) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	var transcript strings.Builder
	for _, m := range messages {
		role := "Visitor"
		switch m.MessageType {
		case entity.MessageTypeAdmin:
			role = "Owner"
		case entity.MessageTypeAI:
			role = "Assistant"
		}
		fmt.Fprintf(&transcript, "%s: %s\n", role, m.Content)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(assistantPrompt),
		genai.NewPartFromText("Conversation so far:\n" + transcript.String()),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	res, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty reply")
	}
	return text, nil
}
