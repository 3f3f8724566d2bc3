package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	chat        *genai.Chat
}

// Start creates the Gemini chat for this expert.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

// NewAdvisor creates the financial advisor expert. The report argument is the
// markdown of the estimate or sweep the user just computed; it is injected in
// the system instruction so the advisor discusses the user's actual numbers
// instead of generic advice.
func NewAdvisor(report string) *Expert {
	instruction := `
	You are a personal-finance advisor. The user computed an investment
	estimate and wants to discuss it with you: what the numbers mean, how
	sensitive they are to the assumptions, and what alternatives look like.

	You can use Google Search whenever you need current market figures,
	mortgage rates, rent levels or tax rules to ground your answers.

	Be candid about the model's limits: it ignores taxes and inflation, and
	the assumptions drive everything. Never present a projection as a
	guarantee.

	Below is the report the user computed, in markdown:

` + report

	return &Expert{
		Name: "Advisor",
		Description: `A personal-finance advisor that discusses the
		computed investment reports with the user.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}
