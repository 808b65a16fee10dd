// File: services/conversation/completion.go
package conversation

import (
	"context"
	"fmt"
	"strings"

	"tripmate/config"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// CompletionModel produces a single trimmed completion for a prompt.
type CompletionModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiCompletionModel generates replies with fixed sampling
// parameters tuned for short, single-turn concierge answers.
type GeminiCompletionModel struct {
	model *genai.GenerativeModel
}

func NewGeminiCompletionModel(apiKey, modelName string) *GeminiCompletionModel {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(150)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.StopSequences = []string{"\n", "Human:", "AI:"}
	return &GeminiCompletionModel{model: model}
}

// NewCompletionModelFromConfig builds the model from the loaded app
// configuration.
func NewCompletionModelFromConfig() *GeminiCompletionModel {
	return NewGeminiCompletionModel(config.AppConfig.GeminiAPIKey, config.AppConfig.ChatModel)
}

func (g *GeminiCompletionModel) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini generate error: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
