package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"google.golang.org/genai"
)

const moderatePromptTemplate = `You are an AI moderator responsible for identifying high-risk content in user-generated text.

Review the following text and determine if it contains any high-risk elements such as:
- Suicidal ideation or self-harm
- Violence or threats of violence
- Cyberbullying or harassment
- Hate speech or discrimination
- Explicit or inappropriate content

Based on your analysis, set the 'isHighRisk' output field to true if the content is high-risk, and provide a detailed explanation in the 'reason' field.
If the content is not high-risk, set 'isHighRisk' to false and provide a reason.

Text: %s
`

var verdictSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"isHighRisk": {Type: genai.TypeBoolean, Description: "Whether the content is considered high-risk."},
		"reason":     {Type: genai.TypeString, Description: "The reason why the content is flagged as high-risk."},
	},
	Required: []string{"isHighRisk", "reason"},
}

// Moderate classifies text as high-risk or not. It fails loudly: a call or
// parse failure is returned as an error, never mapped to either verdict.
func (c *Client) Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error) {
	raw, err := c.generateJSON(ctx, fmt.Sprintf(moderatePromptTemplate, text), verdictSchema)
	if err != nil {
		return domain.ModerationVerdict{}, fmt.Errorf("moderation call failed: %w", err)
	}
	return decodeVerdict(raw)
}

func decodeVerdict(raw string) (domain.ModerationVerdict, error) {
	var verdict domain.ModerationVerdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return domain.ModerationVerdict{}, fmt.Errorf("malformed moderation output: %w", err)
	}
	if verdict.Reason == "" {
		return domain.ModerationVerdict{}, fmt.Errorf("malformed moderation output: missing reason")
	}
	return verdict, nil
}
