package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const suggestPromptTemplate = `You are an AI assistant designed to suggest empathetic responses to user posts on a mental wellness platform.

The user has shared the following post:
"%s"

Generate a list of 3-4 short, supportive, and empathetic peer responses that are directly relevant to the post's content. The responses should sound natural and be something a peer would say.

Return the responses in the suggestedResponses field.
`

var suggestionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestedResponses": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of empathetic and supportive responses.",
		},
	},
	Required: []string{"suggestedResponses"},
}

// Suggest returns candidate supportive replies for a post. Errors propagate;
// treating them as "no suggestions" is the caller's decision.
func (c *Client) Suggest(ctx context.Context, postText string) ([]string, error) {
	raw, err := c.generateJSON(ctx, fmt.Sprintf(suggestPromptTemplate, postText), suggestionsSchema)
	if err != nil {
		return nil, fmt.Errorf("suggestion call failed: %w", err)
	}
	return decodeSuggestions(raw)
}

func decodeSuggestions(raw string) ([]string, error) {
	var out struct {
		SuggestedResponses []string `json:"suggestedResponses"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("malformed suggestion output: %w", err)
	}
	return out.SuggestedResponses, nil
}
