package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"google.golang.org/genai"
)

const clusterPromptHeader = `You are an AI that clusters anonymous posts into relatable themes.

Given the following posts, group them into themes that reflect the common feelings, experiences, or topics they share. Each post has an id that must be preserved in the output.

Posts:
`

const clusterPromptFooter = `---

Return a JSON array of themes. Each theme should have a "theme" field (string) describing the theme, and a "postIds" field (array of strings) containing the ids of the posts that belong to that theme.
`

var themesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"theme": {Type: genai.TypeString, Description: "The theme or category that the posts belong to."},
			"postIds": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Ids of the posts belonging to this theme.",
			},
		},
		Required: []string{"theme", "postIds"},
	},
}

// Cluster partitions posts into named themes. The output is generative and
// untrusted: themes may omit ids, invent ids or assign one id twice. Callers
// must reconcile against their own data and must not call with zero posts.
func (c *Client) Cluster(ctx context.Context, posts []domain.PostRef) ([]domain.ClusteredTheme, error) {
	if len(posts) == 0 {
		return nil, fmt.Errorf("cluster called with no posts")
	}

	raw, err := c.generateJSON(ctx, clusterPrompt(posts), themesSchema)
	if err != nil {
		return nil, fmt.Errorf("clustering call failed: %w", err)
	}
	return decodeThemes(raw)
}

func clusterPrompt(posts []domain.PostRef) string {
	var b strings.Builder
	b.WriteString(clusterPromptHeader)
	for _, p := range posts {
		b.WriteString("---\n")
		fmt.Fprintf(&b, "Post ID: %s\n", p.Id)
		fmt.Fprintf(&b, "Text: %s\n", p.Text)
	}
	b.WriteString(clusterPromptFooter)
	return b.String()
}

func decodeThemes(raw string) ([]domain.ClusteredTheme, error) {
	var themes []domain.ClusteredTheme
	if err := json.Unmarshal([]byte(raw), &themes); err != nil {
		return nil, fmt.Errorf("malformed clustering output: %w", err)
	}
	return themes, nil
}
