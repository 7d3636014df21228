package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whisperlink-dev/whisperlink/internal/domain"
)

func TestDecodeVerdict(t *testing.T) {
	t.Run("flagged", func(t *testing.T) {
		verdict, err := decodeVerdict(`{"isHighRisk": true, "reason": "self-harm ideation"}`)
		require.NoError(t, err)
		assert.True(t, verdict.IsHighRisk)
		assert.Equal(t, "self-harm ideation", verdict.Reason)
	})

	t.Run("not flagged still carries reason", func(t *testing.T) {
		verdict, err := decodeVerdict(`{"isHighRisk": false, "reason": "supportive content"}`)
		require.NoError(t, err)
		assert.False(t, verdict.IsHighRisk)
		assert.Equal(t, "supportive content", verdict.Reason)
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		_, err := decodeVerdict(`not json`)
		assert.Error(t, err)
	})

	t.Run("missing reason is an error, never a silent verdict", func(t *testing.T) {
		_, err := decodeVerdict(`{"isHighRisk": false}`)
		assert.Error(t, err)
	})
}

func TestDecodeSuggestions(t *testing.T) {
	suggestions, err := decodeSuggestions(`{"suggestedResponses": ["You got this.", "I hear you."]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"You got this.", "I hear you."}, suggestions)

	_, err = decodeSuggestions(`[]`)
	assert.Error(t, err)
}

func TestDecodeThemes(t *testing.T) {
	raw := `[{"theme": "Anxiety", "postIds": ["post-1"]}, {"theme": "Joy", "postIds": ["post-2", "ghost-id"]}]`
	themes, err := decodeThemes(raw)
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "Anxiety", themes[0].Theme)
	assert.Equal(t, []string{"post-2", "ghost-id"}, themes[1].PostIds)

	_, err = decodeThemes(`{"theme": "not an array"}`)
	assert.Error(t, err)
}

func TestClusterPrompt(t *testing.T) {
	posts := []domain.PostRef{
		{Id: "post-1", Text: "feeling anxious"},
		{Id: "post-2", Text: "happy today"},
	}
	prompt := clusterPrompt(posts)

	assert.Contains(t, prompt, "Post ID: post-1")
	assert.Contains(t, prompt, "Text: feeling anxious")
	assert.Contains(t, prompt, "Post ID: post-2")
	assert.Contains(t, prompt, `"postIds" field`)
}
