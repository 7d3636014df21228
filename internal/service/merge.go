package service

import (
	"github.com/whisperlink-dev/whisperlink/internal/domain"
)

// FallbackTheme is the single catch-all cluster label used when clustering fails.
const FallbackTheme = "Recent Whispers"

// MergeClusters reconciles raw clustering output with the canonical post
// collection. For each theme, in order, ids are resolved against posts; ids
// the engine invented or that no longer exist are dropped silently. Themes
// left with zero posts are still emitted: the engine's grouping structure is
// authoritative even when membership was partially invalid.
func MergeClusters(output []domain.ClusteredTheme, posts []*domain.Post) []domain.ThemeCluster {
	byId := make(map[domain.PostId]*domain.Post, len(posts))
	for _, p := range posts {
		byId[p.Id] = p
	}

	clusters := make([]domain.ThemeCluster, 0, len(output))
	for _, theme := range output {
		resolved := make([]*domain.Post, 0, len(theme.PostIds))
		for _, id := range theme.PostIds {
			if p, ok := byId[id]; ok {
				resolved = append(resolved, p)
			}
		}
		clusters = append(clusters, domain.ThemeCluster{Theme: theme.Theme, Posts: resolved})
	}
	return clusters
}

// FallbackClusters wraps every canonical post, in canonical order, into the
// single fallback theme.
func FallbackClusters(posts []*domain.Post) []domain.ThemeCluster {
	all := make([]*domain.Post, len(posts))
	copy(all, posts)
	return []domain.ThemeCluster{{Theme: FallbackTheme, Posts: all}}
}
