package service

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"github.com/whisperlink-dev/whisperlink/internal/errors"
	"github.com/whisperlink-dev/whisperlink/internal/logger"
)

var (
	clusteringRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clustering_runs_total",
		Help: "Total number of clustering calls started",
	})
	clusteringFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clustering_failures_total",
		Help: "Total number of clustering calls that failed and fell back to a flat list",
	})
)

type ClusterEngine interface {
	Cluster(ctx context.Context, posts []domain.PostRef) ([]domain.ClusteredTheme, error)
}

// Wall owns the canonical post collection and the derived theme clusters.
// All mutations go through its methods under one mutex; the clustering call
// itself runs outside the lock on a snapshot of (id, text) pairs, and its
// result is merged against whatever posts exist at merge time.
//
// At most one clustering call is in flight. A post accepted while one is
// running sets a pending flag; when the in-flight call completes, exactly one
// follow-up run starts from the then-latest snapshot.
type Wall struct {
	engine  ClusterEngine
	timeout time.Duration

	mu         sync.Mutex
	posts      []*domain.Post
	clusters   []domain.ThemeCluster
	clustering bool
	pending    bool
}

// WallView is a deep copy of the wall state, safe to render outside the lock.
type WallView struct {
	Posts      []*domain.Post        `json:"posts"`
	Clusters   []domain.ThemeCluster `json:"clusters"`
	Clustering bool                  `json:"clustering"`
}

func NewWall(engine ClusterEngine, timeout time.Duration, seed []*domain.Post) *Wall {
	w := &Wall{engine: engine, timeout: timeout, posts: seed}
	if len(seed) > 0 {
		w.clusters = FallbackClusters(seed)
	}
	return w
}

// AddPost inserts an accepted post at the front of the canonical collection
// and requests a re-cluster.
func (w *Wall) AddPost(post *domain.Post) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.posts = append([]*domain.Post{post}, w.posts...)
	w.requestReclusterLocked()
}

// AddResponse prepends a response to the matching post. Clusters reference
// the same Post values as the canonical collection, so the insertion is
// visible in every cluster view at once. Response additions never trigger a
// re-cluster: they don't change thematic grouping.
func (w *Wall) AddResponse(postId domain.PostId, response *domain.Response) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range w.posts {
		if p.Id == postId {
			p.Responses = append([]domain.Response{*response}, p.Responses...)
			return nil
		}
	}
	return &errors.ErrorWithStatusCode{Message: "Whisper not found", StatusCode: 404}
}

// PostText looks up the text of a canonical post, for suggestion requests.
func (w *Wall) PostText(postId domain.PostId) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range w.posts {
		if p.Id == postId {
			return p.Text, nil
		}
	}
	return "", &errors.ErrorWithStatusCode{Message: "Whisper not found", StatusCode: 404}
}

// Recluster manually triggers a clustering run. Returns false when nothing
// starts: a run is already in flight (re-entrant triggers are ignored rather
// than queued) or there are no posts to cluster.
func (w *Wall) Recluster() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.clustering || len(w.posts) == 0 {
		return false
	}
	w.requestReclusterLocked()
	return true
}

// View returns a deep copy of posts and clusters. Cluster entries point at
// the same copied posts as the canonical list, preserving identity.
func (w *Wall) View() WallView {
	w.mu.Lock()
	defer w.mu.Unlock()

	copies := make(map[domain.PostId]*domain.Post, len(w.posts))
	posts := make([]*domain.Post, len(w.posts))
	for i, p := range w.posts {
		c := p.Clone()
		copies[p.Id] = c
		posts[i] = c
	}

	clusters := make([]domain.ThemeCluster, len(w.clusters))
	for i, cl := range w.clusters {
		cp := make([]*domain.Post, 0, len(cl.Posts))
		for _, p := range cl.Posts {
			if c, ok := copies[p.Id]; ok {
				cp = append(cp, c)
			}
		}
		clusters[i] = domain.ThemeCluster{Theme: cl.Theme, Posts: cp}
	}

	return WallView{Posts: posts, Clusters: clusters, Clustering: w.clustering}
}

// requestReclusterLocked starts a clustering run or queues at most one.
// Caller must hold w.mu.
func (w *Wall) requestReclusterLocked() {
	if len(w.posts) == 0 {
		// never call the engine with an empty set
		w.clusters = nil
		return
	}
	if w.clustering {
		w.pending = true
		return
	}

	w.clustering = true
	snapshot := make([]domain.PostRef, len(w.posts))
	for i, p := range w.posts {
		snapshot[i] = p.Ref()
	}
	go w.runCluster(snapshot)
}

func (w *Wall) runCluster(snapshot []domain.PostRef) {
	clusteringRuns.Inc()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	themes, err := w.engine.Cluster(ctx, snapshot)
	w.finishCluster(themes, err)
}

func (w *Wall) finishCluster(themes []domain.ClusteredTheme, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		logger.Log.Warn("clustering failed, falling back to flat list", "error", err)
		clusteringFailures.Inc()
		w.clusters = FallbackClusters(w.posts)
	} else {
		// resolve against the posts that exist now, not the snapshot
		w.clusters = MergeClusters(themes, w.posts)
	}

	w.clustering = false
	if w.pending {
		w.pending = false
		w.requestReclusterLocked()
	}
}
