package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> wall
type PostId = string
type ResponseId = string

// Response is a supportive reply attached to a Post.
// Owned by its parent Post; newest first.
type Response struct {
	Id        ResponseId `json:"id"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Post is a single anonymous whisper. Once accepted it is owned by the wall
// and never mutated except by prepending responses.
type Post struct {
	Id        PostId     `json:"id"`
	Text      string     `json:"text"`
	Responses []Response `json:"responses"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PostRef is the (id, text) pair handed to the clustering engine.
type PostRef struct {
	Id   PostId `json:"id"`
	Text string `json:"text"`
}

// ClusteredTheme is raw clustering output: a theme label plus the ids the
// engine assigned to it. The engine is generative and untrusted, so nothing
// guarantees the ids are complete, unique, or even known.
type ClusteredTheme struct {
	Theme   string   `json:"theme"`
	PostIds []PostId `json:"postIds"`
}

// ThemeCluster is a reconciled theme: the label plus resolved posts, in the
// order the engine gave them.
type ThemeCluster struct {
	Theme string  `json:"theme"`
	Posts []*Post `json:"posts"`
}

// ModerationVerdict is ephemeral: produced per moderation call and consumed
// immediately by the submission pipeline. Reason is populated either way.
type ModerationVerdict struct {
	IsHighRisk bool   `json:"isHighRisk"`
	Reason     string `json:"reason"`
}

// Ref returns the clustering-engine view of the post.
func (p *Post) Ref() PostRef {
	return PostRef{Id: p.Id, Text: p.Text}
}

// Clone deep-copies the post so callers outside the wall lock can hold it.
func (p *Post) Clone() *Post {
	c := *p
	c.Responses = make([]Response, len(p.Responses))
	copy(c.Responses, p.Responses)
	return &c
}
