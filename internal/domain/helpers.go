package domain

import (
	"fmt"
	"time"
)

// for debug
func (p *Post) String() string {
	s := fmt.Sprintf("[id:%s, text:%s, created:%s, responses:[", p.Id, p.Text, p.CreatedAt.Format(time.StampMilli))
	for i, r := range p.Responses {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("[id:%s, text:%s]", r.Id, r.Text)
	}
	return s + "]]"
}

func (c *ThemeCluster) String() string {
	s := fmt.Sprintf("[theme:%s, post_count:%d, posts:[", c.Theme, len(c.Posts))
	for i, p := range c.Posts {
		if i > 0 {
			s += ", "
		}
		s += p.Id
	}
	return s + "]]"
}
