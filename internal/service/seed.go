package service

import (
	"math/rand"
	"time"

	"github.com/whisperlink-dev/whisperlink/internal/domain"
)

// SeedPosts returns the demo whispers used when the wall starts with
// seed_demo_data enabled, shuffled so the initial wall differs per run.
func SeedPosts() []*domain.Post {
	now := time.Now().UTC()

	posts := []*domain.Post{
		{
			Id:   "1",
			Text: "I'm feeling really overwhelmed with school lately. It feels like no matter how much I study, it's never enough.",
			Responses: []domain.Response{
				{Id: "r1", Text: "I hear you. School pressure can be intense. Remember to take breaks!", CreatedAt: now.Add(-5 * time.Minute)},
			},
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			Id:        "2",
			Text:      "I had a falling out with my best friend and I don't know how to fix it. Everything feels empty without them.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			Id:   "3",
			Text: "Sometimes I feel like nobody really gets me. I put on a happy face but inside I feel so alone.",
			Responses: []domain.Response{
				{Id: "r2", Text: "It takes courage to share that. You are not alone in feeling this way.", CreatedAt: now.Add(-1 * time.Hour)},
				{Id: "r3", Text: "I understand that feeling. Thanks for being brave enough to say it.", CreatedAt: now.Add(-45 * time.Minute)},
			},
			CreatedAt: now.Add(-5 * time.Hour),
		},
		{
			Id:        "4",
			Text:      "I'm worried about the future. Everyone seems to have their life figured out, and I'm just... lost.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-8 * time.Hour),
		},
		{
			Id:        "5",
			Text:      "It's hard to balance my parents' expectations with what I actually want to do with my life.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			Id:   "6",
			Text: "Just passed a huge exam I was dreading! Feeling so relieved and proud of myself for pulling through.",
			Responses: []domain.Response{
				{Id: "r4", Text: "That is awesome! Congratulations!", CreatedAt: now.Add(-10 * time.Minute)},
			},
			CreatedAt: now.Add(-28 * time.Hour),
		},
		{
			Id:        "7",
			Text:      "I'm starting to feel better after a rough couple of weeks. It's a slow process, but I'm getting there.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-36 * time.Hour),
		},
		{
			Id:   "8",
			Text: "Feeling anxious about a presentation at work tomorrow. Any tips for calming nerves?",
			Responses: []domain.Response{
				{Id: "r5", Text: "Take deep breaths! You got this.", CreatedAt: now.Add(-15 * time.Minute)},
			},
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			Id:        "9",
			Text:      "I wish I could just disappear for a while. Everything is too much right now.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-52 * time.Hour),
		},
		{
			Id:        "10",
			Text:      "Finally finished a creative project I've been working on for months. It feels so good to see it complete.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-60 * time.Hour),
		},
		{
			Id:   "11",
			Text: "My dog is the only one who really understands me. His cuddles are the best therapy.",
			Responses: []domain.Response{
				{Id: "r6", Text: "Dogs are the best listeners!", CreatedAt: now.Add(-25 * time.Minute)},
			},
			CreatedAt: now.Add(-72 * time.Hour),
		},
		{
			Id:        "12",
			Text:      "I feel like I'm not good enough. Comparing myself to others on social media is really getting to me.",
			Responses: []domain.Response{},
			CreatedAt: now.Add(-80 * time.Hour),
		},
	}

	rand.Shuffle(len(posts), func(i, j int) {
		posts[i], posts[j] = posts[j], posts[i]
	})
	return posts
}
