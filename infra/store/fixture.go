package store

import (
	"fmt"

	"github.com/KumailHaider61/echochamber/domain"
)

// Seed fixture for the demo catalog: five creators and fifty videos built
// from rotating caption, media and comment pools. Counters come from a
// fixed-seed generator so every seeded store is identical.

var fixtureUsers = []domain.User{
	{
		ID:          "user1",
		Name:        "SynthRiders",
		Email:       "synth@example.com",
		Password:    "password123",
		AvatarURL:   "https://placehold.co/40x40/4B0082/FFFFFF.png?text=SR",
		Bio:         "Just a synthwave rider in a digital world. 🚀",
		Following:   124,
		Followers:   "4.1M",
		Likes:       "23.6M",
		LikedVideos: []string{"vid1", "vid3"},
	},
	{
		ID:          "user2",
		Name:        "CyberClips",
		Email:       "cyber@example.com",
		Password:    "password123",
		AvatarURL:   "https://placehold.co/40x40/BF00FF/FFFFFF.png?text=CC",
		Bio:         "Bringing you the future, one clip at a time.",
		Following:   543,
		Followers:   "1.2M",
		Likes:       "10.1M",
		LikedVideos: nil,
	},
	{
		ID:          "user3",
		Name:        "GlitchGrooves",
		Email:       "glitch@example.com",
		Password:    "password123",
		AvatarURL:   "https://placehold.co/40x40/FF69B4/FFFFFF.png?text=GG",
		Bio:         "Finding the beauty in the breakdown.",
		Following:   89,
		Followers:   "780K",
		Likes:       "5.5M",
		LikedVideos: []string{"vid2", "vid4", "vid5"},
	},
	{
		ID:          "user4",
		Name:        "NeonVibes",
		Email:       "neon@example.com",
		Password:    "password123",
		AvatarURL:   "https://placehold.co/40x40/00FFFF/000000.png?text=NV",
		Bio:         "Bright lights, bigger city.",
		Following:   200,
		Followers:   "950K",
		Likes:       "8.2M",
		LikedVideos: nil,
	},
	{
		ID:          "user5",
		Name:        "FutureFunk",
		Email:       "funk@example.com",
		Password:    "password123",
		AvatarURL:   "https://placehold.co/40x40/FFD700/000000.png?text=FF",
		Bio:         "Retro sounds, future funk.",
		Following:   310,
		Followers:   "2.5M",
		Likes:       "15.9M",
		LikedVideos: []string{"vid1"},
	},
}

var fixtureCaptions = []string{
	"Dropping the beat on this fine day! 🔥",
	"Just vibes ✨",
	"Wait for it... 🤯",
	"This took way too long to edit lol",
	"Can you relate? 😂 #fyp",
	"New dance challenge alert! 🚨",
	"Living my best life.",
	"Sound on for this one 🔊",
	"A day in the life.",
	"Tutorial time!",
	"This synth solo is out of this world 🪐",
	"Cyberpunk dreams and neon streams.",
	"Glitching through the matrix.",
	"Future funk forever.",
	"Retro vibes for modern times.",
}

var fixtureMediaURLs = []string{
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/WeAreGoingOnBullrun.mp4",
	"https://storage.googleapis.com/gtv-videos-bucket/sample/WhatCarCanYouGetForAGrand.mp4",
}

var fixtureCommentTexts = []string{
	"This is awesome!",
	"Love this!",
	"So cool!",
	"Wow!",
	"Great video!",
	"So true 😂",
	"First!",
	"What song is this?",
}

const fixtureVideoCount = 50

// fixtureRand is a tiny LCG so counter values are stable across seeds.
func fixtureRand(seed uint32) func(n int) int {
	state := seed
	return func(n int) int {
		state = state*1664525 + 1013904223
		return int(state>>16) % n
	}
}

func fixtureComments(videoIndex int) []domain.Comment {
	n := (videoIndex + len(fixtureUsers)) % 5
	comments := make([]domain.Comment, 0, n)
	for j := 0; j < n; j++ {
		u := fixtureUsers[(videoIndex+j)%len(fixtureUsers)]
		comments = append(comments, domain.Comment{
			ID:     fmt.Sprintf("comment%d-%d", videoIndex, j),
			Author: u.Ref(),
			Text:   fixtureCommentTexts[(videoIndex+j)%len(fixtureCommentTexts)],
		})
	}
	return comments
}

// FixtureUsers returns a fresh copy of the seed accounts.
func FixtureUsers() []domain.User {
	out := make([]domain.User, len(fixtureUsers))
	for i, u := range fixtureUsers {
		out[i] = u
		out[i].LikedVideos = append([]string(nil), u.LikedVideos...)
	}
	return out
}

// FixtureVideos returns a fresh copy of the seed catalog, in catalog order.
func FixtureVideos() []domain.Video {
	rnd := fixtureRand(0xEC40)
	out := make([]domain.Video, 0, fixtureVideoCount)
	for i := 0; i < fixtureVideoCount; i++ {
		u := fixtureUsers[i%len(fixtureUsers)]
		comments := fixtureComments(i)
		out = append(out, domain.Video{
			ID:           fmt.Sprintf("vid%d", i+1),
			UserID:       u.ID,
			Author:       u.Ref(),
			MediaURL:     fixtureMediaURLs[i%len(fixtureMediaURLs)],
			Caption:      fixtureCaptions[i%len(fixtureCaptions)],
			LikeCount:    rnd(1000000),
			CommentCount: len(comments) + rnd(5),
			ShareCount:   rnd(20000),
			Comments:     comments,
		})
	}
	return out
}
