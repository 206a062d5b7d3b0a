package recommend

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KumailHaider61/echochamber/app"
)

const catalogWindow = 50

// Heuristic is a local stand-in for the hosted recommendation model: it
// hashes the activity descriptor and picks one catalog video, with a
// fixed latency so the dialog behaves like the real call. The interface
// boundary in app.Recommender is where a model-backed provider plugs in.
type Heuristic struct {
	source app.VideoSource
	delay  time.Duration
	logger *slog.Logger
}

// New creates a recommender over the given catalog.
func New(source app.VideoSource, delay time.Duration, logger *slog.Logger) *Heuristic {
	if logger == nil {
		logger = slog.Default()
	}
	return &Heuristic{source: source, delay: delay, logger: logger}
}

// Recommend implements app.Recommender.
func (h *Heuristic) Recommend(ctx context.Context, activity app.Activity) (app.Recommendation, error) {
	reqID := uuid.NewString()
	h.logger.Info("recommendation requested",
		"request", reqID,
		"watched", len(activity.WatchedVideos),
		"categories", strings.Join(activity.LikedCategories, ","),
	)

	select {
	case <-time.After(h.delay):
	case <-ctx.Done():
		return app.Recommendation{}, ctx.Err()
	}

	videos, err := h.source.GetPage(ctx, catalogWindow, 0)
	if err != nil {
		h.logger.Warn("recommendation failed", "request", reqID, "err", err)
		return app.Recommendation{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(videos) == 0 {
		return app.Recommendation{}, fmt.Errorf("no videos available to recommend")
	}

	pick := videos[activityHash(activity)%uint64(len(videos))]
	return app.Recommendation{
		VideoID: pick.ID,
		Reason:  fmt.Sprintf("Based on your interests, you might enjoy this video: %q", pick.Caption),
	}, nil
}

func activityHash(a app.Activity) uint64 {
	hash := fnv.New64a()
	for _, v := range a.WatchedVideos {
		_, _ = hash.Write([]byte(v))
	}
	for _, c := range a.LikedCategories {
		_, _ = hash.Write([]byte(c))
	}
	for _, c := range a.FollowedCreators {
		_, _ = hash.Write([]byte(c))
	}
	return hash.Sum64()
}
