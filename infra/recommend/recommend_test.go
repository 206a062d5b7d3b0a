package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
	"github.com/KumailHaider61/echochamber/infra/store"
)

func TestRecommendIsDeterministicPerActivity(t *testing.T) {
	h := New(store.NewMemory(), 0, nil)
	activity := app.Activity{
		WatchedVideos:    []string{"vid3", "vid5", "vid12"},
		LikedCategories:  []string{"Dance", "Comedy"},
		FollowedCreators: []string{"SynthRiders"},
	}

	first, err := h.Recommend(context.Background(), activity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Recommend(context.Background(), activity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.VideoID != second.VideoID {
		t.Fatalf("same activity should recommend the same video: %s vs %s", first.VideoID, second.VideoID)
	}
	if first.Reason == "" {
		t.Fatal("reason must not be empty")
	}
}

func TestRecommendEmptyCatalogFails(t *testing.T) {
	h := New(store.NewMemoryEmpty(), 0, nil)
	if _, err := h.Recommend(context.Background(), app.Activity{}); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

type failingSource struct{}

func (failingSource) GetPage(context.Context, int, int) ([]domain.Video, error) {
	return nil, errors.New("catalog offline")
}
func (failingSource) GetByID(context.Context, string) (domain.Video, error) {
	return domain.Video{}, domain.ErrNotFound
}
func (failingSource) Add(context.Context, string, string, string) (domain.Video, error) {
	return domain.Video{}, errors.New("catalog offline")
}
func (failingSource) ByUser(context.Context, string) ([]domain.Video, error) {
	return nil, errors.New("catalog offline")
}

func TestRecommendSurfacesSourceError(t *testing.T) {
	h := New(failingSource{}, 0, nil)
	if _, err := h.Recommend(context.Background(), app.Activity{}); err == nil {
		t.Fatal("expected source error to propagate")
	}
}

func TestRecommendHonorsContextCancellation(t *testing.T) {
	h := New(store.NewMemory(), time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.Recommend(ctx, app.Activity{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
