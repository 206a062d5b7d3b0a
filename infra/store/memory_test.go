package store

import (
	"context"
	"errors"
	"testing"

	"github.com/KumailHaider61/echochamber/domain"
)

func TestMemory_GetPageDeterministicOrder(t *testing.T) {
	a := NewMemory()
	b := NewMemory()

	pageA, err := a.GetPage(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pageB, err := b.GetPage(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pageA) != 10 || len(pageB) != 10 {
		t.Fatalf("expected full pages, got %d and %d", len(pageA), len(pageB))
	}
	for i := range pageA {
		if pageA[i].ID != pageB[i].ID {
			t.Fatalf("seeded stores diverge at %d: %s vs %s", i, pageA[i].ID, pageB[i].ID)
		}
		if pageA[i].LikeCount != pageB[i].LikeCount {
			t.Fatalf("counters not deterministic at %d", i)
		}
	}
	if pageA[0].ID != "vid1" {
		t.Fatalf("catalog order mismatch: got %s", pageA[0].ID)
	}
}

func TestMemory_GetPageOffsetWindows(t *testing.T) {
	m := NewMemory()
	first, _ := m.GetPage(context.Background(), 10, 0)
	second, _ := m.GetPage(context.Background(), 5, 10)

	if second[0].ID == first[len(first)-1].ID {
		t.Fatal("pages overlap")
	}
	if second[0].ID != "vid11" {
		t.Fatalf("offset window mismatch: got %s", second[0].ID)
	}
}

func TestMemory_GetPageExhaustedOffsetReturnsEmpty(t *testing.T) {
	m := NewMemory()
	page, err := m.GetPage(context.Background(), 5, 1000)
	if err != nil {
		t.Fatalf("an exhausted tail is not an error: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page, got %d", len(page))
	}
}

func TestMemory_GetPageTruncatesAtTail(t *testing.T) {
	m := NewMemory()
	page, err := m.GetPage(context.Background(), 20, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 5 {
		t.Fatalf("expected 5 remaining videos, got %d", len(page))
	}
}

func TestMemory_GetByID(t *testing.T) {
	m := NewMemory()
	v, err := m.GetByID(context.Background(), "vid7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != "vid7" {
		t.Fatalf("id mismatch: got %s", v.ID)
	}

	if _, err := m.GetByID(context.Background(), "vid-nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_AddPrependsToCatalog(t *testing.T) {
	m := NewMemory()
	v, err := m.Add(context.Background(), "user2", "https://example.com/clip.mp4", "fresh upload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Author.Name != "CyberClips" {
		t.Fatalf("author not denormalized: got %q", v.Author.Name)
	}

	page, _ := m.GetPage(context.Background(), 1, 0)
	if page[0].ID != v.ID {
		t.Fatalf("new video should lead the catalog, got %s", page[0].ID)
	}
}

func TestMemory_AddUnknownCreator(t *testing.T) {
	m := NewMemory()
	if _, err := m.Add(context.Background(), "user-ghost", "u", "c"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_PageMutationsDoNotLeakIntoStore(t *testing.T) {
	m := NewMemory()
	page, _ := m.GetPage(context.Background(), 1, 0)
	page[0].Comments = append(page[0].Comments, domain.Comment{ID: "x", Text: "local"})
	page[0].LikeCount++

	again, _ := m.GetPage(context.Background(), 1, 0)
	if len(again[0].Comments) != len(fixtureComments(0)) {
		t.Fatal("local comment leaked into the store")
	}
}

func TestMemory_UserRoundTrip(t *testing.T) {
	m := NewMemory()
	u, err := m.ByEmail(context.Background(), "SYNTH@example.com")
	if err != nil {
		t.Fatalf("email lookup should be case-insensitive: %v", err)
	}
	if u.ID != "user1" {
		t.Fatalf("wrong user: %s", u.ID)
	}

	u.Bio = "updated bio"
	u.LikedVideos = append(u.LikedVideos, "vid9")
	if err := m.Update(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := m.ByID(context.Background(), "user1")
	if got.Bio != "updated bio" || !got.HasLiked("vid9") {
		t.Fatal("update not persisted")
	}
}

func TestMemory_CreateRejectsDuplicateEmail(t *testing.T) {
	m := NewMemory()
	_, err := m.Create(context.Background(), domain.User{Name: "Dup", Email: "synth@example.com", Password: "x"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
