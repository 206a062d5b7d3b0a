package store

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/KumailHaider61/echochamber/domain"
)

// Memory is the in-memory catalog and account store. It backs tests and
// the default zero-setup run. A mutex guards the slices because Bubble Tea
// commands run off the event loop.
type Memory struct {
	mu     sync.Mutex
	users  []domain.User
	videos []domain.Video
}

// NewMemory returns a store seeded with the demo fixture.
func NewMemory() *Memory {
	return &Memory{
		users:  FixtureUsers(),
		videos: FixtureVideos(),
	}
}

// NewMemoryEmpty returns an unseeded store, for tests.
func NewMemoryEmpty() *Memory {
	return &Memory{}
}

// GetPage implements app.VideoSource.
func (m *Memory) GetPage(_ context.Context, count, offset int) ([]domain.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset < 0 || offset >= len(m.videos) || count <= 0 {
		return nil, nil
	}
	end := offset + count
	if end > len(m.videos) {
		end = len(m.videos)
	}
	out := make([]domain.Video, 0, end-offset)
	for _, v := range m.videos[offset:end] {
		out = append(out, v.Clone())
	}
	return out, nil
}

// GetByID implements app.VideoSource.
func (m *Memory) GetByID(_ context.Context, id string) (domain.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.videos {
		if v.ID == id {
			return v.Clone(), nil
		}
	}
	return domain.Video{}, domain.ErrNotFound
}

// Add implements app.VideoSource. New videos go to the front of the
// catalog so they show up on the next first page.
func (m *Memory) Add(_ context.Context, userID, mediaURL, caption string) (domain.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var author domain.AuthorRef
	found := false
	for _, u := range m.users {
		if u.ID == userID {
			author = u.Ref()
			found = true
			break
		}
	}
	if !found {
		return domain.Video{}, domain.ErrNotFound
	}
	v := domain.Video{
		ID:       "vid-" + uuid.NewString(),
		UserID:   userID,
		Author:   author,
		MediaURL: mediaURL,
		Caption:  caption,
	}
	m.videos = append([]domain.Video{v}, m.videos...)
	return v.Clone(), nil
}

// ByUser implements app.VideoSource.
func (m *Memory) ByUser(_ context.Context, userID string) ([]domain.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Video
	for _, v := range m.videos {
		if v.UserID == userID {
			out = append(out, v.Clone())
		}
	}
	return out, nil
}

// ByEmail implements app.UserStore.
func (m *Memory) ByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// ByID implements app.UserStore.
func (m *Memory) ByID(_ context.Context, id string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

// Create implements app.UserStore.
func (m *Memory) Create(_ context.Context, u domain.User) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.User{}, domain.ErrUserExists
		}
	}
	u.ID = "user-" + uuid.NewString()
	u.Following = 0
	u.Followers = "0"
	u.Likes = "0"
	u.LikedVideos = nil
	m.users = append(m.users, u)
	return cloneUser(u), nil
}

// Update implements app.UserStore.
func (m *Memory) Update(_ context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.users {
		if existing.ID == u.ID {
			m.users[i] = cloneUser(u)
			return nil
		}
	}
	return domain.ErrNotFound
}

func cloneUser(u domain.User) domain.User {
	out := u
	out.LikedVideos = append([]string(nil), u.LikedVideos...)
	return out
}
