package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/domain"
)

// fileState is the on-disk session record. Only the user reference is
// persisted; everything else is re-read from the user store so profile
// edits are always fresh.
type fileState struct {
	UserID   string    `toml:"user_id"`
	Email    string    `toml:"email"`
	OpenedAt time.Time `toml:"opened_at"`
}

// Service is the file-backed session provider. One session per running
// instance; see AcquireLock.
type Service struct {
	users app.UserStore
	path  string
}

// New creates a session service persisting to the given file path.
func New(users app.UserStore, path string) *Service {
	return &Service{users: users, path: path}
}

// Current implements app.SessionService.
func (s *Service) Current() (domain.User, bool) {
	st, err := s.read()
	if err != nil || st.UserID == "" {
		return domain.User{}, false
	}
	u, err := s.users.ByID(context.Background(), st.UserID)
	if err != nil {
		return domain.User{}, false
	}
	return u, true
}

// Login implements app.SessionService.
func (s *Service) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}
	if u.Password != password {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err := s.write(u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Signup implements app.SessionService.
func (s *Service) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	initials := name
	if len(initials) > 2 {
		initials = initials[:2]
	}
	u, err := s.users.Create(ctx, domain.User{
		Name:      name,
		Email:     email,
		Password:  password,
		AvatarURL: fmt.Sprintf("https://placehold.co/40x40/808080/FFFFFF.png?text=%s", initials),
		Bio:       "New to Echo Chamber!",
	})
	if err != nil {
		return domain.User{}, err
	}
	if err := s.write(u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Logout implements app.SessionService.
func (s *Service) Logout() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// IsLiked implements app.SessionService.
func (s *Service) IsLiked(videoID string) bool {
	u, ok := s.Current()
	return ok && u.HasLiked(videoID)
}

// ToggleLike implements app.SessionService.
func (s *Service) ToggleLike(ctx context.Context, videoID string) (bool, error) {
	u, ok := s.Current()
	if !ok {
		return false, domain.ErrUnauthorized
	}
	liked := u.HasLiked(videoID)
	if liked {
		kept := u.LikedVideos[:0]
		for _, id := range u.LikedVideos {
			if id != videoID {
				kept = append(kept, id)
			}
		}
		u.LikedVideos = kept
	} else {
		u.LikedVideos = append(u.LikedVideos, videoID)
	}
	if err := s.users.Update(ctx, u); err != nil {
		return liked, err
	}
	return !liked, nil
}

// UpdateProfile implements app.SessionService.
func (s *Service) UpdateProfile(ctx context.Context, name, bio string) (domain.User, error) {
	u, ok := s.Current()
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	u.Bio = strings.TrimSpace(bio)
	if err := s.users.Update(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) read() (fileState, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fileState{}, err
	}
	var st fileState
	if err := toml.Unmarshal(raw, &st); err != nil {
		return fileState{}, fmt.Errorf("parse session: %w", err)
	}
	return st, nil
}

func (s *Service) write(u domain.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	raw, err := toml.Marshal(fileState{
		UserID:   u.ID,
		Email:    u.Email,
		OpenedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
