package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/KumailHaider61/echochamber/domain"
)

// SQLite persists the catalog and accounts. It implements the same
// VideoSource and UserStore contracts as Memory.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite connects to (or creates) the catalog database and applies
// migrations. An empty database is seeded with the demo fixture.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	s := &SQLite{db: db, path: path}
	if err := s.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	empty, err := s.isEmpty(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if empty {
		if err := s.Reseed(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) applyMigrations(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE COLLATE NOCASE,
			password TEXT NOT NULL,
			avatar_url TEXT NOT NULL,
			bio TEXT NOT NULL DEFAULT '',
			following INTEGER NOT NULL DEFAULT 0,
			followers TEXT NOT NULL DEFAULT '0',
			likes TEXT NOT NULL DEFAULT '0'
		)`,
		`CREATE TABLE IF NOT EXISTS videos (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			media_url TEXT NOT NULL,
			caption TEXT NOT NULL,
			like_count INTEGER NOT NULL DEFAULT 0,
			comment_count INTEGER NOT NULL DEFAULT 0,
			share_count INTEGER NOT NULL DEFAULT 0,
			sort_key INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_sort ON videos(sort_key)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			video_id TEXT NOT NULL REFERENCES videos(id),
			author_name TEXT NOT NULL,
			author_avatar_url TEXT NOT NULL,
			text TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_likes (
			user_id TEXT NOT NULL REFERENCES users(id),
			video_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (user_id, video_id)
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}

func (s *SQLite) isEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n); err != nil {
		return false, fmt.Errorf("count videos: %w", err)
	}
	return n == 0, nil
}

// Reseed drops all rows and inserts the demo fixture.
func (s *SQLite) Reseed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reseed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"user_likes", "comments", "videos", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, u := range FixtureUsers() {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}
	}
	for i, v := range FixtureVideos() {
		if err := insertVideo(ctx, tx, v, int64(i+1)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reseed: %w", err)
	}
	return nil
}

func insertUser(ctx context.Context, tx *sql.Tx, u domain.User) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password, avatar_url, bio, following, followers, likes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.Password, u.AvatarURL, u.Bio, u.Following, u.Followers, u.Likes,
	)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.ID, err)
	}
	for i, videoID := range u.LikedVideos {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_likes (user_id, video_id, position) VALUES (?, ?, ?)`,
			u.ID, videoID, i,
		); err != nil {
			return fmt.Errorf("insert like %s/%s: %w", u.ID, videoID, err)
		}
	}
	return nil
}

func insertVideo(ctx context.Context, tx *sql.Tx, v domain.Video, sortKey int64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO videos (id, user_id, media_url, caption, like_count, comment_count, share_count, sort_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.UserID, v.MediaURL, v.Caption, v.LikeCount, v.CommentCount, v.ShareCount, sortKey,
	)
	if err != nil {
		return fmt.Errorf("insert video %s: %w", v.ID, err)
	}
	for i, c := range v.Comments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO comments (id, video_id, author_name, author_avatar_url, text, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, v.ID, c.Author.Name, c.Author.AvatarURL, c.Text, i,
		); err != nil {
			return fmt.Errorf("insert comment %s: %w", c.ID, err)
		}
	}
	return nil
}

const videoColumns = `v.id, v.user_id, u.name, u.avatar_url, v.media_url, v.caption,
	v.like_count, v.comment_count, v.share_count`

func scanVideo(row interface{ Scan(...any) error }) (domain.Video, error) {
	var v domain.Video
	err := row.Scan(&v.ID, &v.UserID, &v.Author.Name, &v.Author.AvatarURL,
		&v.MediaURL, &v.Caption, &v.LikeCount, &v.CommentCount, &v.ShareCount)
	return v, err
}

func (s *SQLite) attachComments(ctx context.Context, v *domain.Video) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, author_name, author_avatar_url, text
		 FROM comments WHERE video_id = ? ORDER BY position`, v.ID)
	if err != nil {
		return fmt.Errorf("load comments for %s: %w", v.ID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Author.Name, &c.Author.AvatarURL, &c.Text); err != nil {
			return fmt.Errorf("scan comment: %w", err)
		}
		v.Comments = append(v.Comments, c)
	}
	return rows.Err()
}

// GetPage implements app.VideoSource.
func (s *SQLite) GetPage(ctx context.Context, count, offset int) ([]domain.Video, error) {
	if count <= 0 || offset < 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+videoColumns+` FROM videos v JOIN users u ON u.id = v.user_id
		 ORDER BY v.sort_key LIMIT ? OFFSET ?`, count, offset)
	if err != nil {
		return nil, fmt.Errorf("select page: %w", err)
	}
	defer rows.Close()

	var out []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := s.attachComments(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GetByID implements app.VideoSource.
func (s *SQLite) GetByID(ctx context.Context, id string) (domain.Video, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos v JOIN users u ON u.id = v.user_id
		 WHERE v.id = ?`, id)
	v, err := scanVideo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Video{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Video{}, fmt.Errorf("select video %s: %w", id, err)
	}
	if err := s.attachComments(ctx, &v); err != nil {
		return domain.Video{}, err
	}
	return v, nil
}

// Add implements app.VideoSource. The new video receives the smallest
// sort key so it lands at the front of the catalog.
func (s *SQLite) Add(ctx context.Context, userID, mediaURL, caption string) (domain.Video, error) {
	author, err := s.ByID(ctx, userID)
	if err != nil {
		return domain.Video{}, err
	}
	var minKey sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MIN(sort_key) FROM videos`).Scan(&minKey); err != nil {
		return domain.Video{}, fmt.Errorf("min sort key: %w", err)
	}
	key := int64(0)
	if minKey.Valid {
		key = minKey.Int64 - 1
	}
	id := "vid-" + uuid.NewString()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO videos (id, user_id, media_url, caption, like_count, comment_count, share_count, sort_key)
		 VALUES (?, ?, ?, ?, 0, 0, 0, ?)`,
		id, userID, mediaURL, caption, key,
	); err != nil {
		return domain.Video{}, fmt.Errorf("insert video: %w", err)
	}
	return domain.Video{
		ID:       id,
		UserID:   userID,
		Author:   author.Ref(),
		MediaURL: mediaURL,
		Caption:  caption,
	}, nil
}

// ByUser implements app.VideoSource.
func (s *SQLite) ByUser(ctx context.Context, userID string) ([]domain.Video, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+videoColumns+` FROM videos v JOIN users u ON u.id = v.user_id
		 WHERE v.user_id = ? ORDER BY v.sort_key`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user videos: %w", err)
	}
	defer rows.Close()

	var out []domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLite) scanUser(ctx context.Context, row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.AvatarURL,
		&u.Bio, &u.Following, &u.Followers, &u.Likes)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("scan user: %w", err)
	}
	likeRows, err := s.db.QueryContext(ctx,
		`SELECT video_id FROM user_likes WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("load likes: %w", err)
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var id string
		if err := likeRows.Scan(&id); err != nil {
			return domain.User{}, fmt.Errorf("scan like: %w", err)
		}
		u.LikedVideos = append(u.LikedVideos, id)
	}
	return u, likeRows.Err()
}

const userColumns = `id, name, email, password, avatar_url, bio, following, followers, likes`

// ByEmail implements app.UserStore.
func (s *SQLite) ByEmail(ctx context.Context, email string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email)
	return s.scanUser(ctx, row)
}

// ByID implements app.UserStore.
func (s *SQLite) ByID(ctx context.Context, id string) (domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return s.scanUser(ctx, row)
}

// Create implements app.UserStore.
func (s *SQLite) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if _, err := s.ByEmail(ctx, u.Email); err == nil {
		return domain.User{}, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}
	u.ID = "user-" + uuid.NewString()
	u.Following = 0
	u.Followers = "0"
	u.Likes = "0"
	u.LikedVideos = nil
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password, avatar_url, bio, following, followers, likes)
		 VALUES (?, ?, ?, ?, ?, ?, 0, '0', '0')`,
		u.ID, u.Name, u.Email, u.Password, u.AvatarURL, u.Bio,
	); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// Update implements app.UserStore.
func (s *SQLite) Update(ctx context.Context, u domain.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET name = ?, avatar_url = ?, bio = ?, following = ?, followers = ?, likes = ?
		 WHERE id = ?`,
		u.Name, u.AvatarURL, u.Bio, u.Following, u.Followers, u.Likes, u.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM user_likes WHERE user_id = ?`, u.ID); err != nil {
		return fmt.Errorf("clear likes: %w", err)
	}
	for i, videoID := range u.LikedVideos {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_likes (user_id, video_id, position) VALUES (?, ?, ?)`,
			u.ID, videoID, i,
		); err != nil {
			return fmt.Errorf("insert like: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}
