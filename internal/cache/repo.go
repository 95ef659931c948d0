package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/starford/cookbook/internal/checksum"
	"github.com/starford/cookbook/internal/models"
)

// Row is one cached feed entry.
type Row struct {
	ID          int64
	Title       string
	Description string
	Topic       models.Topic
	AuthorID    int64
	AuthorName  string
	PhotoPath   string
	LikesCount  int
	LikedByMe   bool
	CreatedAt   time.Time
	CachedAt    time.Time
}

// Query filters a cached listing. Mirrors the remote feed filters so the
// offline path accepts the same flags.
type Query struct {
	Topic  models.Topic
	Order  string // "desc" (default) or "asc" by created_at
	Search string // substring match on title and description
	Limit  int
	Offset int
}

// Put upserts fetched recipes into the cache. Rows whose content checksum is
// unchanged are skipped to keep repeated feed fetches cheap.
func (db *DB) Put(recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("cache: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	stale, err := staleChecksums(tx, recipes)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO recipes (id, title, description, topic, author_id, author_name, photo_path, likes_count, liked_by_me, created_at, checksum, cached_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title       = excluded.title,
			description = excluded.description,
			topic       = excluded.topic,
			author_id   = excluded.author_id,
			author_name = excluded.author_name,
			photo_path  = excluded.photo_path,
			likes_count = excluded.likes_count,
			liked_by_me = excluded.liked_by_me,
			created_at  = excluded.created_at,
			checksum    = excluded.checksum,
			cached_at   = excluded.cached_at
	`)
	if err != nil {
		return fmt.Errorf("cache: prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, r := range recipes {
		cs, ok := stale[r.ID]
		if !ok {
			continue
		}
		var authorID int64
		var authorName string
		if r.Author != nil {
			authorID = r.Author.ID
			authorName = r.Author.DisplayName()
		}
		liked := r.LikedByMe != nil && *r.LikedByMe
		if _, err := stmt.Exec(r.ID, r.Title, r.Description, string(r.Topic), authorID, authorName,
			r.PhotoPath, r.LikesCount, liked, r.CreatedAt.UTC(), cs, now); err != nil {
			return fmt.Errorf("cache: upsert recipe %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// staleChecksums returns id → new checksum for every recipe whose cached
// content differs from the fetched one.
func staleChecksums(tx *sql.Tx, recipes []models.Recipe) (map[int64]string, error) {
	out := make(map[int64]string, len(recipes))
	for _, r := range recipes {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("cache: marshal recipe %d: %w", r.ID, err)
		}
		cs := checksum.Sum(data)
		var stored string
		err = tx.QueryRow(`SELECT checksum FROM recipes WHERE id = ?`, r.ID).Scan(&stored)
		if err == nil && stored == cs {
			continue
		}
		out[r.ID] = cs
	}
	return out, nil
}

// List returns cached recipes matching the query.
func (db *DB) List(q Query) ([]Row, error) {
	where := "1=1"
	args := []any{}
	if q.Topic != "" {
		where += " AND topic = ?"
		args = append(args, string(q.Topic))
	}
	if q.Search != "" {
		where += " AND (title LIKE ? OR description LIKE ?)"
		pat := "%" + q.Search + "%"
		args = append(args, pat, pat)
	}

	dir := "DESC"
	if q.Order == "asc" {
		dir = "ASC"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit, q.Offset)

	rows, err := db.conn.Query(`
		SELECT id, title, description, topic, author_id, author_name, photo_path, likes_count, liked_by_me, created_at, cached_at
		FROM recipes WHERE `+where+` ORDER BY created_at `+dir+` LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("cache: list: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Popular returns cached recipes ordered by like count.
func (db *DB) Popular(limit, offset int) ([]Row, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.conn.Query(`
		SELECT id, title, description, topic, author_id, author_name, photo_path, likes_count, liked_by_me, created_at, cached_at
		FROM recipes ORDER BY likes_count DESC, created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("cache: popular: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Get returns one cached recipe, or nil when absent.
func (db *DB) Get(id int64) (*Row, error) {
	rows, err := db.conn.Query(`
		SELECT id, title, description, topic, author_id, author_name, photo_path, likes_count, liked_by_me, created_at, cached_at
		FROM recipes WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("cache: get: %w", err)
	}
	defer rows.Close()
	out, err := scanRows(rows)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// SetLike records a like state for a cached recipe. Used twice per toggle:
// once with the optimistic local guess, then with the authoritative server
// response. The checksum is reset so the next feed fetch rewrites the row.
func (db *DB) SetLike(id int64, liked bool, likesCount int) error {
	_, err := db.conn.Exec(`
		UPDATE recipes SET liked_by_me = ?, likes_count = ?, checksum = '' WHERE id = ?`,
		liked, likesCount, id)
	if err != nil {
		return fmt.Errorf("cache: set like: %w", err)
	}
	return nil
}

// Delete removes a recipe from the cache.
func (db *DB) Delete(id int64) error {
	if _, err := db.conn.Exec(`DELETE FROM recipes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("cache: delete: %w", err)
	}
	return nil
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	var out []Row
	for rows.Next() {
		var r Row
		var topic string
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &topic, &r.AuthorID, &r.AuthorName,
			&r.PhotoPath, &r.LikesCount, &r.LikedByMe, &r.CreatedAt, &r.CachedAt); err != nil {
			return nil, err
		}
		r.Topic = models.Topic(topic)
		out = append(out, r)
	}
	return out, rows.Err()
}
