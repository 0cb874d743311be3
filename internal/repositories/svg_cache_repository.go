package repositories

import (
	"database/sql"
	"time"
)

// SVGCacheRepository is the pass-through cache for rendered contribution
// calendars, keyed by exact request URL. Entries expire on read, there is no
// invalidation path.
type SVGCacheRepository struct {
	db *sql.DB
}

func NewSVGCacheRepository(db *sql.DB) *SVGCacheRepository {
	return &SVGCacheRepository{
		db: db,
	}
}

// Get returns the cached body for the key if present and still fresh.
// An expired entry is deleted and reported as a miss.
func (r *SVGCacheRepository) Get(key string) ([]byte, bool, error) {
	query := `SELECT body, expires_at FROM svg_cache WHERE cache_key = ?`

	var body []byte
	var expiresAt time.Time
	err := r.db.QueryRow(query, key).Scan(&body, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if time.Now().After(expiresAt) {
		_, _ = r.db.Exec(`DELETE FROM svg_cache WHERE cache_key = ?`, key)
		return nil, false, nil
	}

	return body, true, nil
}

// Put stores or replaces the cached body for the key with the given freshness
func (r *SVGCacheRepository) Put(key string, body []byte, contentType string, ttl time.Duration) error {
	query := `
		INSERT INTO svg_cache (cache_key, body, content_type, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			body = excluded.body,
			content_type = excluded.content_type,
			expires_at = excluded.expires_at
	`

	_, err := r.db.Exec(query, key, body, contentType, time.Now().Add(ttl))
	return err
}
