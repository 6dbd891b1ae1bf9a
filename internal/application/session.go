package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/student-marks-dashboard/pkg/helpers"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state of one signed-in browser.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps sessions as Redis hashes with a TTL.
type SessionStore struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{Redis: rdb, TTL: ttl}
}

func sessionKey(id string) string {
	return "student:session:" + id
}

// Create starts a fresh session for username.
func (s *SessionStore) Create(ctx context.Context, username string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	fields := map[string]any{
		"sid":        sess.ID,
		"username":   sess.Username,
		"created_at": sess.CreatedAt.Format(time.RFC3339Nano),
	}
	if err := helpers.RedisHSetWithTTL(ctx, s.Redis, sessionKey(sess.ID), fields, s.TTL); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	data, err := s.Redis.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data["username"] == "" {
		return nil, ErrSessionNotFound
	}
	created, _ := time.Parse(time.RFC3339Nano, data["created_at"])
	return &Session{ID: id, Username: data["username"], CreatedAt: created}, nil
}

// Delete ends a session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return helpers.RedisDel(ctx, s.Redis, sessionKey(id))
}
