// Package redisstore is the durable alternative to the in-process
// session cache, for deployments that want sessions to survive a
// restart.
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gourmet-bot-be/internal/pkg/logger"
	"gourmet-bot-be/pkg/store"
)

const keyPrefix = "session:"

type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log logger.ILogger
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &SessionRepository{rdb: rdb, ttl: ttl, log: log}
}

func (r *SessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		r.log.Error("SessionRepository", "failed to marshal session", map[string]interface{}{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
		return
	}
	if err := r.rdb.Set(context.Background(), keyPrefix+session.UserID, data, r.ttl).Err(); err != nil {
		r.log.Error("SessionRepository", "failed to save session", map[string]interface{}{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
	}
}

func (r *SessionRepository) Get(userID string) (*store.Session, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+userID).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Error("SessionRepository", "failed to load session", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.log.Error("SessionRepository", "failed to unmarshal session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(userID string) {
	if err := r.rdb.Del(context.Background(), keyPrefix+userID).Err(); err != nil {
		r.log.Error("SessionRepository", "failed to delete session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
