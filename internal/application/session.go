package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
)

var ErrNoSession = errors.New("session not found")

// Sessions manages the authenticated identity attached to a request.
type Sessions interface {
	// Establish clears any previous session state for the identity and
	// repopulates it with exactly the identity's id and username, then
	// returns a signed token for the session cookie.
	Establish(ctx context.Context, id *entity.Identity) (string, time.Time, error)
	// Lookup resolves a session token back to the identity, or ErrNoSession
	// when the token is invalid or the server-side state is gone.
	Lookup(ctx context.Context, token string) (*entity.Identity, error)
	// Destroy removes all server-side session state for the token.
	Destroy(ctx context.Context, token string) error
}

// RedisSessions keeps session state in a redis hash keyed by user id and
// hands out signed tokens that reference it.
type RedisSessions struct {
	Signer *helpers.SessionSigner
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewRedisSessions(signer *helpers.SessionSigner, rdb *redis.Client, logger *logrus.Logger) *RedisSessions {
	return &RedisSessions{Signer: signer, Redis: rdb, Logger: logger}
}

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

func (s *RedisSessions) Establish(ctx context.Context, id *entity.Identity) (string, time.Time, error) {
	key := sessionKey(id.ID)
	pipe := s.Redis.Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]any{
		"user_id":  id.ID,
		"username": id.Username,
	})
	pipe.Expire(ctx, key, s.Signer.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", time.Time{}, err
	}
	return s.Signer.Generate(id.ID, id.Username)
}

func (s *RedisSessions) Lookup(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := s.Signer.Parse(token)
	if err != nil {
		return nil, ErrNoSession
	}
	data, err := s.Redis.HGetAll(ctx, sessionKey(claims.UserID)).Result()
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("session store lookup failed")
		}
		return nil, ErrNoSession
	}
	if len(data) == 0 {
		return nil, ErrNoSession
	}
	return &entity.Identity{ID: claims.UserID, Username: data["username"]}, nil
}

func (s *RedisSessions) Destroy(ctx context.Context, token string) error {
	claims, err := s.Signer.Parse(token)
	if err != nil {
		// Nothing server-side to clean up for an unparseable token.
		return nil
	}
	return s.Redis.Del(ctx, sessionKey(claims.UserID)).Err()
}

var _ Sessions = (*RedisSessions)(nil)
