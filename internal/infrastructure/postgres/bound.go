package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/repository"
)

const (
	boundLoginSQL = `SELECT id, username, password_hash, email FROM users WHERE username = $1 LIMIT 1`

	boundJoinSQL = `SELECT ` + joinColumns + `
	FROM users us
	JOIN comments c ON us.id = c.user_id
	JOIN orders o   ON us.id = o.user_id
	JOIN profiles p ON us.id = p.user_id
	WHERE us.username = $1`

	boundSearchSQL = `SELECT id, username, email FROM users WHERE username ILIKE $1 OR email ILIKE $2 LIMIT $3`
)

// BoundStore builds every query with bound parameters; user input never
// becomes part of the statement text.
type BoundStore struct {
	pool *pgxpool.Pool
}

func NewBoundStore(pool *pgxpool.Pool) *BoundStore {
	return &BoundStore{pool: pool}
}

func (s *BoundStore) Acquire(ctx context.Context) (repository.Querier, func(), error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return &boundQuerier{conn: conn}, conn.Release, nil
}

type boundQuerier struct {
	conn *pgxpool.Conn
}

// Login looks the user up strictly by username and compares the stored
// credential to the submitted one only after the fetch. The credential is
// never part of the lookup predicate.
func (q *boundQuerier) Login(ctx context.Context, username, credential string) (*entity.Identity, error) {
	var (
		id     int64
		name   string
		stored string
		email  string
	)
	err := q.conn.QueryRow(ctx, boundLoginSQL, username).Scan(&id, &name, &stored, &email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if stored != credential {
		return nil, nil
	}
	return &entity.Identity{ID: id, Username: name, Email: email}, nil
}

func (q *boundQuerier) JoinedProfile(ctx context.Context, username string) ([]entity.JoinedRow, error) {
	rows, err := q.conn.Query(ctx, boundJoinSQL, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJoined(rows)
}

func (q *boundQuerier) SearchUsers(ctx context.Context, term string, limit int) ([]entity.UserSummary, error) {
	pattern := "%" + term + "%"
	rows, err := q.conn.Query(ctx, boundSearchSQL, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

var _ repository.Store = (*BoundStore)(nil)
