package handlers

import (
	"context"
	"time"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/repository"
)

// fakeStore hands out a single querier and counts acquisitions so tests can
// assert a request never touched the store.
type fakeStore struct {
	querier  *fakeQuerier
	acquired int
	err      error
}

func (s *fakeStore) Acquire(context.Context) (repository.Querier, func(), error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	s.acquired++
	return s.querier, func() { s.querier.released++ }, nil
}

type fakeQuerier struct {
	// credential store for Login, username -> (identity, stored credential)
	users map[string]struct {
		id     entity.Identity
		stored string
	}
	rows      []entity.JoinedRow
	summaries []entity.UserSummary
	searchErr error
	joinErr   error

	loginCalls  int
	searchCalls int
	released    int
}

func (q *fakeQuerier) Login(_ context.Context, username, credential string) (*entity.Identity, error) {
	q.loginCalls++
	u, ok := q.users[username]
	if !ok || u.stored != credential {
		return nil, nil
	}
	id := u.id
	return &id, nil
}

func (q *fakeQuerier) JoinedProfile(context.Context, string) ([]entity.JoinedRow, error) {
	if q.joinErr != nil {
		return nil, q.joinErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) SearchUsers(context.Context, string, int) ([]entity.UserSummary, error) {
	q.searchCalls++
	if q.searchErr != nil {
		return nil, q.searchErr
	}
	return q.summaries, nil
}

type fakeSessions struct {
	established []entity.Identity
	destroyed   []string
	token       string
}

func (f *fakeSessions) Establish(_ context.Context, id *entity.Identity) (string, time.Time, error) {
	f.established = append(f.established, *id)
	return f.token, time.Now().Add(time.Hour), nil
}

func (f *fakeSessions) Lookup(context.Context, string) (*entity.Identity, error) {
	return nil, nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	f.destroyed = append(f.destroyed, token)
	return nil
}
