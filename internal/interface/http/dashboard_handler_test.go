package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
	"github.com/AweFilko/PIB-SQL-injection/internal/interface/middleware"
	"github.com/AweFilko/PIB-SQL-injection/pkg/validation"
	"github.com/AweFilko/PIB-SQL-injection/web"
)

func newDashboardRig(store *fakeStore, policy validation.Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(store, policy, quietLogger())
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	// Stand-in for the session gate.
	r.GET("/dashboard", func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, int64(1))
		c.Set(middleware.CtxUsernameKey, "alice")
	}, h.Show)
	return r
}

func crossJoined() []entity.JoinedRow {
	user := entity.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	profile := entity.Profile{UserID: 1, FullName: "Alice A.", City: "Brno"}
	comments := []entity.Comment{{ID: 10, Content: "hello world"}, {ID: 11, Content: "second thought"}}
	orders := []entity.Order{{ID: 20, ProductID: 5, Quantity: 1, Total: 10}, {ID: 21, ProductID: 6, Quantity: 3, Total: 30}, {ID: 22, ProductID: 7, Quantity: 2, Total: 20}}
	var rows []entity.JoinedRow
	for _, cm := range comments {
		for _, o := range orders {
			rows = append(rows, entity.JoinedRow{User: user, Comment: cm, Order: o, Profile: profile})
		}
	}
	return rows
}

func TestDashboard_RendersDeduplicated(t *testing.T) {
	store := &fakeStore{querier: &fakeQuerier{rows: crossJoined()}}
	r := newDashboardRig(store, validation.Strict())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Alice A.")
	// 2 distinct comments out of 6 joined rows
	assert.Equal(t, 1, strings.Count(body, "hello world"))
	assert.Equal(t, 1, strings.Count(body, "second thought"))
	// 3 distinct orders
	assert.Equal(t, 1, strings.Count(body, "product 5"))
	assert.Equal(t, 1, strings.Count(body, "product 6"))
	assert.Equal(t, 1, strings.Count(body, "product 7"))
	assert.Equal(t, 1, store.querier.released)
}

func TestDashboard_SearchTermSanitizedToEmptySkipsSearch(t *testing.T) {
	store := &fakeStore{querier: &fakeQuerier{rows: crossJoined()}}
	r := newDashboardRig(store, validation.Strict())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?q="+escaped("' UNION SELECT"), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, store.querier.searchCalls, "sanitized-to-empty term must not hit the store")
}

func TestDashboard_SearchRuns(t *testing.T) {
	store := &fakeStore{querier: &fakeQuerier{
		rows:      crossJoined(),
		summaries: []entity.UserSummary{{ID: 2, Username: "bob", Email: "bob@example.com"}},
	}}
	r := newDashboardRig(store, validation.Strict())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?q=bob", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.querier.searchCalls)
	assert.Contains(t, w.Body.String(), "bob@example.com")
}

func TestDashboard_StoreErrorsDegradeToEmptyPage(t *testing.T) {
	store := &fakeStore{querier: &fakeQuerier{joinErr: assert.AnError, searchErr: assert.AnError}}
	r := newDashboardRig(store, validation.Strict())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?q=bob", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	assert.Contains(t, w.Body.String(), "Welcome, alice")
}

func escaped(s string) string {
	r := strings.NewReplacer("'", "%27", " ", "%20")
	return r.Replace(s)
}
