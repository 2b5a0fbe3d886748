package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/repository"
	"github.com/AweFilko/PIB-SQL-injection/internal/interface/middleware"
	"github.com/AweFilko/PIB-SQL-injection/pkg/render"
	"github.com/AweFilko/PIB-SQL-injection/pkg/validation"
)

const searchLimit = 20

type DashboardHandler struct {
	Store  repository.Store
	Policy validation.Policy
	Logger *logrus.Logger
}

func NewDashboardHandler(store repository.Store, policy validation.Policy, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Store: store, Policy: policy, Logger: logger}
}

// Show GET /dashboard (the interpolated variant also routes POST here).
// Store failures degrade to an empty dashboard; they never surface as
// errors to the client.
func (h *DashboardHandler) Show(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)
	term := h.Policy.SanitizeSearch(strings.TrimSpace(c.Query("q")))

	var (
		data    application.DashboardData
		results []entity.UserSummary
	)

	ctx := c.Request.Context()
	q, release, err := h.Store.Acquire(ctx)
	if err != nil {
		h.Logger.WithError(err).Error("failed to open store connection for dashboard")
		h.render(c, username, term, data, results)
		return
	}
	defer release()

	rows, err := q.JoinedProfile(ctx, username)
	if err != nil {
		h.Logger.WithError(err).WithField("username", username).Error("store error fetching joined profile")
		rows = nil
	}
	data = application.Aggregate(rows)

	if term != "" {
		results, err = q.SearchUsers(ctx, term, searchLimit)
		if err != nil {
			h.Logger.WithError(err).WithField("q", term).Error("store error during search")
			results = nil
		}
	}

	h.render(c, username, term, data, results)
}

func (h *DashboardHandler) render(c *gin.Context, username, term string, data application.DashboardData, results []entity.UserSummary) {
	render.Page(c, http.StatusOK, "dashboard.html", gin.H{
		"Username": username,
		"Profile":  data.Profile,
		"Comments": data.Comments,
		"Orders":   data.Orders,
		"Query":    term,
		"Results":  results,
	})
}
