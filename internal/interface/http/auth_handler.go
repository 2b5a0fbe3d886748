package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AweFilko/PIB-SQL-injection/internal/application"
	"github.com/AweFilko/PIB-SQL-injection/internal/domain/repository"
	"github.com/AweFilko/PIB-SQL-injection/pkg/helpers"
	"github.com/AweFilko/PIB-SQL-injection/pkg/render"
	"github.com/AweFilko/PIB-SQL-injection/pkg/validation"
)

// Generic user-facing messages. Nothing about the store, the statement or
// whether the username exists is ever disclosed.
const (
	msgInvalidCredentials = "Invalid username or password."
	msgInternalError      = "An internal error occurred."
)

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type AuthHandler struct {
	Store    repository.Store
	Policy   validation.Policy
	Sessions application.Sessions
	Cookies  *helpers.CookieManager
	Logger   *logrus.Logger
}

func NewAuthHandler(store repository.Store, policy validation.Policy, sessions application.Sessions, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Store: store, Policy: policy, Sessions: sessions, Cookies: cookies, Logger: logger}
}

// LoginForm GET /
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render.Page(c, http.StatusOK, "login.html", gin.H{})
}

// Login POST /
func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, msgInvalidCredentials)
		return
	}
	username := strings.TrimSpace(form.Username)

	if !h.Policy.AcceptUsername(username) {
		h.Logger.WithField("username", username).Info("rejected username format on login")
		h.fail(c, msgInvalidCredentials)
		return
	}

	ctx := c.Request.Context()
	q, release, err := h.Store.Acquire(ctx)
	if err != nil {
		h.Logger.WithError(err).Error("failed to open store connection for login")
		h.fail(c, msgInternalError)
		return
	}
	defer release()

	id, err := q.Login(ctx, username, form.Password)
	if err != nil {
		h.Logger.WithError(err).WithField("username", username).Error("store error during login")
		h.fail(c, msgInternalError)
		return
	}
	if id == nil {
		h.Logger.WithField("username", username).Info("failed login attempt")
		h.fail(c, msgInvalidCredentials)
		return
	}

	token, exp, err := h.Sessions.Establish(ctx, id)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", id.ID).Error("failed to establish session")
		h.fail(c, msgInternalError)
		return
	}
	h.Cookies.Set(c, token, exp)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Sessions.Destroy(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Warn("failed to destroy session on logout")
		}
	}
	h.Cookies.Clear(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) fail(c *gin.Context, msg string) {
	render.Page(c, http.StatusOK, "login.html", gin.H{"Error": msg})
}
