package relay

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AweFilko/PIB-SQL-injection/pkg/render"
)

// Relay inspects every request parameter and forwards clean requests to a
// fixed upstream, returning the upstream response verbatim.
type Relay struct {
	Upstream string
	Client   *http.Client
	Logger   *logrus.Logger
	Audit    AuditPublisher
}

func New(upstream string, logger *logrus.Logger, audit AuditPublisher) *Relay {
	return &Relay{
		Upstream: strings.TrimRight(upstream, "/"),
		// Redirects are relayed to the client as-is, not followed; the
		// browser must see the backend's 302 and session cookie.
		Client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Logger: logger,
		Audit:  audit,
	}
}

// maxFormMemory bounds in-memory parsing of multipart bodies.
const maxFormMemory = 32 << 20

// parsePostForm fills PostForm for urlencoded and multipart bodies
// alike. Multipart file parts are ignored; only field values matter to
// the classifier and the forwarder.
func parsePostForm(req *http.Request) {
	_ = req.ParseMultipartForm(maxFormMemory)
}

// Inspect classifies every query-string and form value. A single match
// blocks the request with 403 before anything is forwarded.
func (r *Relay) Inspect() gin.HandlerFunc {
	return func(c *gin.Context) {
		for param, vals := range c.Request.URL.Query() {
			for _, v := range vals {
				if LooksLikeInjection(v) {
					r.block(c, "query", param, v)
					return
				}
			}
		}
		if c.Request.Method == http.MethodPost {
			parsePostForm(c.Request)
			for param, vals := range c.Request.PostForm {
				for _, v := range vals {
					if LooksLikeInjection(v) {
						r.block(c, "form", param, v)
						return
					}
				}
			}
		}
		c.Next()
	}
}

func (r *Relay) block(c *gin.Context, source, param, value string) {
	r.Logger.WithFields(logrus.Fields{
		"source": source,
		"param":  param,
		"path":   c.Request.URL.Path,
		"ip":     c.ClientIP(),
	}).Warn("blocked suspicious request")

	if r.Audit != nil {
		ev := BlockedEvent{
			Time:      time.Now().UTC(),
			RequestID: c.GetString("request_id"),
			ClientIP:  c.ClientIP(),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Source:    source,
			Param:     param,
			Value:     value,
		}
		if err := r.Audit.PublishJSON(c.Request.Context(), ev); err != nil {
			r.Logger.WithError(err).Warn("failed to publish audit event")
		}
	}
	render.Blocked(c)
}

// Forward relays the request to the upstream and copies status, headers
// and body back unchanged. POST bodies are re-encoded as urlencoded
// form fields, so multipart field values survive the hop but file parts
// do not. An unreachable upstream is not handled here: the panic is
// recovered by the engine's recovery middleware as a request-scoped
// 500, matching the relay's fail-loud contract.
func (r *Relay) Forward() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
			c.AbortWithStatus(http.StatusMethodNotAllowed)
			return
		}

		target := r.Upstream + c.Request.URL.Path
		ctx := c.Request.Context()

		var (
			req *http.Request
			err error
		)
		if c.Request.Method == http.MethodPost {
			parsePostForm(c.Request)
			req, err = http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(c.Request.PostForm.Encode()))
			if req != nil {
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			}
		} else {
			req, err = http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
			if req != nil {
				req.URL.RawQuery = c.Request.URL.RawQuery
			}
		}
		if err != nil {
			panic(err)
		}

		resp, err := r.Client.Do(req)
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			panic(err)
		}

		header := c.Writer.Header()
		for k, vals := range resp.Header {
			for _, v := range vals {
				header.Add(k, v)
			}
		}
		c.Writer.WriteHeader(resp.StatusCode)
		_, _ = c.Writer.Write(body)
	}
}
