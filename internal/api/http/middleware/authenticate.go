package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/quizzme-server/internal/logger"
	"github.com/dtroode/quizzme-server/internal/model"
)

// SessionCookie is the cookie the identity provider stores its session token in.
const SessionCookie = "__session"

// Authenticate resolves the signed-in owner from the session token and
// stores it in the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	signInURL      string
	logger         *logger.Logger
}

func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, signInURL string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		contextManager: contextManager,
		signInURL:      signInURL,
		logger:         logger,
	}
}

// API rejects requests without a valid session with 401.
func (m *Authenticate) API(c *gin.Context) {
	if !m.authenticate(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
		return
	}
	c.Next()
}

// Page redirects requests without a valid session to the sign-in page.
func (m *Authenticate) Page(c *gin.Context) {
	if !m.authenticate(c) {
		c.Redirect(http.StatusFound, m.signInRedirect(c.Request.URL.RequestURI()))
		c.Abort()
		return
	}
	c.Next()
}

func (m *Authenticate) authenticate(c *gin.Context) bool {
	token := extractToken(c)
	if token == "" {
		m.logger.Debug("Authenticate middleware: missing session token", "path", c.Request.URL.Path)
		return false
	}

	owner, err := m.tokenManager.ParseSessionToken(token)
	if err != nil || owner == "" {
		m.logger.Info("Authenticate middleware: invalid session token",
			"path", c.Request.URL.Path,
			"error", errString(err))
		return false
	}

	ctx := m.contextManager.SetOwnerToContext(c.Request.Context(), owner)
	c.Request = c.Request.WithContext(ctx)
	return true
}

func (m *Authenticate) signInRedirect(returnTo string) string {
	u, err := url.Parse(m.signInURL)
	if err != nil {
		return m.signInURL
	}
	q := u.Query()
	q.Set("redirect_url", returnTo)
	u.RawQuery = q.Encode()
	return u.String()
}

// extractToken reads a bearer token, falling back to the session cookie.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
