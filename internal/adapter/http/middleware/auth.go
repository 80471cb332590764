package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rhive/internal/core/domain"
	"rhive/internal/core/ports"
	"rhive/pkg/apierrors"
)

const currentUserKey = "currentUser"

type session struct {
	userID    string
	expiresAt time.Time
}

// SessionManager issues and resolves bearer tokens for the single active
// session model. Tokens live in memory only; restarting the process logs
// everyone out, which is fine for a per-profile tracker.
type SessionManager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]session
}

func NewSessionManager(ttl time.Duration) *SessionManager {
	return &SessionManager{
		ttl:      ttl,
		sessions: make(map[string]session),
	}
}

func (m *SessionManager) Issue(userID string) string {
	token := uuid.NewString()
	m.mu.Lock()
	m.sessions[token] = session{userID: userID, expiresAt: time.Now().Add(m.ttl)}
	m.mu.Unlock()
	return token
}

func (m *SessionManager) Resolve(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.sessions, token)
		return "", false
	}
	return entry.userID, true
}

func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// AuthRequired resolves the bearer token and loads the authenticated user
// into the request context.
func AuthRequired(sessions *SessionManager, users ports.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		userID, ok := sessions.Resolve(BearerToken(c))
		if !ok {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgSessionRequired, lang),
			)
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			// Session outlived the user record (removed by an admin).
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgSessionRequired, lang),
			)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// AdminRequired gates admin-initiated operations. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgAdminRequired, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) domain.User {
	if value, exists := c.Get(currentUserKey); exists {
		if user, ok := value.(domain.User); ok {
			return user
		}
	}
	return domain.User{}
}

func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
