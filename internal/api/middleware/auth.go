package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/hirestack/internal/services"
	"github.com/hirestack/hirestack/internal/token"
	"github.com/hirestack/hirestack/internal/utils"
)

// Context keys shared with the handlers.
const (
	ctxKeySubject = "subject_id"
	ctxKeyEmail   = "subject_email"
	ctxKeyPhone   = "subject_phone"
	ctxKeyActor   = "actor"
)

// Reason codes for token rejections, so clients can tell a stale session
// from a broken one.
const (
	ReasonTokenExpired   = "TOKEN_EXPIRED"
	ReasonInvalidToken   = "INVALID_TOKEN"
	ReasonWrongTokenType = "INVALID_TOKEN_TYPE"
)

// Actor is the authenticated identity context attached to every
// protected request. CompanyID is empty until the user registers a
// company.
type Actor struct {
	UserID    string
	SubjectID string
	Email     string
	CompanyID string
}

type authError struct {
	Success bool       `json:"success"`
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
	Reason  string     `json:"reason,omitempty"`
}

func abortAuth(c *gin.Context, status int, code utils.Code, message, reason string) {
	c.AbortWithStatusJSON(status, authError{
		Success: false,
		Code:    code,
		Message: message,
		Reason:  reason,
	})
}

// TokenAuth verifies the bearer token and stashes the verified subject
// claims. It never touches the store.
func TokenAuth(tm *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "authorization header missing", "")
			return
		}

		scheme, raw, found := strings.Cut(auth, " ")
		if !found || scheme != "Bearer" || strings.TrimSpace(raw) == "" {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "invalid authorization header format", "")
			return
		}

		claims, err := tm.Parse(strings.TrimSpace(raw))
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized,
					"your session has expired, sign in again", ReasonTokenExpired)
			case errors.Is(err, token.ErrWrongType):
				abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized,
					"wrong token type, sign in to obtain an access token", ReasonWrongTokenType)
			default:
				abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized,
					"invalid authentication token, sign in again", ReasonInvalidToken)
			}
			return
		}

		c.Set(ctxKeySubject, claims.Subject)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyPhone, claims.Phone)
		c.Next()
	}
}

// RequireUser resolves the verified subject to the internal user via
// find-or-create and attaches the Actor. A persistence failure aborts
// the request; downstream code never sees a partial actor.
func RequireUser(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(ctxKeySubject)
		if subject == "" {
			abortAuth(c, http.StatusUnauthorized, utils.CodeUnauthorized, "subject not found in request", "")
			return
		}

		u, err := auth.Resolve(c.Request.Context(), subject, c.GetString(ctxKeyEmail), c.GetString(ctxKeyPhone))
		if err != nil {
			code := utils.CodeInternal
			var ae *utils.AppError
			if errors.As(err, &ae) {
				code = ae.Code
			}
			abortAuth(c, utils.HTTPStatus(err), code, "user authentication failed", "")
			return
		}

		actor := Actor{
			UserID:    u.ID,
			SubjectID: subject,
			Email:     u.Email,
		}
		if u.CompanyID != nil {
			actor.CompanyID = *u.CompanyID
		}
		c.Set(ctxKeyActor, actor)
		c.Next()
	}
}

// ActorFrom returns the actor attached by RequireUser.
func ActorFrom(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(ctxKeyActor)
	if !ok {
		return Actor{}, false
	}
	a, ok := v.(Actor)
	return a, ok
}
