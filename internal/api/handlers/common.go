package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirestack/hirestack/internal/api/middleware"
	"github.com/hirestack/hirestack/internal/utils"
)

// APIError is the wire shape every failure takes. Message is always safe
// for end users; internal causes stay in the server logs.
type APIError struct {
	Success bool       `json:"success"`
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Success: false,
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Success: false,
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireActor(c *gin.Context) (middleware.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok || actor.UserID == "" {
		writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
		return middleware.Actor{}, false
	}
	return actor, true
}
