package handler

import (
	"errors"
	"net/http"

	"Club_Manager/internal/middleware"
	"Club_Manager/internal/pkg"
	"Club_Manager/internal/policy"
	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

// actorFrom 中间件已经注入 user_id 和 role
func actorFrom(c *gin.Context) policy.Actor {
	actor := policy.Actor{}
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok := v.(uint64); ok {
			actor.ID = id
		}
	}
	if v, ok := c.Get(middleware.ContextRoleKey); ok {
		if role, ok := v.(string); ok {
			actor.Role = role
		}
	}
	return actor
}

// fail 业务错误统一映射 HTTP 状态码，
// 没认出来的错误一律 500，细节只进日志不外泄
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrClubNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrScheduleNotFound),
		errors.Is(err, service.ErrContributionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyMember),
		errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrOwnerCannotLeave),
		errors.Is(err, service.ErrAlreadyRegistered),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrContributionPaid):
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	default:
		pkg.Log.Errorf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal server error"})
	}
}
