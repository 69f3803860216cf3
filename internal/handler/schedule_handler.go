package handler

import (
	"net/http"
	"strconv"

	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{
		svc: service.NewScheduleService(),
	}
}

func (h *ScheduleHandler) List(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.ListByClub(actorFrom(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// Add dayOfWeek 0=周日 ... 6=周六，duration 单位分钟
func (h *ScheduleHandler) Add(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req struct {
		DayOfWeek   int    `json:"dayOfWeek"`
		Time        string `json:"time"`
		Duration    int    `json:"duration"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	schedule, err := h.svc.Add(actorFrom(c), clubID, req.DayOfWeek, req.Time, req.Duration, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": schedule.ID, "msg": "ok"})
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	scheduleID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Delete(actorFrom(c), scheduleID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
