package handler

import (
	"net/http"
	"strconv"
	"time"

	"Club_Manager/internal/model"
	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

// EventReq 时间字段按 RFC3339 解析
type EventReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	EventType   string     `json:"eventType"`
	Price       float64    `json:"price"`
}

func NewEventHandler() *EventHandler {
	return &EventHandler{
		svc: service.NewEventService(),
	}
}

func (r EventReq) toInput() service.EventInput {
	eventType := r.EventType
	if eventType == "" {
		eventType = model.EventFree
	}
	return service.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		EventType:   eventType,
		Price:       r.Price,
	}
}

func (h *EventHandler) List(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.ListByClub(actorFrom(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *EventHandler) Create(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	event, err := h.svc.Create(actorFrom(c), clubID, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": event.ID, "msg": "ok"})
}

func (h *EventHandler) Update(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	eventID, _ := strconv.ParseUint(c.Param("eventId"), 10, 64)

	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(actorFrom(c), clubID, eventID, req.toInput()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Get 详情带报名数和当前用户报名状态
func (h *EventHandler) Get(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	eventID, _ := strconv.ParseUint(c.Param("eventId"), 10, 64)

	detail, err := h.svc.Get(actorFrom(c), clubID, eventID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *EventHandler) Register(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("eventId"), 10, 64)

	if err := h.svc.Register(actorFrom(c), eventID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *EventHandler) Unregister(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("eventId"), 10, 64)

	if err := h.svc.Unregister(actorFrom(c), eventID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// PaymentsReport 俱乐部全部收费活动的对账报表
func (h *EventHandler) PaymentsReport(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	reports, err := h.svc.PaymentsReport(actorFrom(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": reports})
}

// RecordPayment 登记某个成员的活动缴费
func (h *EventHandler) RecordPayment(c *gin.Context) {
	eventID, _ := strconv.ParseUint(c.Param("eventId"), 10, 64)

	var req struct {
		UserID uint64  `json:"userId"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.RecordPayment(actorFrom(c), eventID, req.UserID, req.Amount); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
