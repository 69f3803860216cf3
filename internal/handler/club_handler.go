package handler

import (
	"net/http"
	"strconv"

	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	svc *service.ClubService
}

// ClubReq 创建/更新共用
type ClubReq struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	MembershipFee float64 `json:"membershipFee"`
}

func NewClubHandler() *ClubHandler {
	return &ClubHandler{
		svc: service.NewClubService(),
	}
}

func (h *ClubHandler) List(c *gin.Context) {
	list, err := h.svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// Create 创建者自动成为群主
func (h *ClubHandler) Create(c *gin.Context) {
	var req ClubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	club, err := h.svc.Create(actorFrom(c), req.Name, req.Description, req.MembershipFee)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": club.ID, "msg": "ok"})
}

func (h *ClubHandler) Update(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req ClubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Update(actorFrom(c), clubID, req.Name, req.Description, req.MembershipFee); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Delete 连同成员、活动、流水一起删
func (h *ClubHandler) Delete(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.Delete(actorFrom(c), clubID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
