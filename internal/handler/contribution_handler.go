package handler

import (
	"net/http"
	"strconv"

	"Club_Manager/internal/pkg"
	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type ContributionHandler struct {
	svc *service.ContributionService
}

func NewContributionHandler(smtp pkg.SMTPConfig) *ContributionHandler {
	return &ContributionHandler{
		svc: service.NewContributionService(smtp),
	}
}

// Overview 当月会费单 + 成员名单
func (h *ContributionHandler) Overview(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	overview, err := h.svc.Overview(actorFrom(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Generate 为当月没有会费单的成员补生成，重复调用无副作用
func (h *ContributionHandler) Generate(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	month, err := h.svc.Generate(actorFrom(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "msg": "ok"})
}

// Pay 标记某条会费为已缴
func (h *ContributionHandler) Pay(c *gin.Context) {
	contributionID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.MarkPaid(actorFrom(c), contributionID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
