package handler

import (
	"net/http"
	"strconv"

	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	svc *service.FinanceService
}

func NewFinanceHandler() *FinanceHandler {
	return &FinanceHandler{
		svc: service.NewFinanceService(),
	}
}

// Overview 流水 + 支出 + 现算余额
func (h *FinanceHandler) Overview(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	overview, err := h.svc.Overview(actorFrom(c), clubID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *FinanceHandler) AddIncome(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req struct {
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		UserID      *uint64 `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.AddIncome(actorFrom(c), clubID, req.Amount, req.Description, req.UserID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *FinanceHandler) AddExpense(c *gin.Context) {
	clubID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req struct {
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.AddExpense(actorFrom(c), clubID, req.Amount, req.Description); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
