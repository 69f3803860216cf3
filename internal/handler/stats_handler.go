package handler

import (
	"net/http"

	"Club_Manager/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{
		svc: service.NewStatsService(),
	}
}

func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.svc.Overview(actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Export CSV 下载，带 BOM 方便 Excel 识别 UTF-8
func (h *StatsHandler) Export(c *gin.Context) {
	csv, err := h.svc.ExportCSV(actorFrom(c))
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="statistics.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte("\ufeff"+csv))
}
