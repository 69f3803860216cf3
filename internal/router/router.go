package router

import (
	"Club_Manager/internal/config"
	"Club_Manager/internal/handler"
	"Club_Manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	user := handler.NewUserHandler()
	club := handler.NewClubHandler()
	membership := handler.NewMembershipHandler()
	event := handler.NewEventHandler()
	finance := handler.NewFinanceHandler()
	schedule := handler.NewScheduleHandler()
	contribution := handler.NewContributionHandler(cfg.SMTP)
	stats := handler.NewStatsHandler()

	// 免登录接口
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", user.Register)
		authGroup.POST("/login", user.Login)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/auth/logout", user.Logout)

		// 用户管理
		api.GET("/users", user.List)
		api.PUT("/users/:id/role", user.UpdateRole)

		// 俱乐部
		api.GET("/clubs", club.List)
		api.POST("/clubs", club.Create)
		api.PUT("/clubs/:id", club.Update)
		api.DELETE("/clubs/:id", club.Delete)

		// 成员
		api.GET("/clubs/:id/members", membership.Members)
		api.POST("/clubs/:id/members", membership.AddMember)
		api.POST("/clubs/:id/join", membership.Join)
		api.DELETE("/clubs/:id/leave", membership.Leave)
		api.DELETE("/clubs/:id/members/:userId", membership.RemoveMember)

		// 活动，payments 是静态段要先注册
		api.GET("/clubs/:id/events/payments", event.PaymentsReport)
		api.GET("/clubs/:id/events", event.List)
		api.POST("/clubs/:id/events", event.Create)
		api.GET("/clubs/:id/events/:eventId", event.Get)
		api.PUT("/clubs/:id/events/:eventId", event.Update)
		api.POST("/events/:eventId/register", event.Register)
		api.DELETE("/events/:eventId/unregister", event.Unregister)
		api.POST("/events/:eventId/payments", event.RecordPayment)

		// 财务
		api.GET("/clubs/:id/finances", finance.Overview)
		api.POST("/clubs/:id/finances/income", finance.AddIncome)
		api.POST("/clubs/:id/finances/expense", finance.AddExpense)

		// 周课表
		api.GET("/clubs/:id/schedules", schedule.List)
		api.POST("/clubs/:id/schedules", schedule.Add)
		api.DELETE("/schedules/:id", schedule.Delete)

		// 月度会费
		api.GET("/clubs/:id/contributions", contribution.Overview)
		api.POST("/clubs/:id/contributions", contribution.Generate)
		api.POST("/contributions/:id/pay", contribution.Pay)

		// 全局统计
		api.GET("/statistics", stats.Overview)
		api.GET("/statistics/export", stats.Export)
	}

	return r
}
