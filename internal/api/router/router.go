package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/config"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/api/handler"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/api/middleware"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/jwt"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	{
		// 认证模块（无需认证；登录/注册限流防爆破）
		loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
		auth := api.Group("/auth")
		{
			auth.POST("/register", loginLimit, h.Auth.Register)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 学期模块
			semester := authorized.Group("/semester")
			{
				semester.GET("/config", h.Semester.GetConfig)
				semester.POST("/config", h.Semester.CreateConfig)
				semester.PUT("/config/:id", h.Semester.UpdateConfig)
				semester.GET("/all", h.Semester.ListAll)
				semester.GET("/archived", h.Semester.ListArchived)
				semester.GET("/history", h.Semester.History)
				semester.POST("/check-expiration", h.Semester.CheckExpiration)
				semester.POST("/archive", h.Semester.Archive)
				semester.GET("/events", h.Semester.ListEvents)
				semester.POST("/events", h.Semester.CreateEvent)
				semester.DELETE("/events/:id", h.Semester.DeleteEvent)
				semester.GET("/calendar.ics", h.Export.SemesterCalendar)
				semester.GET("/:id", h.Semester.GetSemester)
			}

			// 课程表模块
			timetable := authorized.Group("/timetable")
			{
				timetable.GET("", h.Timetable.List)
				timetable.POST("", h.Timetable.Create)
				timetable.PUT("/:id", h.Timetable.Update)
				timetable.DELETE("/:id", h.Timetable.Delete)
			}

			// 作业模块
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", h.Assignment.List)
				assignments.POST("", h.Assignment.Create)
				assignments.PUT("/:id", h.Assignment.Update)
				assignments.DELETE("/:id", h.Assignment.Delete)
			}

			// 考试模块
			exams := authorized.Group("/exams")
			{
				exams.GET("", h.Exam.List)
				exams.POST("", h.Exam.Create)
				exams.PUT("/:id", h.Exam.Update)
				exams.DELETE("/:id", h.Exam.Delete)
			}

			// 待办模块
			tasks := authorized.Group("/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.POST("", h.Task.Create)
				tasks.PUT("/:id", h.Task.Update)
				tasks.DELETE("/:id", h.Task.Delete)
			}

			// 钱包模块
			wallets := authorized.Group("/wallets")
			{
				wallets.GET("", h.Wallet.List)
				wallets.POST("", h.Wallet.Create)
				wallets.PUT("/:id", h.Wallet.Update)
				wallets.DELETE("/:id", h.Wallet.Delete)
			}

			// 收支记录模块
			transactions := authorized.Group("/transactions")
			{
				transactions.GET("", h.Transaction.List)
				transactions.POST("", h.Transaction.Create)
				transactions.PUT("/:id", h.Transaction.Update)
				transactions.DELETE("/:id", h.Transaction.Delete)
			}

			// 笔记模块
			notes := authorized.Group("/notes")
			{
				notes.GET("", h.Note.List)
				notes.POST("", h.Note.Create)
				notes.PUT("/:id", h.Note.Update)
				notes.DELETE("/:id", h.Note.Delete)
			}

			// 习惯打卡模块
			habits := authorized.Group("/habits")
			{
				habits.GET("", h.Habit.List)
				habits.POST("", h.Habit.Create)
				habits.PUT("/:id", h.Habit.Update)
				habits.POST("/:id/toggle", h.Habit.Toggle)
				habits.DELETE("/:id", h.Habit.Delete)
			}

			// 债务模块
			debts := authorized.Group("/debts")
			{
				debts.GET("", h.Debt.List)
				debts.POST("", h.Debt.Create)
				debts.PUT("/:id", h.Debt.Update)
				debts.DELETE("/:id", h.Debt.Delete)
			}

			// 个人日程模块
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.POST("", h.Event.Create)
				events.PUT("/:id", h.Event.Update)
				events.DELETE("/:id", h.Event.Delete)
			}

			// 共同支出模块
			sharedExpenses := authorized.Group("/shared-expenses")
			{
				sharedExpenses.GET("", h.SharedExpense.List)
				sharedExpenses.POST("", h.SharedExpense.Create)
				sharedExpenses.PUT("/:id", h.SharedExpense.Update)
				sharedExpenses.DELETE("/:id", h.SharedExpense.Delete)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/transactions", h.Export.ExportTransactions)
			}
		}
	}

	return r
}
