package routes

import (
	"time"

	"congtrinh/controllers"
	middlewares "congtrinh/middleware"
	"congtrinh/services"
	"congtrinh/services/logger"
	"congtrinh/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	notifier := notification.NewMelodyService(m)

	payrollService := services.NewPayrollService(services.PayrollServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	cashflowService := services.NewCashflowService(services.CashflowServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	dashboardService := services.NewDashboardService(services.DashboardServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	searchService := services.NewSearchService(db)

	workerController := controllers.NewWorkerController(db, redisCli)
	projectController := controllers.NewProjectController(db, redisCli)
	attendanceController := controllers.NewAttendanceController(db, redisCli, notifier)
	receiptController := controllers.NewReceiptController(db, redisCli, notifier)
	expenseController := controllers.NewExpenseController(db, redisCli)
	materialController := controllers.NewMaterialController(db, redisCli)
	hireController := controllers.NewExternalHireController(db, redisCli)
	payrollController := controllers.NewPayrollController(payrollService)
	cashflowController := controllers.NewCashflowController(cashflowService)
	dashboardController := controllers.NewDashboardController(dashboardService, redisCli)
	exportController := controllers.NewExportController(payrollService, cashflowService)
	searchController := controllers.NewSearchController(searchService)

	router.Use(middlewares.SessionMiddleware())
	router.Use(middlewares.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", middlewares.RateLimitMiddleware(redisCli, 10, time.Minute), controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/workers", middlewares.AuthMiddleware(1, 2, 3), workerController.GetWorkers)
	v1.POST("/workers", middlewares.AuthMiddleware(1, 2), workerController.CreateWorker)
	v1.GET("/workers/:id", middlewares.AuthMiddleware(1, 2, 3), workerController.GetWorkerDetail)
	v1.PUT("/workers", middlewares.AuthMiddleware(1, 2), workerController.UpdateWorker)
	v1.PUT("/workerStatus", middlewares.AuthMiddleware(1, 2), workerController.ChangeWorkerStatus)

	v1.GET("/projects", middlewares.AuthMiddleware(1, 2, 3), projectController.GetProjects)
	v1.POST("/projects", middlewares.AuthMiddleware(1, 2), projectController.CreateProject)
	v1.GET("/projects/:id", middlewares.AuthMiddleware(1, 2, 3), projectController.GetProjectDetail)
	v1.PUT("/projects", middlewares.AuthMiddleware(1, 2), projectController.UpdateProject)
	v1.PUT("/projectStatus", middlewares.AuthMiddleware(1, 2), projectController.ChangeProjectStatus)

	v1.GET("/attendances", middlewares.AuthMiddleware(1, 2, 3), attendanceController.GetAttendances)
	v1.POST("/attendances", middlewares.AuthMiddleware(1, 2, 3), attendanceController.CreateAttendance)
	v1.PUT("/attendances", middlewares.AuthMiddleware(1, 2, 3), attendanceController.UpdateAttendance)
	v1.DELETE("/attendances/:id", middlewares.AuthMiddleware(1, 2), attendanceController.DeleteAttendance)

	v1.GET("/receipts", middlewares.AuthMiddleware(1, 2), receiptController.GetReceipts)
	v1.POST("/receipts", middlewares.AuthMiddleware(1, 2), receiptController.CreateReceipt)
	v1.PUT("/receipts", middlewares.AuthMiddleware(1, 2), receiptController.UpdateReceipt)
	v1.DELETE("/receipts/:id", middlewares.AdminOnly(), receiptController.DeleteReceipt)

	v1.GET("/expenses", middlewares.AuthMiddleware(1, 2), expenseController.GetExpenses)
	v1.POST("/expenses", middlewares.AuthMiddleware(1, 2), expenseController.CreateExpense)
	v1.PUT("/expenses", middlewares.AuthMiddleware(1, 2), expenseController.UpdateExpense)
	v1.DELETE("/expenses/:id", middlewares.AdminOnly(), expenseController.DeleteExpense)

	v1.GET("/materials", middlewares.AuthMiddleware(1, 2, 3), materialController.GetMaterials)
	v1.POST("/materials", middlewares.AuthMiddleware(1, 2, 3), materialController.CreateMaterial)
	v1.PUT("/materials", middlewares.AuthMiddleware(1, 2), materialController.UpdateMaterial)
	v1.DELETE("/materials/:id", middlewares.AuthMiddleware(1, 2), materialController.DeleteMaterial)

	v1.GET("/externalHires", middlewares.AuthMiddleware(1, 2), hireController.GetExternalHires)
	v1.POST("/externalHires", middlewares.AuthMiddleware(1, 2), hireController.CreateExternalHire)
	v1.PUT("/externalHires", middlewares.AuthMiddleware(1, 2), hireController.UpdateExternalHire)
	v1.DELETE("/externalHires/:id", middlewares.AdminOnly(), hireController.DeleteExternalHire)

	v1.GET("/payroll", middlewares.AuthMiddleware(1, 2), payrollController.GetMonthlyPayroll)
	v1.GET("/payroll/workers/:id", middlewares.AuthMiddleware(1, 2), payrollController.GetWorkerPayroll)
	v1.GET("/payrollDetail", middlewares.AuthMiddleware(1, 2), payrollController.GetPayrollDetail)

	v1.GET("/cashflow/projects/:id", middlewares.AuthMiddleware(1, 2), cashflowController.GetProjectCashflow)

	v1.GET("/dashboard", middlewares.AuthMiddleware(1, 2, 3), dashboardController.GetOverview)

	v1.GET("/export/payroll/excel", middlewares.AuthMiddleware(1, 2), exportController.ExportPayrollExcel)
	v1.GET("/export/payroll/pdf", middlewares.AuthMiddleware(1, 2), exportController.ExportPayrollPDF)
	v1.GET("/export/cashflow/:id/excel", middlewares.AuthMiddleware(1, 2), exportController.ExportCashflowExcel)
	v1.GET("/export/cashflow/:id/pdf", middlewares.AuthMiddleware(1, 2), exportController.ExportCashflowPDF)

	v1.GET("/search", middlewares.AuthMiddleware(1, 2, 3), searchController.Search)
}
