package app

import (
	"database/sql"

	"github.com/CASADINKE/eiffagerh-sub000/internal/bootstrap"
	"github.com/CASADINKE/eiffagerh-sub000/internal/employee"
	"github.com/CASADINKE/eiffagerh-sub000/internal/leave"
	"github.com/CASADINKE/eiffagerh-sub000/internal/messaging/kafka"
	"github.com/CASADINKE/eiffagerh-sub000/internal/notification"
	"github.com/CASADINKE/eiffagerh-sub000/internal/payroll"
	"github.com/CASADINKE/eiffagerh-sub000/internal/rbac"
	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	payrollCfg payroll.Config,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payslipRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	auditLogger := bootstrap.NewStdoutAuditLogger()
	employeeService := employee.NewService(employeeRepo)
	notificationService := notification.NewService(notificationRepo, employeeRepo)
	leaveService := leave.NewServiceWithNotifier(db, leaveRepo, notificationService, outboxRepo)
	payslipService := payroll.NewServiceWithOutbox(db, payslipRepo, counterRepo, outboxRepo, auditLogger, payrollCfg)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	notificationHandler := notification.NewHandler(notificationService)
	payslipHandler := payroll.NewHandlerWithRedis(payslipService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
		payroll.RegisterRoutes(api, payslipHandler, rbacService, rdb)
	}

	return nil
}
