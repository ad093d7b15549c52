package payroll

import (
	"github.com/CASADINKE/eiffagerh-sub000/internal/middleware"
	"github.com/CASADINKE/eiffagerh-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetAll)
		payslips.GET("/summary", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.Summary)
		payslips.GET("/employee/:employeeId", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetByEmployee)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetById)
		payslips.GET("/:id/document/download", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.DownloadDocument)
		if redisClient != nil {
			payslips.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "payslip", "create"),
				handler.Create,
			)
		} else {
			payslips.POST("", middleware.RBACAuthorize(rbacService, "payslip", "create"), handler.Create)
		}
		payslips.PUT("/:id", middleware.RBACAuthorize(rbacService, "payslip", "update"), handler.Update)
		payslips.POST("/:id/transition", middleware.RBACAuthorize(rbacService, "payslip", "transition"), handler.Transition)
		payslips.POST("/:id/validate", middleware.RBACAuthorize(rbacService, "payslip", "transition"), handler.Validate)
		payslips.POST("/:id/mark-paid", middleware.RBACAuthorize(rbacService, "payslip", "pay"), handler.MarkPaid)
		payslips.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payslip", "delete"), handler.Delete)
	}
}
