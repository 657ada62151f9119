package routes

import (
	"github.com/admitpath/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(admin *gin.RouterGroup, adminController *controllers.AdminController) {
	admin.GET("/stats", adminController.GetStats)

	admin.GET("/reports", adminController.GetReports)
	admin.PUT("/reports/:id", adminController.UpdateReportStatus)
	admin.DELETE("/reports/:id", adminController.DeleteReport)

	admin.GET("/users", adminController.GetUsers)
	admin.PUT("/users/:id/role", adminController.UpdateUserRole)
	admin.DELETE("/users/:id", adminController.DeleteUser)

	admin.GET("/audit-logs", adminController.GetAuditLogs)
	admin.POST("/audit-logs/export", adminController.ExportAuditLogs)

	admin.GET("/school-deadlines", adminController.GetSchoolDeadlines)
	admin.POST("/school-deadlines", adminController.CreateSchoolDeadline)
	admin.PUT("/school-deadlines/:id", adminController.UpdateSchoolDeadline)
	admin.DELETE("/school-deadlines/:id", adminController.DeleteSchoolDeadline)

	admin.GET("/global-events", adminController.GetGlobalEvents)
	admin.POST("/global-events", adminController.CreateGlobalEvent)
	admin.PUT("/global-events/:id", adminController.UpdateGlobalEvent)
	admin.DELETE("/global-events/:id", adminController.DeleteGlobalEvent)
}
