package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/admitpath/api-go/repository"
	"github.com/admitpath/api-go/services"
	"github.com/admitpath/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminController binds HTTP parameters to AdminService calls. All business
// rules live in the service.
type AdminController struct {
	Service services.AdminService
}

func NewAdminController(service services.AdminService) *AdminController {
	return &AdminController{Service: service}
}

func respondError(c *gin.Context, err error) {
	var serviceErr *services.ServiceError
	if errors.As(err, &serviceErr) {
		c.JSON(serviceErr.Status, gin.H{"error": serviceErr.Message, "success": false})
		return
	}

	logrus.WithError(err).WithField("path", c.FullPath()).Error("Admin request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "success": false})
}

func currentAdmin(c *gin.Context) (*utils.UserClaims, bool) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return nil, false
	}
	return user, true
}

func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Service.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func (ac *AdminController) GetReports(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	filter := repository.ReportFilter{
		Status:     c.Query("status"),
		TargetType: c.Query("targetType"),
	}

	result, err := ac.Service.GetReports(c.Request.Context(), filter, repository.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AdminController) UpdateReportStatus(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	reportID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id", "success": false})
		return
	}

	var input struct {
		Status     string `json:"status" binding:"required"`
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	report, err := ac.Service.UpdateReportStatus(c.Request.Context(), admin.UserID, reportID, input.Status, input.Resolution)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

func (ac *AdminController) DeleteReport(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	reportID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id", "success": false})
		return
	}

	if err := ac.Service.DeleteReport(c.Request.Context(), admin.UserID, reportID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Report deleted successfully"})
}

func (ac *AdminController) GetUsers(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	filter := repository.UserFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
	}

	result, err := ac.Service.GetUsers(c.Request.Context(), filter, repository.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	userID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id", "success": false})
		return
	}

	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	user, err := ac.Service.UpdateUserRole(c.Request.Context(), admin.UserID, userID, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	userID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id", "success": false})
		return
	}

	if err := ac.Service.DeleteUser(c.Request.Context(), admin.UserID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

func auditLogFilter(c *gin.Context) repository.AuditLogFilter {
	filter := repository.AuditLogFilter{
		Action:   c.Query("action"),
		Resource: c.Query("resource"),
	}
	if raw := c.Query("adminId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.ActorID = uint(id)
		}
	}
	if raw := c.Query("from"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = &t
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = &t
		}
	}
	return filter
}

func (ac *AdminController) GetAuditLogs(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := ac.Service.GetAuditLogs(c.Request.Context(), auditLogFilter(c), repository.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AdminController) ExportAuditLogs(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	result, err := ac.Service.ExportAuditLogs(c.Request.Context(), admin.UserID, auditLogFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

func (ac *AdminController) GetSchoolDeadlines(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	filter := repository.DeadlineFilter{}
	if raw := c.Query("schoolId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.SchoolID = uint(id)
		}
	}
	if raw := c.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.Year = year
		}
	}

	result, err := ac.Service.GetSchoolDeadlines(c.Request.Context(), filter, repository.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AdminController) CreateSchoolDeadline(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	var input struct {
		SchoolID uint      `json:"schoolId" binding:"required"`
		Year     int       `json:"year" binding:"required"`
		Round    string    `json:"round" binding:"required"`
		DueAt    time.Time `json:"dueAt" binding:"required"`
		Notes    string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	deadline, err := ac.Service.CreateSchoolDeadline(c.Request.Context(), admin.UserID, services.CreateDeadlineInput{
		SchoolID: input.SchoolID,
		Year:     input.Year,
		Round:    input.Round,
		DueAt:    input.DueAt,
		Notes:    input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": deadline})
}

func (ac *AdminController) UpdateSchoolDeadline(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	deadlineID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline id", "success": false})
		return
	}

	var input struct {
		DueAt *time.Time `json:"dueAt"`
		Notes *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	deadline, err := ac.Service.UpdateSchoolDeadline(c.Request.Context(), admin.UserID, deadlineID, services.UpdateDeadlineInput{
		DueAt: input.DueAt,
		Notes: input.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": deadline})
}

func (ac *AdminController) DeleteSchoolDeadline(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	deadlineID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline id", "success": false})
		return
	}

	if err := ac.Service.DeleteSchoolDeadline(c.Request.Context(), admin.UserID, deadlineID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Deadline deleted successfully"})
}

func (ac *AdminController) GetGlobalEvents(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)
	filter := repository.EventFilter{Category: c.Query("category")}
	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}

	result, err := ac.Service.GetGlobalEvents(c.Request.Context(), filter, repository.PageParams{Page: page, PageSize: pageSize})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ac *AdminController) CreateGlobalEvent(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	var input struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		Category    string     `json:"category"`
		Tags        []string   `json:"tags"`
		StartsAt    time.Time  `json:"startsAt" binding:"required"`
		EndsAt      *time.Time `json:"endsAt"`
		Recurring   bool       `json:"recurring"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	event, err := ac.Service.CreateGlobalEvent(c.Request.Context(), admin.UserID, services.CreateEventInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Recurring:   input.Recurring,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
}

func (ac *AdminController) UpdateGlobalEvent(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	eventID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id", "success": false})
		return
	}

	var input struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Category    *string    `json:"category"`
		Tags        []string   `json:"tags"`
		StartsAt    *time.Time `json:"startsAt"`
		EndsAt      *time.Time `json:"endsAt"`
		Recurring   *bool      `json:"recurring"`
		Active      *bool      `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	event, err := ac.Service.UpdateGlobalEvent(c.Request.Context(), admin.UserID, eventID, services.UpdateEventInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Recurring:   input.Recurring,
		Active:      input.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": event})
}

func (ac *AdminController) DeleteGlobalEvent(c *gin.Context) {
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	eventID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id", "success": false})
		return
	}

	if err := ac.Service.DeleteGlobalEvent(c.Request.Context(), admin.UserID, eventID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
}
