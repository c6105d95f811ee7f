package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/middleware"
	"github.com/CHOIisaac/chalna-api/internal/pkg/models"
	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/schedules"
)

// ScheduleHandler handles HTTP requests for schedules
type ScheduleHandler struct {
	scheduleUC schedules.ScheduleUC
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleUC schedules.ScheduleUC) *ScheduleHandler {
	return &ScheduleHandler{scheduleUC: scheduleUC}
}

// RegisterRoutes registers the schedule routes on the authenticated API group
func (h *ScheduleHandler) RegisterRoutes(g *echo.Group) {
	group := g.Group("/schedules")
	group.GET("", h.ListSchedules)
	group.POST("", h.CreateSchedule)
	group.GET("/:id", h.GetSchedule)
	group.PUT("/:id", h.UpdateSchedule)
	group.DELETE("/:id", h.DeleteSchedule)
	group.POST("/:id/complete", h.CompleteSchedule)
}

// ListSchedules handles paginated schedule listing with filters
func (h *ScheduleHandler) ListSchedules(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := models.ScheduleFilter{
		Status:       c.QueryParam("status"),
		EventType:    constants.EventType(c.QueryParam("event_type")),
		UpcomingOnly: c.QueryParam("upcoming") == "true",
		TodayOnly:    c.QueryParam("today") == "true",
	}

	rows, pagination, err := h.scheduleUC.ListSchedules(c.Request().Context(), userID, filter, utils.ParsePageRequest(c))
	if err != nil {
		logger.Error("Failed to list schedules", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, "Schedules retrieved successfully", rows, pagination)
}

// GetSchedule handles single schedule retrieval
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	schedule, err := h.scheduleUC.GetSchedule(c.Request().Context(), userID, scheduleID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// CreateSchedule handles schedule creation
func (h *ScheduleHandler) CreateSchedule(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var input models.ScheduleInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	schedule, err := h.scheduleUC.CreateSchedule(c.Request().Context(), userID, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Schedule created successfully", schedule)
}

// UpdateSchedule handles schedule updates
func (h *ScheduleHandler) UpdateSchedule(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	var input models.ScheduleInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	schedule, err := h.scheduleUC.UpdateSchedule(c.Request().Context(), userID, scheduleID, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Schedule updated successfully", schedule)
}

// DeleteSchedule handles schedule deletion
func (h *ScheduleHandler) DeleteSchedule(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	if err := h.scheduleUC.DeleteSchedule(c.Request().Context(), userID, scheduleID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Schedule deleted successfully", nil)
}

// CompleteSchedule moves a schedule to completed, optionally recording the
// linked ledger transaction
func (h *ScheduleHandler) CompleteSchedule(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	var completion models.ScheduleCompletion
	if err := c.Bind(&completion); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	schedule, err := h.scheduleUC.CompleteSchedule(c.Request().Context(), userID, scheduleID, completion)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Schedule completed successfully", schedule)
}
