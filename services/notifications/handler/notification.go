package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/logger"
	"github.com/CHOIisaac/chalna-api/internal/pkg/middleware"
	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/notifications"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC) *NotificationHandler {
	return &NotificationHandler{notificationUC: notificationUC}
}

// RegisterRoutes registers the notification routes on the authenticated API
// group
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	group := g.Group("/notifications")
	group.GET("", h.ListNotifications)
	group.PUT("/:id/read", h.MarkRead)
	group.PUT("/read-all", h.MarkAllRead)
	group.DELETE("/:id", h.DeleteNotification)
}

// ListNotifications handles paginated notification listing
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	unreadOnly := c.QueryParam("unread") == "true"

	rows, pagination, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, unreadOnly, utils.ParsePageRequest(c))
	if err != nil {
		logger.Error("Failed to list notifications", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, "Notifications retrieved successfully", rows, pagination)
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead marks every unread notification of the user
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notifications marked as read", map[string]int64{
		"updated": updated,
	})
}

// DeleteNotification removes a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid notification ID")
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Notification deleted successfully", nil)
}
