package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/CHOIisaac/chalna-api/internal/pkg/constants"
	"github.com/CHOIisaac/chalna-api/internal/pkg/middleware"
	"github.com/CHOIisaac/chalna-api/internal/utils"
	"github.com/CHOIisaac/chalna-api/services/stats"
)

// StatsHandler handles HTTP requests for statistics
type StatsHandler struct {
	statsUC stats.StatsUC
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUC stats.StatsUC) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// RegisterRoutes registers the stats routes on the authenticated API group
func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	statsGroup := g.Group("/stats")
	statsGroup.GET("/dashboard", h.Dashboard)
	statsGroup.GET("/monthly", h.Monthly)
	statsGroup.GET("/event-types", h.ByEventType)
	statsGroup.GET("/relationships", h.ByRelationship)
}

func parsePeriod(c echo.Context) constants.StatsPeriod {
	period := constants.StatsPeriod(c.QueryParam("period"))
	if period == "" {
		period = constants.PeriodThisMonth
	}
	return period
}

// Dashboard returns period totals with change rates
func (h *StatsHandler) Dashboard(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	dashboard, err := h.statsUC.Dashboard(c.Request().Context(), userID, parsePeriod(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard stats retrieved", dashboard)
}

// Monthly returns the per-month breakdown for a year
func (h *StatsHandler) Monthly(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	year := time.Now().Year()
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid year")
		}
		year = parsed
	}

	breakdown, err := h.statsUC.Monthly(c.Request().Context(), userID, year)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Monthly stats retrieved", breakdown)
}

// ByEventType returns the grouped event-type stats
func (h *StatsHandler) ByEventType(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	grouped, err := h.statsUC.ByEventType(c.Request().Context(), userID, parsePeriod(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event type stats retrieved", grouped)
}

// ByRelationship returns the grouped relationship stats
func (h *StatsHandler) ByRelationship(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	grouped, err := h.statsUC.ByRelationship(c.Request().Context(), userID, parsePeriod(c))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Relationship stats retrieved", grouped)
}
