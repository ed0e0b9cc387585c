package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"negociosHorarios/internal/modules/hours/application/port"
	"negociosHorarios/internal/modules/hours/application/usecase"
	"negociosHorarios/internal/modules/hours/domain"
	"negociosHorarios/internal/shared/httputil"
)

// HoursHandler exposes the hours engine over REST.
type HoursHandler struct {
	hours  *usecase.HoursUseCase
	errors *httputil.ErrorMapper
}

func NewHoursHandler(hours *usecase.HoursUseCase) *HoursHandler {
	return &HoursHandler{hours: hours, errors: newHoursErrorMapper()}
}

func newHoursErrorMapper() *httputil.ErrorMapper {
	return httputil.NewErrorMapper().
		WithMapping(usecase.ErrMissingListing, http.StatusBadRequest, "missing listing id").
		WithMapping(port.ErrListingNotFound, http.StatusNotFound, "listing hours not found").
		WithMapping(usecase.ErrForbidden, http.StatusForbidden, "forbidden").
		WithMapping(domain.ErrInvalidSchedule, http.StatusUnprocessableEntity, "").
		WithMapping(domain.ErrUnknownPreset, http.StatusNotFound, "")
}

// Register mounts the routes; requireAuth guards the editing endpoints.
func (h *HoursHandler) Register(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/listings/:id/hours", h.Week)
	api.GET("/listings/:id/hours/status", h.Status)
	api.GET("/listings/:id/hours/seed", h.Seed)
	api.PUT("/listings/:id/hours", h.Update, requireAuth)
	api.POST("/listings/:id/hours/presets/:preset", h.ApplyPreset, requireAuth)
	api.POST("/hours/extract", h.Extract)
	api.POST("/hours/format", h.Format)
}

func (h *HoursHandler) locale(c echo.Context) domain.Locale {
	if lang := strings.TrimSpace(c.QueryParam("lang")); lang != "" {
		return domain.LocaleByName(lang)
	}
	return h.hours.Locale()
}

func (h *HoursHandler) fail(c echo.Context, op string, err error) error {
	httpErr := h.errors.HTTPError(err)
	attrs := []any{slog.String("op", op), slog.String("listingId", c.Param("id")), slog.Int("status", httpErr.Code), slog.Any("error", err)}
	if httpErr.Code >= http.StatusInternalServerError {
		slog.Error("hours request failed", attrs...)
	} else {
		slog.Debug("hours request rejected", attrs...)
	}
	return httpErr
}

func (h *HoursHandler) Week(c echo.Context) error {
	view, err := h.hours.Week(c.Request().Context(), c.Param("id"), h.locale(c))
	if err != nil {
		return h.fail(c, "week", err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *HoursHandler) Status(c echo.Context) error {
	status, err := h.hours.Status(c.Request().Context(), c.Param("id"), h.locale(c))
	if err != nil {
		return h.fail(c, "status", err)
	}
	return c.JSON(http.StatusOK, status)
}

func (h *HoursHandler) Seed(c echo.Context) error {
	seed, err := h.hours.Seed(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, "seed", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"horarios": seed})
}

func (h *HoursHandler) Update(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	view, err := h.hours.Update(c.Request().Context(), claimsFrom(c), c.Param("id"), req.toSchedule())
	if err != nil {
		return h.fail(c, "update", err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *HoursHandler) ApplyPreset(c echo.Context) error {
	view, err := h.hours.ApplyPreset(c.Request().Context(), claimsFrom(c), c.Param("id"), c.Param("preset"))
	if err != nil {
		return h.fail(c, "preset", err)
	}
	return c.JSON(http.StatusOK, view)
}

// Extract runs the free-text fallback used when a listing only has a description.
func (h *HoursHandler) Extract(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, domain.ExtractOpenClosePair(req.Text))
}

// Format previews the compact and legacy renderings of an unsaved schedule.
func (h *HoursHandler) Format(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	schedule := req.toSchedule()
	return c.JSON(http.StatusOK, formatResponse{
		Compact: h.locale(c).FormatWeek(schedule),
		Legacy:  domain.FlattenToDisplayString(schedule),
	})
}
