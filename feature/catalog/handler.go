package catalog

import (
	"errors"
	"fmt"

	"catalog-builder/core/logger"
	"catalog-builder/core/upstream"
	"catalog-builder/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/report", h.HandleReport)
	group.Get("/frames", h.HandleFrames)
	group.Post("/order", h.HandleOrder)
	group.Post("/export", h.HandleExport)
}

// HandleReport reconciles the records against the design frames.
// @Summary Reconciliation Report
// @Description Matches product records to design frames and returns the text patches and the matched frames in record order.
// @Tags catalog
// @Produce json
// @Param page query string false "Page to scan (defaults to the configured page)"
// @Success 200 {object} reconcile.Report "Report"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /catalog/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Report(c.Context(), c.Query("page"))
	if err != nil {
		return h.fail(c, l, "Report failed", err)
	}
	return c.JSON(report)
}

// HandleFrames lists the frames of a page.
// @Summary List Frames
// @Description Lists the frames of the scanned page and whether a record matches each one.
// @Tags catalog
// @Produce json
// @Param page query string false "Page to scan (defaults to the configured page)"
// @Success 200 {object} FramesResponse "Frames"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /catalog/frames [get]
func (h *Handler) HandleFrames(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	frames, err := h.service.Frames(c.Context(), c.Query("page"))
	if err != nil {
		return h.fail(c, l, "Frame listing failed", err)
	}
	return c.JSON(frames)
}

// HandleOrder returns the export page order.
// @Summary Export Order
// @Description Returns the final page order (cover, table of contents, requested frames, back cover) without rendering.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body OrderRequest true "Requested frames"
// @Success 200 {object} reconcile.Assembly "Page order"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /catalog/order [post]
func (h *Handler) HandleOrder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, l, "Invalid order request", fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	assembly, err := h.service.Order(c.Context(), req)
	if err != nil {
		return h.fail(c, l, "Order failed", err)
	}
	return c.JSON(assembly)
}

// HandleExport builds the catalog PDF.
// @Summary Export Catalog
// @Description Renders the requested frames between the cover, table of contents and back cover and merges them into one PDF. With upload enabled the PDF is stored in the bucket and a download link is returned.
// @Tags catalog
// @Accept json
// @Produce application/pdf
// @Produce json
// @Param request body ExportRequest true "Requested frames"
// @Param upload query boolean false "Upload instead of returning the PDF"
// @Success 200 {object} ExportResult "Upload result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /catalog/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, l, "Invalid export request", fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}
	if q := c.Query("upload"); q != "" {
		upload := utils.ToBool(q)
		req.Upload = &upload
	}

	l.Info("Export requested", zap.Int("ids", len(req.IDs)))
	result, err := h.service.Export(c.Context(), req)
	if err != nil {
		return h.fail(c, l, "Export failed", err)
	}

	if result.PDF == nil {
		return c.JSON(result)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalog.pdf"`)
	return c.Send(result.PDF)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return fiber.StatusBadRequest
	case upstream.Is(err):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
