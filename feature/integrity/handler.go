package integrity

import (
	"errors"

	"catalog-builder/core/logger"
	"catalog-builder/core/utils"
	"catalog-builder/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/records", h.HandleRecordsCheck)
	group.Get("/design", h.HandleDesignCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the storage bucket, the record source and the design document.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else if objects, err := h.service.CheckObjects(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = map[string]interface{}{"status": "ok", "missing": missing, "missing_objects": objects}
	}

	if rec, err := h.service.CheckRecords(ctx); err != nil {
		report["records"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["records"] = rec
	}

	if des, err := h.service.CheckDesign(ctx); err != nil {
		report["design"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["design"] = des
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the bucket layout.
// @Summary Check Storage
// @Description Checks that the bucket, the export folder and the record objects exist. Optionally creates the bucket and missing folders.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure(c.Context())
	bucketMissing := errors.Is(err, checks.ErrBucketMissing)
	if err != nil && !(fix && bucketMissing) {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if bucketMissing {
		missing = h.service.Folders()
	}

	if len(missing) > 0 || bucketMissing {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix storage structure")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	objects, err := h.service.CheckObjects(c.Context())
	if err != nil {
		l.Error("Object check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":          "checked",
		"missing":         missing,
		"missing_objects": objects,
	})
}

// HandleRecordsCheck checks the record source.
// @Summary Check Records
// @Description Verifies the record table schema when reading from a database and that the records can be fetched.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.RecordsReport "Records Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/records [get]
func (h *Handler) HandleRecordsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckRecords(c.Context())
	if err != nil {
		l.Error("Records check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status != "ok" {
		l.Warn("Record source has issues", zap.Strings("missing_columns", report.MissingColumns), zap.Strings("errors", report.Errors))
	}

	return c.JSON(report)
}

// HandleDesignCheck checks the design document.
// @Summary Check Design
// @Description Verifies the design document is reachable, the configured page exists and the cover, contents and back frames can be found.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.DesignReport "Design Report"
// @Failure 502 {object} map[string]string "Upstream Failure"
// @Router /integrity/design [get]
func (h *Handler) HandleDesignCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDesign(c.Context())
	if err != nil {
		l.Error("Design check failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status != "ok" {
		l.Warn("Design document has issues", zap.Bool("page_found", report.PageFound), zap.Strings("missing_frames", report.MissingFrames))
	}

	return c.JSON(report)
}
