package gallery

import (
	"media-gallery/core/logger"
	"media-gallery/core/reconcile"
	"media-gallery/core/utils"
	"media-gallery/feature/gallery/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for galleries.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the gallery routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/gallery")
	group.Get("/:sku", h.HandleGetGallery)
	group.Get("/:sku/check", h.HandleCheckGallery)
	group.Post("/:sku/reconcile", h.HandleReconcile)
}

// HandleGetGallery returns the stored gallery of a record.
// @Summary Get Gallery
// @Description List the persisted gallery entries of a product in storage order.
// @Tags gallery
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} models.GalleryResponse "Gallery"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/{sku} [get]
func (h *Handler) HandleGetGallery(c *fiber.Ctx) error {
	sku := c.Params("sku")

	resp, err := h.service.GetGallery(c.UserContext(), sku)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// HandleCheckGallery reports stored entries whose file is missing.
// @Summary Check Gallery
// @Description Verify that every stored gallery entry of a product has its file in the media store.
// @Tags gallery
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} models.CheckReport "Integrity report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/{sku}/check [get]
func (h *Handler) HandleCheckGallery(c *fiber.Ctx) error {
	report, err := h.service.Check(c.UserContext(), c.Params("sku"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// HandleReconcile reconciles a submitted gallery batch against the stored one.
// @Summary Reconcile Gallery
// @Description Fetch referenced images, skip unchanged content, drop in-batch duplicates and save the gallery.
// @Tags gallery
// @Accept json
// @Produce json
// @Param sku path string true "Product SKU"
// @Param dry_run query bool false "Report decisions without saving"
// @Param request body models.ReconcileRequest true "Gallery batch"
// @Success 200 {object} models.ReconcileReport "Reconcile report"
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 422 {object} map[string]string "Unresolvable image reference"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/{sku}/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	sku := c.Params("sku")
	l := logger.WithRayID(h.logger, c).With(zap.String("sku", sku))

	var req models.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	dryRun := utils.ToBool(c.Query("dry_run"))

	report, err := h.service.Reconcile(c.UserContext(), sku, req.ToGalleryEntries(), dryRun)
	if err != nil {
		if reconcile.IsResolutionError(err) {
			l.Warn("Gallery reconcile rejected", zap.Error(err))
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return err
	}
	return c.JSON(report)
}
