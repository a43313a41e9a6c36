package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/config"
	"katalog/internal/viewmodels"
)

// HomeHandler serves the storefront listing.
type HomeHandler struct {
	api *api.Client
	cfg *config.Config
	log *logrus.Logger
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(client *api.Client, cfg *config.Config, log *logrus.Logger) *HomeHandler {
	return &HomeHandler{api: client, cfg: cfg, log: log}
}

// RegisterRoutes registers the home route with the Fiber app.
func (h *HomeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
}

// HandleHome loads the listing, optionally narrowed by a category query
// parameter. Absence of the parameter means "all".
func (h *HomeHandler) HandleHome(c *fiber.Ctx) error {
	view := viewmodels.NewHomeView(h.api, h.cfg, h.log)

	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Geçersiz kategori değeri!",
			})
		}
		view.SelectCategory(&id)
	}

	view.Load(c.UserContext())
	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status": view.Status,
			"error":  view.Err,
		})
	}

	cards := view.Cards()
	resp := fiber.Map{
		"status":     view.Status,
		"title":      view.Title(),
		"categories": view.Categories,
		"products":   cards,
	}
	if len(cards) == 0 {
		resp["emptyMessage"] = view.EmptyMessage()
	}
	return c.JSON(resp)
}
