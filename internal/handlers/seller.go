package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"katalog/internal/api"
	"katalog/internal/forms"
	"katalog/internal/models"
	"katalog/internal/notify"
	"katalog/internal/viewmodels"
)

// SellerHandler serves the seller management view, create form, and
// inline editor.
type SellerHandler struct {
	api *api.Client
	log *logrus.Logger
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(client *api.Client, log *logrus.Logger) *SellerHandler {
	return &SellerHandler{api: client, log: log}
}

// RegisterRoutes registers the seller routes with the Fiber app.
func (h *SellerHandler) RegisterRoutes(router fiber.Router) {
	sellers := router.Group("/sellers")
	sellers.Get("/", h.HandleList)
	sellers.Post("/", h.HandleCreate)
	sellers.Put("/:id", h.HandleUpdate)
	sellers.Patch("/:id/status", h.HandleToggleStatus)
	sellers.Delete("/:id", h.HandleDelete)
}

type sellerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Bio      string `json:"bio"`
	IsActive *bool  `json:"isActive"`
}

func (r *sellerRequest) apply(form *forms.SellerForm) {
	form.Name = r.Name
	form.Surname = r.Surname
	form.Email = r.Email
	form.Phone = r.Phone
	form.Address = r.Address
	form.Bio = r.Bio
	if r.IsActive != nil {
		form.IsActive = *r.IsActive
	}
}

// HandleList loads the full seller list for management.
func (h *SellerHandler) HandleList(c *fiber.Ctx) error {
	rec := notify.NewRecorder()
	view := viewmodels.NewSellerManagementView(h.api, requestNotifier(rec, h.log), confirmFromQuery(c), h.log)
	view.Load(c.UserContext())

	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":        view.Status,
			"error":         view.Err,
			"notifications": rec.Notifications,
		})
	}
	return c.JSON(fiber.Map{
		"status":  view.Status,
		"sellers": view.Sellers,
	})
}

// HandleCreate runs the seller create form.
func (h *SellerHandler) HandleCreate(c *fiber.Ctx) error {
	var req sellerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	rec := notify.NewRecorder()
	form := forms.NewSellerForm(requestNotifier(rec, h.log))
	req.apply(form)

	var created *models.Seller
	ok := form.Submit(c.UserContext(), func(ctx context.Context, payload *models.Seller) error {
		result, err := h.api.CreateSeller(ctx, payload)
		if err != nil {
			return err
		}
		created = result
		return nil
	})
	if !ok {
		return c.Status(mutationStatus(rec)).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"seller":        created,
		"notifications": rec.Notifications,
	})
}

// HandleUpdate runs the management view's inline edit flow for one
// seller.
func (h *SellerHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz satıcı değeri!"})
	}
	var req sellerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewSellerManagementView(h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(ctx)
	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": view.Err, "notifications": rec.Notifications})
	}

	seller, ok := findSeller(view.Sellers, id)
	if !ok {
		notifier.NotFound(notify.EntitySeller)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"notifications": rec.Notifications})
	}

	view.StartEditing(seller)
	req.apply(view.Draft)

	if !view.SaveEdits(ctx) {
		return c.Status(mutationStatus(rec)).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{
		"sellers":       view.Sellers,
		"notifications": rec.Notifications,
	})
}

// HandleToggleStatus flips one seller's active flag as a full-object
// update, then reloads the list.
func (h *SellerHandler) HandleToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz satıcı değeri!"})
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewSellerManagementView(h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(ctx)
	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": view.Err, "notifications": rec.Notifications})
	}

	seller, ok := findSeller(view.Sellers, id)
	if !ok {
		notifier.NotFound(notify.EntitySeller)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	if !view.ToggleStatus(ctx, seller, req.IsActive) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{
		"sellers":       view.Sellers,
		"notifications": rec.Notifications,
	})
}

// HandleDelete removes one seller after the confirmation flag, then
// reloads the list.
func (h *SellerHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz satıcı değeri!"})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewSellerManagementView(h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(ctx)
	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": view.Err, "notifications": rec.Notifications})
	}

	seller, ok := findSeller(view.Sellers, id)
	if !ok {
		notifier.NotFound(notify.EntitySeller)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	if !view.Delete(ctx, seller) {
		if len(rec.Notifications) == 0 {
			return c.JSON(fiber.Map{"deleted": false})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"deleted": false, "notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{
		"deleted":       true,
		"sellers":       view.Sellers,
		"notifications": rec.Notifications,
	})
}

func findSeller(sellers []models.Seller, id int64) (models.Seller, bool) {
	for _, seller := range sellers {
		if seller.ID == id {
			return seller, true
		}
	}
	return models.Seller{}, false
}
