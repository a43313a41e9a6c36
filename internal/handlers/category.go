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

// CategoryHandler serves the category management view and create form.
type CategoryHandler struct {
	api *api.Client
	log *logrus.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(client *api.Client, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{api: client, log: log}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Post("/", h.HandleCreate)
	categories.Patch("/:id/status", h.HandleToggleStatus)
	categories.Delete("/:id", h.HandleDelete)
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type statusRequest struct {
	IsActive bool `json:"isActive"`
}

// HandleList loads the full category list for management.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	rec := notify.NewRecorder()
	view := viewmodels.NewCategoryManagementView(h.api, requestNotifier(rec, h.log), confirmFromQuery(c), h.log)
	view.Load(c.UserContext())

	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":        view.Status,
			"error":         view.Err,
			"notifications": rec.Notifications,
		})
	}
	return c.JSON(fiber.Map{
		"status":     view.Status,
		"categories": view.Categories,
	})
}

// HandleCreate runs the category create form.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	rec := notify.NewRecorder()
	form := forms.NewCategoryForm(requestNotifier(rec, h.log))
	form.Name = req.Name
	form.Description = req.Description
	if req.IsActive != nil {
		form.IsActive = *req.IsActive
	}

	var created *models.Category
	ok := form.Submit(c.UserContext(), func(ctx context.Context, payload *models.Category) error {
		result, err := h.api.CreateCategory(ctx, payload)
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
		"category":      created,
		"notifications": rec.Notifications,
	})
}

// HandleToggleStatus flips one category's active flag as a full-object
// update, then reloads the list.
func (h *CategoryHandler) HandleToggleStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz kategori değeri!"})
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewCategoryManagementView(h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(ctx)
	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": view.Err, "notifications": rec.Notifications})
	}

	category, ok := findCategory(view.Categories, id)
	if !ok {
		notifier.NotFound(notify.EntityCategory)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	if !view.ToggleStatus(ctx, category, req.IsActive) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{
		"categories":    view.Categories,
		"notifications": rec.Notifications,
	})
}

// HandleDelete removes one category after the confirmation flag, then
// reloads the list.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz kategori değeri!"})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewCategoryManagementView(h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(ctx)
	if view.Status == viewmodels.StatusError {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": view.Err, "notifications": rec.Notifications})
	}

	category, ok := findCategory(view.Categories, id)
	if !ok {
		notifier.NotFound(notify.EntityCategory)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	if !view.Delete(ctx, category) {
		if len(rec.Notifications) == 0 {
			return c.JSON(fiber.Map{"deleted": false})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"deleted": false, "notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{
		"deleted":       true,
		"categories":    view.Categories,
		"notifications": rec.Notifications,
	})
}

func findCategory(categories []models.Category, id int64) (models.Category, bool) {
	for _, category := range categories {
		if category.ID == id {
			return category, true
		}
	}
	return models.Category{}, false
}
