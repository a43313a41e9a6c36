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

// ProductHandler serves the product detail view, the create form, and
// the catalog search.
type ProductHandler struct {
	api *api.Client
	log *logrus.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(client *api.Client, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{api: client, log: log}
}

// RegisterRoutes registers the product routes with the Fiber app. The
// search route precedes the id route so "search" never parses as an id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/search", h.HandleSearch)
	products.Get("/:id", h.HandleGetProduct)
	products.Post("/", h.HandleCreateProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
}

// productRequest mirrors the product form's editable fields. Category
// and seller arrive as bare ids and are resolved against fetched lists.
type productRequest struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	ImageURL           string  `json:"imageUrl"`
	Color              string  `json:"color"`
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	Inventory          int     `json:"inventory"`
	HasDiscount        bool    `json:"hasDiscount"`
	DiscountPercentage float64 `json:"discountPercentage"`
	ProductionDate     string  `json:"productionDate"`
	CategoryID         int64   `json:"categoryId"`
	SellerID           int64   `json:"sellerId"`
}

// apply copies the request into a draft through the form's setters so
// the discount price is recomputed, never taken from the wire.
func (r *productRequest) apply(form *forms.ProductForm, categories []models.Category, sellers []models.Seller) {
	form.Name = r.Name
	form.Description = r.Description
	form.ImageURL = r.ImageURL
	form.Color = r.Color
	form.Brand = r.Brand
	form.Model = r.Model
	form.Inventory = r.Inventory
	form.ProductionDate = models.NormalizeDate(r.ProductionDate)
	form.SetHasDiscount(r.HasDiscount)
	if r.HasDiscount {
		form.SetDiscountPercentage(r.DiscountPercentage)
	}
	form.SetPrice(r.Price)
	form.SelectCategory(categories, r.CategoryID)
	form.SelectSeller(sellers, r.SellerID)
}

// HandleGetProduct loads one product plus the selector lists for the
// edit form.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz ürün değeri!"})
	}

	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewProductDetailView(id, h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(c.UserContext())

	if view.Status == viewmodels.StatusError {
		status := fiber.StatusBadGateway
		if view.NotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{
			"status":        view.Status,
			"error":         view.Err,
			"notifications": rec.Notifications,
		})
	}
	return c.JSON(fiber.Map{
		"status":     view.Status,
		"product":    view.Product,
		"categories": view.Categories,
		"sellers":    view.Sellers,
	})
}

// HandleCreateProduct runs the create form: resolve references,
// validate, submit.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)

	// The form mounts with the selector lists; a failed list fetch just
	// leaves the selection unresolvable, as on the page.
	categories, err := h.api.GetAllCategories(ctx)
	if err != nil {
		h.log.WithField("handler", "CreateProduct").Errorf("Kategoriler yüklenirken hata oluştu: %v", err)
	}
	sellers, err := h.api.GetAllSellers(ctx)
	if err != nil {
		h.log.WithField("handler", "CreateProduct").Errorf("Satıcılar yüklenirken hata oluştu: %v", err)
	}

	form := forms.NewProductForm(notifier)
	req.apply(form, categories, sellers)

	var created *models.Product
	ok := form.Submit(ctx, func(ctx context.Context, payload *models.Product) error {
		result, err := h.api.CreateProduct(ctx, payload)
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
		"product":       created,
		"notifications": rec.Notifications,
	})
}

// HandleUpdateProduct runs the detail view's edit flow: load, edit,
// save, re-fetch.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz ürün değeri!"})
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	ctx := c.UserContext()
	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewProductDetailView(id, h.api, notifier, confirmFromQuery(c), h.log)
	view.Load(ctx)
	if view.Status == viewmodels.StatusError {
		status := fiber.StatusBadGateway
		if view.NotFound {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": view.Err, "notifications": rec.Notifications})
	}

	view.StartEditing()
	req.apply(view.Draft, view.Categories, view.Sellers)

	if !view.SaveEdits(ctx) {
		return c.Status(mutationStatus(rec)).JSON(fiber.Map{"notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{
		"product":       view.Product,
		"notifications": rec.Notifications,
	})
}

// HandleDeleteProduct deletes one product. Without confirm=true in the
// query the prompt counts as declined and nothing is sent upstream.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Geçersiz ürün değeri!"})
	}

	rec := notify.NewRecorder()
	notifier := requestNotifier(rec, h.log)
	view := viewmodels.NewProductDetailView(id, h.api, notifier, confirmFromQuery(c), h.log)

	if !view.Delete(c.UserContext()) {
		if len(rec.Notifications) == 0 {
			// Prompt declined, no call was made.
			return c.JSON(fiber.Map{"deleted": false})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"deleted": false, "notifications": rec.Notifications})
	}
	return c.JSON(fiber.Map{"deleted": true, "notifications": rec.Notifications})
}

// HandleSearch filters the catalog by category and/or seller name.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	categoryName := c.Query("categoryName")
	sellerName := c.Query("sellerName")

	products, err := h.api.SearchProducts(c.UserContext(), categoryName, sellerName)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"products": products})
}
