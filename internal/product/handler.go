package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	// search must precede :id so the literal segment is not captured
	app.Get("/api/products/search", h.searchProducts)
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

// searchProducts answers ?q=&category=. A miss is a 200 with an empty array
// so the client can render its explicit no-results state.
func (h *Handler) searchProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.Search(c.Query("q"), c.Query("category")))
}
