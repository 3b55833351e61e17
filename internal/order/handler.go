package order

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/freshmart/grocery-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

var validate = validator.New()

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// Checkout stays public so guest orders work; history requires a token.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders/user/:userId<[0-9]+>", h.getOrdersForUser)
}

type orderItemInput struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
	Price     int `json:"price" validate:"gte=0"`
}

type createOrderRequest struct {
	UserID *int             `json:"userId,omitempty" validate:"omitempty,gt=0"`
	Items  []orderItemInput `json:"items" validate:"required,min=1,dive"`
	Total  int              `json:"total" validate:"required,gt=0"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	items := make([]OrderItem, 0, len(payload.Items))
	for _, in := range payload.Items {
		items = append(items, OrderItem{ProductID: in.ProductID, Quantity: in.Quantity, Price: in.Price})
	}

	created, err := h.service.Create(payload.UserID, items, payload.Total)
	if err != nil {
		switch err {
		case ErrEmptyOrder, ErrBadQuantity, ErrTotalMismatch:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "orderId": created.ID})
}

func (h *Handler) getOrdersForUser(c *fiber.Ctx) error {
	requested, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	authed, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if authed != requested {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
	}

	orders, err := h.service.ListByUser(requested)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(orders)
}
