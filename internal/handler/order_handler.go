package handler

import (
	"errors"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/service"
	"go-catalog-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type CreateOrderRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Region      string `json:"region" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	ProductID   string `json:"productId" validate:"required,uuid"`
}

type UpdateOrderRequest struct {
	FullName    string `json:"fullName"`
	Region      string `json:"region"`
	PhoneNumber string `json:"phoneNumber"`
}

// Create accepts an order. The referenced product is not checked for
// existence.
// POST /admin/api/v1/order/create
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, 400, statusFail, "Invalid request body")
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return respondValidation(c, []string{"productId must be a valid UUID"})
	}

	order, err := h.orderService.Create(service.CreateOrderInput{
		FullName:    req.FullName,
		Region:      req.Region,
		PhoneNumber: req.PhoneNumber,
		ProductID:   productID,
	})
	if err != nil {
		return respondInternal(c)
	}

	return respondData(c, 201, order.ToResponse())
}

// GetAll lists orders most recent first with a restricted product
// projection joined in; the product is null when it no longer exists.
// GET /admin/api/v1/orders/get/all
func (h *OrderHandler) GetAll(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAll()
	if err != nil {
		return respondInternal(c)
	}

	responses := make([]model.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = orders[i].ToResponse()
	}

	return respondData(c, 200, responses)
}

// Update applies a partial update over fullName/region/phoneNumber.
// PUT /admin/api/v1/order/update/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondMessage(c, 400, statusFail, "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, 400, statusFail, "Invalid request body")
	}

	order, err := h.orderService.Update(id, service.UpdateOrderInput{
		FullName:    req.FullName,
		Region:      req.Region,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondMessageData(c, 200, "Order updated successfully", order.ToResponse())
}

// Delete removes an order.
// DELETE /admin/api/v1/order/delete/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondMessage(c, 400, statusFail, "Invalid order ID")
	}

	if err := h.orderService.Delete(id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondMessage(c, 200, statusSuccess, "Order deleted successfully")
}
