package handler

import (
	"errors"
	"strconv"

	"go-catalog-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type UpdateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      int    `json:"amount"`
}

// Create handles multipart product creation with an image upload.
// POST /admin/api/v1/product/create
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	// Multipart fields arrive as strings; collect every violation before
	// responding, matching the JSON validation paths.
	var errs []string

	title := c.FormValue("title")
	if title == "" {
		errs = append(errs, "title is required")
	}

	description := c.FormValue("description")
	if description == "" {
		errs = append(errs, "description is required")
	}

	amount := 0
	amountValue := c.FormValue("amount")
	if amountValue == "" {
		errs = append(errs, "amount is required")
	} else {
		parsed, err := strconv.Atoi(amountValue)
		if err != nil {
			errs = append(errs, "amount must be a number")
		} else {
			amount = parsed
		}
	}

	image, err := c.FormFile("image")
	if err != nil {
		errs = append(errs, "image is required")
	}

	if len(errs) > 0 {
		return respondValidation(c, errs)
	}

	product, err := h.productService.Create(service.CreateProductInput{
		Title:       title,
		Description: description,
		Amount:      amount,
		Image:       image,
	})
	if err != nil {
		return respondInternal(c)
	}

	return respondData(c, 201, product)
}

// GetAll lists products most recent first. An empty catalog is reported
// as 404, a contract the admin client relies on.
// GET /admin/api/v1/products/get/all
func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.productService.GetAll()
	if err != nil {
		if errors.Is(err, service.ErrNoProducts) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondData(c, 200, products)
}

// Update applies a partial update. Zero-valued fields keep their stored
// values.
// PUT /admin/api/v1/product/update/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondMessage(c, 400, statusFail, "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, 400, statusFail, "Invalid request body")
	}

	product, err := h.productService.Update(id, service.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondMessageData(c, 200, "Product updated successfully", product)
}

// Delete removes a product and, best-effort, its stored image.
// DELETE /admin/api/v1/product/delete/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondMessage(c, 400, statusFail, "Invalid product ID")
	}

	if err := h.productService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondMessage(c, 200, statusSuccess, "Product deleted successfully")
}
