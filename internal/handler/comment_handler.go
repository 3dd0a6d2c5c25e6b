package handler

import (
	"errors"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/service"
	"go-catalog-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type CreateCommentRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Text      string `json:"text" validate:"required"`
	ProductID string `json:"productId" validate:"required,uuid"`
}

// Create stores a comment after confirming its product exists. A missing
// product is a single 404 rejection; nothing is persisted.
// POST /admin/api/v1/comment/create
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req CreateCommentRequest
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

	comment, err := h.commentService.Create(service.CreateCommentInput{
		Email:     req.Email,
		Text:      req.Text,
		ProductID: productID,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondData(c, 201, comment)
}

// GetByProductID lists a product's comments most recent first.
// GET /admin/api/v1/comments/get/by/productId/:productId
func (h *CommentHandler) GetByProductID(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return respondMessage(c, 400, statusFail, "Invalid product ID")
	}

	comments, err := h.commentService.GetByProductID(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return respondMessage(c, 404, statusFail, err.Error())
		}
		return respondInternal(c)
	}

	return respondData(c, 200, comments)
}

// GetAll lists every comment with a restricted product projection.
// GET /admin/api/v1/comments/get/all
func (h *CommentHandler) GetAll(c *fiber.Ctx) error {
	comments, err := h.commentService.GetAll()
	if err != nil {
		return respondInternal(c)
	}

	responses := make([]model.CommentResponse, len(comments))
	for i := range comments {
		responses[i] = comments[i].ToResponse()
	}

	return respondData(c, 200, responses)
}
