package service

import (
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/ws"

	"github.com/google/uuid"
)

type CreateCommentInput struct {
	Email     string
	Text      string
	ProductID uuid.UUID
}

type CommentService interface {
	Create(in CreateCommentInput) (*model.Comment, error)
	GetAll() ([]model.Comment, error)
	GetByProductID(productID uuid.UUID) ([]model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewCommentService(commentRepo repository.CommentRepository, productRepo repository.ProductRepository, hub *ws.Hub) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		productRepo: productRepo,
		hub:         hub,
	}
}

// Create rejects comments whose product does not exist; nothing is
// persisted on that path.
func (s *commentService) Create(in CreateCommentInput) (*model.Comment, error) {
	if _, err := s.productRepo.FindByID(in.ProductID); err != nil {
		return nil, ErrProductNotFound
	}

	comment := &model.Comment{
		Email:     in.Email,
		Text:      in.Text,
		ProductID: in.ProductID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	s.hub.Publish("comment_created", comment.ToResponse())
	return comment, nil
}

func (s *commentService) GetAll() ([]model.Comment, error) {
	return s.commentRepo.FindAll()
}

func (s *commentService) GetByProductID(productID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		return nil, ErrProductNotFound
	}
	return s.commentRepo.FindByProductID(productID)
}
