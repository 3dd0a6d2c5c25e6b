package repository

import (
	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindAll() ([]model.Comment, error)
	FindByProductID(productID uuid.UUID) ([]model.Comment, error)
}

type commentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db}
}

func (r *commentRepo) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// FindAll returns comments most recent first, with the referenced product
// preloaded.
func (r *commentRepo) FindAll() ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("Product").Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *commentRepo) FindByProductID(productID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}
