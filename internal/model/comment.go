package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is customer feedback attached to a product. Comments are
// created and read only; no update or delete surface exists.
type Comment struct {
	BaseModel
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// CommentProduct is the restricted projection of a product joined into
// comment listings.
type CommentProduct struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type CommentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	Text      string          `json:"text"`
	ProductID uuid.UUID       `json:"product_id"`
	Product   *CommentProduct `json:"product"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (c *Comment) ToResponse() CommentResponse {
	response := CommentResponse{
		ID:        c.ID,
		Email:     c.Email,
		Text:      c.Text,
		ProductID: c.ProductID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.Product != nil {
		response.Product = &CommentProduct{
			ID:          c.Product.ID,
			Title:       c.Product.Title,
			Description: c.Product.Description,
		}
	}

	return response
}
