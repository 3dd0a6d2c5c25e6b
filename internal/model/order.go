package model

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer order for a single product. ProductID is set at
// creation and immutable afterwards; the product itself may be deleted
// later, leaving the order with a null joined product.
type Order struct {
	BaseModel
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Region      string    `gorm:"type:varchar(255);not null" json:"region"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product     *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// OrderProduct is the restricted projection of a product joined into
// order listings.
type OrderProduct struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Amount int       `json:"amount"`
}

type OrderResponse struct {
	ID          uuid.UUID     `json:"id"`
	FullName    string        `json:"full_name"`
	Region      string        `json:"region"`
	PhoneNumber string        `json:"phone_number"`
	ProductID   uuid.UUID     `json:"product_id"`
	Product     *OrderProduct `json:"product"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (o *Order) ToResponse() OrderResponse {
	response := OrderResponse{
		ID:          o.ID,
		FullName:    o.FullName,
		Region:      o.Region,
		PhoneNumber: o.PhoneNumber,
		ProductID:   o.ProductID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if o.Product != nil {
		response.Product = &OrderProduct{
			ID:     o.Product.ID,
			Title:  o.Product.Title,
			Amount: o.Product.Amount,
		}
	}

	return response
}
