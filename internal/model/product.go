package model

// Product is the aggregate root of the catalog. Orders and comments
// reference it by id only.
type Product struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Amount      int    `gorm:"not null" json:"amount"`
	Image       string `gorm:"type:varchar(255);not null" json:"image"` // server-generated filename under the uploads dir
}
