package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Admin is an operator account. Created through the secret-gated
// registration flow; never updated or deleted through the API.
type Admin struct {
	BaseModel
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, hidden from JSON
}

// SetPassword hashes and sets the admin's password.
func (a *Admin) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies the provided password against the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}

// AdminResponse is the only shape an admin account takes on the wire.
type AdminResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{ID: a.ID, Username: a.Username}
}
