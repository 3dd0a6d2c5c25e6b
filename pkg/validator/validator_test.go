package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Text      string `json:"text" validate:"required"`
	ProductID string `json:"productId" validate:"required,uuid"`
}

func TestValidateStructCollectsAllViolations(t *testing.T) {
	msgs := ValidateStruct(sampleRequest{})

	assert.Equal(t, []string{
		"email is required",
		"text is required",
		"productId is required",
	}, msgs)
}

func TestValidateStructReportsTagSpecificMessages(t *testing.T) {
	msgs := ValidateStruct(sampleRequest{
		Email:     "not-an-email",
		Text:      "great product",
		ProductID: "not-a-uuid",
	})

	assert.Equal(t, []string{
		"email must be a valid email",
		"productId must be a valid UUID",
	}, msgs)
}

func TestValidateStructValidInput(t *testing.T) {
	msgs := ValidateStruct(sampleRequest{
		Email:     "user@example.com",
		Text:      "great product",
		ProductID: "123e4567-e89b-12d3-a456-426614174000",
	})

	assert.Empty(t, msgs)
}
