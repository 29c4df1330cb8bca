package services

import (
	"testing"

	"github.com/internlink/internlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, models.PaymentPending, paymentStatusFor(nil))

	empty := ""
	assert.Equal(t, models.PaymentPending, paymentStatusFor(&empty))

	txid := "txn_12345"
	assert.Equal(t, models.PaymentCompleted, paymentStatusFor(&txid))
}

func TestValidationError(t *testing.T) {
	err := validation("title is required")
	assert.EqualError(t, err, "title is required")

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
