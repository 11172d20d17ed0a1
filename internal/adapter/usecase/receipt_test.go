package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givewell/donation-service/internal/core/domain"
)

func TestRenderReceipt(t *testing.T) {
	d := &domain.Donation{
		PaymentRef:  "pi_123",
		Amount:      decimal.RequireFromString("50.5"),
		Currency:    "USD",
		DonorName:   "Jane Doe",
		Designation: "building-fund",
	}

	html, err := renderReceipt(d)
	require.NoError(t, err)
	assert.Contains(t, html, "Dear Jane Doe,")
	assert.Contains(t, html, "50.50 USD")
	assert.Contains(t, html, "Designation: building-fund")
	assert.Contains(t, html, "pi_123")
}

func TestRenderReceiptDefaultDesignationOmitted(t *testing.T) {
	d := &domain.Donation{
		PaymentRef:  "pi_123",
		Amount:      decimal.NewFromInt(25),
		Currency:    "EUR",
		DonorName:   "Jane Doe",
		Designation: "general",
	}

	html, err := renderReceipt(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "Designation:")
}

func TestRenderReceiptEscapesDonorInput(t *testing.T) {
	d := &domain.Donation{
		PaymentRef: "pi_123",
		Amount:     decimal.NewFromInt(10),
		Currency:   "USD",
		DonorName:  `<script>alert("x")</script>`,
	}

	html, err := renderReceipt(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
