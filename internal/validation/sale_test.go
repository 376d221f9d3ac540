package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

func validSaleInput() SaleInput {
	return SaleInput{
		CustomerName: "Somsak",
		Items: []SaleItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: 50, TotalPrice: 100},
		},
		Subtotal:    100,
		Discount:    10,
		Tax:         7,
		TotalAmount: 97,
	}
}

func TestSale(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, err := Sale(validSaleInput())
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, s.PaymentStatus)
		assert.Len(t, s.Items, 1)
	})

	t.Run("TotalMismatch", func(t *testing.T) {
		in := validSaleInput()
		in.TotalAmount = 100 // should be 100 - 10 + 7 = 97
		_, err := Sale(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Fields, 1)
		assert.Equal(t, "total_amount", ve.Fields[0].Field)
	})

	t.Run("SubtotalMismatch", func(t *testing.T) {
		in := validSaleInput()
		in.Subtotal = 90
		in.TotalAmount = 87
		_, err := Sale(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Fields, 1)
		assert.Equal(t, "subtotal", ve.Fields[0].Field)
	})

	t.Run("WithinTolerance", func(t *testing.T) {
		in := validSaleInput()
		in.TotalAmount = 96.995
		_, err := Sale(in)
		assert.NoError(t, err)
	})

	t.Run("NoItems", func(t *testing.T) {
		in := validSaleInput()
		in.Items = nil
		_, err := Sale(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items", ve.Fields[0].Field)
	})

	t.Run("ItemFieldErrorsSkipCrossField", func(t *testing.T) {
		in := validSaleInput()
		in.Items[0].Quantity = 0
		in.Subtotal = 999 // would also fail the cross-field rule
		_, err := Sale(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		for _, f := range ve.Fields {
			assert.NotEqual(t, "validation.subtotal_mismatch", f.MessageID)
		}
	})

	t.Run("InvalidPaymentStatus", func(t *testing.T) {
		in := validSaleInput()
		in.PaymentStatus = "refunded"
		_, err := Sale(in)
		require.Error(t, err)
	})
}

func TestPaymentStatus(t *testing.T) {
	status, err := PaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, status)

	_, err = PaymentStatus("refunded")
	assert.Error(t, err)
}
