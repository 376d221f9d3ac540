package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/apperr"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

func validRentalInput() RentalInput {
	return RentalInput{
		ProductID:     1,
		CustomerName:  "Somsak",
		CustomerEmail: "somsak@example.com",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-05",
		RatePerDay:    500,
		TotalAmount:   2500,
	}
}

func TestRental(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		rental, err := Rental(validRentalInput())
		require.NoError(t, err)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
		assert.Equal(t, "2026-09-01", rental.StartDate)
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		in := validRentalInput()
		in.EndDate = in.StartDate
		_, err := Rental(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Fields, 1)
		assert.Equal(t, "end_date", ve.Fields[0].Field)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		in := validRentalInput()
		in.EndDate = "2026-08-30"
		_, err := Rental(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "validation.end_before_start", ve.Fields[0].MessageID)
	})

	t.Run("BadDateSkipsOrderingRule", func(t *testing.T) {
		in := validRentalInput()
		in.EndDate = "05/09/2026"
		_, err := Rental(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Len(t, ve.Fields, 1)
		assert.Equal(t, "validation.invalid_date", ve.Fields[0].MessageID)
	})

	t.Run("EmailLowercased", func(t *testing.T) {
		in := validRentalInput()
		in.CustomerEmail = "SomSak@Example.COM"
		rental, err := Rental(in)
		require.NoError(t, err)
		assert.Equal(t, "somsak@example.com", rental.CustomerEmail)
	})

	t.Run("MissingProduct", func(t *testing.T) {
		in := validRentalInput()
		in.ProductID = 0
		_, err := Rental(in)
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "product_id", ve.Fields[0].Field)
	})
}

func TestRentalStatus(t *testing.T) {
	status, err := RentalStatus("active")
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusActive, status)

	_, err = RentalStatus("overdue")
	assert.Error(t, err)
}
