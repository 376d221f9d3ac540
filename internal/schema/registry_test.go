package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	builds := 0
	build := func() *Model {
		builds++
		return &Model{Name: "widget", Table: "widgets"}
	}

	first := r.GetOrCreate("widget", build)
	second := r.GetOrCreate("widget", build)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Same(t, first, r.Get("widget"))
	assert.Nil(t, r.Get("missing"))
}

func TestRegistryAllStableOrder(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate("b", func() *Model { return &Model{Name: "b"} })
	r.GetOrCreate("a", func() *Model { return &Model{Name: "a"} })
	r.GetOrCreate("c", func() *Model { return &Model{Name: "c"} })

	var names []string
	for _, m := range r.All() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default())

	// every entity the application persists is declared
	for _, name := range []string{
		"user", "product", "buyStock", "rentalAsset",
		"rental", "sale", "saleItem", "activityLog", "passwordResetToken",
	} {
		require.NotNil(t, r.Get(name), "model %s not registered", name)
	}
}

func TestConstraintField(t *testing.T) {
	r := Default()

	t.Run("KnownConstraints", func(t *testing.T) {
		cases := []struct {
			constraint string
			entity     string
			field      string
		}{
			{"users_email_unique", "user", "email"},
			{"products_sku_unique", "product", "sku"},
			{"rentalassets_code_product_unique", "rentalAsset", "asset_code"},
			{"rentals_number_unique", "rental", "rental_number"},
			{"sales_bill_number_unique", "sale", "bill_number"},
		}
		for _, tc := range cases {
			entity, field, ok := r.ConstraintField(tc.constraint)
			require.True(t, ok, tc.constraint)
			assert.Equal(t, tc.entity, entity)
			assert.Equal(t, tc.field, field)
		}
	})

	t.Run("NonUniqueIndexIgnored", func(t *testing.T) {
		_, _, ok := r.ConstraintField("products_category_idx")
		assert.False(t, ok)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, _, ok := r.ConstraintField("users_pkey")
		assert.False(t, ok)
	})
}
