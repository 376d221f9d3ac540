package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
)

func TestRentalAsset(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		asset, err := RentalAsset(RentalAssetInput{ProductID: 1, AssetCode: "a01"})
		require.NoError(t, err)
		assert.Equal(t, "A01", asset.AssetCode)
		assert.Equal(t, domain.AssetStatusAvailable, asset.Status)
	})

	t.Run("InvalidCode", func(t *testing.T) {
		_, err := RentalAsset(RentalAssetInput{ProductID: 1, AssetCode: "a 01"})
		assert.Error(t, err)
	})

	t.Run("MissingProduct", func(t *testing.T) {
		_, err := RentalAsset(RentalAssetInput{AssetCode: "A01"})
		assert.Error(t, err)
	})
}

func TestAssetStatus(t *testing.T) {
	status, err := AssetStatus("maintenance")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetStatusMaintenance, status)

	_, err = AssetStatus("lost")
	assert.Error(t, err)
}
