package order_test

import (
	"testing"

	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/kernel"
	"github.com/Salamjean/kksExpress-backend/internal/core/domain/model/order"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	t.Run("should keep explicit descriptors", func(t *testing.T) {
		pkg, err := order.NewPackage(order.CategoryFood, order.NatureFragile, "Attieke", "")

		require.NoError(t, err)
		assert.Equal(t, order.CategoryFood, pkg.Category())
		assert.Equal(t, order.NatureFragile, pkg.Nature())
		assert.Equal(t, "Attieke", pkg.Label())
	})

	t.Run("should default blank descriptors", func(t *testing.T) {
		pkg, err := order.NewPackage(order.CategoryUnknown, order.NatureUnknown, "", "")

		require.NoError(t, err)
		assert.Equal(t, order.CategoryDevices, pkg.Category())
		assert.Equal(t, order.NatureStandard, pkg.Nature())
	})

	t.Run("should reject out of range descriptors", func(t *testing.T) {
		_, err := order.NewPackage(order.Category(42), order.NatureStandard, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewPackage(order.CategoryOther, order.Nature(42), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCategoryFromString(t *testing.T) {
	t.Run("should round trip every category", func(t *testing.T) {
		for _, c := range []order.Category{order.CategoryDocuments, order.CategoryFood, order.CategoryDevices, order.CategoryOther} {
			parsed, err := order.CategoryFromString(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("should default empty string", func(t *testing.T) {
		c, err := order.CategoryFromString("")
		require.NoError(t, err)
		assert.Equal(t, order.CategoryDevices, c)
	})

	t.Run("should return error for unknown name", func(t *testing.T) {
		_, err := order.CategoryFromString("furniture")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNatureFromString(t *testing.T) {
	t.Run("should round trip every nature", func(t *testing.T) {
		for _, n := range []order.Nature{order.NatureStandard, order.NatureFragile, order.NaturePerishable} {
			parsed, err := order.NatureFromString(n.String())
			require.NoError(t, err)
			assert.Equal(t, n, parsed)
		}
	})

	t.Run("should default empty string", func(t *testing.T) {
		n, err := order.NatureFromString("")
		require.NoError(t, err)
		assert.Equal(t, order.NatureStandard, n)
	})
}

func TestNewSender(t *testing.T) {
	t.Run("should require name and phone", func(t *testing.T) {
		_, err := order.NewSender("", "+2250701020304", "", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewSender("Awa Kone", "", "", "", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should accept missing pickup coordinates", func(t *testing.T) {
		sender, err := order.NewSender("Awa Kone", "+2250701020304", "", "", "", nil)

		require.NoError(t, err)
		require.NoError(t, sender.Validate())
		assert.Nil(t, sender.PickupGeo())
	})
}

func TestNewRecipient(t *testing.T) {
	t.Run("should require address", func(t *testing.T) {
		geo, err := kernel.NewGeoPoint(5.3599, -4.0083)
		require.NoError(t, err)

		_, err = order.NewRecipient("", "", "", "", geo)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require valid coordinates", func(t *testing.T) {
		var zero kernel.GeoPoint

		_, err := order.NewRecipient("", "", "", "Plateau, Abidjan", zero)

		require.Error(t, err)
	})
}
