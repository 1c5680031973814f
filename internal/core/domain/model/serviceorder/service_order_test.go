package serviceorder_test

import (
	"testing"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServiceOrder(t *testing.T) *serviceorder.ServiceOrder {
	t.Helper()
	order, err := serviceorder.NewServiceOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4, "two sessions per week")
	require.NoError(t, err)
	return order
}

func TestNewServiceOrder(t *testing.T) {
	t.Run("creates_requested_order", func(t *testing.T) {
		order := newTestServiceOrder(t)

		require.NoError(t, order.Validate())
		assert.Equal(t, serviceorder.Requested, order.Status())
		assert.Equal(t, 4, order.Quantity())
		assert.False(t, order.CreatedAt().IsZero())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := serviceorder.NewServiceOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_zero_ids", func(t *testing.T) {
		_, err := serviceorder.NewServiceOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), 1, "")
		require.Error(t, err)

		_, err = serviceorder.NewServiceOrder(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 1, "")
		require.Error(t, err)
	})
}

func TestServiceOrder_Validate(t *testing.T) {
	var order serviceorder.ServiceOrder

	require.ErrorIs(t, order.Validate(), serviceorder.ErrServiceOrderIsNotConstructed)
}

func TestServiceOrder_Perform(t *testing.T) {
	t.Run("requested_becomes_performed", func(t *testing.T) {
		order := newTestServiceOrder(t)

		order.Perform()

		assert.Equal(t, serviceorder.Performed, order.Status())
	})

	t.Run("perform_is_unguarded", func(t *testing.T) {
		order := newTestServiceOrder(t)
		order.Perform()

		order.Perform()

		assert.Equal(t, serviceorder.Performed, order.Status())
	})
}

func TestServiceOrder_UpdateDetails(t *testing.T) {
	t.Run("updates_quantity_and_comment", func(t *testing.T) {
		order := newTestServiceOrder(t)

		err := order.UpdateDetails(7, "extended engagement")

		require.NoError(t, err)
		assert.Equal(t, 7, order.Quantity())
		assert.Equal(t, "extended engagement", order.Comment())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		order := newTestServiceOrder(t)

		err := order.UpdateDetails(-1, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 4, order.Quantity())
	})
}

func TestRestoreServiceOrder(t *testing.T) {
	original := newTestServiceOrder(t)
	original.Perform()

	restored, err := serviceorder.RestoreServiceOrder(
		original.ID(),
		original.ServiceID(),
		original.UserID(),
		original.Quantity(),
		original.Comment(),
		original.Status(),
		original.CreatedAt(),
	)

	require.NoError(t, err)
	assert.Equal(t, serviceorder.Performed, restored.Status())
	assert.True(t, restored.ID().IsEqual(original.ID()))
}

func TestServiceOrder_IsRequester(t *testing.T) {
	order := newTestServiceOrder(t)

	assert.True(t, order.IsRequester(order.UserID()))
	assert.False(t, order.IsRequester(kernel.NewUUID()))
}
