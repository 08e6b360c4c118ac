package bulkorder_test

import (
	"strings"
	"testing"
	"time"

	"catering/internal/core/domain/model/bulkorder"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func testItems(t *testing.T) []bulkorder.Item {
	t.Helper()
	item, err := bulkorder.NewItem("Lamb biryani tray", 4, 4500)
	require.NoError(t, err)
	return []bulkorder.Item{item}
}

func newPendingOrder(t *testing.T, chefID kernel.UUID, eventDate time.Time) *bulkorder.BulkOrder {
	t.Helper()
	o, err := bulkorder.NewBulkOrder(
		kernel.NewUUID(), kernel.NewUUID(), chefID,
		bulkorder.Delivery, eventDate, testItems(t), testCreatedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewBulkOrder(t *testing.T) {
	chefID := kernel.NewUUID()

	t.Run("creates pending order with generated number and computed total", func(t *testing.T) {
		customerID := kernel.NewUUID()
		itemA, _ := bulkorder.NewItem("Canapé platter", 3, 2000)
		itemB, _ := bulkorder.NewItem("Wedding cake", 1, 15000)

		o, err := bulkorder.NewBulkOrder(
			kernel.NewUUID(), customerID, chefID,
			bulkorder.Pickup, services.UnspecifiedEventDate,
			[]bulkorder.Item{itemA, itemB}, testCreatedAt,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, bulkorder.Pending, o.Status())
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.PrimaryChefID().IsEqual(chefID))
		assert.Empty(t, o.Collaborators())
		assert.Equal(t, int64(3*2000+15000), o.TotalAmountCents())
		assert.Equal(t, 1, o.Version())

		assert.True(t, strings.HasPrefix(o.OrderNumber(), "BULK-"))
		assert.Len(t, o.OrderNumber(), len("BULK-")+8)
		assert.Equal(t, strings.ToUpper(o.OrderNumber()), o.OrderNumber())
	})

	t.Run("order numbers are unique", func(t *testing.T) {
		a := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		b := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		assert.NotEqual(t, a.OrderNumber(), b.OrderNumber())
	})

	t.Run("fails without items", func(t *testing.T) {
		_, err := bulkorder.NewBulkOrder(
			kernel.NewUUID(), kernel.NewUUID(), chefID,
			bulkorder.Delivery, services.UnspecifiedEventDate, nil, testCreatedAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := bulkorder.NewBulkOrder(
			invalidID, kernel.NewUUID(), chefID,
			bulkorder.Delivery, services.UnspecifiedEventDate, testItems(t), testCreatedAt,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("fails with unknown order type", func(t *testing.T) {
		_, err := bulkorder.NewBulkOrder(
			kernel.NewUUID(), kernel.NewUUID(), chefID,
			bulkorder.UnknownOrderType, services.UnspecifiedEventDate, testItems(t), testCreatedAt,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBulkOrder_Validate(t *testing.T) {
	t.Run("nil and zero value fail validation", func(t *testing.T) {
		var nilOrder *bulkorder.BulkOrder
		require.Equal(t, bulkorder.ErrBulkOrderIsNotConstructed, nilOrder.Validate())

		var zero bulkorder.BulkOrder
		require.Equal(t, bulkorder.ErrBulkOrderIsNotConstructed, zero.Validate())
	})
}

func TestBulkOrder_Accept(t *testing.T) {
	chefID := kernel.NewUUID()

	t.Run("primary chef accepts a pending order", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		err := o.Accept(chefID, "Can do, confirming headcount by Friday")

		require.NoError(t, err)
		assert.Equal(t, bulkorder.Accepted, o.Status())
		assert.Equal(t, "Can do, confirming headcount by Friday", o.ChefNote())
	})

	t.Run("another chef may not accept", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		err := o.Accept(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, bulkorder.Pending, o.Status())
	})

	t.Run("accepting twice is a conflict", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		require.NoError(t, o.Accept(chefID, ""))

		err := o.Accept(chefID, "")

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestBulkOrder_Decline(t *testing.T) {
	chefID := kernel.NewUUID()

	t.Run("primary chef declines with a reason", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		err := o.Decline(chefID, "Fully booked that weekend")

		require.NoError(t, err)
		assert.Equal(t, bulkorder.Declined, o.Status())
		assert.Equal(t, "Fully booked that weekend", o.DeclineReason())
	})

	t.Run("another chef may not decline", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		err := o.Decline(kernel.NewUUID(), "nope")

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, bulkorder.Pending, o.Status())
	})
}

func TestBulkOrder_AcceptCollaboration(t *testing.T) {
	chefID := kernel.NewUUID()

	t.Run("promotes pending order and records the collaborator", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		collaborator := kernel.NewUUID()

		err := o.AcceptCollaboration(collaborator)

		require.NoError(t, err)
		assert.Equal(t, bulkorder.Collaborating, o.Status())
		require.Len(t, o.Collaborators(), 1)
		assert.True(t, o.Collaborators()[0].IsEqual(collaborator))
	})

	t.Run("promotes accepted order", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		require.NoError(t, o.Accept(chefID, ""))

		err := o.AcceptCollaboration(kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, bulkorder.Collaborating, o.Status())
	})

	t.Run("second collaborator joins a collaborating order", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		require.NoError(t, o.AcceptCollaboration(kernel.NewUUID()))

		err := o.AcceptCollaboration(kernel.NewUUID())

		require.NoError(t, err)
		assert.Len(t, o.Collaborators(), 2)
	})

	t.Run("re-adding the same collaborator keeps the set unchanged", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		collaborator := kernel.NewUUID()
		require.NoError(t, o.AcceptCollaboration(collaborator))

		err := o.AcceptCollaboration(collaborator)

		require.NoError(t, err)
		assert.Len(t, o.Collaborators(), 1)
	})

	t.Run("joining past the kitchen is a conflict", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		require.NoError(t, o.Accept(chefID, ""))
		require.NoError(t, o.StartPreparing(testCreatedAt))

		err := o.AcceptCollaboration(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, bulkorder.Preparing, o.Status())
		assert.Empty(t, o.Collaborators())
	})
}

func TestBulkOrder_KitchenTransitions(t *testing.T) {
	chefID := kernel.NewUUID()
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	t.Run("full happy path to completed", func(t *testing.T) {
		o := newPendingOrder(t, chefID, today) // event is today: unlocked
		require.NoError(t, o.Accept(chefID, ""))

		require.NoError(t, o.StartPreparing(today))
		assert.Equal(t, bulkorder.Preparing, o.Status())

		require.NoError(t, o.MarkReadyForDelivery(today))
		assert.Equal(t, bulkorder.ReadyForDelivery, o.Status())

		require.NoError(t, o.ValidateAssignDelivery())
		assert.Equal(t, bulkorder.ReadyForDelivery, o.Status(), "dispatch leaves status unchanged")

		require.NoError(t, o.Complete(today))
		assert.Equal(t, bulkorder.Completed, o.Status())
	})

	t.Run("event-date lock blocks preparing and reports days remaining", func(t *testing.T) {
		o := newPendingOrder(t, chefID, today.AddDate(0, 0, 3))
		require.NoError(t, o.Accept(chefID, ""))

		err := o.StartPreparing(today)

		var locked *errs.EventDateLockedError
		require.ErrorAs(t, err, &locked)
		assert.Equal(t, 3, locked.DaysRemaining)
		assert.Equal(t, bulkorder.Accepted, o.Status(), "status unchanged on lock")
	})

	t.Run("lock message format is preserved", func(t *testing.T) {
		eventDate := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)
		o := newPendingOrder(t, chefID, eventDate)
		require.NoError(t, o.Accept(chefID, ""))

		err := o.StartPreparing(today)

		require.Error(t, err)
		assert.Equal(t,
			"Event is in 3 day(s). Status changes to preparing/completed are locked until March 13, 2025.",
			err.Error())
	})

	t.Run("unspecified event date is never locked", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)
		require.NoError(t, o.Accept(chefID, ""))

		require.NoError(t, o.StartPreparing(today))
	})

	t.Run("completing before ready is a conflict", func(t *testing.T) {
		o := newPendingOrder(t, chefID, today)
		require.NoError(t, o.Accept(chefID, ""))
		require.NoError(t, o.StartPreparing(today))

		err := o.Complete(today)

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestBulkOrder_ValidateAssignDelivery(t *testing.T) {
	chefID := kernel.NewUUID()
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	t.Run("pickup orders are not dispatched", func(t *testing.T) {
		o, err := bulkorder.NewBulkOrder(
			kernel.NewUUID(), kernel.NewUUID(), chefID,
			bulkorder.Pickup, today, testItems(t), testCreatedAt,
		)
		require.NoError(t, err)
		require.NoError(t, o.Accept(chefID, ""))
		require.NoError(t, o.StartPreparing(today))
		require.NoError(t, o.MarkReadyForDelivery(today))

		err = o.ValidateAssignDelivery()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("dispatch requires ready_for_delivery", func(t *testing.T) {
		o := newPendingOrder(t, chefID, today)
		require.NoError(t, o.Accept(chefID, ""))

		err := o.ValidateAssignDelivery()

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestBulkOrder_Cancel(t *testing.T) {
	chefID := kernel.NewUUID()

	t.Run("primary chef cancels", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		err := o.Cancel(chefID, "Customer asked to withdraw")

		require.NoError(t, err)
		assert.Equal(t, bulkorder.Cancelled, o.Status())
		assert.Equal(t, "Customer asked to withdraw", o.CancelReason())
	})

	t.Run("customer cancels", func(t *testing.T) {
		customerID := kernel.NewUUID()
		o, err := bulkorder.NewBulkOrder(
			kernel.NewUUID(), customerID, chefID,
			bulkorder.Delivery, services.UnspecifiedEventDate, testItems(t), testCreatedAt,
		)
		require.NoError(t, err)

		require.NoError(t, o.Cancel(customerID, ""))
		assert.Equal(t, bulkorder.Cancelled, o.Status())
	})

	t.Run("strangers may not cancel", func(t *testing.T) {
		o := newPendingOrder(t, chefID, services.UnspecifiedEventDate)

		err := o.Cancel(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, bulkorder.Pending, o.Status())
	})

	t.Run("cancelling a completed order is a conflict", func(t *testing.T) {
		today := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
		o := newPendingOrder(t, chefID, today)
		require.NoError(t, o.Accept(chefID, ""))
		require.NoError(t, o.StartPreparing(today))
		require.NoError(t, o.MarkReadyForDelivery(today))
		require.NoError(t, o.Complete(today))

		err := o.Cancel(chefID, "")

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestRestoreBulkOrder(t *testing.T) {
	chefID := kernel.NewUUID()

	t.Run("restores a persisted aggregate", func(t *testing.T) {
		collaborator := kernel.NewUUID()

		o, err := bulkorder.RestoreBulkOrder(
			kernel.NewUUID(), "BULK-0A1B2C3D",
			kernel.NewUUID(), chefID,
			[]kernel.UUID{collaborator},
			bulkorder.Collaborating, bulkorder.Delivery,
			services.UnspecifiedEventDate, testItems(t),
			"note", "", "",
			testCreatedAt, 7,
		)

		require.NoError(t, err)
		assert.Equal(t, bulkorder.Collaborating, o.Status())
		assert.Equal(t, "BULK-0A1B2C3D", o.OrderNumber())
		assert.Equal(t, 7, o.Version())
		require.Len(t, o.Collaborators(), 1)
	})

	t.Run("rejects collaborators on a pending order", func(t *testing.T) {
		_, err := bulkorder.RestoreBulkOrder(
			kernel.NewUUID(), "BULK-0A1B2C3D",
			kernel.NewUUID(), chefID,
			[]kernel.UUID{kernel.NewUUID()},
			bulkorder.Pending, bulkorder.Delivery,
			services.UnspecifiedEventDate, testItems(t),
			"", "", "",
			testCreatedAt, 1,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := bulkorder.RestoreBulkOrder(
			kernel.NewUUID(), "BULK-0A1B2C3D",
			kernel.NewUUID(), chefID, nil,
			bulkorder.Unknown, bulkorder.Delivery,
			services.UnspecifiedEventDate, testItems(t),
			"", "", "",
			testCreatedAt, 1,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := bulkorder.RestoreBulkOrder(
			kernel.NewUUID(), "",
			kernel.NewUUID(), chefID, nil,
			bulkorder.Pending, bulkorder.Delivery,
			services.UnspecifiedEventDate, testItems(t),
			"", "", "",
			testCreatedAt, 1,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
