package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ValidatesSnapshot(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	uid := 3

	_, err := service.Create(&uid, nil, HandlingFee)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = service.Create(&uid, []OrderItem{{ProductID: 1, Quantity: 0, Price: 10}}, 10+HandlingFee)
	assert.ErrorIs(t, err, ErrBadQuantity)

	// total must be items plus the handling fee, nothing else
	_, err = service.Create(&uid, []OrderItem{{ProductID: 1, Quantity: 2, Price: 10}}, 20)
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestCreate_PendingWithReference(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	uid := 3

	created, err := service.Create(&uid, []OrderItem{{ProductID: 1, Quantity: 2, Price: 33}}, 66+HandlingFee)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.NotEmpty(t, created.Reference)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestCreate_GuestOrderHasNoUser(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	created, err := service.Create(nil, []OrderItem{{ProductID: 9, Quantity: 1, Price: 5}}, 5+HandlingFee)
	require.NoError(t, err)
	assert.Nil(t, created.UserID)

	// guest orders belong to nobody's history
	for userID := 1; userID <= 3; userID++ {
		orders, err := service.ListByUser(userID)
		require.NoError(t, err)
		assert.Empty(t, orders)
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	uid := 8

	older := Order{UserID: &uid, Total: 10, Status: StatusPending, CreatedAt: "2026-08-30T10:00:00Z"}
	newer := Order{UserID: &uid, Total: 20, Status: StatusPending, CreatedAt: "2026-08-31T10:00:00Z"}
	_, err := repo.Create(older)
	require.NoError(t, err)
	_, err = repo.Create(newer)
	require.NoError(t, err)

	orders, err := service.ListByUser(uid)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 20, orders[0].Total)
	assert.Equal(t, 10, orders[1].Total)
}
