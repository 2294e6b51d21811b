package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/db"
)

func setupOrderTest(t *testing.T) (*gorm.DB, OrderRepository, *model.User, *model.Product) {
	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })

	user := &model.User{Email: "buyer@example.com", Password: "hash", Name: "Покупатель"}
	require.NoError(t, gdb.Create(user).Error)

	product := &model.Product{
		Title:       "Клавиатура mchose jet75",
		Description: "Игровая клавиатура",
		Price:       9000,
		PriceUnit:   "рублей",
		Category:    "клавиатура",
	}
	require.NoError(t, gdb.Create(product).Error)

	return gdb, NewOrderRepository(gdb), user, product
}

func TestOrderRepository_Create(t *testing.T) {
	_, repo, user, product := setupOrderTest(t)

	order := &model.Order{
		UserID:       user.ID,
		ProductID:    &product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		Quantity:     2,
		Status:       model.OrderStatusProcessing,
	}
	require.NoError(t, repo.Create(order))
	assert.NotZero(t, order.ID)

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "Клавиатура mchose jet75", found.ProductTitle)
	assert.Equal(t, model.OrderStatusProcessing, found.Status)
	assert.Equal(t, 2, found.Quantity)
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	gdb, repo, user, product := setupOrderTest(t)

	other := &model.User{Email: "other@example.com", Password: "hash"}
	require.NoError(t, gdb.Create(other).Error)

	for _, userID := range []uint{user.ID, user.ID, other.ID} {
		require.NoError(t, repo.Create(&model.Order{
			UserID:       userID,
			ProductID:    &product.ID,
			ProductTitle: product.Title,
			Price:        product.Price,
			Quantity:     1,
			Status:       model.OrderStatusProcessing,
		}))
	}

	orders, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, user.ID, o.UserID)
	}
}

func TestOrderRepository_Cancel(t *testing.T) {
	_, repo, user, product := setupOrderTest(t)

	order := &model.Order{
		UserID:       user.ID,
		ProductID:    &product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		Quantity:     1,
		Status:       model.OrderStatusProcessing,
	}
	require.NoError(t, repo.Create(order))

	affected, err := repo.Cancel(order.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, found.Status)

	// Second cancel is a no-op.
	affected, err = repo.Cancel(order.ID, user.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestOrderRepository_CancelForeignOrder(t *testing.T) {
	gdb, repo, user, product := setupOrderTest(t)

	stranger := &model.User{Email: "stranger@example.com", Password: "hash"}
	require.NoError(t, gdb.Create(stranger).Error)

	order := &model.Order{
		UserID:       user.ID,
		ProductID:    &product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		Quantity:     1,
		Status:       model.OrderStatusProcessing,
	}
	require.NoError(t, repo.Create(order))

	affected, err := repo.Cancel(order.ID, stranger.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, found.Status)
}

func TestOrderRepository_FindAllFilters(t *testing.T) {
	_, repo, user, product := setupOrderTest(t)

	statuses := []model.OrderStatus{
		model.OrderStatusProcessing,
		model.OrderStatusCompleted,
		model.OrderStatusCancelled,
	}
	for _, status := range statuses {
		require.NoError(t, repo.Create(&model.Order{
			UserID:       user.ID,
			ProductID:    &product.ID,
			ProductTitle: product.Title,
			Price:        product.Price,
			Quantity:     1,
			Status:       status,
		}))
	}

	all, err := repo.FindAll(OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	completed, err := repo.FindAll(OrderFilter{Status: model.OrderStatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, model.OrderStatusCompleted, completed[0].Status)

	byTitle, err := repo.FindAll(OrderFilter{Search: "mchose"})
	require.NoError(t, err)
	assert.Len(t, byTitle, 3)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	_, repo, user, product := setupOrderTest(t)

	order := &model.Order{
		UserID:       user.ID,
		ProductID:    &product.ID,
		ProductTitle: product.Title,
		Price:        product.Price,
		Quantity:     1,
		Status:       model.OrderStatusProcessing,
	}
	require.NoError(t, repo.Create(order))

	require.NoError(t, repo.UpdateStatus(order.ID, model.OrderStatusCompleted))

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, found.Status)

	err = repo.UpdateStatus(9999, model.OrderStatusCompleted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
