package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/db"
)

const testCardNumber = "4242 4242 4242 4242"

func setupOrderServiceTest(t *testing.T) (*gorm.DB, OrderService, *model.User, *model.Product) {
	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })

	user := &model.User{Email: "buyer@example.com", Password: "hash"}
	require.NoError(t, gdb.Create(user).Error)

	product := &model.Product{
		Title:       "Компьютерная мышь mchose k7 ultra",
		Description: "Игровая мышь",
		Price:       8500,
		PriceUnit:   "рублей",
	}
	require.NoError(t, gdb.Create(product).Error)

	svc := NewOrderService(
		repository.NewOrderRepository(gdb),
		repository.NewProductRepository(gdb),
	)
	return gdb, svc, user, product
}

func TestOrderService_CreateOrder(t *testing.T) {
	_, svc, user, product := setupOrderServiceTest(t)

	order, err := svc.CreateOrder(user.ID, CreateOrderInput{
		ProductID:  product.ID,
		Quantity:   2,
		Address:    "Москва, ул. Пушкина, д. 1",
		CardNumber: testCardNumber,
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusProcessing, order.Status)
	assert.Equal(t, product.Title, order.ProductTitle)
	assert.Equal(t, 8500.0, order.Price)
	assert.Equal(t, 2, order.Quantity)
	require.NotNil(t, order.ProductID)
	assert.Equal(t, product.ID, *order.ProductID)
}

func TestOrderService_CreateOrderDefaultsQuantity(t *testing.T) {
	_, svc, user, product := setupOrderServiceTest(t)

	order, err := svc.CreateOrder(user.ID, CreateOrderInput{
		ProductID:  product.ID,
		Address:    "Санкт-Петербург, Невский пр., д. 10",
		CardNumber: testCardNumber,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, order.Quantity)
}

func TestOrderService_CreateOrderValidation(t *testing.T) {
	_, svc, user, product := setupOrderServiceTest(t)

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr error
	}{
		{
			name: "Missing address",
			input: CreateOrderInput{
				ProductID: product.ID, CardNumber: testCardNumber,
			},
			wantErr: ErrAddressRequired,
		},
		{
			name: "Bad card checksum",
			input: CreateOrderInput{
				ProductID: product.ID, Address: "адрес", CardNumber: "4242424242424243",
			},
			wantErr: ErrInvalidCardNumber,
		},
		{
			name: "Missing card",
			input: CreateOrderInput{
				ProductID: product.ID, Address: "адрес",
			},
			wantErr: ErrInvalidCardNumber,
		},
		{
			name: "Unknown product",
			input: CreateOrderInput{
				ProductID: 9999, Address: "адрес", CardNumber: testCardNumber,
			},
			wantErr: ErrProductNotFound,
		},
		{
			name: "Negative quantity",
			input: CreateOrderInput{
				ProductID: product.ID, Quantity: -1, Address: "адрес", CardNumber: testCardNumber,
			},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(user.ID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_OrderSurvivesProductDeletion(t *testing.T) {
	gdb, svc, user, product := setupOrderServiceTest(t)

	order, err := svc.CreateOrder(user.ID, CreateOrderInput{
		ProductID:  product.ID,
		Address:    "адрес",
		CardNumber: testCardNumber,
	})
	require.NoError(t, err)

	require.NoError(t, gdb.Delete(&model.Product{}, product.ID).Error)

	orders, err := svc.GetUserOrders(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ProductTitle, orders[0].ProductTitle)
	assert.Nil(t, orders[0].ProductID)
}

func TestOrderService_CancelOrder(t *testing.T) {
	_, svc, user, product := setupOrderServiceTest(t)

	order, err := svc.CreateOrder(user.ID, CreateOrderInput{
		ProductID:  product.ID,
		Address:    "адрес",
		CardNumber: testCardNumber,
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelOrder(order.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, cancelled.Status)

	// Repeated cancel and foreign/unknown orders look identical.
	_, err = svc.CancelOrder(order.ID, user.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = svc.CancelOrder(order.ID, user.ID+1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = svc.CancelOrder(9999, user.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	_, svc, user, product := setupOrderServiceTest(t)

	order, err := svc.CreateOrder(user.ID, CreateOrderInput{
		ProductID:  product.ID,
		Address:    "адрес",
		CardNumber: testCardNumber,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(order.ID, model.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, updated.Status)

	_, err = svc.UpdateOrderStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	_, err = svc.UpdateOrderStatus(9999, model.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
