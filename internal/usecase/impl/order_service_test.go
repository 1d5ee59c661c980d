package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/persistence/model"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

func TestOrderService_CreateOrder_SnapshotsUnitPrice(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Lanchonete")
	product := env.createProduct(t, vendor, store.ID, "X-Tudo", "19.90")

	order, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "pix",
		Total:           decimal.RequireFromString("59.70"),
		Lines: []usecase.OrderLineInput{
			{ProductID: product.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, customer.ID, order.CustomerID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Lines, 1)
	assert.True(t, order.Lines[0].UnitPrice.Equal(decimal.RequireFromString("19.90")))
	assert.True(t, order.Lines[0].Subtotal.Equal(decimal.RequireFromString("59.70")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("59.70")))

	// A later catalog price change never rewrites the frozen snapshot.
	_, err = env.products.UpdateProduct(context.Background(), vendor, product.ID, &usecase.UpdateProductInput{
		Name:      "X-Tudo",
		Price:     decimal.RequireFromString("25.00"),
		Available: true,
	})
	require.NoError(t, err)

	reloaded, err := env.orders.GetOrder(context.Background(), customer, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Lines, 1)
	assert.True(t, reloaded.Lines[0].UnitPrice.Equal(decimal.RequireFromString("19.90")))
	assert.True(t, reloaded.Lines[0].Subtotal.Equal(decimal.RequireFromString("59.70")))
}

// The declared total is persisted verbatim even when it disagrees with the
// sum of the line subtotals. Known deviation: the server does not recompute
// or validate the client-declared total.
func TestOrderService_CreateOrder_DeclaredTotalTrusted(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor2@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer2@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Pizzaria")
	product := env.createProduct(t, vendor, store.ID, "Pizza Grande", "40.00")

	order, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "card",
		Total:           decimal.RequireFromString("1.00"),
		Lines: []usecase.OrderLineInput{
			{ProductID: product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(decimal.RequireFromString("1.00")))
	assert.True(t, order.Lines[0].Subtotal.Equal(decimal.RequireFromString("80.00")))
}

func TestOrderService_CreateOrder_MissingProductAbortsAtomically(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor3@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer3@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Hamburgueria")
	product := env.createProduct(t, vendor, store.ID, "Burger", "25.00")

	missingID := uuid.New()
	_, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "cash",
		Total:           decimal.RequireFromString("50.00"),
		Lines: []usecase.OrderLineInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: missingID, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	// The failing product id is reported.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), missingID.String())

	// Nothing was persisted, neither the order nor its resolvable lines.
	var orderCount, lineCount int64
	require.NoError(t, env.db.Model(&model.OrderModel{}).Count(&orderCount).Error)
	require.NoError(t, env.db.Model(&model.OrderLineModel{}).Count(&lineCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, lineCount)
}

func TestOrderService_CreateOrder_InvalidPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	customer := env.registerCaller(t, "payer@example.com", entity.RoleCustomer)

	_, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "cheque",
		Lines: []usecase.OrderLineInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
}

func TestOrderService_ListOrders_ScopedByOwnership(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor4@example.com", entity.RoleVendor)
	alice := env.registerCaller(t, "alice@example.com", entity.RoleCustomer)
	bob := env.registerCaller(t, "bob@example.com", entity.RoleCustomer)
	admin := env.registerCaller(t, "admin@example.com", entity.RoleAdmin)
	store := env.createStore(t, vendor, "Padaria")
	product := env.createProduct(t, vendor, store.ID, "Pão Francês", "0.90")

	for _, caller := range []usecase.Caller{alice, alice, bob} {
		_, err := env.orders.CreateOrder(context.Background(), caller, &usecase.CreateOrderInput{
			DeliveryAddress: deliveryAddressInput(),
			PaymentMethod:   "cash",
			Total:           decimal.RequireFromString("0.90"),
			Lines:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	aliceOrders, err := env.orders.ListOrders(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, aliceOrders, 2)
	for _, order := range aliceOrders {
		assert.Equal(t, alice.ID, order.CustomerID)
	}

	adminOrders, err := env.orders.ListOrders(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, adminOrders, 3)
}

func TestOrderService_GetOrder_UnrelatedCustomerForbidden(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor5@example.com", entity.RoleVendor)
	owner := env.registerCaller(t, "dona@example.com", entity.RoleCustomer)
	stranger := env.registerCaller(t, "stranger@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Sushi Bar")
	product := env.createProduct(t, vendor, store.ID, "Combo 1", "89.90")

	order, err := env.orders.CreateOrder(context.Background(), owner, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "pix",
		Total:           decimal.RequireFromString("89.90"),
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = env.orders.GetOrder(context.Background(), stranger, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	env := newTestEnv(t)
	customer := env.registerCaller(t, "seeker@example.com", entity.RoleCustomer)

	_, err := env.orders.GetOrder(context.Background(), customer, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_VisibleToOwner(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor6@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer6@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Churrascaria")
	product := env.createProduct(t, vendor, store.ID, "Espetinho", "12.00")

	order, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "cash",
		Total:           decimal.RequireFromString("12.00"),
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Any vendor may update any order's status; no ownership check applies.
	updated, err := env.orders.UpdateOrderStatus(context.Background(), vendor, order.ID, &usecase.UpdateOrderStatusInput{
		Status: "preparing",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, updated.Status)

	seen, err := env.orders.GetOrder(context.Background(), customer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPreparing, seen.Status)

	// The total is untouched by status changes.
	assert.True(t, seen.Total.Equal(order.Total))
}

func TestOrderService_UpdateOrderStatus_CustomerForbidden(t *testing.T) {
	env := newTestEnv(t)
	customer := env.registerCaller(t, "customer7@example.com", entity.RoleCustomer)

	_, err := env.orders.UpdateOrderStatus(context.Background(), customer, uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: "delivered",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor7@example.com", entity.RoleVendor)

	_, err := env.orders.UpdateOrderStatus(context.Background(), vendor, uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: "teleported",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_DeleteOrder_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor8@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer8@example.com", entity.RoleCustomer)
	admin := env.registerCaller(t, "admin2@example.com", entity.RoleAdmin)
	store := env.createStore(t, vendor, "Doceria")
	product := env.createProduct(t, vendor, store.ID, "Brigadeiro", "3.50")

	order, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "pix",
		Total:           decimal.RequireFromString("3.50"),
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	err = env.orders.DeleteOrder(context.Background(), vendor, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, env.orders.DeleteOrder(context.Background(), admin, order.ID))

	_, err = env.orders.GetOrder(context.Background(), admin, order.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	// The cascade removed the lines as well.
	var lineCount int64
	require.NoError(t, env.db.Model(&model.OrderLineModel{}).Where("order_id = ?", order.ID.String()).Count(&lineCount).Error)
	assert.Zero(t, lineCount)
}

func TestOrderService_TrackingQR(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor9@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer9@example.com", entity.RoleCustomer)
	stranger := env.registerCaller(t, "stranger2@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Tapiocaria")
	product := env.createProduct(t, vendor, store.ID, "Tapioca Doce", "10.00")

	order, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "card",
		Total:           decimal.RequireFromString("10.00"),
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	png, err := env.orders.TrackingQR(context.Background(), customer, order.ID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, byte(0x89), png[0])

	_, err = env.orders.TrackingQR(context.Background(), stranger, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_PublishesLifecycleEvents(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor10@example.com", entity.RoleVendor)
	customer := env.registerCaller(t, "customer10@example.com", entity.RoleCustomer)
	store := env.createStore(t, vendor, "Açaiteria")
	product := env.createProduct(t, vendor, store.ID, "Açaí 500ml", "18.00")

	order, err := env.orders.CreateOrder(context.Background(), customer, &usecase.CreateOrderInput{
		DeliveryAddress: deliveryAddressInput(),
		PaymentMethod:   "pix",
		Total:           decimal.RequireFromString("18.00"),
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = env.orders.UpdateOrderStatus(context.Background(), vendor, order.ID, &usecase.UpdateOrderStatusInput{
		Status: "en_route",
	})
	require.NoError(t, err)

	require.Len(t, env.publisher.events, 2)
	assert.Equal(t, service.OrderEventCreated, env.publisher.events[0].Type)
	assert.Equal(t, order.ID.String(), env.publisher.events[0].OrderID)
	assert.Equal(t, service.OrderEventStatusChanged, env.publisher.events[1].Type)
	assert.Equal(t, "en_route", env.publisher.events[1].Status)
}
