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
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

func TestProductService_CreateProduct_UnknownStore(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor@example.com", entity.RoleVendor)

	_, err := env.products.CreateProduct(context.Background(), vendor, &usecase.CreateProductInput{
		StoreID: uuid.New(),
		Name:    "Produto Órfão",
		Price:   decimal.RequireFromString("10.00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestProductService_CreateProduct_NonOwnerVendorForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "owner@example.com", entity.RoleVendor)
	intruder := env.registerCaller(t, "intruder@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja Alheia")

	_, err := env.products.CreateProduct(context.Background(), intruder, &usecase.CreateProductInput{
		StoreID: store.ID,
		Name:    "Produto Invasor",
		Price:   decimal.RequireFromString("5.00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_ListStoreProducts_UnknownStoreIsEmpty(t *testing.T) {
	env := newTestEnv(t)

	products, err := env.products.ListStoreProducts(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ListStoreProducts(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "lister@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja Cheia")
	env.createProduct(t, owner, store.ID, "Pastel", "8.00")
	env.createProduct(t, owner, store.ID, "Caldo de Cana", "6.00")

	products, err := env.products.ListStoreProducts(context.Background(), store.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductService_UpdateProduct_ByOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "editor@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja Editável")
	product := env.createProduct(t, owner, store.ID, "Tapioca", "12.00")

	updated, err := env.products.UpdateProduct(context.Background(), owner, product.ID, &usecase.UpdateProductInput{
		Name:      "Tapioca Recheada",
		Price:     decimal.RequireFromString("15.50"),
		Available: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tapioca Recheada", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("15.50")))

	reloaded, err := env.products.GetProduct(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Price.Equal(decimal.RequireFromString("15.50")))
}

func TestProductService_DeleteProduct_NonOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "keeper@example.com", entity.RoleVendor)
	other := env.registerCaller(t, "rival@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja Vigiada")
	product := env.createProduct(t, owner, store.ID, "Bolo de Rolo", "22.00")

	err := env.products.DeleteProduct(context.Background(), other, product.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_DeleteProduct_ByOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "remover@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja Enxuta")
	product := env.createProduct(t, owner, store.ID, "Queijo Coalho", "9.90")

	require.NoError(t, env.products.DeleteProduct(context.Background(), owner, product.ID))

	_, err := env.products.GetProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
