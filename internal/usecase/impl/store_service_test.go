package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

func TestStoreService_CreateStore_OwnerForcedToCaller(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "vendor@example.com", entity.RoleVendor)

	store := env.createStore(t, vendor, "Cantina da Vila")

	assert.Equal(t, vendor.ID, store.OwnerID)
	assert.NotEqual(t, uuid.Nil, store.ID)
}

func TestStoreService_CreateStore_CustomerForbidden(t *testing.T) {
	env := newTestEnv(t)
	customer := env.registerCaller(t, "customer@example.com", entity.RoleCustomer)

	_, err := env.stores.CreateStore(context.Background(), customer, &usecase.CreateStoreInput{
		Name:    "Loja Proibida",
		Address: usecase.AddressInput{Street: "Rua A", City: "Recife"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_UpdateStore_NonOwnerVendorForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "owner@example.com", entity.RoleVendor)
	other := env.registerCaller(t, "other@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja do Dono")

	_, err := env.stores.UpdateStore(context.Background(), other, store.ID, &usecase.UpdateStoreInput{
		Name:    "Loja Roubada",
		Address: usecase.AddressInput{Street: "Rua B", City: "Olinda"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_UpdateStore_AdminBypassesOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "owner2@example.com", entity.RoleVendor)
	admin := env.registerCaller(t, "admin@example.com", entity.RoleAdmin)
	store := env.createStore(t, owner, "Loja Fiscalizada")

	updated, err := env.stores.UpdateStore(context.Background(), admin, store.ID, &usecase.UpdateStoreInput{
		Name:    "Loja Corrigida",
		Address: usecase.AddressInput{Street: "Rua C", City: "Recife"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Loja Corrigida", updated.Name)

	// Ownership is untouched by an admin edit.
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.stores.GetStore(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_DeleteStore_VendorOwnerForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "owner3@example.com", entity.RoleVendor)
	store := env.createStore(t, owner, "Loja Persistente")

	// Deletion is reserved for admins, even against the owner.
	err := env.stores.DeleteStore(context.Background(), owner, store.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestStoreService_DeleteStore_CascadesProducts(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerCaller(t, "owner4@example.com", entity.RoleVendor)
	admin := env.registerCaller(t, "admin2@example.com", entity.RoleAdmin)
	store := env.createStore(t, owner, "Loja Temporária")
	product := env.createProduct(t, owner, store.ID, "Coxinha", "7.50")

	require.NoError(t, env.stores.DeleteStore(context.Background(), admin, store.ID))

	_, err := env.stores.GetStore(context.Background(), store.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)

	_, err = env.products.GetProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestStoreService_ListNearbyStores(t *testing.T) {
	env := newTestEnv(t)
	vendor := env.registerCaller(t, "geo@example.com", entity.RoleVendor)

	near, err := env.stores.CreateStore(context.Background(), vendor, &usecase.CreateStoreInput{
		Name: "Loja Perto",
		Address: usecase.AddressInput{
			Street: "Rua da Aurora", City: "Recife",
			Latitude: -8.0578, Longitude: -34.8829,
		},
	})
	require.NoError(t, err)

	_, err = env.stores.CreateStore(context.Background(), vendor, &usecase.CreateStoreInput{
		Name: "Loja Longe",
		Address: usecase.AddressInput{
			Street: "Av. Paulista", City: "São Paulo",
			Latitude: -23.5614, Longitude: -46.6559,
		},
	})
	require.NoError(t, err)

	// Search around central Recife with a 10km radius.
	nearby, err := env.stores.ListNearbyStores(context.Background(), -8.06, -34.88, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, near.ID, nearby[0].Store.ID)
	assert.Less(t, nearby[0].DistanceKm, 10.0)
}
