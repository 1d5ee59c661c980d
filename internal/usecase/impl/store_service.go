package impl

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/context"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/policy"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/repository"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// storeVendorRoles are the roles allowed to create and edit stores.
var storeVendorRoles = entity.Roles{entity.RoleVendor, entity.RoleAdmin}

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore opens a new store owned by the caller. Any owner id in the
// payload is ignored.
func (srv *storeService) CreateStore(ctx context.Context, caller usecase.Caller, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if !policy.Allow(caller.Role, caller.ID, nil, storeVendorRoles) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "store creation denied")
	}

	store := &entity.Store{
		OwnerID:     caller.ID,
		Name:        input.Name,
		Description: input.Description,
		Phone:       input.Phone,
		ImagePath:   input.ImagePath,
		Address:     input.Address.ToEntity(),
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		srv.log(ctx).Error("Failed to create store", slog.Any("ownerID", caller.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Any("storeID", store.ID), slog.Any("ownerID", caller.ID))

	return store, nil
}

// ListStores returns every store. Public read.
func (srv *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// ListNearbyStores returns the stores within radiusKm of the given point,
// closest first. Distance is great-circle over the stores' coordinates.
func (srv *storeService) ListNearbyStores(ctx context.Context, lat, lng, radiusKm float64) ([]*usecase.NearbyStore, error) {
	stores, err := srv.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores for proximity search")
	}

	origin := orb.Point{lng, lat}
	nearby := make([]*usecase.NearbyStore, 0, len(stores))

	for _, store := range stores {
		point := orb.Point{store.Address.Longitude, store.Address.Latitude}
		distanceKm := geo.DistanceHaversine(origin, point) / 1000

		if distanceKm <= radiusKm {
			nearby = append(nearby, &usecase.NearbyStore{
				Store:      store,
				DistanceKm: distanceKm,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

// GetStore returns one store by id. Public read.
func (srv *storeService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// UpdateStore edits a store after resolving it and checking the caller is
// its owner or an admin.
func (srv *storeService) UpdateStore(ctx context.Context, caller usecase.Caller, id uuid.UUID, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := srv.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.Allow(caller.Role, caller.ID, policy.Owned(store.OwnerID), storeVendorRoles) {
		srv.log(ctx).Warn("Store update denied", slog.Any("storeID", id), slog.Any("callerID", caller.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "store update denied")
	}

	store.Name = input.Name
	store.Description = input.Description
	store.Phone = input.Phone
	store.ImagePath = input.ImagePath
	store.Address = input.Address.ToEntity()

	if err := srv.storeRepo.Update(ctx, store); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store update failed")
		}

		return nil, errors.Wrap(err, "failed to update store")
	}

	srv.log(ctx).Info("Store updated", slog.Any("storeID", id), slog.Any("callerID", caller.ID))

	return store, nil
}

// DeleteStore removes a store and, by cascade, its products. Admin only.
func (srv *storeService) DeleteStore(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	if !policy.Allow(caller.Role, caller.ID, nil, entity.Roles{entity.RoleAdmin}) {
		srv.log(ctx).Warn("Store deletion denied", slog.Any("storeID", id), slog.Any("callerID", caller.ID))

		return errors.Wrap(domainerrors.ErrForbidden, "store deletion denied")
	}

	if err := srv.storeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return errors.Wrap(domainerrors.ErrStoreNotFound, "store deletion failed")
		}

		return errors.Wrap(err, "failed to delete store")
	}

	srv.log(ctx).Info("Store deleted", slog.Any("storeID", id), slog.Any("callerID", caller.ID))

	return nil
}
