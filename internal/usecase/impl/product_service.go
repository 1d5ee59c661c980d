package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/context"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/policy"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/repository"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	StoreRepo   repository.StoreRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		storeRepo:   params.StoreRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveOwnedStore loads the product's store and checks the caller against
// its owner. Every product mutation goes through this gate.
func (srv *productService) resolveOwnedStore(ctx context.Context, caller usecase.Caller, storeID uuid.UUID) (*entity.Store, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	if !policy.Allow(caller.Role, caller.ID, policy.Owned(store.OwnerID), storeVendorRoles) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "product mutation denied")
	}

	return store, nil
}

// CreateProduct adds a product to a store the caller owns (or any store for
// admins).
func (srv *productService) CreateProduct(ctx context.Context, caller usecase.Caller, input *usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := srv.resolveOwnedStore(ctx, caller, input.StoreID); err != nil {
		srv.log(ctx).Warn("Product creation denied", slog.Any("storeID", input.StoreID), slog.Any("callerID", caller.ID), slog.Any("error", err))

		return nil, err
	}

	product := &entity.Product{
		StoreID:     input.StoreID,
		Name:        input.Name,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		Price:       input.Price,
		Available:   input.Available,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("storeID", input.StoreID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("storeID", input.StoreID))

	return product, nil
}

// ListProducts returns every product. Public read.
func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListStoreProducts returns a store's products. An unknown store id yields
// an empty slice, indistinguishable from a store with no products.
func (srv *productService) ListStoreProducts(ctx context.Context, storeID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	return products, nil
}

// GetProduct returns one product by id. Public read.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// UpdateProduct edits a product after checking the caller owns its store.
func (srv *productService) UpdateProduct(ctx context.Context, caller usecase.Caller, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := srv.resolveOwnedStore(ctx, caller, product.StoreID); err != nil {
		srv.log(ctx).Warn("Product update denied", slog.Any("productID", id), slog.Any("callerID", caller.ID))

		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.ImagePath = input.ImagePath
	product.Price = input.Price
	product.Available = input.Available

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", id), slog.Any("callerID", caller.ID))

	return product, nil
}

// DeleteProduct removes a product after checking the caller owns its store.
func (srv *productService) DeleteProduct(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if _, err := srv.resolveOwnedStore(ctx, caller, product.StoreID); err != nil {
		srv.log(ctx).Warn("Product deletion denied", slog.Any("productID", id), slog.Any("callerID", caller.ID))

		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product deletion failed")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id), slog.Any("callerID", caller.ID))

	return nil
}
