package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	deliverycontext "github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/context"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/policy"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/repository"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// orderStatusRoles are the roles allowed to move an order through its
// lifecycle. No ownership check is applied: any vendor may update any order.
var orderStatusRoles = entity.Roles{entity.RoleVendor, entity.RoleAdmin}

// anyAuthenticatedRole lists every role; order reads are open to all
// authenticated callers, scoped by ownership.
var anyAuthenticatedRole = entity.Roles{entity.RoleCustomer, entity.RoleVendor, entity.RoleAdmin}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places an order for the caller. Every requested line is
// resolved to a product inside one transaction; a single missing product
// aborts the whole operation with no partial persistence and the failing id
// in the error details. Unit prices are snapshotted from the catalog at call
// time and line subtotals are computed server-side. The order total is
// stored exactly as declared by the client and is not recomputed; see the
// accompanying tests for this documented deviation.
func (srv *orderService) CreateOrder(ctx context.Context, caller usecase.Caller, input *usecase.CreateOrderInput) (*entity.Order, error) {
	paymentMethod := entity.PaymentMethod(input.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentMethod, "order creation failed")
	}

	order := &entity.Order{
		CustomerID:      caller.ID,
		DeliveryAddress: input.DeliveryAddress.ToEntity(),
		PaymentMethod:   paymentMethod,
		Total:           input.Total,
		Status:          entity.OrderStatusPending,
		Notes:           input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		lines := make([]entity.OrderLine, 0, len(input.Lines))
		for _, lineInput := range input.Lines {
			product, err := productRepo.FindByID(ctx, lineInput.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(
						domainerrors.ErrProductNotFound.WithDetails("product "+lineInput.ProductID.String()+" does not exist"),
						"order line resolution failed",
					)
				}

				return errors.Wrap(err, "failed to resolve order line product")
			}

			quantity := decimal.NewFromInt(int64(lineInput.Quantity))
			lines = append(lines, entity.OrderLine{
				ProductID: product.ID,
				Quantity:  lineInput.Quantity,
				UnitPrice: product.Price,
				Subtotal:  product.Price.Mul(quantity),
			})
		}

		order.Lines = lines

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to persist order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute order creation transaction", slog.Any("customerID", caller.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.Any("customerID", caller.ID))
	srv.publishEvent(ctx, service.OrderEventCreated, order)

	return order, nil
}

// ListOrders returns all orders for admins and only the caller's own orders
// for everyone else.
func (srv *orderService) ListOrders(ctx context.Context, caller usecase.Caller) ([]*entity.Order, error) {
	var (
		orders []*entity.Order
		err    error
	)

	if caller.Role == entity.RoleAdmin {
		orders, err = srv.orderRepo.FindAll(ctx)
	} else {
		orders, err = srv.orderRepo.FindByCustomer(ctx, caller.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one order. NotFound when it does not exist, Forbidden
// when the caller is neither admin nor its owner.
func (srv *orderService) GetOrder(ctx context.Context, caller usecase.Caller, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !policy.Allow(caller.Role, caller.ID, policy.Owned(order.CustomerID), anyAuthenticatedRole) {
		srv.log(ctx).Warn("Order read denied", slog.Any("orderID", id), slog.Any("callerID", caller.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "order read denied")
	}

	return order, nil
}

// UpdateOrderStatus sets the order's status unconditionally to any
// enumerated value. No transition table is enforced and the total is never
// recomputed.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, caller usecase.Caller, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !policy.Allow(caller.Role, caller.ID, nil, orderStatusRoles) {
		srv.log(ctx).Warn("Order status update denied", slog.Any("orderID", id), slog.Any("callerID", caller.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "order status update denied")
	}

	status := entity.OrderStatus(input.Status)
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "order status update failed")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order status update failed")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order after status update")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", id), slog.String("status", status.String()), slog.Any("callerID", caller.ID))
	srv.publishEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// DeleteOrder irreversibly removes an order and its lines. Admin only.
func (srv *orderService) DeleteOrder(ctx context.Context, caller usecase.Caller, id uuid.UUID) error {
	if !policy.Allow(caller.Role, caller.ID, nil, entity.Roles{entity.RoleAdmin}) {
		srv.log(ctx).Warn("Order deletion denied", slog.Any("orderID", id), slog.Any("callerID", caller.ID))

		return errors.Wrap(domainerrors.ErrForbidden, "order deletion denied")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order deletion failed")
		}

		return errors.Wrap(err, "failed to find order for deletion")
	}

	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order deletion failed")
		}

		return errors.Wrap(err, "failed to delete order")
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id), slog.Any("callerID", caller.ID))
	srv.publishEvent(ctx, service.OrderEventDeleted, order)

	return nil
}

// TrackingQR renders the tracking QR code for an order the caller may read.
func (srv *orderService) TrackingQR(ctx context.Context, caller usecase.Caller, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateTrackingQR(order.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tracking QR code", slog.Any("orderID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// publishEvent emits an order lifecycle event. Publishing is best-effort:
// a failure is logged and never fails the operation that produced it.
func (srv *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     order.Status.String(),
		Total:      order.Total.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.Any("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
