package impl

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MatheusHenriquePrates/rankfome-backend/config"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/auth"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/persistence/model"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/persistence/postgres"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/infra/qrcode"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/usecase"
)

// capturingPublisher records published events instead of sending them anywhere.
type capturingPublisher struct {
	events []*service.OrderEvent
}

func (p *capturingPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.events = append(p.events, event)

	return nil
}

func (p *capturingPublisher) Close() error {
	return nil
}

// testEnv bundles the services under test with their backing stores.
type testEnv struct {
	db        *gorm.DB
	users     usecase.UserUsecase
	stores    usecase.StoreUsecase
	products  usecase.ProductUsecase
	orders    usecase.OrderUsecase
	publisher *capturingPublisher
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Secret:     "test-signing-secret",
			Issuer:     "rankfome",
			Audience:   "rankfome-app",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Foreign keys are off by default in SQLite; the cascade constraints on
	// the models depend on them.
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := &capturingPublisher{}

	users := NewUserService(UserServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		UserRepo:     postgres.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})

	stores := NewStoreService(StoreServiceParams{
		StoreRepo: postgres.NewStoreRepository(db),
		Logger:    logger,
	})

	products := NewProductService(ProductServiceParams{
		ProductRepo: postgres.NewProductRepository(db),
		StoreRepo:   postgres.NewStoreRepository(db),
		Logger:      logger,
	})

	orders := NewOrderService(OrderServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		OrderRepo: postgres.NewOrderRepository(db),
		Publisher: publisher,
		QRCode:    qrcode.NewQRCodeService(256, "M", ""),
		Logger:    logger,
	})

	return &testEnv{
		db:        db,
		users:     users,
		stores:    stores,
		products:  products,
		orders:    orders,
		publisher: publisher,
	}
}

// registerCaller registers an account and returns the caller identity the
// delivery layer would build from its token.
func (env *testEnv) registerCaller(t *testing.T, login string, role entity.Role) usecase.Caller {
	t.Helper()

	output, err := env.users.Register(context.Background(), &usecase.RegisterInput{
		Name:            "Test " + login,
		Login:           login,
		Password:        "password123",
		ConfirmPassword: "password123",
		Age:             30,
		City:            "Recife",
		Role:            role.String(),
	})
	require.NoError(t, err)

	id, err := uuid.Parse(output.User.ID)
	require.NoError(t, err)

	return usecase.Caller{ID: id, Role: role}
}

func (env *testEnv) createStore(t *testing.T, owner usecase.Caller, name string) *entity.Store {
	t.Helper()

	store, err := env.stores.CreateStore(context.Background(), owner, &usecase.CreateStoreInput{
		Name:        name,
		Description: "test store",
		Phone:       "81999990000",
		Address: usecase.AddressInput{
			Street:    "Rua da Aurora",
			Number:    "100",
			City:      "Recife",
			State:     "PE",
			Latitude:  -8.0578,
			Longitude: -34.8829,
		},
	})
	require.NoError(t, err)

	return store
}

func (env *testEnv) createProduct(t *testing.T, owner usecase.Caller, storeID uuid.UUID, name, price string) *entity.Product {
	t.Helper()

	product, err := env.products.CreateProduct(context.Background(), owner, &usecase.CreateProductInput{
		StoreID:   storeID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: true,
	})
	require.NoError(t, err)

	return product
}

func deliveryAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		Street:     "Av. Boa Viagem",
		Number:     "500",
		District:   "Boa Viagem",
		City:       "Recife",
		State:      "PE",
		PostalCode: "51011-000",
	}
}
