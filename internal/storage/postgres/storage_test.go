package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	storage := &Storage{pool: mock, logger: zap.NewNop()}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS cart_items",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
		"CREATE TABLE IF NOT EXISTS order_status_history",
		"CREATE TABLE IF NOT EXISTS addresses",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	indexStatements := []string{
		"CREATE INDEX IF NOT EXISTS idx_cart_items_user",
		"CREATE INDEX IF NOT EXISTS idx_orders_user",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order",
		"CREATE INDEX IF NOT EXISTS idx_order_status_history_order",
		"CREATE INDEX IF NOT EXISTS idx_addresses_user",
	}
	for _, stmt := range indexStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func TestNew(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		if _, err := New(context.Background(), ":://bad", zap.NewNop()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("pool creation error", func(t *testing.T) {
		t.Cleanup(func() {
			newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
				return pgxpool.NewWithConfig(ctx, cfg)
			}
		})
		newPgxPool = func(context.Context, *pgxpool.Config) (pgxPool, error) {
			return nil, errors.New("boom")
		}
		if _, err := New(context.Background(), "postgres://localhost/db", zap.NewNop()); err == nil {
			t.Fatal("expected pool error")
		}
	})

	t.Run("schema init", func(t *testing.T) {
		mock, err := pgxmockv3.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		t.Cleanup(func() {
			newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
				return pgxpool.NewWithConfig(ctx, cfg)
			}
		})
		newPgxPool = func(context.Context, *pgxpool.Config) (pgxPool, error) { return mock, nil }

		expectSchema(mock)
		storage, err := New(context.Background(), "postgres://localhost/db", zap.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if storage == nil {
			t.Fatal("expected storage")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("schema init failure closes pool", func(t *testing.T) {
		mock, err := pgxmockv3.NewPool()
		if err != nil {
			t.Fatalf("mock pool: %v", err)
		}
		t.Cleanup(func() {
			newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
				return pgxpool.NewWithConfig(ctx, cfg)
			}
		})
		newPgxPool = func(context.Context, *pgxpool.Config) (pgxPool, error) { return mock, nil }

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("boom"))
		if _, err := New(context.Background(), "postgres://localhost/db", zap.NewNop()); err == nil {
			t.Fatal("expected schema error")
		}
	})
}

func TestUserRepository(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "hash").
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

		u, err := storage.Users().Create(context.Background(), "alice", "hash")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != 1 || u.Login != "alice" {
			t.Fatalf("unexpected user %+v", u)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("create duplicate", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		if _, err := storage.Users().Create(context.Background(), "alice", "hash"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("get by login not found", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM users").
			WillReturnError(pgx.ErrNoRows)

		if _, err := storage.Users().GetByLogin(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery("SELECT id, login, password_hash, created_at FROM users").
			WithArgs(int64(7)).
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "login", "password_hash", "created_at"}).
				AddRow(int64(7), "alice", "hash", time.Now()))

		u, err := storage.Users().GetByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Login != "alice" {
			t.Fatalf("unexpected user %+v", u)
		}
	})
}

func TestCartRepository(t *testing.T) {
	t.Run("add upserts quantity", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(int64(1), int64(100), "Runner Mk2", 2, 150000.0).
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "quantity", "added_at"}).AddRow(int64(5), 3, time.Now()))

		item, err := storage.Carts().Add(context.Background(), &model.CartItem{
			UserID: 1, ProductDetailID: 100, Name: "Runner Mk2", Quantity: 2, UnitPrice: 150000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 5 || item.Quantity != 3 {
			t.Fatalf("unexpected item %+v", item)
		}
	})

	t.Run("list", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		rows := pgxmockv3.NewRows([]string{"id", "user_id", "product_detail_id", "name", "quantity", "unit_price", "added_at"}).
			AddRow(int64(5), int64(1), int64(100), "Runner Mk2", 2, 150000.0, time.Now()).
			AddRow(int64(6), int64(1), int64(101), "Trail Pro", 1, 99000.0, time.Now())
		mock.ExpectQuery("SELECT id, user_id, product_detail_id, name, quantity, unit_price, added_at").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		items, err := storage.Carts().ListByUser(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[1].Name != "Trail Pro" {
			t.Fatalf("unexpected items %+v", items)
		}
	})

	t.Run("remove missing item", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectExec("DELETE FROM cart_items WHERE id=").
			WillReturnResult(pgxmockv3.NewResult("DELETE", 0))

		if err := storage.Carts().Remove(context.Background(), 1, 99); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("clear", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectExec("DELETE FROM cart_items WHERE user_id=").
			WithArgs(int64(1)).
			WillReturnResult(pgxmockv3.NewResult("DELETE", 2))

		if err := storage.Carts().Clear(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery("INSERT INTO order_status_history").
		WillReturnRows(pgxmockv3.NewRows([]string{"changed_at"}).AddRow(now))
	mock.ExpectCommit()

	order, err := storage.Orders().Create(context.Background(), &model.Order{
		UserID:          1,
		ShippingAddress: "12 Nguyen Trai, Ward 5, District 1, HCMC",
		PaymentMethod:   model.PaymentMethodCOD,
		PaymentStatus:   model.PaymentStatusUnpaid,
		Status:          model.OrderStatusPending,
		Items: []model.OrderItem{
			{ProductDetailID: 100, Name: "Runner Mk2", Quantity: 2, PriceAtOrder: 150000},
			{ProductDetailID: 101, Name: "Trail Pro", Quantity: 1, PriceAtOrder: 99000},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 10 {
		t.Fatalf("expected order id 10, got %d", order.ID)
	}
	if order.Total != 399000 {
		t.Fatalf("expected computed total 399000, got %v", order.Total)
	}
	if len(order.History) != 1 || order.History[0].Status != model.OrderStatusPending {
		t.Fatalf("expected initial history entry, got %+v", order.History)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryCreateRollsBackOnItemError(t *testing.T) {
	storage, mock := newMockStorage(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := storage.Orders().Create(context.Background(), &model.Order{
		UserID: 1,
		Items:  []model.OrderItem{{ProductDetailID: 100, Quantity: 1, PriceAtOrder: 10}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, shipping_address, note, payment_method, payment_status, status, total, created_at, updated_at").
		WithArgs(int64(10)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "user_id", "shipping_address", "note", "payment_method", "payment_status", "status", "total", "created_at", "updated_at"}).
			AddRow(int64(10), int64(1), "12 Nguyen Trai", "", "banking", "paid", 0, 399000.0, now, now))
	mock.ExpectQuery("SELECT id, product_detail_id, name, quantity, price_at_order").
		WithArgs(int64(10)).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "product_detail_id", "name", "quantity", "price_at_order"}).
			AddRow(int64(1), int64(100), "Runner Mk2", 2, 150000.0))
	mock.ExpectQuery("SELECT status, changed_at FROM order_status_history").
		WithArgs(int64(10)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status", "changed_at"}).AddRow(0, now))

	order, err := storage.Orders().GetByID(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.PaymentMethod != model.PaymentMethodBanking || order.PaymentStatus != model.PaymentStatusPaid {
		t.Fatalf("unexpected payment fields %+v", order)
	}
	if len(order.Items) != 1 || len(order.History) != 1 {
		t.Fatalf("expected items and history to be loaded, got %+v", order)
	}
}

func TestOrderRepositoryGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT id, user_id, shipping_address").
		WillReturnError(pgx.ErrNoRows)

	if _, err := storage.Orders().GetByID(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	t.Run("cancel pending order", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders SET status=").
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectExec("INSERT INTO order_status_history").
			WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := storage.Orders().UpdateStatus(context.Background(), 10,
			[]model.OrderStatus{model.OrderStatusPending, model.OrderStatusProcessing},
			model.OrderStatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("order past cancellable stage", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders SET status=").
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT status FROM orders").
			WillReturnRows(pgxmockv3.NewRows([]string{"status"}).AddRow(2))
		mock.ExpectRollback()

		err := storage.Orders().UpdateStatus(context.Background(), 10,
			[]model.OrderStatus{model.OrderStatusPending, model.OrderStatusProcessing},
			model.OrderStatusCancelled)
		if !errors.Is(err, domainErrors.ErrOrderNotCancellable) {
			t.Fatalf("expected ErrOrderNotCancellable, got %v", err)
		}
	})

	t.Run("order missing", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders SET status=").
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
		mock.ExpectQuery("SELECT status FROM orders").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		err := storage.Orders().UpdateStatus(context.Background(), 404,
			[]model.OrderStatus{model.OrderStatusPending},
			model.OrderStatusCancelled)
		if !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAddressRepository(t *testing.T) {
	t.Run("create default clears previous default", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE addresses SET is_default=FALSE").
			WithArgs(int64(1)).
			WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
		mock.ExpectQuery("INSERT INTO addresses").
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now()))
		mock.ExpectCommit()

		addr, err := storage.Addresses().Create(context.Background(), 1, "12 Nguyen Trai, Ward 5, District 1, HCMC", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.ID != 3 || !addr.IsDefault {
			t.Fatalf("unexpected address %+v", addr)
		}
	})

	t.Run("create non-default skips clearing", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO addresses").
			WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(4), time.Now()))
		mock.ExpectCommit()

		addr, err := storage.Addresses().Create(context.Background(), 1, "34 Le Loi, District 3, HCMC", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if addr.IsDefault {
			t.Fatalf("unexpected default flag %+v", addr)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		storage, mock := newMockStorage(t)
		rows := pgxmockv3.NewRows([]string{"id", "user_id", "full_address", "is_default", "created_at"}).
			AddRow(int64(3), int64(1), "12 Nguyen Trai", true, time.Now()).
			AddRow(int64(4), int64(1), "34 Le Loi", false, time.Now())
		mock.ExpectQuery("SELECT id, user_id, full_address, is_default, created_at").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		addrs, err := storage.Addresses().ListByUser(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(addrs) != 2 || !addrs[0].IsDefault {
			t.Fatalf("unexpected addresses %+v", addrs)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	storage := &Storage{pool: mock, logger: zap.NewNop()}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error {
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
