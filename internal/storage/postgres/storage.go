package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
	"github.com/saleshoes/storefront/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on. It allows the
// pool to be replaced with a mock in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *zap.Logger
}

type userRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type addressRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Addresses() repository.AddressRepository {
	return &addressRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            product_detail_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (user_id, product_detail_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            shipping_address TEXT NOT NULL,
            note TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            status INT NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_detail_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            quantity INT NOT NULL,
            price_at_order DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_status_history (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            status INT NOT NULL,
            changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            full_address TEXT NOT NULL,
            is_default BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_user ON cart_items(user_id, added_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_status_history_order ON order_status_history(order_id, changed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_user ON addresses(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	const query = `SELECT id, user_id, product_detail_id, name, quantity, unit_price, added_at
                   FROM cart_items WHERE user_id=$1 ORDER BY added_at`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductDetailID, &item.Name, &item.Quantity, &item.UnitPrice, &item.AddedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	const query = `INSERT INTO cart_items (user_id, product_detail_id, name, quantity, unit_price)
                   VALUES ($1, $2, $3, $4, $5)
                   ON CONFLICT (user_id, product_detail_id) DO UPDATE
                   SET quantity = cart_items.quantity + EXCLUDED.quantity,
                       unit_price = EXCLUDED.unit_price,
                       name = EXCLUDED.name
                   RETURNING id, quantity, added_at`
	stored := *item
	err := r.storage.pool.QueryRow(ctx, query, item.UserID, item.ProductDetailID, item.Name, item.Quantity, item.UnitPrice).
		Scan(&stored.ID, &stored.Quantity, &stored.AddedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *cartRepository) Remove(ctx context.Context, userID, itemID int64) error {
	const query = `DELETE FROM cart_items WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	const query = `DELETE FROM cart_items WHERE user_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	stored := *order
	stored.Total = model.ItemsTotal(order.Items)
	stored.Items = append([]model.OrderItem(nil), order.Items...)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (user_id, shipping_address, note, payment_method, payment_status, status, total)
                             VALUES ($1, $2, $3, $4, $5, $6, $7)
                             RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.UserID, order.ShippingAddress, order.Note,
			string(order.PaymentMethod), string(order.PaymentStatus),
			int(order.Status), stored.Total,
		).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_detail_id, name, quantity, price_at_order)
                            VALUES ($1, $2, $3, $4, $5) RETURNING id`
		for i := range stored.Items {
			item := &stored.Items[i]
			if err := tx.QueryRow(ctx, insertItem, stored.ID, item.ProductDetailID, item.Name, item.Quantity, item.PriceAtOrder).Scan(&item.ID); err != nil {
				return err
			}
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status) VALUES ($1, $2) RETURNING changed_at`
		var changedAt time.Time
		if err := tx.QueryRow(ctx, insertHistory, stored.ID, int(order.Status)).Scan(&changedAt); err != nil {
			return err
		}
		stored.History = []model.StatusChange{{Status: order.Status, ChangedAt: changedAt}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	const query = `SELECT id, user_id, shipping_address, note, payment_method, payment_status, status, total, created_at, updated_at
                   FROM orders WHERE id=$1`
	var (
		o             model.Order
		method        string
		paymentStatus string
		status        int
	)
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(
		&o.ID, &o.UserID, &o.ShippingAddress, &o.Note, &method, &paymentStatus, &status, &o.Total, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.PaymentMethod = model.PaymentMethod(method)
	o.PaymentStatus = model.PaymentStatus(paymentStatus)
	o.Status = model.OrderStatus(status)

	if o.Items, err = r.itemsByOrder(ctx, orderID); err != nil {
		return nil, err
	}
	if o.History, err = r.historyByOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) itemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, product_detail_id, name, quantity, price_at_order
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.ProductDetailID, &item.Name, &item.Quantity, &item.PriceAtOrder); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) historyByOrder(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	const query = `SELECT status, changed_at FROM order_status_history WHERE order_id=$1 ORDER BY changed_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.StatusChange
	for rows.Next() {
		var (
			status    int
			changedAt time.Time
		)
		if err := rows.Scan(&status, &changedAt); err != nil {
			return nil, err
		}
		history = append(history, model.StatusChange{Status: model.OrderStatus(status), ChangedAt: changedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, shipping_address, note, payment_method, payment_status, status, total, created_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o             model.Order
			method        string
			paymentStatus string
			status        int
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.ShippingAddress, &o.Note, &method, &paymentStatus, &status, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.PaymentMethod = model.PaymentMethod(method)
		o.PaymentStatus = model.PaymentStatus(paymentStatus)
		o.Status = model.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus moves an order to a new status only while its current status is
// in the allowed set. It returns ErrOrderNotCancellable when the order exists
// but has already progressed past the allowed set.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from []model.OrderStatus, to model.OrderStatus) error {
	allowed := make([]int32, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, int32(s))
	}

	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 AND status = ANY($3)`
		tag, err := tx.Exec(ctx, updateQuery, int(to), orderID, allowed)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			const existsQuery = `SELECT status FROM orders WHERE id=$1`
			var current int
			if err := tx.QueryRow(ctx, existsQuery, orderID).Scan(&current); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			return domainErrors.ErrOrderNotCancellable
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, insertHistory, orderID, int(to)); err != nil {
			return err
		}
		return nil
	})
}

// --- AddressRepository implementation ---

func (r *addressRepository) Create(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error) {
	addr := model.Address{UserID: userID, FullAddress: fullAddress, IsDefault: isDefault}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if isDefault {
			const clearDefault = `UPDATE addresses SET is_default=FALSE WHERE user_id=$1 AND is_default`
			if _, err := tx.Exec(ctx, clearDefault, userID); err != nil {
				return err
			}
		}

		const insertQuery = `INSERT INTO addresses (user_id, full_address, is_default)
                             VALUES ($1, $2, $3) RETURNING id, created_at`
		return tx.QueryRow(ctx, insertQuery, userID, fullAddress, isDefault).Scan(&addr.ID, &addr.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	const query = `SELECT id, user_id, full_address, is_default, created_at
                   FROM addresses WHERE user_id=$1 ORDER BY is_default DESC, created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.FullAddress, &a.IsDefault, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *zap.Logger {
	return s.logger
}
