package test

import (
	"context"
	"time"

	domainErrors "github.com/saleshoes/storefront/internal/domain/errors"
	"github.com/saleshoes/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub stores cart lines in-memory and tracks clear calls.
type CartRepositoryStub struct {
	ListFn   func(context.Context, int64) ([]model.CartItem, error)
	AddFn    func(context.Context, *model.CartItem) (*model.CartItem, error)
	RemoveFn func(context.Context, int64, int64) error
	ClearFn  func(context.Context, int64) error

	Items      []model.CartItem
	Next       int64
	ClearCalls []int64
	Err        error
}

// ListByUser returns the stored lines belonging to the user.
func (s *CartRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.CartItem
	for _, it := range s.Items {
		if it.UserID == userID {
			items = append(items, it)
		}
	}
	return items, nil
}

// Add stores the line, merging quantity into an existing line for the same
// product the way the real repository does.
func (s *CartRepositoryStub) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, item)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].UserID == item.UserID && s.Items[i].ProductDetailID == item.ProductDetailID {
			s.Items[i].Quantity += item.Quantity
			stored := s.Items[i]
			return &stored, nil
		}
	}
	s.Next++
	stored := *item
	stored.ID = s.Next
	stored.AddedAt = time.Now()
	s.Items = append(s.Items, stored)
	return &stored, nil
}

// Remove deletes a line by ID or reports not found.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, itemID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, itemID)
	}
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].UserID == userID && s.Items[i].ID == itemID {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// Clear drops all lines of the user and records the call.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	s.ClearCalls = append(s.ClearCalls, userID)
	if s.Err != nil {
		return s.Err
	}
	var kept []model.CartItem
	for _, it := range s.Items {
		if it.UserID != userID {
			kept = append(kept, it)
		}
	}
	s.Items = kept
	return nil
}

// OrderStatusCall stores information about UpdateStatus invocations.
type OrderStatusCall struct {
	OrderID int64
	From    []model.OrderStatus
	To      model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, []model.OrderStatus, model.OrderStatus) error

	Created     []model.Order
	Orders      []model.Order
	StatusCalls []OrderStatusCall
	Next        int64
	Err         error
}

// Create tracks invocations and returns a stored copy with an ID assigned.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	stored := *order
	stored.ID = s.Next
	stored.Total = model.ItemsTotal(order.Items)
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	stored.History = []model.StatusChange{{Status: stored.Status, ChangedAt: stored.CreatedAt}}
	s.Created = append(s.Created, stored)
	s.Orders = append(s.Orders, stored)
	return &stored, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// UpdateStatus records update invocations and applies the transition when the
// current status is among the allowed ones.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, from []model.OrderStatus, to model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, from, to)
	}
	s.StatusCalls = append(s.StatusCalls, OrderStatusCall{OrderID: orderID, From: from, To: to})
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID != orderID {
			continue
		}
		for _, allowed := range from {
			if s.Orders[i].Status == allowed {
				s.Orders[i].Status = to
				s.Orders[i].History = append(s.Orders[i].History, model.StatusChange{Status: to, ChangedAt: time.Now()})
				return nil
			}
		}
		return domainErrors.ErrOrderNotCancellable
	}
	return domainErrors.ErrNotFound
}

// AddressRepositoryStub stores saved addresses for tests.
type AddressRepositoryStub struct {
	CreateFn func(context.Context, int64, string, bool) (*model.Address, error)
	ListFn   func(context.Context, int64) ([]model.Address, error)

	Items []model.Address
	Next  int64
	Err   error
}

// Create stores an address, demoting the previous default when needed.
func (s *AddressRepositoryStub) Create(ctx context.Context, userID int64, fullAddress string, isDefault bool) (*model.Address, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, fullAddress, isDefault)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if isDefault {
		for i := range s.Items {
			if s.Items[i].UserID == userID {
				s.Items[i].IsDefault = false
			}
		}
	}
	s.Next++
	addr := model.Address{ID: s.Next, UserID: userID, FullAddress: fullAddress, IsDefault: isDefault, CreatedAt: time.Now()}
	s.Items = append(s.Items, addr)
	return &addr, nil
}

// ListByUser returns addresses belonging to the user.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.Address
	for _, a := range s.Items {
		if a.UserID == userID {
			items = append(items, a)
		}
	}
	return items, nil
}

// PendingStoreStub keeps pending checkout records for tests with consume-once
// Take semantics.
type PendingStoreStub struct {
	PutFn  func(context.Context, *model.PendingCheckout) error
	TakeFn func(context.Context, string) (*model.PendingCheckout, error)

	Records map[string]*model.PendingCheckout
	PutErr  error
	TakeErr error
}

// NewPendingStoreStub constructs the stub with an initialized record map.
func NewPendingStoreStub() *PendingStoreStub {
	return &PendingStoreStub{Records: make(map[string]*model.PendingCheckout)}
}

// Put stores a record keyed by its transaction reference.
func (s *PendingStoreStub) Put(ctx context.Context, record *model.PendingCheckout) error {
	if s.PutFn != nil {
		return s.PutFn(ctx, record)
	}
	if s.PutErr != nil {
		return s.PutErr
	}
	if s.Records == nil {
		s.Records = make(map[string]*model.PendingCheckout)
	}
	stored := *record
	s.Records[record.TxnRef] = &stored
	return nil
}

// Take removes and returns a record or reports not found.
func (s *PendingStoreStub) Take(ctx context.Context, txnRef string) (*model.PendingCheckout, error) {
	if s.TakeFn != nil {
		return s.TakeFn(ctx, txnRef)
	}
	if s.TakeErr != nil {
		return nil, s.TakeErr
	}
	record, ok := s.Records[txnRef]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.Records, txnRef)
	return record, nil
}
