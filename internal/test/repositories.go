package test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
	"github.com/polkiloo/pricecompare/internal/domain/model"
	"github.com/polkiloo/pricecompare/internal/domain/repository"
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

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = s.Next
	user.CreatedAt = time.Unix(0, 0).UTC()
	user.UpdatedAt = user.CreatedAt
	s.Next++
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns users ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Update replaces stored user keeping email index consistent.
func (s *UserRepositoryStub) Update(ctx context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	current, ok := s.ByID[user.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if other, taken := s.Users[user.Email]; taken && other.ID != user.ID {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.Users, current.Email)
	stored := user
	s.Users[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return &user, nil
}

// Delete removes user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.Users, user.Email)
	return nil
}

// OrderRepositoryStub keeps orders in memory; Fn fields override individual calls.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, model.Order) error
	UpdateStatusFn func(context.Context, string, model.OrderStatus) error
	DeleteFn       func(context.Context, string) error
	Err            error

	mu      sync.Mutex
	Orders  []model.Order
	Deleted []string
}

// Create appends order unless overridden.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, o := range s.Orders {
		if o.ID == order.ID {
			return domainErrors.ErrAlreadyExists
		}
	}
	s.Orders = append(s.Orders, order)
	return nil
}

// Get returns order by id.
func (s *OrderRepositoryStub) Get(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if i := s.indexOf(id); i >= 0 {
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns user's orders newest first.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Order, 0, len(all))
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListAll returns every order newest first.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := append([]model.Order(nil), s.Orders...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PlacedAt.Equal(out[j].PlacedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].PlacedAt.After(out[j].PlacedAt)
	})
	return out, nil
}

// UpdateStatus changes status of stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.indexOf(id)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	s.Orders[i].Status = status
	return nil
}

// Delete removes stored order and records the id.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	i := s.indexOf(id)
	if i < 0 {
		return domainErrors.ErrNotFound
	}
	s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
	s.Deleted = append(s.Deleted, id)
	return nil
}

func (s *OrderRepositoryStub) indexOf(id string) int {
	for i, o := range s.Orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// CartRepositoryStub keeps carts in memory with injectable failures.
type CartRepositoryStub struct {
	GetErr   error
	SaveErr  error
	ClearErr error

	mu     sync.Mutex
	Carts  map[int64]model.Cart
	Saves  int
	Clears int
}

func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[int64]model.Cart)}
}

// Get returns a copy of the stored cart.
func (s *CartRepositoryStub) Get(ctx context.Context, userID int64) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return model.Cart{}, s.GetErr
	}
	cart := s.Carts[userID]
	return model.Cart{Items: append([]model.CartEntry(nil), cart.Items...)}, nil
}

// Save stores a copy of the cart.
func (s *CartRepositoryStub) Save(ctx context.Context, userID int64, cart model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Carts == nil {
		s.Carts = make(map[int64]model.Cart)
	}
	s.Carts[userID] = model.Cart{Items: append([]model.CartEntry(nil), cart.Items...)}
	return nil
}

// Clear drops the stored cart.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Clears++
	if s.ClearErr != nil {
		return s.ClearErr
	}
	delete(s.Carts, userID)
	return nil
}

// SequenceIDs hands out predictable order identifiers.
type SequenceIDs struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.Prefix + strconv.Itoa(s.next)
}

var (
	_ repository.UserRepository  = (*UserRepositoryStub)(nil)
	_ repository.OrderRepository = (*OrderRepositoryStub)(nil)
	_ repository.CartRepository  = (*CartRepositoryStub)(nil)
)
