package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

// In-memory stores for DEV_MODE and tests. Data does not survive a restart.

// MemoryProductStore keeps products newest-first, matching the listing order
// of the database-backed store.
type MemoryProductStore struct {
	mu       sync.Mutex
	products []models.Product
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{}
}

func (s *MemoryProductStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]models.Product, len(s.products))
	copy(cp, s.products)
	return cp, nil
}

func (s *MemoryProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryProductStore) Create(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append([]models.Product{*p}, s.products...)
	return nil
}

func (s *MemoryProductStore) Save(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.UpdatedAt = time.Now()
	for i, existing := range s.products {
		if existing.ID == p.ID {
			s.products[i] = *p
			return nil
		}
	}
	s.products = append([]models.Product{*p}, s.products...)
	return nil
}

func (s *MemoryProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// MemoryUserStore mirrors GormUserStore semantics over a map.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

// Put seeds or replaces an account document directly, bypassing the
// first-sign-in bootstrap. Used for dev seeding and tests.
func (s *MemoryUserStore) Put(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *MemoryUserStore) RoleOf(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok || u.Role == "" {
		return models.RoleCustomer, nil
	}
	return u.Role, nil
}

func (s *MemoryUserStore) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id].Profile, nil
}

func (s *MemoryUserStore) MergeProfile(ctx context.Context, id string, patch models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		u = models.User{ID: id, Role: models.RoleCustomer}
	}
	u.Profile = mergeProfile(u.Profile, patch)
	s.users[id] = u
	return nil
}

func (s *MemoryUserStore) EnsureUser(ctx context.Context, id, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		u = models.User{
			ID:        id,
			Email:     email,
			Role:      models.RoleCustomer,
			Profile:   models.Profile{ProfileImage: randomProfileImage()},
			CreatedAt: time.Now(),
		}
	} else if u.Profile.ProfileImage == "" {
		u.Profile.ProfileImage = randomProfileImage()
	}
	s.users[id] = u
	return &u, nil
}

// MemoryWishlistStore mirrors GormWishlistStore semantics over a map.
type MemoryWishlistStore struct {
	mu    sync.Mutex
	lists map[string][]models.Product
}

func NewMemoryWishlistStore() *MemoryWishlistStore {
	return &MemoryWishlistStore{lists: make(map[string][]models.Product)}
}

func (s *MemoryWishlistStore) Load(ctx context.Context, userID string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, ok := s.lists[userID]
	if !ok {
		s.lists[userID] = []models.Product{}
		return []models.Product{}, nil
	}
	return append([]models.Product{}, items...), nil
}

func (s *MemoryWishlistStore) AddItem(ctx context.Context, userID string, item models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.lists[userID] {
		if it.ID == item.ID {
			return nil
		}
	}
	s.lists[userID] = append(s.lists[userID], item)
	return nil
}

func (s *MemoryWishlistStore) RemoveItem(ctx context.Context, userID string, item models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.lists[userID]
	kept := items[:0]
	for _, it := range items {
		if !reflect.DeepEqual(it, item) {
			kept = append(kept, it)
		}
	}
	s.lists[userID] = kept
	return nil
}

func (s *MemoryWishlistStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[userID] = []models.Product{}
	return nil
}
