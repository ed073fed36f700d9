package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	memoryUsers struct {
		mu    sync.RWMutex
		byID  map[primitive.ObjectID]User
		names map[string]primitive.ObjectID
	}

	memoryVenues struct {
		mu     sync.RWMutex
		venues []Venue
	}
)

// InMemoryUsers keeps accounts in a map, mostly useful for tests and local
// development without a database.
func InMemoryUsers() Users {
	return &memoryUsers{
		byID:  make(map[primitive.ObjectID]User),
		names: make(map[string]primitive.ObjectID),
	}
}

// InMemoryVenues keeps venue records in insertion order.
func InMemoryVenues() Venues {
	return &memoryVenues{}
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.names[username]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.byID[id]
	return &u, nil
}

func (m *memoryUsers) FindByID(_ context.Context, id primitive.ObjectID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *memoryUsers) Insert(_ context.Context, u *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, taken := m.names[u.Username]; taken {
		return nil, ErrDuplicateUsername
	}
	saved := *u
	if saved.ID.IsZero() {
		saved.ID = primitive.NewObjectID()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}
	m.byID[saved.ID] = saved
	m.names[saved.Username] = saved.ID
	return &saved, nil
}

func (m *memoryVenues) All(_ context.Context) ([]Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Venue, len(m.venues))
	copy(out, m.venues)
	return out, nil
}

func (m *memoryVenues) FindByID(_ context.Context, id primitive.ObjectID) (*Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.venues {
		if m.venues[i].ID == id {
			v := m.venues[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryVenues) InsertMany(_ context.Context, vs []Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	for _, v := range vs {
		if v.ID.IsZero() {
			v.ID = primitive.NewObjectID()
		}
		if v.CreatedAt.IsZero() {
			v.CreatedAt = now
		}
		m.venues = append(m.venues, v)
	}
	return nil
}

func (m *memoryVenues) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.venues)), nil
}
