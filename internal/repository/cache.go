package repository

import (
	"context"
	"sync"
	"time"

	"camclub-backend/internal/domain"
)

// DefaultCacheTTL matches the refresh interval members are used to: list
// reads may be up to five minutes stale, writes invalidate immediately.
const DefaultCacheTTL = 5 * time.Minute

// snapshotCache holds the last list reads of both tables. It is an explicit
// object injected into the cached store, never ambient state; any write
// through the store drops both snapshots, since a rental write changes what
// the calendar shows and a catalog write changes what may be requested.
type snapshotCache struct {
	ttl time.Duration
	now func() time.Time

	mu          sync.Mutex
	equipment   []domain.EquipmentItem
	equipmentAt time.Time
	rentals     []domain.RentalRecord
	rentalsAt   time.Time
}

func (c *snapshotCache) getEquipment() ([]domain.EquipmentItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.equipment == nil || c.now().Sub(c.equipmentAt) > c.ttl {
		return nil, false
	}
	return c.equipment, true
}

func (c *snapshotCache) putEquipment(items []domain.EquipmentItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.equipment = items
	c.equipmentAt = c.now()
}

func (c *snapshotCache) getRentals() ([]domain.RentalRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rentals == nil || c.now().Sub(c.rentalsAt) > c.ttl {
		return nil, false
	}
	return c.rentals, true
}

func (c *snapshotCache) putRentals(recs []domain.RentalRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rentals = recs
	c.rentalsAt = c.now()
}

func (c *snapshotCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.equipment = nil
	c.rentals = nil
}

// NewCachedStore wraps a store with the snapshot cache. ttl <= 0 picks the
// default.
func NewCachedStore(inner *Store, ttl time.Duration) *Store {
	return newCachedStore(inner, ttl, time.Now)
}

func newCachedStore(inner *Store, ttl time.Duration, now func() time.Time) *Store {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	cache := &snapshotCache{ttl: ttl, now: now}
	return &Store{
		EquipmentRepository: &cachedEquipment{inner: inner.EquipmentRepository, cache: cache},
		RentalRepository:    &cachedRentals{inner: inner.RentalRepository, cache: cache},
		SettingsRepository:  inner.SettingsRepository,
	}
}

type cachedEquipment struct {
	inner EquipmentRepository
	cache *snapshotCache
}

func (r *cachedEquipment) List(ctx context.Context) ([]domain.EquipmentItem, error) {
	if items, ok := r.cache.getEquipment(); ok {
		return items, nil
	}
	items, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.putEquipment(items)
	return items, nil
}

func (r *cachedEquipment) Replace(ctx context.Context, items []domain.EquipmentItem) error {
	if err := r.inner.Replace(ctx, items); err != nil {
		return err
	}
	r.cache.invalidate()
	return nil
}

type cachedRentals struct {
	inner RentalRepository
	cache *snapshotCache
}

func (r *cachedRentals) List(ctx context.Context) ([]domain.RentalRecord, error) {
	if recs, ok := r.cache.getRentals(); ok {
		return recs, nil
	}
	recs, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.putRentals(recs)
	return recs, nil
}

// GetByID always hits the backend: single-record reads precede writes and
// must see fresh state.
func (r *cachedRentals) GetByID(ctx context.Context, id int32) (*domain.RentalRecord, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *cachedRentals) Create(ctx context.Context, rec *domain.RentalRecord) error {
	if err := r.inner.Create(ctx, rec); err != nil {
		return err
	}
	r.cache.invalidate()
	return nil
}

func (r *cachedRentals) UpdateStatus(ctx context.Context, id int32, upd StatusUpdate) error {
	if err := r.inner.UpdateStatus(ctx, id, upd); err != nil {
		return err
	}
	r.cache.invalidate()
	return nil
}
