package cartstore

import (
	"sync"
	"time"

	"kids-web-store/internal/catalog"
	"kids-web-store/internal/models"
)

const (
	// DefaultCleanupInterval is how often the background eviction runs
	DefaultCleanupInterval = 30 * time.Second
)

// Options configures a MemoryStore
type Options struct {
	// TTL is how long an idle cart survives before eviction.
	// Zero or negative disables eviction.
	TTL time.Duration

	// MaxItems caps the total item count per cart. Zero or negative
	// means unlimited.
	MaxItems int

	// CleanupInterval overrides how often eviction runs
	CleanupInterval time.Duration
}

// MemoryStore implements Store with in-memory storage. The store map is
// guarded by an RWMutex; each live cart carries its own mutex so
// mutations on one session never block another.
type MemoryStore struct {
	catalog  *catalog.Catalog
	ttl      time.Duration
	maxItems int

	mu    sync.RWMutex
	carts map[string]*cart

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

type cart struct {
	mu           sync.Mutex
	sessionID    string
	entries      []*entry // ordered by first add
	createdAt    time.Time
	lastModified time.Time

	// evicted marks a cart that has been removed from the store map
	// while a caller still held a reference to it
	evicted bool
}

type entry struct {
	itemID   string
	quantity int
}

// NewMemoryStore creates a new in-memory cart store backed by the given
// catalog
func NewMemoryStore(cat *catalog.Catalog, opts Options) *MemoryStore {
	s := &MemoryStore{
		catalog:     cat,
		ttl:         opts.TTL,
		maxItems:    opts.MaxItems,
		carts:       make(map[string]*cart),
		stopCleanup: make(chan struct{}),
	}

	if s.ttl > 0 {
		interval := opts.CleanupInterval
		if interval <= 0 {
			interval = DefaultCleanupInterval
		}
		s.wg.Add(1)
		go s.cleanupLoop(interval)
	}

	return s
}

// cleanupLoop periodically evicts carts idle longer than the TTL
func (s *MemoryStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCleanup:
			return
		}
	}
}

// evictExpired removes all carts whose last modification is older than
// the TTL. The store lock is never held while waiting on a cart lock.
func (s *MemoryStore) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.RLock()
	candidates := make([]*cart, 0, len(s.carts))
	for _, c := range s.carts {
		candidates = append(candidates, c)
	}
	s.mu.RUnlock()

	for _, c := range candidates {
		c.mu.Lock()
		expired := !c.evicted && c.lastModified.Before(cutoff)
		if expired {
			c.evicted = true
			c.entries = nil
		}
		c.mu.Unlock()

		if expired {
			s.removeIfCurrent(c)
		}
	}
}

// removeIfCurrent deletes the cart from the store map unless the map
// already holds a newer cart for the same session
func (s *MemoryStore) removeIfCurrent(c *cart) {
	s.mu.Lock()
	if s.carts[c.sessionID] == c {
		delete(s.carts, c.sessionID)
	}
	s.mu.Unlock()
}

// lockCart returns the session's cart with its mutex held, creating the
// cart if needed. The caller must unlock it. The retry loop covers the
// window where a fetched cart is evicted before its lock is acquired.
func (s *MemoryStore) lockCart(sessionID string) *cart {
	for {
		s.mu.Lock()
		c, exists := s.carts[sessionID]
		if !exists {
			now := time.Now()
			c = &cart{
				sessionID:    sessionID,
				createdAt:    now,
				lastModified: now,
			}
			s.carts[sessionID] = c
		}
		s.mu.Unlock()

		c.mu.Lock()
		if !c.evicted {
			return c
		}
		c.mu.Unlock()
	}
}

// Add increments an item's quantity in the session's cart
func (s *MemoryStore) Add(sessionID, itemID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}
	if _, err := s.catalog.Get(itemID); err != nil {
		return nil, err
	}

	c := s.lockCart(sessionID)
	defer c.mu.Unlock()

	if s.maxItems > 0 && c.itemCountLocked()+quantity > s.maxItems {
		return nil, models.ErrCartLimit
	}

	found := false
	for _, e := range c.entries {
		if e.itemID == itemID {
			e.quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.entries = append(c.entries, &entry{itemID: itemID, quantity: quantity})
	}

	c.lastModified = time.Now()
	return s.snapshotLocked(c), nil
}

// Remove decrements an item's quantity, deleting the entry at zero.
// Removing more than the current quantity floors at zero.
func (s *MemoryStore) Remove(sessionID, itemID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	// Unlike Add, removing never creates a cart
	s.mu.RLock()
	c, exists := s.carts[sessionID]
	s.mu.RUnlock()
	if !exists {
		return nil, models.ErrItemNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.evicted {
		return nil, models.ErrItemNotFound
	}

	for i, e := range c.entries {
		if e.itemID != itemID {
			continue
		}
		e.quantity -= quantity
		if e.quantity <= 0 {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
		}
		c.lastModified = time.Now()
		return s.snapshotLocked(c), nil
	}

	return nil, models.ErrItemNotFound
}

// Clear removes all entries for the session. Idempotent.
func (s *MemoryStore) Clear(sessionID string) error {
	s.mu.Lock()
	c, exists := s.carts[sessionID]
	if exists {
		delete(s.carts, sessionID)
	}
	s.mu.Unlock()

	if !exists {
		return nil
	}

	c.mu.Lock()
	c.evicted = true
	c.entries = nil
	c.mu.Unlock()
	return nil
}

// Get returns the current cart snapshot without creating a cart
func (s *MemoryStore) Get(sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	c, exists := s.carts[sessionID]
	s.mu.RUnlock()

	if !exists {
		return emptyCart(sessionID), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.evicted {
		return emptyCart(sessionID), nil
	}
	return s.snapshotLocked(c), nil
}

// Take atomically snapshots and clears a non-empty cart
func (s *MemoryStore) Take(sessionID string) (*models.Cart, error) {
	s.mu.RLock()
	c, exists := s.carts[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, models.ErrEmptyCart
	}

	c.mu.Lock()
	if c.evicted || len(c.entries) == 0 {
		c.mu.Unlock()
		return nil, models.ErrEmptyCart
	}

	// Snapshot and invalidate under the cart lock so no mutation can
	// slip in between the read and the clear.
	snapshot := s.snapshotLocked(c)
	c.evicted = true
	c.entries = nil
	c.mu.Unlock()

	s.removeIfCurrent(c)
	return snapshot, nil
}

// Close stops the background eviction and waits for it to finish
func (s *MemoryStore) Close() error {
	if s.ttl > 0 {
		close(s.stopCleanup)
		s.wg.Wait()
	}
	return nil
}

// itemCountLocked sums entry quantities; caller holds the cart lock
func (c *cart) itemCountLocked() int {
	count := 0
	for _, e := range c.entries {
		count += e.quantity
	}
	return count
}

// snapshotLocked builds a detached snapshot with prices resolved from
// the catalog; totals are recomputed on every call, never cached.
// Caller holds the cart lock.
func (s *MemoryStore) snapshotLocked(c *cart) *models.Cart {
	snapshot := &models.Cart{
		SessionID:      c.sessionID,
		Items:          make([]models.CartEntry, 0, len(c.entries)),
		CreatedAt:      c.createdAt,
		LastModifiedAt: c.lastModified,
	}

	for _, e := range c.entries {
		item, err := s.catalog.Get(e.itemID)
		if err != nil {
			// Entries are validated on Add and the catalog is
			// immutable, so this cannot happen.
			continue
		}
		snapshot.Items = append(snapshot.Items, models.CartEntry{
			ItemID:   e.itemID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: e.quantity,
			Subtotal: item.Price * e.quantity,
		})
		snapshot.TotalAmount += item.Price * e.quantity
		snapshot.ItemCount += e.quantity
	}

	return snapshot
}

func emptyCart(sessionID string) *models.Cart {
	now := time.Now()
	return &models.Cart{
		SessionID:      sessionID,
		Items:          []models.CartEntry{},
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}
