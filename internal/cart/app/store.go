package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/neonthreads/storefront/internal/cart/domain"
)

// Product is the catalog descriptor needed to open a line item. Anything else
// a catalog entry carries stays with the caller.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}

// Op names a state change published to subscribers.
type Op string

const (
	OpAdd      Op = "add"
	OpRemove   Op = "remove"
	OpQuantity Op = "quantity"
	OpToggle   Op = "toggle"
)

// Event describes one completed mutation. ProductID is empty for OpToggle.
type Event struct {
	Op        Op
	ProductID string
}

// Store is the single owner of cart state: the insertion-ordered line items
// and the panel visibility flag. All changes go through its methods; readers
// get copies. After every item mutation the current items are handed to a
// background persister, so the mutation path never waits on storage.
type Store struct {
	log   *slog.Logger
	snaps SnapshotStore

	mu     sync.Mutex
	items  []domain.LineItem
	index  map[string]int
	open   bool
	closed bool

	subs    map[int]func(Event)
	nextSub int

	pending chan []domain.LineItem
	done    chan struct{}
}

func NewStore(snaps SnapshotStore, log *slog.Logger) *Store {
	s := &Store{
		log:     log,
		snaps:   snaps,
		index:   make(map[string]int),
		subs:    make(map[int]func(Event)),
		pending: make(chan []domain.LineItem, 1),
		done:    make(chan struct{}),
	}
	go s.persist()
	return s
}

// Load rehydrates the cart from the snapshot store. An absent snapshot means
// an empty cart; a snapshot that cannot be read is logged and treated the
// same way. Entries violating the item invariants are dropped individually.
func (s *Store) Load(ctx context.Context) {
	items, err := s.snaps.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			s.log.Warn("cart snapshot unreadable, starting empty", slog.Any("err", err))
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		if !it.Valid() {
			s.log.Warn("dropping invalid snapshot entry", slog.String("id", it.ID))
			continue
		}
		if _, ok := s.index[it.ID]; ok {
			continue
		}
		s.index[it.ID] = len(s.items)
		s.items = append(s.items, it)
	}
}

// AddItem puts one unit of the product in the cart.
func (s *Store) AddItem(p Product) {
	s.AddItemN(p, 1)
}

// AddItemN adds n units. If the product is already present only its quantity
// grows; name, price and image keep the values from the first add. A
// non-positive n falls back to one. A descriptor without an id or with a
// negative price is rejected outright.
func (s *Store) AddItemN(p Product, n int) {
	if p.ID == "" || p.Price.IsNegative() {
		s.log.Warn("rejecting malformed product descriptor", slog.String("id", p.ID))
		return
	}
	if n < 1 {
		n = 1
	}

	s.mu.Lock()
	if i, ok := s.index[p.ID]; ok {
		s.items[i].Quantity += n
	} else {
		s.index[p.ID] = len(s.items)
		s.items = append(s.items, domain.LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: n,
		})
	}
	s.queueSaveLocked()
	s.mu.Unlock()

	s.notify(Event{Op: OpAdd, ProductID: p.ID})
}

// RemoveItem deletes the line item with the given id. Removing an absent id
// is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.deleteAtLocked(i)
	s.queueSaveLocked()
	s.mu.Unlock()

	s.notify(Event{Op: OpRemove, ProductID: id})
}

// SetQuantity sets the item's quantity exactly. A quantity of zero or less
// removes the item. An unknown id is a no-op.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return
	}

	op := OpQuantity
	if quantity <= 0 {
		s.deleteAtLocked(i)
		op = OpRemove
	} else {
		s.items[i].Quantity = quantity
	}
	s.queueSaveLocked()
	s.mu.Unlock()

	s.notify(Event{Op: op, ProductID: id})
}

// ToggleOpen flips the panel visibility flag. Visibility is ephemeral and is
// never persisted.
func (s *Store) ToggleOpen() {
	s.mu.Lock()
	s.open = !s.open
	s.mu.Unlock()

	s.notify(Event{Op: OpToggle})
}

// Items returns the line items in insertion order.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItemsLocked()
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// TotalItems is the sum of quantities across all line items.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the exact decimal sum of price times quantity.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Subscribe registers an observer called synchronously after each completed
// mutation, in mutation order. The returned function removes it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close stops the persister after it has written every queued snapshot. The
// store must not be mutated afterwards.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.pending)
	<-s.done
}

func (s *Store) notify(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for i := 0; i < s.nextSub; i++ {
		if fn, ok := s.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// queueSaveLocked hands the current items to the persister without blocking.
// A still-pending older snapshot is replaced: only the latest state matters.
func (s *Store) queueSaveLocked() {
	if s.closed {
		return
	}
	items := s.copyItemsLocked()
	for {
		select {
		case s.pending <- items:
			return
		default:
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

func (s *Store) persist() {
	defer close(s.done)
	for items := range s.pending {
		if err := s.snaps.Save(context.Background(), items); err != nil {
			s.log.Warn("cart snapshot save failed", slog.Any("err", err))
		}
	}
}

func (s *Store) deleteAtLocked(i int) {
	delete(s.index, s.items[i].ID)
	s.items = append(s.items[:i], s.items[i+1:]...)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
}

func (s *Store) copyItemsLocked() []domain.LineItem {
	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}
