package cart

import "sync"

// Item mirrors what the storefront keeps per cart line: a denormalized
// copy of the product, not a live reference.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Store holds carts per session. Carts are transient client state: nothing
// here is persisted server-side, and a cart disappears on checkout.
type Store struct {
	mu    sync.Mutex
	carts map[string][]Item
}

func NewStore() *Store {
	return &Store{carts: map[string][]Item{}}
}

// Add appends the item, merging quantity onto an existing line for the
// same product.
func (s *Store) Add(sessionID string, item Item) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			s.carts[sessionID] = items
			return copyItems(items)
		}
	}
	items = append(items, item)
	s.carts[sessionID] = items
	return copyItems(items)
}

// SetQuantity updates one line; quantity <= 0 removes it.
func (s *Store) SetQuantity(sessionID, productID string, quantity int) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		break
	}
	s.carts[sessionID] = items
	return copyItems(items)
}

func (s *Store) Remove(sessionID, productID string) []Item {
	return s.SetQuantity(sessionID, productID, 0)
}

func (s *Store) Get(sessionID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.carts[sessionID])
}

// Clear empties the cart, called after a successful checkout.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
