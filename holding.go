package marketrisk

import (
	"fmt"
	"slices"
	"sync"
)

// Holding is a position bought at a given unit price.
type Holding struct {
	ID       int
	Symbol   string
	Quantity Quantity
	BuyPrice Money
}

// HoldingInput is the request to open a new Holding, before it is given an ID.
type HoldingInput struct {
	Symbol   string
	Quantity float64
	BuyPrice float64
}

// holding validates the input and returns the corresponding Holding, without ID.
func (in HoldingInput) holding() (Holding, error) {
	symbol := normalizeSymbol(in.Symbol)
	if symbol == "" {
		return Holding{}, fmt.Errorf("holding has no symbol: %w", ErrInvalidInput)
	}
	if !finite(in.Quantity) || in.Quantity < 0 {
		return Holding{}, fmt.Errorf("holding %s: quantity %v must be a finite non-negative number: %w", symbol, in.Quantity, ErrInvalidInput)
	}
	if !finite(in.BuyPrice) || in.BuyPrice < 0 {
		return Holding{}, fmt.Errorf("holding %s: buy price %v must be a finite non-negative number: %w", symbol, in.BuyPrice, ErrInvalidInput)
	}
	return Holding{
		Symbol:   symbol,
		Quantity: Q(in.Quantity),
		BuyPrice: M(in.BuyPrice, ""),
	}, nil
}

// validate checks the invariants of a stored holding.
func (h Holding) validate() error {
	if h.ID < 0 {
		return fmt.Errorf("holding %s: negative id %d: %w", h.Symbol, h.ID, ErrInvalidInput)
	}
	if normalizeSymbol(h.Symbol) == "" {
		return fmt.Errorf("holding #%d has no symbol: %w", h.ID, ErrInvalidInput)
	}
	if h.Quantity.IsNegative() || h.BuyPrice.IsNegative() {
		return fmt.Errorf("holding #%d %s: negative quantity or buy price: %w", h.ID, h.Symbol, ErrInvalidInput)
	}
	return nil
}

// HoldingStore is the collection of holdings of a user.
type HoldingStore interface {
	// List returns all holdings in insertion order.
	List() []Holding
	// Add validates in, assigns it the next ID and stores it.
	Add(in HoldingInput) (Holding, error)
}

// MemoryStore is an in-memory HoldingStore. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	holdings []Holding
	nextID   int
}

// NewMemoryStore returns a store initialized with existing holdings.
//
// IDs must be unique, the next assigned ID follows the largest one, starting at 1.
func NewMemoryStore(holdings ...Holding) (*MemoryStore, error) {
	s := &MemoryStore{nextID: 1}
	seen := make(map[int]bool, len(holdings))
	for _, h := range holdings {
		if err := h.validate(); err != nil {
			return nil, err
		}
		if seen[h.ID] {
			return nil, fmt.Errorf("duplicate holding id %d: %w", h.ID, ErrInvalidInput)
		}
		seen[h.ID] = true
		h.Symbol = normalizeSymbol(h.Symbol)
		s.holdings = append(s.holdings, h)
		s.nextID = max(s.nextID, h.ID+1)
	}
	return s, nil
}

// List implements HoldingStore.
func (s *MemoryStore) List() []Holding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.holdings)
}

// Add implements HoldingStore.
func (s *MemoryStore) Add(in HoldingInput) (Holding, error) {
	h, err := in.holding()
	if err != nil {
		return Holding{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.nextID
	s.nextID++
	s.holdings = append(s.holdings, h)
	return h, nil
}

var _ HoldingStore = (*MemoryStore)(nil)
