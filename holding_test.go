package marketrisk

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestMemoryStore_Add(t *testing.T) {
	s, err := NewMemoryStore()
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	if got := s.List(); len(got) != 0 {
		t.Errorf("List() = %v, want empty", got)
	}
	for i, in := range []HoldingInput{
		{Symbol: "tcs", Quantity: 10, BuyPrice: 3500},
		{Symbol: " INFY ", Quantity: 0, BuyPrice: 1500.25},
	} {
		h, err := s.Add(in)
		if err != nil {
			t.Fatalf("Add(%v) error = %v", in, err)
		}
		if h.ID != i+1 {
			t.Errorf("Add(%v).ID = %d, want %d", in, h.ID, i+1)
		}
	}
	got := s.List()
	if len(got) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(got))
	}
	if got[0].Symbol != "TCS" || got[1].Symbol != "INFY" {
		t.Errorf("List() symbols = %q, %q want TCS, INFY", got[0].Symbol, got[1].Symbol)
	}
	if !got[0].Quantity.Equal(Q(10)) || !got[1].BuyPrice.Equal(M(1500.25, "")) {
		t.Errorf("List() = %v, want the added quantities and prices", got)
	}
}

func TestMemoryStore_AddInvalid(t *testing.T) {
	testCases := []HoldingInput{
		{Symbol: "", Quantity: 1, BuyPrice: 1},
		{Symbol: "A", Quantity: -1, BuyPrice: 1},
		{Symbol: "A", Quantity: 1, BuyPrice: -1},
		{Symbol: "A", Quantity: math.NaN(), BuyPrice: 1},
		{Symbol: "A", Quantity: 1, BuyPrice: math.Inf(1)},
	}
	s, _ := NewMemoryStore()
	for _, in := range testCases {
		if _, err := s.Add(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Add(%v) error = %v, want %v", in, err, ErrInvalidInput)
		}
	}
	if got := s.List(); len(got) != 0 {
		t.Errorf("List() = %v after invalid additions, want empty", got)
	}
	// Rejected inputs do not consume ids.
	h, err := s.Add(HoldingInput{Symbol: "A", Quantity: 1, BuyPrice: 1})
	if err != nil || h.ID != 1 {
		t.Errorf("Add() = %v, %v want id 1", h, err)
	}
}

func TestNewMemoryStore_Seeded(t *testing.T) {
	s, err := NewMemoryStore(
		Holding{ID: 4, Symbol: "a", Quantity: Q(1), BuyPrice: M(1, "")},
		Holding{ID: 2, Symbol: "B", Quantity: Q(1), BuyPrice: M(1, "")},
	)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	h, err := s.Add(HoldingInput{Symbol: "C", Quantity: 1, BuyPrice: 1})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if h.ID != 5 {
		t.Errorf("Add().ID = %d, want 5", h.ID)
	}
	if got := s.List()[0].Symbol; got != "A" {
		t.Errorf("List()[0].Symbol = %q, want %q", got, "A")
	}

	_, err = NewMemoryStore(
		Holding{ID: 1, Symbol: "A", Quantity: Q(1), BuyPrice: M(1, "")},
		Holding{ID: 1, Symbol: "B", Quantity: Q(1), BuyPrice: M(1, "")},
	)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewMemoryStore() with duplicate ids error = %v, want %v", err, ErrInvalidInput)
	}
}

func TestMemoryStore_ConcurrentAdd(t *testing.T) {
	const n = 50
	s, _ := NewMemoryStore()
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Add(HoldingInput{Symbol: "X", Quantity: 1, BuyPrice: 1}); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}()
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, h := range s.List() {
		if seen[h.ID] {
			t.Errorf("id %d assigned twice", h.ID)
		}
		seen[h.ID] = true
	}
	for id := 1; id <= n; id++ {
		if !seen[id] {
			t.Errorf("id %d never assigned", id)
		}
	}
}
