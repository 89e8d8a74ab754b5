package symbols

import "sync"

// Symbol is the interned handle for a piece of identifier text.
//
// Symbols are only ever created by an Interner and never mutated, so two
// handles from the same Interner are equal (pointer comparison) exactly when
// their text is equal.
type Symbol struct {
	Name  string
	Index int // insertion order within the owning Interner
}

func (s *Symbol) String() string {
	return s.Name
}

// Interner deduplicates identifier text into Symbols.
// It is append-only and safe for concurrent use.
type Interner struct {
	mu      sync.Mutex
	byName  map[string]*Symbol
	symbols []*Symbol
}

// NewInterner creates an empty interner
func NewInterner() *Interner {
	return &Interner{
		byName:  make(map[string]*Symbol),
		symbols: make([]*Symbol, 0),
	}
}

// Intern returns the Symbol for text, creating it with the next index on
// first sight.
func (in *Interner) Intern(text string) *Symbol {
	in.mu.Lock()
	defer in.mu.Unlock()

	if sym, ok := in.byName[text]; ok {
		return sym
	}

	sym := &Symbol{
		Name:  text,
		Index: len(in.symbols),
	}
	in.symbols = append(in.symbols, sym)
	in.byName[text] = sym

	return sym
}

// Lookup returns the symbol with the given index
func (in *Interner) Lookup(index int) (*Symbol, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if index < 0 || index >= len(in.symbols) {
		return nil, false
	}
	return in.symbols[index], true
}

// Len returns the number of distinct symbols interned so far.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.symbols)
}

// Symbols returns every symbol in index order.
func (in *Interner) Symbols() []*Symbol {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]*Symbol, len(in.symbols))
	copy(out, in.symbols)
	return out
}
