package soup

import "strings"

// Params is the ordered attribute mapping carried by every Tag. By default
// it compares keys case-insensitively but remembers and re-emits the
// original casing on iteration and serialization (spec.md section 4.4); a
// strict mapping disables the folding entirely.
//
// Internally, order and casing map normalized keys to the original-cased
// key and value so both modes share one implementation — in strict mode
// normalization is the identity function.
type Params struct {
	strict bool
	order  []string          // normalized keys, insertion order
	casing map[string]string // normalized key -> original-cased key
	values map[string]string // normalized key -> value
}

// NewParams creates an empty Params. When strict is false (the default
// parsing mode), keys fold case for lookup, containment, and deletion.
func NewParams(strict bool) *Params {
	return &Params{
		strict: strict,
		casing: make(map[string]string),
		values: make(map[string]string),
	}
}

func (p *Params) normalize(key string) string {
	if p.strict {
		return key
	}
	return strings.ToLower(key)
}

// Set inserts or updates key=value. Assigning an existing key (in any
// case, under folding) replaces the value and the remembered casing but
// keeps the key's original position.
func (p *Params) Set(key, value string) {
	nk := p.normalize(key)
	if _, exists := p.values[nk]; !exists {
		p.order = append(p.order, nk)
	}
	p.casing[nk] = key
	p.values[nk] = value
}

// Get returns the value for key and whether it was present.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[p.normalize(key)]
	return v, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.values[p.normalize(key)]
	return ok
}

// Delete removes key, if present.
func (p *Params) Delete(key string) {
	nk := p.normalize(key)
	if _, ok := p.values[nk]; !ok {
		return
	}
	delete(p.values, nk)
	delete(p.casing, nk)
	for i, k := range p.order {
		if k == nk {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (p *Params) Len() int {
	return len(p.order)
}

// Keys returns the original-cased keys in insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.order))
	for i, nk := range p.order {
		out[i] = p.casing[nk]
	}
	return out
}

// ForEach iterates key=value pairs in insertion order, stopping early if
// fn returns false.
func (p *Params) ForEach(fn func(key, value string) bool) {
	for _, nk := range p.order {
		if !fn(p.casing[nk], p.values[nk]) {
			return
		}
	}
}

// Clear removes every key.
func (p *Params) Clear() {
	p.order = nil
	p.casing = make(map[string]string)
	p.values = make(map[string]string)
}

// Copy returns an independent copy preserving order, casing, and strictness.
func (p *Params) Copy() *Params {
	cp := NewParams(p.strict)
	p.ForEach(func(key, value string) bool {
		cp.Set(key, value)
		return true
	})
	return cp
}

// Equal reports whether p and other hold the same keys and values,
// independent of order. Each of p's keys is looked up in other, so case
// folding follows other's mode.
func (p *Params) Equal(other *Params) bool {
	if other == nil {
		return p.Len() == 0
	}
	if p.Len() != other.Len() {
		return false
	}
	equal := true
	p.ForEach(func(key, value string) bool {
		ov, ok := other.Get(key)
		if !ok || ov != value {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// ContainsSubset reports whether every key in subset exists in p with an
// equal value — p may have more keys. A nil subset is trivially contained.
// This backs the "subset containment" semantics find/wfind/match use for
// parameter filters (spec.md section 4.3, GLOSSARY).
func (p *Params) ContainsSubset(subset *Params) bool {
	if subset == nil {
		return true
	}
	contains := true
	subset.ForEach(func(key, value string) bool {
		actual, ok := p.Get(key)
		if !ok || actual != value {
			contains = false
			return false
		}
		return true
	})
	return contains
}
