package books

import "strings"

// Registry holds the five read-only lookup indexes over the catalog. It is
// built exactly once at package initialization and never mutated, so it is
// safe for unsynchronized concurrent reads.
type Registry struct {
	byAlias     map[string]*Book
	byCode      map[string]*Book
	byAbbrev    map[string]*Book
	byNoSpaceID map[string]*Book
	byNumber    map[int]*Book
	ordered     []*Book
}

var defaultRegistry = newRegistry()

func newRegistry() *Registry {
	r := &Registry{
		byAlias:     make(map[string]*Book),
		byCode:      make(map[string]*Book),
		byAbbrev:    make(map[string]*Book),
		byNoSpaceID: make(map[string]*Book),
		byNumber:    make(map[int]*Book),
	}

	for i := range catalog {
		b := &catalog[i]
		if b.NoSpaceID == "" {
			b.NoSpaceID = strings.ReplaceAll(b.Name, " ", "")
		}
		if b.WorkAbbrev == "" {
			b.WorkAbbrev = b.Abbrev
		}

		r.byCode[b.Code] = b
		r.byAbbrev[b.Abbrev] = b
		r.byNoSpaceID[b.NoSpaceID] = b
		r.byNumber[b.Number] = b
		r.ordered = append(r.ordered, b)

		// The canonical name and identifiers are aliases too.
		r.indexAlias(b.Name, b)
		r.indexAlias(b.Abbrev, b)
		r.indexAlias(b.NoSpaceID, b)
		r.indexAlias(b.Code, b)
		for _, a := range b.Aliases {
			r.indexAlias(a, b)
		}
	}
	return r
}

func (r *Registry) indexAlias(alias string, b *Book) {
	key := normalizeAlias(alias)
	if key == "" {
		return
	}
	r.byAlias[key] = b
}

// normalizeAlias lowercases and collapses internal whitespace so that
// "  1   John " and "1 john" index identically.
func normalizeAlias(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// FindByAlias resolves free text (full name, abbreviation, misspelling) to
// a book. Matching is case-insensitive and whitespace-insensitive.
func (r *Registry) FindByAlias(text string) (Book, bool) {
	b, ok := r.byAlias[normalizeAlias(text)]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// FindByCode resolves a three-letter provider code (e.g. "JHN").
func (r *Registry) FindByCode(code string) (Book, bool) {
	b, ok := r.byCode[code]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// FindByAbbreviation resolves a short abbreviation (e.g. "1Sam").
// The lookup is case-sensitive.
func (r *Registry) FindByAbbreviation(abbrev string) (Book, bool) {
	b, ok := r.byAbbrev[abbrev]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// FindByNoSpaceID resolves a no-space identifier (e.g. "1Samuel").
func (r *Registry) FindByNoSpaceID(id string) (Book, bool) {
	b, ok := r.byNoSpaceID[id]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// FindByNumber resolves a canonical ordinal (1-66).
func (r *Registry) FindByNumber(n int) (Book, bool) {
	b, ok := r.byNumber[n]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// OldTestament returns the 39 Old Testament books in canonical order.
func (r *Registry) OldTestament() []Book {
	return r.testament(OldTestamentTag)
}

// NewTestament returns the 27 New Testament books in canonical order.
func (r *Registry) NewTestament() []Book {
	return r.testament(NewTestamentTag)
}

func (r *Registry) testament(t Testament) []Book {
	var out []Book
	for _, b := range r.ordered {
		if b.Testament == t {
			out = append(out, *b)
		}
	}
	return out
}

// All returns all 66 books in canonical order.
func (r *Registry) All() []Book {
	out := make([]Book, len(r.ordered))
	for i, b := range r.ordered {
		out[i] = *b
	}
	return out
}

// Package-level accessors over the default registry.

// FindByAlias resolves free text against the default registry.
func FindByAlias(text string) (Book, bool) { return defaultRegistry.FindByAlias(text) }

// FindByCode resolves a three-letter code against the default registry.
func FindByCode(code string) (Book, bool) { return defaultRegistry.FindByCode(code) }

// FindByAbbreviation resolves a short abbreviation against the default registry.
func FindByAbbreviation(abbrev string) (Book, bool) {
	return defaultRegistry.FindByAbbreviation(abbrev)
}

// FindByNoSpaceID resolves a no-space identifier against the default registry.
func FindByNoSpaceID(id string) (Book, bool) { return defaultRegistry.FindByNoSpaceID(id) }

// FindByNumber resolves a canonical ordinal against the default registry.
func FindByNumber(n int) (Book, bool) { return defaultRegistry.FindByNumber(n) }

// OldTestament returns the Old Testament books in canonical order.
func OldTestament() []Book { return defaultRegistry.OldTestament() }

// NewTestament returns the New Testament books in canonical order.
func NewTestament() []Book { return defaultRegistry.NewTestament() }

// All returns all books in canonical order.
func All() []Book { return defaultRegistry.All() }
