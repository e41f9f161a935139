// Package symtab is the flat, unscoped symbol table shared by a whole parse.
// Every name gets one sequential address starting at 0.
package symtab

import (
	"errors"
	"fmt"
	"sort"
)

type Kind int

const (
	Declared Kind = iota
	Temporary
)

func (k Kind) String() string {
	switch k {
	case Declared:
		return "declared"
	case Temporary:
		return "temporary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Entry struct {
	Name    string
	Address int
	Kind    Kind
}

var (
	ErrDuplicate  = errors.New("already declared")
	ErrUndeclared = errors.New("not declared")
)

type Table struct {
	entries map[string]Entry
	next    int
	temps   int
}

func New() *Table {
	return &Table{entries: map[string]Entry{}}
}

// Declare allocates the next address for name. Declaring a name twice fails
// with ErrDuplicate.
func (t *Table) Declare(name string) (Entry, error) {
	if _, ok := t.entries[name]; ok {
		return Entry{}, fmt.Errorf("variable '%s' %w", name, ErrDuplicate)
	}
	return t.insert(name, Declared), nil
}

func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Resolve is Lookup reporting a missing name as ErrUndeclared.
func (t *Table) Resolve(name string) (Entry, error) {
	e, ok := t.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("variable '%s' %w", name, ErrUndeclared)
	}
	return e, nil
}

// Ensure returns the entry for name, declaring it first if needed.
func (t *Table) Ensure(name string) Entry {
	if e, ok := t.entries[name]; ok {
		return e
	}
	return t.insert(name, Declared)
}

// AllocTemp reserves an address for a value with no source name.
func (t *Table) AllocTemp(hint string) Entry {
	name := fmt.Sprintf("__tmp%d_%s", t.temps, hint)
	t.temps++
	return t.insert(name, Temporary)
}

func (t *Table) insert(name string, kind Kind) Entry {
	e := Entry{Name: name, Address: t.next, Kind: kind}
	t.entries[name] = e
	t.next++
	return e
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns every entry ordered by address.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Address < entries[j].Address
	})
	return entries
}
