package timeline

import (
	"fmt"
	"sort"
)

// Table is a sparse table over the time units 0..size-1 holding a value of
// T per claimed unit. Only claimed units take memory.
type Table[T any] interface {
	Get(id int64) (T, error)
	Claim(id int64, d T) error
	Update(id int64, d T) error
	Release(id int64) error
	Has(id int64) bool

	Iterate() *Iterator[T]

	Size() int64
}

func NewTable[T any](size int64) Table[T] {
	return &table[T]{
		table: map[int64]T{},
		size:  size,
	}
}

type table[T any] struct {
	table map[int64]T
	size  int64
}

func (r *table[T]) validate(id int64) error {
	if id < 0 {
		return fmt.Errorf("id %d cannot be negative", id)
	}
	if id > r.size-1 {
		return fmt.Errorf("id %d is bigger then max allowed entries: %d", id, r.size-1)
	}
	return nil
}

func (r *table[T]) Get(id int64) (T, error) {
	var d T
	if err := r.validate(id); err != nil {
		return d, err
	}
	d, ok := r.table[id]
	if !ok {
		return d, fmt.Errorf("no match found for: %v", id)
	}
	return d, nil
}

func (r *table[T]) Claim(id int64, d T) error {
	if err := r.validate(id); err != nil {
		return err
	}
	if r.Has(id) {
		return fmt.Errorf("entry %d already exists", id)
	}
	r.table[id] = d
	return nil
}

func (r *table[T]) Update(id int64, d T) error {
	if err := r.validate(id); err != nil {
		return err
	}
	if !r.Has(id) {
		return fmt.Errorf("entry %d not found", id)
	}
	r.table[id] = d
	return nil
}

func (r *table[T]) Release(id int64) error {
	if err := r.validate(id); err != nil {
		return err
	}
	delete(r.table, id)
	return nil
}

func (r *table[T]) Has(id int64) bool {
	_, ok := r.table[id]
	return ok
}

// Iterate returns an iterator over the claimed units in ascending order.
func (r *table[T]) Iterate() *Iterator[T] {
	keys := make([]int64, 0, len(r.table))
	for key := range r.table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})
	return &Iterator[T]{current: -1, keys: keys, table: r.table}
}

func (r *table[T]) Size() int64 { return r.size }
