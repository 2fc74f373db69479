package timeline

type Iterator[T any] struct {
	current int
	keys    []int64
	table   map[int64]T
}

func (r *Iterator[T]) Value() T {
	return r.table[r.keys[r.current]]
}

func (r *Iterator[T]) ID() int64 {
	return r.keys[r.current]
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
