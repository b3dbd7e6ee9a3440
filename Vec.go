package welder

import (
	"golang.org/x/exp/slices"
)

type Vec[E any] struct {
	items []E
}

func VecOf[E any](items ...E) Vec[E] {
	return Vec[E] {
		items: slices.Clone(items),
	}
}

func(vec *Vec[E]) Extend(item E) {
	vec.items = append(vec.items, item)
}

func(vec *Vec[E]) Reserve(additional int) {
	vec.items = slices.Grow(vec.items, additional)
}

func(vec Vec[E]) Clone() Vec[E] {
	return Vec[E] {
		items: slices.Clone(vec.items),
	}
}

func(vec Vec[E]) Len() int {
	return len(vec.items)
}

func(vec Vec[E]) Slice() []E {
	return vec.items
}

var _ Extender[int] = &Vec[int]{}
var _ Reserver = &Vec[int]{}
var _ Cloner[Vec[int]] = Vec[int]{}
