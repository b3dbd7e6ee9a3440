package welder

// MutWelder appends in place and hands itself back for chaining. It stays
// usable after Weld, which therefore returns a clone of the destination when
// the destination implements Cloner.
type MutWelder[T any, E any, PT Destination[E, T]] struct {
	welder Welder[T, E, PT]
}

func NewMut[T any, E any, PT Destination[E, T]](glue E) *MutWelder[T, E, PT] {
	return New[T, E, PT](glue).Mut()
}

func WithStartMut[T any, E any, PT Destination[E, T]](glue E, first E) *MutWelder[T, E, PT] {
	return WithStart[T, E, PT](glue, first).Mut()
}

func FromMut[T any, E any, PT Destination[E, T]](glue E, base []E) *MutWelder[T, E, PT] {
	return From[T, E, PT](glue, base).Mut()
}

func(mut *MutWelder[T, E, PT]) Place(placement Placement, element E) *MutWelder[T, E, PT] {
	mut.welder.place(placement, element)
	return mut
}

func(mut *MutWelder[T, E, PT]) PlaceAll(placement Placement, elements ...E) *MutWelder[T, E, PT] {
	mut.welder.placeAll(placement, elements)
	return mut
}

func(mut *MutWelder[T, E, PT]) Elem(element E) *MutWelder[T, E, PT] {
	return mut.Place(GLUE_LEFT, element)
}

func(mut *MutWelder[T, E, PT]) ElemNoGlue(element E) *MutWelder[T, E, PT] {
	return mut.Place(GLUE_NONE, element)
}

func(mut *MutWelder[T, E, PT]) ElemGlueLeft(element E) *MutWelder[T, E, PT] {
	return mut.Place(GLUE_LEFT, element)
}

func(mut *MutWelder[T, E, PT]) ElemGlueRight(element E) *MutWelder[T, E, PT] {
	return mut.Place(GLUE_RIGHT, element)
}

func(mut *MutWelder[T, E, PT]) ElemGlueBoth(element E) *MutWelder[T, E, PT] {
	return mut.Place(GLUE_BOTH, element)
}

func(mut *MutWelder[T, E, PT]) Elems(elements ...E) *MutWelder[T, E, PT] {
	return mut.PlaceAll(GLUE_LEFT, elements...)
}

func(mut *MutWelder[T, E, PT]) ElemsNoGlue(elements ...E) *MutWelder[T, E, PT] {
	return mut.PlaceAll(GLUE_NONE, elements...)
}

func(mut *MutWelder[T, E, PT]) ElemsGlueLeft(elements ...E) *MutWelder[T, E, PT] {
	return mut.PlaceAll(GLUE_LEFT, elements...)
}

func(mut *MutWelder[T, E, PT]) ElemsGlueRight(elements ...E) *MutWelder[T, E, PT] {
	return mut.PlaceAll(GLUE_RIGHT, elements...)
}

func(mut *MutWelder[T, E, PT]) ElemsGlueBoth(elements ...E) *MutWelder[T, E, PT] {
	return mut.PlaceAll(GLUE_BOTH, elements...)
}

func(mut *MutWelder[T, E, PT]) Glue() E {
	return mut.welder.Glue()
}

func(mut *MutWelder[T, E, PT]) Weld() T {
	return detach(mut.welder.Weld())
}

func PlaceAsMut[T any, E any, PT Destination[E, T], X any](
	mut *MutWelder[T, E, PT],
	placement Placement,
	element X,
	extend func(PT, X),
) *MutWelder[T, E, PT] {
	placeWith(&mut.welder, placement, element, extend)
	return mut
}

func PlaceAllAsMut[T any, E any, PT Destination[E, T], X any](
	mut *MutWelder[T, E, PT],
	placement Placement,
	extend func(PT, X),
	elements ...X,
) *MutWelder[T, E, PT] {
	placeAllWith(&mut.welder, placement, elements, extend)
	return mut
}
