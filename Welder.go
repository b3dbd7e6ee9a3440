package welder

// Welder accumulates elements into a destination of type T, putting glue
// next to each one according to a Placement.
//
// Appending returns the updated Welder; the receiver must not be used
// afterwards, since both may share the destination's storage.
type Welder[T any, E any, PT Destination[E, T]] struct {
	glue E
	welded T
}

func New[T any, E any, PT Destination[E, T]](glue E) Welder[T, E, PT] {
	welder := Welder[T, E, PT] {
		glue: glue,
	}
	if debugOn {
		debugf("New %s\n", debugWelder(&welder))
	}
	return welder
}

// WithStart seeds the destination with first. No glue is placed before it.
func WithStart[T any, E any, PT Destination[E, T]](glue E, first E) Welder[T, E, PT] {
	welder := Welder[T, E, PT] {
		glue: glue,
	}
	PT(&welder.welded).Extend(first)
	if debugOn {
		debugf("WithStart %s\n", debugWelder(&welder))
	}
	return welder
}

// From seeds the destination with a copy of each element of base, unglued.
func From[T any, E any, PT Destination[E, T]](glue E, base []E) Welder[T, E, PT] {
	welder := Welder[T, E, PT] {
		glue: glue,
	}
	reserve[T, E, PT](&welder.welded, len(base))
	welded := PT(&welder.welded)
	for _, element := range base {
		welded.Extend(element)
	}
	if debugOn {
		debugf("From %s with base = %s\n", debugWelder(&welder), debugElementList(base))
	}
	return welder
}

func checkPlacement(placement Placement) {
	if !placement.IsValid() {
		panic(&PlacementError {
			Value: placement,
		})
	}
}

func placeWith[T any, E any, PT Destination[E, T], X any](
	welder *Welder[T, E, PT],
	placement Placement,
	element X,
	extend func(PT, X),
) {
	checkPlacement(placement)
	if debugOn {
		debugf("[Welder] Placing %+v with glue %s (glue = %+v)\n", element, placement, welder.glue)
	}
	welded := PT(&welder.welded)
	if placement.GluesLeft() {
		welded.Extend(duplicate(welder.glue))
	}
	extend(welded, element)
	if placement.GluesRight() {
		welded.Extend(duplicate(welder.glue))
	}
}

func placeAllWith[T any, E any, PT Destination[E, T], X any](
	welder *Welder[T, E, PT],
	placement Placement,
	elements []X,
	extend func(PT, X),
) {
	checkPlacement(placement)
	if debugOn {
		debugf("[Welder] Placing all of %s with glue %s\n", debugElementList(elements), placement)
	}
	reserve[T, E, PT](&welder.welded, len(elements) * placement.Width())
	for _, element := range elements {
		placeWith(welder, placement, element, extend)
	}
}

func extendElement[T any, E any, PT Destination[E, T]](welded PT, element E) {
	welded.Extend(element)
}

func(welder *Welder[T, E, PT]) place(placement Placement, element E) {
	placeWith(welder, placement, element, extendElement[T, E, PT])
}

func(welder *Welder[T, E, PT]) placeAll(placement Placement, elements []E) {
	placeAllWith(welder, placement, elements, extendElement[T, E, PT])
}

// PlaceAs places an element whose type differs from the glue's. The
// destination accepts it through extend, typically a method expression
// such as (*Text).ExtendRune.
func PlaceAs[T any, E any, PT Destination[E, T], X any](
	welder Welder[T, E, PT],
	placement Placement,
	element X,
	extend func(PT, X),
) Welder[T, E, PT] {
	placeWith(&welder, placement, element, extend)
	return welder
}

func PlaceAllAs[T any, E any, PT Destination[E, T], X any](
	welder Welder[T, E, PT],
	placement Placement,
	extend func(PT, X),
	elements ...X,
) Welder[T, E, PT] {
	placeAllWith(&welder, placement, elements, extend)
	return welder
}

func(welder Welder[T, E, PT]) Place(placement Placement, element E) Welder[T, E, PT] {
	welder.place(placement, element)
	return welder
}

func(welder Welder[T, E, PT]) PlaceAll(placement Placement, elements ...E) Welder[T, E, PT] {
	welder.placeAll(placement, elements)
	return welder
}

func(welder Welder[T, E, PT]) Elem(element E) Welder[T, E, PT] {
	return welder.Place(GLUE_LEFT, element)
}

func(welder Welder[T, E, PT]) ElemNoGlue(element E) Welder[T, E, PT] {
	return welder.Place(GLUE_NONE, element)
}

func(welder Welder[T, E, PT]) ElemGlueLeft(element E) Welder[T, E, PT] {
	return welder.Place(GLUE_LEFT, element)
}

func(welder Welder[T, E, PT]) ElemGlueRight(element E) Welder[T, E, PT] {
	return welder.Place(GLUE_RIGHT, element)
}

func(welder Welder[T, E, PT]) ElemGlueBoth(element E) Welder[T, E, PT] {
	return welder.Place(GLUE_BOTH, element)
}

func(welder Welder[T, E, PT]) Elems(elements ...E) Welder[T, E, PT] {
	return welder.PlaceAll(GLUE_LEFT, elements...)
}

func(welder Welder[T, E, PT]) ElemsNoGlue(elements ...E) Welder[T, E, PT] {
	return welder.PlaceAll(GLUE_NONE, elements...)
}

func(welder Welder[T, E, PT]) ElemsGlueLeft(elements ...E) Welder[T, E, PT] {
	return welder.PlaceAll(GLUE_LEFT, elements...)
}

func(welder Welder[T, E, PT]) ElemsGlueRight(elements ...E) Welder[T, E, PT] {
	return welder.PlaceAll(GLUE_RIGHT, elements...)
}

func(welder Welder[T, E, PT]) ElemsGlueBoth(elements ...E) Welder[T, E, PT] {
	return welder.PlaceAll(GLUE_BOTH, elements...)
}

func(welder Welder[T, E, PT]) Glue() E {
	return duplicate(welder.glue)
}

func(welder Welder[T, E, PT]) Weld() T {
	if debugOn {
		debugf("Weld %s\n", debugWelder(&welder))
	}
	return welder.welded
}

func(welder Welder[T, E, PT]) Mut() *MutWelder[T, E, PT] {
	return &MutWelder[T, E, PT] {
		welder: welder,
	}
}
