package welder

import (
	"reflect"
)

type Extender[E any] interface {
	Extend(E)
}

// Destination is satisfied by *T when T accepts elements of type E.
// The zero value of T is the empty destination.
type Destination[E any, T any] interface {
	*T
	Extender[E]
}

type Cloner[G any] interface {
	Clone() G
}

type Reserver interface {
	Reserve(additional int)
}

// duplicate clones glue through Cloner when it can. Slice glue without a
// Clone method gets a shallow copy of its elements, so callers never share
// its backing array with the welder.
func duplicate[E any](glue E) E {
	if cloner, ok := any(glue).(Cloner[E]); ok {
		return cloner.Clone()
	}
	value := reflect.ValueOf(&glue).Elem()
	if value.Kind() != reflect.Slice || value.IsNil() {
		return glue
	}
	copied := reflect.MakeSlice(value.Type(), value.Len(), value.Len())
	reflect.Copy(copied, value)
	return copied.Interface().(E)
}

// detach hands out a welded destination that no longer shares storage with
// the welder, provided the destination knows how to clone itself.
func detach[T any](welded T) T {
	if cloner, ok := any(welded).(Cloner[T]); ok {
		return cloner.Clone()
	}
	return welded
}

func reserve[T any, E any, PT Destination[E, T]](welded *T, additional int) {
	if additional <= 0 {
		return
	}
	if reserver, ok := any(PT(welded)).(Reserver); ok {
		reserver.Reserve(additional)
	}
}
