package welder

type InitAccu[AccumulatorT any] func() AccumulatorT

type CombineAccu[AccumulatorT any, PieceT any] func(AccumulatorT, PieceT) AccumulatorT

func The[T any](value T) InitAccu[T] {
	return func() T {
		return value
	}
}

func Placing[T any, E any, PT Destination[E, T]](placement Placement) CombineAccu[Welder[T, E, PT], E] {
	return func(accumulator Welder[T, E, PT], piece E) Welder[T, E, PT] {
		return accumulator.Place(placement, piece)
	}
}

func Tap[AccumulatorT any, PieceT any](
	combineAccu CombineAccu[AccumulatorT, PieceT],
	sink func(PieceT),
) CombineAccu[AccumulatorT, PieceT] {
	return func(accumulator AccumulatorT, piece PieceT) AccumulatorT {
		if sink != nil {
			sink(piece)
		}
		if combineAccu == nil {
			return accumulator
		}
		return combineAccu(accumulator, piece)
	}
}

func Fold[AccumulatorT any, PieceT any](
	initAccu InitAccu[AccumulatorT],
	combineAccu CombineAccu[AccumulatorT, PieceT],
	pieces ...PieceT,
) AccumulatorT {
	var accumulator AccumulatorT
	if initAccu != nil {
		accumulator = initAccu()
	}
	if combineAccu == nil {
		return accumulator
	}
	for _, piece := range pieces {
		accumulator = combineAccu(accumulator, piece)
	}
	return accumulator
}
