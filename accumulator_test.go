package welder

import (
	tst "testing"
	. "github.com/UncleSniper/gotest"
)

func TestThe(t *tst.T) {
	c := Use(t)
	the := The(42)
	AssertThat(c, the()).Is(EqualTo(42))
}

func TestFoldPlacingEqualsBatch(t *tst.T) {
	c := Use(t)
	for placement := GLUE_LEFT; placement <= GLUE_BOTH; placement++ {
		folded := Fold(The(WithStart[Text](" ", "foo")), Placing[Text, string](placement), "bar", "baz")
		batch := WithStart[Text](" ", "foo").PlaceAll(placement, "bar", "baz")
		AssertThat(c, folded.Weld().String()).Is(EqualTo(batch.Weld().String()))
	}
}

func TestFoldWithoutInitOrCombine(t *tst.T) {
	c := Use(t)
	AssertThat(c, Fold[int, string](nil, nil, "a", "b")).Is(EqualTo(0))
	AssertThat(c, Fold[int, string](The(5), nil, "a")).Is(EqualTo(5))
	welded := Fold[Welder[Text, string, *Text], string](nil, Placing[Text, string](GLUE_RIGHT), "a", "b")
	AssertThat(c, welded.Weld().String()).Is(EqualTo("ab"))
}

func TestTap(t *tst.T) {
	c := Use(t)
	var seen []string
	sink := func(piece string) {
		seen = append(seen, piece)
	}
	welded := Fold(The(New[Text](",")), Tap(Placing[Text, string](GLUE_LEFT), sink), "a", "b")
	AssertThat(c, welded.Weld().String()).Is(EqualTo(",a,b"))
	AssertThat(c, len(seen)).Is(EqualTo(2))
	AssertThat(c, seen[1]).Is(EqualTo("b"))
	count := Fold(The(0), Tap[int, string](nil, sink), "c")
	AssertThat(c, count).Is(EqualTo(0))
	AssertThat(c, len(seen)).Is(EqualTo(3))
}
