package welder

import (
	tst "testing"
	. "github.com/UncleSniper/gotest"
	"golang.org/x/exp/slices"
)

func TestVecOfCopies(t *tst.T) {
	c := Use(t)
	items := []string {"a", "b"}
	vec := VecOf(items...)
	items[0] = "z"
	AssertThat(c, slices.Equal(vec.Slice(), []string {"a", "b"})).Is(EqualTo(true))
}

func TestVecReserve(t *tst.T) {
	c := Use(t)
	var vec Vec[int]
	vec.Reserve(16)
	AssertThat(c, vec.Len()).Is(EqualTo(0))
	AssertThat(c, cap(vec.Slice()) >= 16).Is(EqualTo(true))
	vec.Extend(3)
	AssertThat(c, slices.Equal(vec.Slice(), []int {3})).Is(EqualTo(true))
}

func TestTextCopiesByValue(t *tst.T) {
	c := Use(t)
	var text Text
	text.Extend("ab")
	copied := text
	copied.Extend("c")
	AssertThat(c, text.String()).Is(EqualTo("ab"))
	AssertThat(c, copied.String()).Is(EqualTo("abc"))
	AssertThat(c, copied.Len()).Is(EqualTo(3))
}

func TestBytesConcat(t *tst.T) {
	c := Use(t)
	welded := WithStart[Bytes]([]byte(", "), []byte("foo")).
			Elems([]byte("bar"), []byte("baz")).
			Weld()
	AssertThat(c, welded.Len()).Is(EqualTo(13))
	AssertThat(c, welded.ConcatToString()).Is(EqualTo("foo, bar, baz"))
	AssertThat(c, string(welded.Concat())).Is(EqualTo("foo, bar, baz"))
}

func TestBytesReserveKeepsFragments(t *tst.T) {
	c := Use(t)
	var bytes Bytes
	bytes.Extend([]byte("x"))
	bytes.Reserve(8)
	bytes.Extend([]byte("yz"))
	AssertThat(c, bytes.ConcatToString()).Is(EqualTo("xyz"))
}

func TestTextIsNotReserver(t *tst.T) {
	c := Use(t)
	_, ok := any(&Text{}).(Reserver)
	AssertThat(c, ok).Is(EqualTo(false))
	_, ok = any(&Vec[string]{}).(Reserver)
	AssertThat(c, ok).Is(EqualTo(true))
}

func TestDestinationClones(t *tst.T) {
	c := Use(t)
	vec := VecOf(1, 2)
	vecClone := vec.Clone()
	vecClone.Slice()[0] = 7
	AssertThat(c, vec.Slice()[0]).Is(EqualTo(1))
	var text Text
	text.Extend("ab")
	textClone := text.Clone()
	textClone.Extend("c")
	AssertThat(c, text.String()).Is(EqualTo("ab"))
	var bytes Bytes
	bytes.Extend([]byte("ab"))
	bytesClone := bytes.Clone()
	bytesClone.Extend([]byte("c"))
	AssertThat(c, bytes.ConcatToString()).Is(EqualTo("ab"))
	AssertThat(c, bytesClone.Len()).Is(EqualTo(3))
}

func TestBytesCopiesFragments(t *tst.T) {
	c := Use(t)
	fragment := []byte("ab")
	var bytes Bytes
	bytes.Extend(fragment)
	fragment[0] = 'z'
	AssertThat(c, bytes.ConcatToString()).Is(EqualTo("ab"))
}
