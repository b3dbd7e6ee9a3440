package welder

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Text accumulates strings. Unlike strings.Builder it may be copied by value,
// which the value-chained Welder does on every append.
type Text struct {
	buffer []byte
}

func(text *Text) Extend(str string) {
	text.buffer = append(text.buffer, str...)
}

func(text *Text) ExtendRune(r rune) {
	text.buffer = utf8.AppendRune(text.buffer, r)
}

func(text Text) Clone() Text {
	return Text {
		buffer: slices.Clone(text.buffer),
	}
}

func(text Text) Len() int {
	return len(text.buffer)
}

func(text Text) String() string {
	return string(text.buffer)
}

var _ Extender[string] = &Text{}
var _ Cloner[Text] = Text{}
