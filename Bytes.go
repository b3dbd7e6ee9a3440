package welder

import (
	"golang.org/x/exp/slices"
)

// Bytes keeps a private copy of every appended fragment and only joins them
// into a single slice on Concat.
type Bytes struct {
	fragments [][]byte
	totalLength int
}

func(bytes *Bytes) Extend(fragment []byte) {
	bytes.fragments = append(bytes.fragments, slices.Clone(fragment))
	bytes.totalLength += len(fragment)
}

func(bytes *Bytes) Reserve(additional int) {
	bytes.fragments = slices.Grow(bytes.fragments, additional)
}

func(bytes Bytes) Clone() Bytes {
	return Bytes {
		fragments: slices.Clone(bytes.fragments),
		totalLength: bytes.totalLength,
	}
}

func(bytes Bytes) Len() int {
	return bytes.totalLength
}

func(bytes Bytes) Concat() []byte {
	result := make([]byte, bytes.totalLength)
	offset := 0
	for _, fragment := range bytes.fragments {
		copy(result[offset:], fragment)
		offset += len(fragment)
	}
	return result
}

func(bytes Bytes) ConcatToString() string {
	return string(bytes.Concat())
}

var _ Extender[[]byte] = &Bytes{}
var _ Reserver = &Bytes{}
var _ Cloner[Bytes] = Bytes{}
