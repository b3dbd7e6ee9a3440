package welder

import (
	"strconv"
	"strings"
)

// PlacementError reports either a name ParsePlacement did not recognize
// (Named is set) or a Placement value that was never defined.
type PlacementError struct {
	Name string
	Named bool
	Value Placement
}

func(err *PlacementError) Error() string {
	var builder strings.Builder
	builder.WriteString("Unknown glue placement ")
	if err.Named {
		builder.WriteString(strconv.Quote(err.Name))
	} else {
		builder.WriteString(strconv.FormatUint(uint64(err.Value), 10))
	}
	builder.WriteString(": Expected ")
	for index, name := range placementNames {
		if index == len(placementNames) - 1 {
			builder.WriteString(", or ")
		} else if index > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(strconv.Quote(name))
	}
	return builder.String()
}

var _ error = &PlacementError{}
