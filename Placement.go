package welder

import (
	"fmt"

	"github.com/indigo-web/utils/strcomp"
)

type Placement uint

const (
	GLUE_LEFT Placement = iota
	GLUE_NONE
	GLUE_RIGHT
	GLUE_BOTH
)

var placementNames = [...]string {
	GLUE_LEFT: "left",
	GLUE_NONE: "none",
	GLUE_RIGHT: "right",
	GLUE_BOTH: "both",
}

func(placement Placement) IsValid() bool {
	return placement <= GLUE_BOTH
}

func(placement Placement) String() string {
	if !placement.IsValid() {
		return fmt.Sprintf("<unknown Placement %d>", placement)
	}
	return placementNames[placement]
}

func(placement Placement) GluesLeft() bool {
	return placement == GLUE_LEFT || placement == GLUE_BOTH
}

func(placement Placement) GluesRight() bool {
	return placement == GLUE_RIGHT || placement == GLUE_BOTH
}

// Width is the number of destination elements one appended element turns into.
func(placement Placement) Width() int {
	width := 1
	if placement.GluesLeft() {
		width++
	}
	if placement.GluesRight() {
		width++
	}
	return width
}

func ParsePlacement(name string) (Placement, error) {
	for placement, known := range placementNames {
		if strcomp.EqualFold(name, known) {
			return Placement(placement), nil
		}
	}
	return GLUE_LEFT, &PlacementError {
		Name: name,
		Named: true,
	}
}
