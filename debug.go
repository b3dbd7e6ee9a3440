package welder

import (
	"os"
	"fmt"
	"sync"
	"strings"
)

const debugPrefix string = "***DEBUG[github.com/Kerollmops/welder]: "

var debugOn bool = len(os.Getenv("GO_WELDER_DEBUG")) > 0

var debugLock sync.Mutex

func debugf(format string, args ...any) {
	if debugOn {
		debugLock.Lock()
		fmt.Fprint(os.Stderr, debugPrefix)
		fmt.Fprintf(os.Stderr, format, args...)
		debugLock.Unlock()
	}
}

func debugWelder[T any, E any, PT Destination[E, T]](welder *Welder[T, E, PT]) string {
	if welder == nil {
		return "Welder == nil"
	}
	return fmt.Sprintf("Welder { Glue = %+v, Welded = %+v }", welder.glue, welder.welded)
}

func debugElementList[E any](elements []E) string {
	var builder strings.Builder
	if elements == nil {
		builder.WriteString("nil")
	} else {
		builder.WriteRune('[')
		for index, element := range elements {
			if index > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(fmt.Sprintf("%+v", element))
		}
		builder.WriteRune(']')
	}
	return builder.String()
}
