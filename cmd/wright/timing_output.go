package main

import (
	"fmt"
	"io"

	"wright/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if timer == nil || len(timer.Report().Phases) == 0 {
		return
	}
	fmt.Fprint(out, timer.Summary())
}
