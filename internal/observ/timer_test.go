package observ

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("lex")
	time.Sleep(time.Millisecond)
	timer.End(idx, "3 files")
	timer.End(42, "ignored")

	report := timer.Report()
	require.Len(t, report.Phases, 1)
	assert.Equal(t, "lex", report.Phases[0].Name)
	assert.Equal(t, "3 files", report.Phases[0].Note)
	assert.Greater(t, report.TotalMS, 0.0)

	summary := timer.Summary()
	assert.True(t, strings.HasPrefix(summary, "timings:\n"))
	assert.Contains(t, summary, "// 3 files")
	assert.Contains(t, summary, "total")
}

func TestTimerConcurrentTrack(t *testing.T) {
	timer := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			done := timer.Track("parse")
			done("")
		}()
	}
	wg.Wait()
	assert.Len(t, timer.Report().Phases, 16)
}

func TestNilTimerIsNoop(t *testing.T) {
	var timer *Timer
	done := timer.Track("x")
	done("y")
	assert.Equal(t, Report{}, timer.Report())
}
