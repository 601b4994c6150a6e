// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"math"
	"time"
)

type progressSample struct {
	completed int
	timestamp time.Time
}

// EtaTracker estimates the remaining duration of a job from a sliding window
// of progress samples.
type EtaTracker struct {
	samples  []progressSample
	next     int
	recorded int
	// slowdown is the multiplier applied to the raw estimate at 0% progress.
	// The multiplier decreases linearly to 1 at 100% progress.
	slowdown float64
}

// NewEtaTracker returns a tracker that estimates over the last [window]
// samples. A window smaller than 2 defaults to 5.
func NewEtaTracker(window int, slowdown float64) *EtaTracker {
	if window < 2 {
		window = 5
	}
	return &EtaTracker{
		samples:  make([]progressSample, window),
		slowdown: slowdown,
	}
}

// AddSample records that [completed] out of [target] units of work were done
// at [now].
//
// It returns the estimated remaining duration, rounded to the second, and the
// percentage completed, rounded to 2 decimal places. If the window has not
// been filled yet, or no progress was made across the window, ok is false.
func (t *EtaTracker) AddSample(completed, target int, now time.Time) (eta time.Duration, percent float64, ok bool) {
	current := progressSample{
		completed: completed,
		timestamp: now,
	}
	t.samples[t.next] = current
	t.next = (t.next + 1) % len(t.samples)
	t.recorded++

	if t.recorded < len(t.samples) || target <= 0 {
		return 0, 0, false
	}

	fraction := float64(completed) / float64(target)
	percent = math.Round(fraction*10_000) / 100
	if completed >= target {
		return 0, percent, true
	}

	oldest := t.samples[t.next]
	elapsed := current.timestamp.Sub(oldest.timestamp)
	progress := current.completed - oldest.completed
	if elapsed <= 0 || progress <= 0 {
		return 0, 0, false
	}

	rate := float64(progress) / float64(elapsed)
	remaining := float64(target-completed) / rate
	adjustment := t.slowdown - (t.slowdown-1)*fraction
	return time.Duration(remaining * adjustment).Round(time.Second), percent, true
}
