// Package progress turns elapsed time into looping animation values.
//
// Renderers never read a clock. The host keeps an elapsed duration and asks a
// Timeline (or any Func) for the value to draw with.
package progress

import "time"

const (
	burstScalePeriod    = 2000 * time.Millisecond
	burstRotationPeriod = 3000 * time.Millisecond
	ovalDuration        = 700 * time.Millisecond
	ovalDelay           = 500 * time.Millisecond
)

// Func maps elapsed time to an animation value.
type Func func(elapsed time.Duration) float64

// RepeatMode controls how a Timeline starts its next iteration.
type RepeatMode int

const (
	// Restart jumps back to From on every iteration.
	Restart RepeatMode = iota
	// Reverse plays every odd iteration from To back to From.
	Reverse
)

// Timeline is an infinitely repeating tween. Each iteration holds the start
// value for Delay and then interpolates over Duration.
type Timeline struct {
	From, To float64
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	Mode     RepeatMode
}

// Cycle is the length of one iteration.
func (t Timeline) Cycle() time.Duration {
	return t.Delay + t.Duration
}

// At returns the value at elapsed. Negative elapsed counts as zero.
func (t Timeline) At(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := t.Cycle()
	if cycle <= 0 {
		return t.To
	}

	iteration := elapsed / cycle
	local := elapsed % cycle

	from, to := t.From, t.To
	if t.Mode == Reverse && iteration%2 == 1 {
		from, to = to, from
	}
	if local < t.Delay {
		return from
	}

	frac := float64(local-t.Delay) / float64(t.Duration)
	ease := t.Easing
	if ease == nil {
		ease = Linear
	}
	return Lerp(from, to, ease(frac))
}

// Func adapts the timeline to a Func.
func (t Timeline) Func() Func {
	return t.At
}

// BurstScale grows the radial burst from 0 to 1 every two seconds.
func BurstScale() Timeline {
	return Timeline{From: 0, To: 1, Duration: burstScalePeriod}
}

// BurstRotation turns the radial burst a full circle every three seconds.
func BurstRotation() Timeline {
	return Timeline{From: 0, To: 360, Duration: burstRotationPeriod}
}

// OvalBurst waits, then runs the oval burst from 0 to 2.
func OvalBurst() Timeline {
	return Timeline{From: 0, To: 2, Duration: ovalDuration, Delay: ovalDelay}
}
