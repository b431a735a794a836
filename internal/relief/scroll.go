package relief

import "time"

const (
	// ScrollOffset is how many rows above the relief region stay visible.
	ScrollOffset = 2
	// ScrollDuration is the length of the scroll animation.
	ScrollDuration = 500 * time.Millisecond
)

// ScrollPlan animates the page offset from From to To.
type ScrollPlan struct {
	From     int
	To       int
	Duration time.Duration
}

// PlanScroll targets regionTop minus ScrollOffset, clamped to [0, maxOffset].
func PlanScroll(current, regionTop, maxOffset int) ScrollPlan {
	target := regionTop - ScrollOffset
	if target > maxOffset {
		target = maxOffset
	}
	if target < 0 {
		target = 0
	}
	return ScrollPlan{From: current, To: target, Duration: ScrollDuration}
}

// At returns the offset after elapsed, easing in and out.
func (p ScrollPlan) At(elapsed time.Duration) int {
	if p.Duration <= 0 || elapsed >= p.Duration {
		return p.To
	}
	if elapsed <= 0 {
		return p.From
	}
	t := float64(elapsed) / float64(p.Duration)
	eased := t * t * (3 - 2*t)
	return p.From + int(float64(p.To-p.From)*eased+0.5)
}

// Done reports whether the animation has finished at elapsed.
func (p ScrollPlan) Done(elapsed time.Duration) bool {
	return elapsed >= p.Duration
}
