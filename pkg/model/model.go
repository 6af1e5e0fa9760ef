package model

import "math"

// Stepper is implemented by the engines that are animated one training step
// at a time. Advance performs target-Steps() more steps; a target below the
// current count replays deterministically from the initial state.
type Stepper interface {
	Steps() int
	Advance(target int) error
}

// FrameToIteration maps an animation frame counter (0..100) onto the number
// of completed training steps: min(iterations, floor(frame/100·iterations)+1).
func FrameToIteration(frame, iterations int) int {
	if iterations <= 0 {
		return 0
	}
	if frame < 0 {
		frame = 0
	}
	it := int(math.Floor(float64(frame)/100*float64(iterations))) + 1
	return min(iterations, it)
}

// AdvanceToFrame moves s to the step count the frame counter calls for.
func AdvanceToFrame(s Stepper, frame, iterations int) error {
	return s.Advance(FrameToIteration(frame, iterations))
}
