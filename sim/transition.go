package sim

import "github.com/calder-vis/constel/easing"

// transitionEngine tracks the single active formation transition:
// Idle -> Running on TransitionToShape, Running -> Idle when elapsed reaches
// the duration, invoking the completion callback exactly once.
//
// Starting a new transition while one is running overwrites it: the old
// target and callback are dropped without being invoked, and particles
// capture their mid-flight positions as new origins. Re-entrant starts can
// therefore cause small position jumps; callers who need continuity should
// wait for the completion callback.
type transitionEngine struct {
	running    bool
	elapsed    float64 // ms
	duration   float64 // ms
	ease       easing.Func
	onComplete func()
}
