// Package easing provides the timing curves used by formation transitions.
package easing

import (
	"math"
	"sort"
)

// Func maps transition progress p in [0,1] to an eased value. The result is
// not necessarily clamped to [0,1]: spring and elastic overshoot.
type Func func(p float64) float64

// Linear returns p unchanged.
func Linear(p float64) float64 { return p }

// EaseIn accelerates from rest.
func EaseIn(p float64) float64 { return p * p }

// EaseOut decelerates to rest.
func EaseOut(p float64) float64 { return 1 - (1-p)*(1-p) }

// EaseInOut accelerates through the first half and decelerates through the
// second.
func EaseInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - (-2*p+2)*(-2*p+2)/2
}

// Spring overshoots the target and settles back.
func Spring(p float64) float64 {
	const s = 1.70158 * 1.525
	if p < 0.5 {
		return ((2 * p) * (2 * p) * ((s+1)*2*p - s)) / 2
	}
	return ((2*p-2)*(2*p-2)*((s+1)*(2*p-2)+s))/2 + 1
}

// Bounce decays through four quadratic bounces.
func Bounce(p float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case p < 1/d1:
		return n1 * p * p
	case p < 2/d1:
		p -= 1.5 / d1
		return n1*p*p + 0.75
	case p < 2.5/d1:
		p -= 2.25 / d1
		return n1*p*p + 0.9375
	default:
		p -= 2.625 / d1
		return n1*p*p + 0.984375
	}
}

// Elastic oscillates around the target with exponentially decaying
// amplitude.
func Elastic(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	const period = 0.3
	const s = period / 4
	return math.Pow(2, -10*p)*math.Sin((p-s)*2*math.Pi/period) + 1
}

// Registry maps easing names to functions. Each simulation instance owns its
// own registry, so custom registrations never leak across instances.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates a registry preloaded with the built-in catalog.
func NewRegistry() *Registry {
	return &Registry{funcs: map[string]Func{
		"linear":    Linear,
		"easeIn":    EaseIn,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
		"spring":    Spring,
		"bounce":    Bounce,
		"elastic":   Elastic,
	}}
}

// Register adds or replaces a named easing function.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Resolve returns the named function. Unknown names degrade to EaseInOut
// rather than failing; a bad easing name should soften a transition, not
// abort it.
func (r *Registry) Resolve(name string) Func {
	if fn, ok := r.funcs[name]; ok {
		return fn
	}
	return EaseInOut
}

// Names returns the registered easing names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
