package easing

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	// Every built-in curve starts at 0 and lands exactly on 1.
	for name, fn := range map[string]Func{
		"linear": Linear, "easeIn": EaseIn, "easeOut": EaseOut,
		"easeInOut": EaseInOut, "spring": Spring, "bounce": Bounce,
		"elastic": Elastic,
	} {
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		p    float64
		want float64
	}{
		{"linear mid", Linear, 0.25, 0.25},
		{"easeIn mid", EaseIn, 0.5, 0.25},
		{"easeOut mid", EaseOut, 0.5, 0.75},
		{"easeInOut quarter", EaseInOut, 0.25, 0.125},
		{"easeInOut mid", EaseInOut, 0.5, 0.5},
		{"easeInOut three-quarter", EaseInOut, 0.75, 0.875},
		{"bounce first segment", Bounce, 0.2, 7.5625 * 0.2 * 0.2},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSpringOvershoots(t *testing.T) {
	over := false
	for p := 0.5; p < 1; p += 0.01 {
		if Spring(p) > 1 {
			over = true
			break
		}
	}
	if !over {
		t.Error("spring never exceeded 1 in the second half")
	}
}

func TestRegistryFallback(t *testing.T) {
	r := NewRegistry()

	if got := r.Resolve("easeIn")(0.5); got != 0.25 {
		t.Errorf("Resolve(easeIn)(0.5) = %v, want 0.25", got)
	}
	// Unknown names degrade to easeInOut.
	if got := r.Resolve("no-such-easing")(0.25); got != EaseInOut(0.25) {
		t.Errorf("unknown easing did not fall back to easeInOut: %v", got)
	}
}

func TestRegistryCustom(t *testing.T) {
	r := NewRegistry()
	r.Register("flat", func(p float64) float64 { return 0 })

	if got := r.Resolve("flat")(0.9); got != 0 {
		t.Errorf("custom easing not used: %v", got)
	}

	// A second registry must not see the custom registration.
	other := NewRegistry()
	if got := other.Resolve("flat")(0.25); got != EaseInOut(0.25) {
		t.Errorf("custom registration leaked across registries")
	}
}
