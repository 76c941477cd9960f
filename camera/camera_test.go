package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func newTestCamera() *Camera {
	return New(640, 45, 1.45, 0.006, 0.15)
}

func TestEyeOnOrbitSphere(t *testing.T) {
	cam := newTestCamera()

	angles := []struct{ yaw, pitch float64 }{
		{0, 0},
		{math.Pi / 3, 0.5},
		{-2.1, -1.2},
		{math.Pi, 1.45},
	}
	for _, a := range angles {
		cam.Yaw, cam.Pitch = a.yaw, a.pitch
		eye := cam.Eye()
		if r := r3.Norm(eye); math.Abs(r-cam.Distance) > 1e-9 {
			t.Errorf("yaw=%f pitch=%f: |eye| = %f, want %f", a.yaw, a.pitch, r, cam.Distance)
		}
	}
}

func TestDragSensitivity(t *testing.T) {
	cam := newTestCamera()
	yaw, pitch := cam.Yaw, cam.Pitch

	cam.Drag(100, -50)
	if math.Abs(cam.Yaw-(yaw+100*0.006)) > 1e-9 {
		t.Errorf("yaw = %f, want %f", cam.Yaw, yaw+100*0.006)
	}
	if math.Abs(cam.Pitch-(pitch-50*0.006)) > 1e-9 {
		t.Errorf("pitch = %f, want %f", cam.Pitch, pitch-50*0.006)
	}
}

func TestPitchClamped(t *testing.T) {
	cam := newTestCamera()

	cam.Drag(0, 1e6)
	if cam.Pitch != cam.PitchLimit {
		t.Errorf("pitch = %f, want clamp at %f", cam.Pitch, cam.PitchLimit)
	}
	cam.Drag(0, -1e6)
	if cam.Pitch != -cam.PitchLimit {
		t.Errorf("pitch = %f, want clamp at %f", cam.Pitch, -cam.PitchLimit)
	}
}

func TestZoomClamped(t *testing.T) {
	cam := newTestCamera()

	cam.Zoom(1)
	if cam.Distance >= 640 {
		t.Errorf("zoom in did not reduce distance: %f", cam.Distance)
	}

	cam.Zoom(1e4)
	if cam.Distance != cam.MinDistance {
		t.Errorf("distance = %f, want min %f", cam.Distance, cam.MinDistance)
	}
	cam.Zoom(-1e4)
	if cam.Distance != cam.MaxDistance {
		t.Errorf("distance = %f, want max %f", cam.Distance, cam.MaxDistance)
	}
}

func TestAutoRotate(t *testing.T) {
	cam := newTestCamera()
	yaw := cam.Yaw

	cam.Step(2.0)
	if math.Abs(cam.Yaw-(yaw+0.3)) > 1e-9 {
		t.Errorf("yaw = %f, want %f after 2s at 0.15 rad/s", cam.Yaw, yaw+0.3)
	}

	cam.AutoRotate = 0
	yaw = cam.Yaw
	cam.Step(2.0)
	if cam.Yaw != yaw {
		t.Errorf("yaw drifted with auto-rotate disabled")
	}
}

func TestDepthOf(t *testing.T) {
	cam := newTestCamera()
	if d := cam.DepthOf(r3.Vec{}); math.Abs(d-cam.Distance) > 1e-9 {
		t.Errorf("depth of origin = %f, want %f", d, cam.Distance)
	}

	// A point between eye and origin is closer than the origin.
	mid := r3.Scale(0.5, cam.Eye())
	if d := cam.DepthOf(mid); d >= cam.Distance {
		t.Errorf("midpoint depth = %f, want < %f", d, cam.Distance)
	}
}
