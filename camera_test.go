package autocanvas

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()
	if cam.Scale() != 1 {
		t.Errorf("Scale = %f, want 1", cam.Scale())
	}
	if cam.PanX != 0 || cam.PanY != 0 {
		t.Errorf("Pan = (%f,%f), want (0,0)", cam.PanX, cam.PanY)
	}
	min, max := cam.ScaleBounds()
	if min != DefaultScaleMin || max != DefaultScaleMax {
		t.Errorf("ScaleBounds = [%f,%f], want [%f,%f]", min, max, DefaultScaleMin, DefaultScaleMax)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	cam := NewCamera()
	cam.PanX, cam.PanY = 30, -20
	cam.SetScale(2)

	sx, sy := cam.WorldToScreen(10, 5)
	if sx != 50 || sy != -10 {
		t.Errorf("WorldToScreen(10,5) = (%f,%f), want (50,-10)", sx, sy)
	}
	wx, wy := cam.ScreenToWorld(50, -10)
	if wx != 10 || wy != 5 {
		t.Errorf("ScreenToWorld(50,-10) = (%f,%f), want (10,5)", wx, wy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := NewCamera()
	cam.PanX, cam.PanY = 42, -17
	cam.SetScale(1.5)

	origWX, origWY := 123.0, -456.0
	sx, sy := cam.WorldToScreen(origWX, origWY)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if !approxEqual(wx, origWX, 1e-9) || !approxEqual(wy, origWY, 1e-9) {
		t.Errorf("roundtrip: got (%f,%f), want (%f,%f)", wx, wy, origWX, origWY)
	}
}

func TestCameraZoomStaysInBounds(t *testing.T) {
	deltas := []float64{-1e6, -5000, -100, -1, 0, 1, 100, 5000, 1e6}
	scales := []float64{DefaultScaleMin, 0.5, 1, 7, DefaultScaleMax}
	for _, s0 := range scales {
		for _, d := range deltas {
			cam := NewCamera()
			cam.SetScale(s0)
			cam.Zoom(d, 320, 240)
			if s := cam.Scale(); s < DefaultScaleMin || s > DefaultScaleMax {
				t.Errorf("scale0=%v delta=%v: scale %v out of bounds", s0, d, s)
			}
		}
	}
}

func TestCameraZoomClampsFactorAgainstCurrentScale(t *testing.T) {
	cam := NewCamera()
	cam.SetScale(14)
	cam.Zoom(-1e6, 100, 100)
	if !approxEqual(cam.Scale(), DefaultScaleMax, 1e-9) {
		t.Fatalf("Scale = %v, want %v", cam.Scale(), DefaultScaleMax)
	}
	// The pan used the clamped factor, so the pivot is still fixed.
	wx, wy := 100.0, 100.0
	sx, sy := cam.WorldToScreen(cam.ScreenToWorld(wx, wy))
	if !approxEqual(sx, wx, 1e-9) || !approxEqual(sy, wy, 1e-9) {
		t.Errorf("pivot moved to (%f,%f)", sx, sy)
	}
}

func TestCameraZoomDirection(t *testing.T) {
	cam := NewCamera()
	cam.Zoom(-100, 0, 0) // wheel up
	if cam.Scale() <= 1 {
		t.Errorf("negative delta should zoom in, scale = %v", cam.Scale())
	}
	want := math.Pow(DefaultZoomStrength, 100)
	if !approxEqual(cam.Scale(), want, 1e-12) {
		t.Errorf("Scale = %v, want %v", cam.Scale(), want)
	}
}

func TestCameraRawZoomPivotInvariance(t *testing.T) {
	tests := []struct {
		name           string
		factor         float64
		aboutX, aboutY float64
	}{
		{"zoom in at origin", 2, 0, 0},
		{"zoom in off-center", 1.25, 320, 240},
		{"zoom out", 0.5, -50, 75},
		{"tiny", 1.0005, 13.5, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera()
			cam.PanX, cam.PanY = 12, -7
			cam.SetScale(1.3)

			bx, by := cam.ScreenToWorld(tt.aboutX, tt.aboutY)
			cam.RawZoom(tt.factor, tt.aboutX, tt.aboutY)
			ax, ay := cam.ScreenToWorld(tt.aboutX, tt.aboutY)

			if !approxEqual(bx, ax, 1e-9) || !approxEqual(by, ay, 1e-9) {
				t.Errorf("pivot world point moved: (%f,%f) -> (%f,%f)", bx, by, ax, ay)
			}
			sx, sy := cam.WorldToScreen(ax, ay)
			if !approxEqual(sx, tt.aboutX, 1e-9) || !approxEqual(sy, tt.aboutY, 1e-9) {
				t.Errorf("pivot maps to (%f,%f), want (%f,%f)", sx, sy, tt.aboutX, tt.aboutY)
			}
		})
	}
}

func TestCameraRawZoomClampsScale(t *testing.T) {
	cam := NewCamera()
	cam.RawZoom(1000, 0, 0)
	if cam.Scale() != DefaultScaleMax {
		t.Errorf("Scale = %v, want %v", cam.Scale(), DefaultScaleMax)
	}
	cam.RawZoom(1e-9, 0, 0)
	if cam.Scale() != DefaultScaleMin {
		t.Errorf("Scale = %v, want %v", cam.Scale(), DefaultScaleMin)
	}
}

func TestCameraRawZoomIgnoresDegenerateFactor(t *testing.T) {
	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		cam := NewCamera()
		cam.PanX = 10
		cam.RawZoom(f, 5, 5)
		if cam.Scale() != 1 || cam.PanX != 10 {
			t.Errorf("factor %v changed camera: scale=%v pan=%v", f, cam.Scale(), cam.PanX)
		}
	}
}

func TestCameraDragIsRelativeToPress(t *testing.T) {
	cam := NewCamera()
	cam.PanX, cam.PanY = 15, 25
	cam.BeginDrag()

	// Many intermediate moves, then the final position.
	for i := 0; i < 50; i++ {
		cam.DragTo(float64(i)*0.37, -float64(i)*1.1)
	}
	cam.DragTo(40, -12)

	if cam.PanX != 55 || cam.PanY != 13 {
		t.Errorf("Pan = (%f,%f), want (55,13)", cam.PanX, cam.PanY)
	}
}

func TestCameraSetScaleBounds(t *testing.T) {
	cam := NewCamera()
	cam.SetScale(10)
	cam.SetScaleBounds(0.5, 4)
	if cam.Scale() != 4 {
		t.Errorf("Scale = %v, want re-clamped 4", cam.Scale())
	}
	defer func() {
		if recover() == nil {
			t.Error("SetScaleBounds(2, 1) did not panic")
		}
	}()
	cam.SetScaleBounds(2, 1)
}

func TestCameraPanTo(t *testing.T) {
	cam := NewCamera()
	cam.PanTo(100, -50, 200, ease.Linear)
	if !cam.Animating() {
		t.Fatal("Animating = false after PanTo")
	}
	cam.update(100)
	if !approxEqual(cam.PanX, 50, 1e-3) || !approxEqual(cam.PanY, -25, 1e-3) {
		t.Errorf("halfway pan = (%f,%f), want (50,-25)", cam.PanX, cam.PanY)
	}
	cam.update(100)
	if cam.Animating() {
		t.Error("still animating after full duration")
	}
	if !approxEqual(cam.PanX, 100, 1e-3) || !approxEqual(cam.PanY, -50, 1e-3) {
		t.Errorf("final pan = (%f,%f), want (100,-50)", cam.PanX, cam.PanY)
	}
}

func TestCameraBeginDragCancelsPan(t *testing.T) {
	cam := NewCamera()
	cam.PanTo(100, 100, 1000, nil)
	cam.update(500)
	cam.BeginDrag()
	if cam.Animating() {
		t.Error("BeginDrag should cancel the pan animation")
	}
	x := cam.PanX
	cam.update(500)
	if cam.PanX != x {
		t.Errorf("pan kept moving after cancel: %v -> %v", x, cam.PanX)
	}
}

func TestCameraCenterOn(t *testing.T) {
	cam := NewCamera()
	cam.SetScale(2)
	cam.CenterOn(10, 20, 320, 240, 100, ease.OutQuad)
	cam.update(100)
	sx, sy := cam.WorldToScreen(10, 20)
	if !approxEqual(sx, 320, 1e-3) || !approxEqual(sy, 240, 1e-3) {
		t.Errorf("world (10,20) at (%f,%f), want (320,240)", sx, sy)
	}
}

func TestCameraReset(t *testing.T) {
	cam := NewCamera()
	cam.SetScaleBounds(0.5, 3)
	cam.PanX, cam.PanY = 4, 5
	cam.SetScale(2)
	cam.Reset()
	if cam.Scale() != 1 || cam.PanX != 0 || cam.PanY != 0 {
		t.Errorf("after Reset: scale=%v pan=(%v,%v)", cam.Scale(), cam.PanX, cam.PanY)
	}
	if min, max := cam.ScaleBounds(); min != 0.5 || max != 3 {
		t.Errorf("Reset changed bounds to [%v,%v]", min, max)
	}
}

func TestCameraPanToLandsExactly(t *testing.T) {
	cam := NewCamera()
	cam.PanX, cam.PanY = -3.7, 12
	cam.PanTo(0.1, 1234567.3, 100, ease.InOutQuad)
	cam.update(50)
	cam.update(50)
	if cam.Animating() {
		t.Fatal("still animating after full duration")
	}
	if cam.PanX != 0.1 || cam.PanY != 1234567.3 {
		t.Errorf("pan = (%v,%v), want (0.1,1234567.3)", cam.PanX, cam.PanY)
	}
}
