package autocanvas

import "testing"

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", Color{1, 1, 1, 1}, false},
		{"#000000", Color{0, 0, 0, 1}, false},
		{"#f00", Color{1, 0, 0, 1}, false},
		{"ffffff", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		// Components come from multiplying by 1/255, so compare through Hex.
		if !tt.wantErr && (got.Hex() != tt.want.Hex() || got.A != 1) {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorHexRoundtrip(t *testing.T) {
	if got := DefaultBackground.Hex(); got != "#292929" {
		t.Errorf("DefaultBackground.Hex() = %q", got)
	}
	c, err := ParseHexColor("#1a2b3c")
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#1a2b3c" {
		t.Errorf("Hex = %q, want #1a2b3c", c.Hex())
	}
	if (Color{R: 2, G: -1, B: 0.5}).Hex() != "#ff0080" {
		t.Errorf("out of range components not clamped: %q", (Color{R: 2, G: -1, B: 0.5}).Hex())
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventHover:     "hover",
		EventPress:     "press",
		EventClick:     "click",
		EventRelease:   "release",
		EventHoverStop: "hover_stop",
		EventResize:    "resize",
		EventType(42):  "EventType(42)",
	}
	for ev, want := range tests {
		if got := ev.String(); got != want {
			t.Errorf("EventType(%d).String() = %q, want %q", uint8(ev), got, want)
		}
	}
}

func TestRectContainsStrict(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if r.ContainsStrict(0, 5) {
		t.Error("left edge is inside")
	}
	if !r.ContainsStrict(5, 5) {
		t.Error("center is outside")
	}
	if (Rect{Width: 0, Height: 10}).ContainsStrict(0, 5) {
		t.Error("empty rect contains a point")
	}
}
