package clock

import (
	"errors"
	"math"
	"testing"

	"github.com/go-drift/drift/pkg/graphics"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewDial(t *testing.T) {
	tests := []struct {
		name string
		size graphics.Size
		want Dial
	}{
		{
			name: "square",
			size: graphics.Size{Width: 300, Height: 300},
			want: Dial{
				Bounds: graphics.Rect{Left: 0, Top: 0, Right: 300, Bottom: 300},
				Center: graphics.Offset{X: 150, Y: 150},
				Radius: 150,
			},
		},
		{
			name: "landscape centers horizontally",
			size: graphics.Size{Width: 300, Height: 200},
			want: Dial{
				Bounds: graphics.Rect{Left: 50, Top: 0, Right: 250, Bottom: 200},
				Center: graphics.Offset{X: 150, Y: 100},
				Radius: 100,
			},
		},
		{
			name: "portrait centers vertically",
			size: graphics.Size{Width: 100, Height: 400},
			want: Dial{
				Bounds: graphics.Rect{Left: 0, Top: 150, Right: 100, Bottom: 250},
				Center: graphics.Offset{X: 50, Y: 200},
				Radius: 50,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDial(tt.size)
			if err != nil {
				t.Fatalf("NewDial(%v) error: %v", tt.size, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewDial(%v) mismatch (-want +got):\n%s", tt.size, diff)
			}
		})
	}
}

func TestNewDialDegenerate(t *testing.T) {
	sizes := []graphics.Size{
		{Width: 0, Height: 100},
		{Width: 100, Height: 0},
		{Width: -10, Height: 100},
		{Width: math.NaN(), Height: 100},
		{Width: math.Inf(1), Height: 100},
	}
	for _, size := range sizes {
		if _, err := NewDial(size); !errors.Is(err, ErrDegenerateBounds) {
			t.Errorf("NewDial(%v) error = %v, want ErrDegenerateBounds", size, err)
		}
	}
}

func TestDialPointAt(t *testing.T) {
	d, _ := NewDial(graphics.Size{Width: 200, Height: 200})
	approx := cmpopts.EquateApprox(0, epsilon)
	tests := []struct {
		angle float64
		want  graphics.Offset
	}{
		{0, graphics.Offset{X: 100, Y: 50}},
		{math.Pi / 2, graphics.Offset{X: 150, Y: 100}},
		{math.Pi, graphics.Offset{X: 100, Y: 150}},
		{3 * math.Pi / 2, graphics.Offset{X: 50, Y: 100}},
	}
	for _, tt := range tests {
		got := d.PointAt(tt.angle, 50)
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("PointAt(%v, 50) mismatch (-want +got):\n%s", tt.angle, diff)
		}
	}
}

func TestNewPointers(t *testing.T) {
	p := NewPointers(150)
	want := Pointers{
		HandSecond: {Width: 4, Length: 110, Color: graphics.ColorWhite},
		HandMinute: {Width: 5, Length: 90, Color: ColorLightGray},
		HandHour:   {Width: 6, Length: 70, Color: graphics.ColorRed},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("NewPointers(150) mismatch (-want +got):\n%s", diff)
	}
	if tip := p.Of(HandHour).Tip(); tip != (graphics.Offset{X: 0, Y: -70}) {
		t.Errorf("hour tip = %v, want (0, -70)", tip)
	}
}

func TestNewPointersClampOnSmallDials(t *testing.T) {
	p := NewPointers(50)
	if got := p.Of(HandSecond).Length; got != 10 {
		t.Errorf("second length = %v, want 10", got)
	}
	for _, h := range []Hand{HandMinute, HandHour} {
		ptr := p.Of(h)
		if ptr.Length != 0 {
			t.Errorf("%s length = %v, want 0", h, ptr.Length)
		}
		if ptr.Visible() {
			t.Errorf("%s pointer should not be visible", h)
		}
	}
	if got := p.Of(Hand(-1)); got != (Pointer{}) {
		t.Errorf("Of(invalid) = %+v, want zero", got)
	}
}

func TestHandPeriodsAndNames(t *testing.T) {
	tests := []struct {
		hand   Hand
		name   string
		period string
	}{
		{HandSecond, "seconds", "1m0s"},
		{HandMinute, "minutes", "1h0m0s"},
		{HandHour, "hours", "12h0m0s"},
	}
	for _, tt := range tests {
		if got := tt.hand.String(); got != tt.name {
			t.Errorf("Hand(%d).String() = %q, want %q", tt.hand, got, tt.name)
		}
		if got := tt.hand.Period().String(); got != tt.period {
			t.Errorf("%s period = %s, want %s", tt.hand, got, tt.period)
		}
	}
	if got := Hands; got != [3]Hand{HandHour, HandMinute, HandSecond} {
		t.Errorf("paint order = %v", got)
	}
}

func TestPlaceNumerals(t *testing.T) {
	d, _ := NewDial(graphics.Size{Width: 300, Height: 300})
	numerals := PlaceNumerals(d, 20)
	approx := cmpopts.EquateApprox(0, 1e-6)

	want := map[int]graphics.Offset{
		12: {X: 150, Y: 20},
		3:  {X: 280, Y: 150},
		6:  {X: 150, Y: 280},
		9:  {X: 20, Y: 150},
	}
	for i, n := range numerals {
		if n.Value != i+1 {
			t.Fatalf("numerals[%d].Value = %d, want %d", i, n.Value, i+1)
		}
		if n.Distance != 130 {
			t.Errorf("numeral %d distance = %v, want 130", n.Value, n.Distance)
		}
		if pos, ok := want[n.Value]; ok {
			if diff := cmp.Diff(pos, n.Center, approx); diff != "" {
				t.Errorf("numeral %d center mismatch (-want +got):\n%s", n.Value, diff)
			}
		}
	}
	if got := numerals[11].Label(); got != "12" {
		t.Errorf("Label() = %q, want %q", got, "12")
	}
	if got := numerals[11].Angle; got != 0 {
		t.Errorf("12 o'clock angle = %v, want 0", got)
	}
}

func TestPlaceNumeralsTinyDial(t *testing.T) {
	d, _ := NewDial(graphics.Size{Width: 20, Height: 20})
	for _, n := range PlaceNumerals(d, 20) {
		if n.Distance != 0 || n.Center != d.Center {
			t.Fatalf("numeral %d should collapse to the center, got %+v", n.Value, n)
		}
	}
}
