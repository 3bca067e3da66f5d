package layout

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside", Point{400, 300}, Point{400, 300}},
		{"left of canvas", Point{-20, 300}, Point{50, 300}},
		{"right of canvas", Point{900, 300}, Point{750, 300}},
		{"above canvas", Point{400, -5}, Point{400, 50}},
		{"below canvas", Point{400, 700}, Point{400, 550}},
		{"both axes", Point{-100, 10000}, Point{50, 550}},
		{"on the margin", Point{50, 550}, Point{50, 550}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.in, 800, 600, 50)
			if got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampZeroMargin(t *testing.T) {
	got := Clamp(Point{-1, 601}, 800, 600, 0)
	if got != (Point{0, 600}) {
		t.Errorf("Clamp() = %v, want {0 600}", got)
	}
}
