package core

import "testing"

func TestFRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges horizontal (no overlap)",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertical (no overlap)",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "touching corner (no overlap)",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewFRect(0, 0, 20, 20),
			b:        NewFRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "fractional gap",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10.01, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestFRectEdges(t *testing.T) {
	r := NewFRect(5.5, 10, 20, 15.25)

	if r.Right() != 25.5 {
		t.Errorf("Right() = %f, expected 25.5", r.Right())
	}
	if r.Bottom() != 25.25 {
		t.Errorf("Bottom() = %f, expected 25.25", r.Bottom())
	}
}

func TestFRectCell(t *testing.T) {
	r := NewFRect(5.7, 10.2, 3.9, 2.1)
	cell := r.Cell()

	if cell.X != 5 || cell.Y != 10 {
		t.Errorf("Cell() position = (%d, %d), expected (5, 10)", cell.X, cell.Y)
	}
	if cell.W != 3 || cell.H != 2 {
		t.Errorf("Cell() size = (%d, %d), expected (3, 2)", cell.W, cell.H)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
