package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", Rect{0, 0, 50, 50}, Rect{40, 0, 50, 50}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
		{"shared vertical edge", Rect{0, 0, 50, 50}, Rect{50, 0, 50, 50}, false},
		{"shared horizontal edge", Rect{0, 0, 50, 50}, Rect{0, 50, 50, 50}, false},
		{"corner touch", Rect{0, 0, 50, 50}, Rect{50, 50, 50, 50}, false},
		{"separate", Rect{0, 0, 10, 10}, Rect{100, 100, 10, 10}, false},
		{"fractional overlap", Rect{0, 0, 50, 50}, Rect{49.5, 0, 50, 50}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a), "intersection must be symmetric")
		})
	}
}

func TestIntersects_Self(t *testing.T) {
	rects := []Rect{
		{0, 0, 50, 50},
		{-20, 13.5, 1, 1},
		{100, 100, 0.25, 3},
	}
	for _, r := range rects {
		assert.True(t, Intersects(r, r), "%v should intersect itself", r)
	}

	// Zero area never intersects anything, including itself
	assert.False(t, Intersects(Rect{5, 5, 0, 10}, Rect{5, 5, 0, 10}))
}

func TestRect_ContainsPoint(t *testing.T) {
	r := Rect{10, 10, 20, 20}

	assert.True(t, r.ContainsPoint(Point{10, 10}), "top-left corner is inside")
	assert.True(t, r.ContainsPoint(Point{29.9, 29.9}))
	assert.False(t, r.ContainsPoint(Point{30, 15}), "right edge is outside")
	assert.False(t, r.ContainsPoint(Point{15, 30}), "bottom edge is outside")
	assert.False(t, r.ContainsPoint(Point{9, 15}))
}

func TestRect_Helpers(t *testing.T) {
	r := Rect{0, 0, 50, 40}

	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, 40.0, r.Bottom())
	assert.Equal(t, Point{25, 20}, r.Center())
	assert.Equal(t, Rect{5, -5, 50, 40}, r.Translate(5, -5))
	assert.Equal(t, Rect{-2, -2, 54, 44}, r.Inflate(2))
}

func TestVec_Normalize(t *testing.T) {
	v, ok := Vec{3, 4}.Normalize()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, 0.8, v.Y, 1e-9)

	_, ok = Vec{}.Normalize()
	assert.False(t, ok)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, Distance(Point{7, 7}, Point{7, 7}))
}

func TestLineOfSightBlocked(t *testing.T) {
	wall := Rect{100, 0, 50, 200}

	tests := []struct {
		name      string
		from, to  Point
		obstacles []Rect
		want      bool
	}{
		{"no obstacles", Point{0, 50}, Point{300, 50}, nil, false},
		{"straight through wall", Point{0, 50}, Point{300, 50}, []Rect{wall}, true},
		{"passes below wall", Point{0, 250}, Point{300, 250}, []Rect{wall}, false},
		{"stops before wall", Point{0, 50}, Point{99, 50}, []Rect{wall}, false},
		{"ends on wall edge", Point{0, 50}, Point{100, 50}, []Rect{wall}, true},
		{"diagonal clipping corner", Point{90, 210}, Point{110, 190}, []Rect{wall}, true},
		{"diagonal missing corner", Point{90, 215}, Point{105, 205}, []Rect{wall}, false},
		{"vertical segment beside wall", Point{160, 0}, Point{160, 300}, []Rect{wall}, false},
		{"second obstacle blocks", Point{0, 50}, Point{90, 50}, []Rect{wall, {40, 40, 10, 10}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineOfSightBlocked(tt.from, tt.to, tt.obstacles))
		})
	}
}

func TestSegmentTouchesRect_DegenerateSegment(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	assert.True(t, SegmentTouchesRect(Point{5, 5}, Point{5, 5}, r))
	assert.False(t, SegmentTouchesRect(Point{15, 5}, Point{15, 5}, r))
}
