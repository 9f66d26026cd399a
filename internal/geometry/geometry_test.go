package geometry

import (
	"math"
	"testing"
)

func TestFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []Vec2
		want   AABB
	}{
		{
			name:   "empty",
			points: nil,
			want:   AABB{},
		},
		{
			name:   "single point",
			points: []Vec2{{X: 3, Y: -2}},
			want:   AABB{MinX: 3, MinY: -2, MaxX: 3, MaxY: -2},
		},
		{
			name:   "two points unordered",
			points: []Vec2{{X: 10, Y: 1}, {X: -4, Y: 7}},
			want:   AABB{MinX: -4, MinY: 1, MaxX: 10, MaxY: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPoints(tt.points...)
			if got != tt.want {
				t.Errorf("FromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoosenedContains(t *testing.T) {
	b := NewAABB(0, 0, 100, 100)
	loose := b.Loosened(30)

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{X: 50, Y: 50}, true},
		{"on loosened edge", Vec2{X: 130, Y: 50}, true},
		{"within overshoot", Vec2{X: 129, Y: 50}, true},
		{"past overshoot", Vec2{X: 131, Y: 50}, false},
		{"negative within overshoot", Vec2{X: -29, Y: 0}, true},
		{"negative past overshoot", Vec2{X: -31, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loose.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(5, -5, 20, 8)
	got := a.Union(b)
	want := NewAABB(0, -5, 20, 10)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

func TestDistLerp(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}
	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %v, want 5", d)
	}
	mid := a.Lerp(b, 0.5)
	if mid != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Lerp() = %+v", mid)
	}
}
