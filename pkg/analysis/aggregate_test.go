package analysis

import (
	"math"
	"testing"
)

func TestVelocity(t *testing.T) {
	posed := func(p *Point) FrameRecord {
		return FrameRecord{PoseFound: true, RightWrist: p}
	}

	tests := []struct {
		name   string
		prev   FrameRecord
		curr   FrameRecord
		want   float64
		wantOK bool
	}{
		{"moving", posed(&Point{0.5, 0.5}), posed(&Point{0.53, 0.54}), 1.5, true},
		{"stationary", posed(&Point{0.5, 0.5}), posed(&Point{0.5, 0.5}), 0, true},
		{"prev without pose", FrameRecord{}, posed(&Point{0.5, 0.5}), 0, false},
		{"curr without pose", posed(&Point{0.5, 0.5}), FrameRecord{RightWrist: &Point{0.6, 0.6}}, 0, false},
		{"missing wrist", posed(nil), posed(&Point{0.5, 0.5}), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Velocity(tc.prev, tc.curr, 30)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Velocity() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalizeFPS(t *testing.T) {
	if got := NormalizeFPS(0); got != DefaultFPS {
		t.Errorf("NormalizeFPS(0) = %v, want %v", got, DefaultFPS)
	}
	if got := NormalizeFPS(-1); got != DefaultFPS {
		t.Errorf("NormalizeFPS(-1) = %v, want %v", got, DefaultFPS)
	}
	if got := NormalizeFPS(59.94); got != 59.94 {
		t.Errorf("NormalizeFPS(59.94) = %v", got)
	}
}

func TestAggregate(t *testing.T) {
	measured := func(l, r float64, wrist Point) FrameRecord {
		return FrameRecord{PoseFound: true, LeftArmAngle: float(l), RightArmAngle: float(r), RightWrist: &wrist}
	}

	records := []FrameRecord{
		measured(179, 179, Point{0.1, 0.1}), //first frame is never a curr
		measured(100, 150, Point{0.1, 0.1}),
		{PoseFound: true},
		measured(178, 120, Point{0.2, 0.1}), //prev has no angles nor wrist
		measured(110, 165, Point{0.25, 0.1}),
	}

	m := Aggregate(records, 10)

	if m.MaxLeftExtension != 110 {
		t.Errorf("MaxLeftExtension = %v, want 110", m.MaxLeftExtension)
	}
	if m.MaxRightExtension != 165 {
		t.Errorf("MaxRightExtension = %v, want 165", m.MaxRightExtension)
	}
	if math.Abs(m.MaxWristVelocity-0.5) > 1e-9 {
		t.Errorf("MaxWristVelocity = %v, want 0.5", m.MaxWristVelocity)
	}
}

func TestAggregateShortClips(t *testing.T) {
	if m := Aggregate(nil, 30); m != (ClipMetrics{}) {
		t.Errorf("Aggregate(nil) = %+v", m)
	}

	one := []FrameRecord{{PoseFound: true, LeftArmAngle: float(170), RightArmAngle: float(170), RightWrist: &Point{0.5, 0.5}}}
	if m := Aggregate(one, 30); m != (ClipMetrics{}) {
		t.Errorf("Aggregate(single) = %+v, want zero metrics", m)
	}
}

func TestFoldIsMonotonic(t *testing.T) {
	m := ClipMetrics{MaxLeftExtension: 150, MaxRightExtension: 170, MaxWristVelocity: 3}
	prev := FrameRecord{PoseFound: true, LeftArmAngle: float(10), RightArmAngle: float(10), RightWrist: &Point{0.5, 0.5}}
	curr := FrameRecord{PoseFound: true, LeftArmAngle: float(20), RightArmAngle: float(20), RightWrist: &Point{0.5, 0.5}}

	if got := m.Fold(prev, curr, 30); got != m {
		t.Fatalf("Fold() = %+v, want unchanged %+v", got, m)
	}
}
