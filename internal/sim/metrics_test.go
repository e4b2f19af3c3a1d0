package sim

import "testing"

func TestPace(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   float64
		collected int
		expected  float64
		defined   bool
	}{
		{"no pickups yet", 10.0, 0, 0, false},
		{"fresh session", 0, 0, 0, false},
		{"two stars in ten seconds", 10.0, 2, 5.0, true},
		{"one star", 3.5, 1, 3.5, true},
		{"instant pickup", 0, 1, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := Metrics{Elapsed: tc.elapsed, Collected: tc.collected}
			pace, ok := m.Pace()
			if ok != tc.defined {
				t.Fatalf("Pace() defined = %v, expected %v", ok, tc.defined)
			}
			if ok && !almostEqual(pace, tc.expected) {
				t.Errorf("Pace() = %f, expected %f", pace, tc.expected)
			}
		})
	}
}

func TestObserverFunc(t *testing.T) {
	var got Metrics
	o := ObserverFunc(func(m Metrics) { got = m })

	o.ObserveMetrics(Metrics{Elapsed: 1.5, Collected: 3, Distance: 42})

	if got.Collected != 3 || got.Elapsed != 1.5 || got.Distance != 42 {
		t.Errorf("observer received %+v", got)
	}
}
