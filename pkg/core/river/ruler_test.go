package river

import (
	"math/rand"
	"testing"
)

func TestRulerSetTab(t *testing.T) {
	type op struct{ i, x int }
	tests := map[string]struct {
		ops  []op
		want string
	}{
		"append in order": {
			ops:  []op{{0, 10}, {1, 20}, {2, 30}},
			want: "Ruler{10,20,30}",
		},
		"later stop pushed forward": {
			ops:  []op{{0, 10}, {1, 20}, {2, 30}, {1, 25}},
			want: "Ruler{10,25,35}",
		},
		"first stop pushes all": {
			ops:  []op{{0, 10}, {1, 20}, {0, 40}},
			want: "Ruler{40,50}",
		},
		"smaller position ignored": {
			ops:  []op{{0, 10}, {1, 20}, {1, 5}, {0, 0}},
			want: "Ruler{10,20}",
		},
		"empty": {
			want: "Ruler{}",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := &Ruler{}
			for _, o := range tt.ops {
				r.SetTab(o.i, o.x)
			}
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRulerMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := &Ruler{}
	var prev []int

	for step := 0; step < 500; step++ {
		i := rng.Intn(r.Len() + 1)
		r.SetTab(i, rng.Intn(400))

		if r.Len() < len(prev) {
			t.Fatalf("step %d: ruler shrank from %d to %d stops", step, len(prev), r.Len())
		}
		for j, old := range prev {
			if got := r.Tab(j); got < old {
				t.Fatalf("step %d: Tab(%d) = %d, regressed below %d", step, j, got, old)
			}
		}
		prev = prev[:0]
		for j := 0; j < r.Len(); j++ {
			prev = append(prev, r.Tab(j))
		}
	}
}

func TestRulerTabOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Tab(0) on empty ruler should panic")
		}
	}()
	(&Ruler{}).Tab(0)
}

func TestRulerSetTabSkippingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetTab(2, x) on empty ruler should panic")
		}
	}()
	(&Ruler{}).SetTab(2, 10)
}
