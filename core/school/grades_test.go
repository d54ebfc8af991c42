package school

import "testing"

func TestGradeFor(t *testing.T) {
	tests := []struct {
		name  string
		marks float64
		want  Grade
	}{
		{name: "zero", marks: 0, want: Grade{"F", "error"}},
		{name: "just below D", marks: 49.9, want: Grade{"F", "error"}},
		{name: "D boundary", marks: 50, want: Grade{"D", "warning"}},
		{name: "just below C", marks: 59.9, want: Grade{"D", "warning"}},
		{name: "C boundary", marks: 60, want: Grade{"C", "warning"}},
		{name: "just below B", marks: 69.9, want: Grade{"C", "warning"}},
		{name: "B boundary", marks: 70, want: Grade{"B", "info"}},
		{name: "just below A", marks: 79.9, want: Grade{"B", "info"}},
		{name: "A boundary", marks: 80, want: Grade{"A", "success"}},
		{name: "just below A+", marks: 89.9, want: Grade{"A", "success"}},
		{name: "A+ boundary", marks: 90, want: Grade{"A+", "success"}},
		{name: "full marks", marks: 100, want: Grade{"A+", "success"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeFor(tt.marks); got != tt.want {
				t.Errorf("GradeFor(%v) = %v, want %v", tt.marks, got, tt.want)
			}
		})
	}
}

// letter grades must be non-decreasing as marks increase
func TestGradeForMonotonic(t *testing.T) {
	order := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4, "A+": 5}

	prev := -1
	for m := 0.0; m <= 100; m += 0.5 {
		rank, ok := order[GradeFor(m).Letter]
		if !ok {
			t.Fatalf("GradeFor(%v) returned unknown letter %q", m, GradeFor(m).Letter)
		}
		if rank < prev {
			t.Fatalf("GradeFor(%v) rank %d < previous %d", m, rank, prev)
		}
		prev = rank
	}
}
