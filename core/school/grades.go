package school

// Grade is a letter grade with the display class used to style it.
type Grade struct {
	Letter string
	Class  string
}

var gradeScale = []struct {
	min   float64
	grade Grade
}{
	{90, Grade{"A+", "success"}},
	{80, Grade{"A", "success"}},
	{70, Grade{"B", "info"}},
	{60, Grade{"C", "warning"}},
	{50, Grade{"D", "warning"}},
}

// GradeFor maps a numeric mark to its letter grade. Boundaries are inclusive:
// 90 is already an A+, 49.9 is still an F.
func GradeFor(marks float64) Grade {
	for _, s := range gradeScale {
		if marks >= s.min {
			return s.grade
		}
	}
	return Grade{"F", "error"}
}
