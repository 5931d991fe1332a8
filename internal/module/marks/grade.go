package marks

// Weighting of the two exams in the final result.
const (
	midtermWeight = 0.4
	finalWeight   = 0.6
)

// GradeFromMarks maps a 0–100 marks value to a letter grade and grade point.
func GradeFromMarks(marks int) (grade string, point float64) {
	switch {
	case marks >= 80:
		return "A+", 4.0
	case marks >= 60:
		return "A", 3.5
	case marks >= 50:
		return "B", 3.0
	case marks >= 45:
		return "C", 2.5
	case marks >= 40:
		return "D", 2.0
	default:
		return "F", 0.0
	}
}

// totalMarks combines midterm and final exam marks into the course total.
func totalMarks(midterm, final int) int {
	return int(float64(midterm)*midtermWeight + float64(final)*finalWeight)
}
