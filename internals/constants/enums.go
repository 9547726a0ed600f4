// file: internals/constants/enums.go
package constants

// Enumerated domains for the two-school calendar.

const (
	SchoolWLHS = "wlhs"
	SchoolWVHS = "wvhs"
)

var Schools = []string{SchoolWLHS, SchoolWVHS}

func ValidSchool(s string) bool {
	return s == SchoolWLHS || s == SchoolWVHS
}

var GradeLevels = []int{9, 10, 11, 12}

func ValidGradeLevel(g int) bool {
	for _, v := range GradeLevels {
		if g == v {
			return true
		}
	}
	return false
}

const (
	ScheduleA = "A"
	ScheduleB = "B"
)

func ValidSchedule(s string) bool {
	return s == ScheduleA || s == ScheduleB
}
