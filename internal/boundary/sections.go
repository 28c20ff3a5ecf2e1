package boundary

import "fmt"

// Section is a half-open run [Start, End) along one axis.
type Section struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End-Start.
func (s Section) Len() int {
	return s.End - s.Start
}

// Empty reports whether the section covers no index.
func (s Section) Empty() bool {
	return s.End <= s.Start
}

// TrimEnd returns the section with n indices removed from its end.
// The result may be empty.
func (s Section) TrimEnd(n int) Section {
	return Section{Start: s.Start, End: s.End - n}
}

func (s Section) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Sections scans profile for runs of nonzero values.
//
// The scan starts at index 1; index 0 is never part of a run. A run opens at
// a nonzero value and closes at the next value that is exactly zero. There is
// no tolerance: convolution noise keeps a run open, only true zeros close
// it. A run still open when the profile ends is discarded.
func Sections(profile []float64) []Section {
	var sections []Section
	start := -1
	for i := 1; i < len(profile); i++ {
		switch {
		case start != -1 && profile[i] == 0:
			sections = append(sections, Section{Start: start, End: i})
			start = -1
		case start == -1 && profile[i] != 0:
			start = i
		}
	}
	return sections
}

// Unterminated reports whether the profile ends inside an open run, i.e.
// whether Sections dropped a trailing run.
func Unterminated(profile []float64) bool {
	open := false
	for i := 1; i < len(profile); i++ {
		switch {
		case open && profile[i] == 0:
			open = false
		case !open && profile[i] != 0:
			open = true
		}
	}
	return open
}
