package models

// DefaultCoursesFile is the course file read when no path is configured
const DefaultCoursesFile = "ProjectTwoProgramInput.csv"

// ByCode orders courses ascending by code
type ByCode []Course

func (c ByCode) Len() int           { return len(c) }
func (c ByCode) Less(i, j int) bool { return c[i].Code < c[j].Code }
func (c ByCode) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }
