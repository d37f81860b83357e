package models

// Course represents a single catalog entry loaded from the course file.
type Course struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
