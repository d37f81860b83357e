package dto

import (
	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/coursetable"
)

// CourseResponse represents a single course
type CourseResponse struct {
	Code string `json:"code" example:"CSCI200"`
	Name string `json:"name" example:"Data Structures"`
}

// CourseListResponse represents a sorted list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
	*PaginationInfo
}

// LoadCoursesResponse reports the outcome of a load
type LoadCoursesResponse struct {
	Loaded int               `json:"loaded"`
	Stats  coursetable.Stats `json:"stats"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course models.Course) CourseResponse {
	return CourseResponse{
		Code: course.Code,
		Name: course.Name,
	}
}

// FromCourses converts courses preserving their order
func FromCourses(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, FromCourse(course))
	}
	return responses
}
