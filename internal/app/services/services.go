// Package services holds the application services used by the controllers
// and the console menu. CourseService owns the course table and serves
// loading, listing and lookups.
package services
