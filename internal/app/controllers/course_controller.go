package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/app/models/dto"
	"github.com/yigit/courseplanner/internal/coursetable"
	"github.com/yigit/courseplanner/internal/middleware"
	"github.com/yigit/courseplanner/internal/pkg/helpers"
)

// CourseService is the course store served by CourseController
type CourseService interface {
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	LoadDataStructure(ctx context.Context) (int, error)
	Stats() coursetable.Stats
}

// CourseController handles course-related requests
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists every course sorted by code
// @Summary List courses
// @Description Lists all loaded courses in ascending code order. Paginated when page or size is given.
// @Tags courses
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.CourseListResponse{}
	if page, size, ok := helpers.ParsePaginationParams(ctx); ok {
		start, end := helpers.CalculateSliceIndices(page, size, len(courses))
		pagination := helpers.NewPaginationInfo(len(courses), page, size)
		response.PaginationInfo = &pagination
		courses = courses[start:end]
	}
	response.Courses = dto.FromCourses(courses)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}

// GetCourseByCode retrieves a course by its code
// @Summary Get course by code
// @Description Retrieves the first loaded course whose code matches exactly
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourse(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromCourse(*course)))
}

// GetStats reports bucket usage of the course table
// @Summary Course table statistics
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=coursetable.Stats}
// @Router /courses/stats [get]
func (c *CourseController) GetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.courseService.Stats()))
}

// LoadCourses inserts every course of the configured courses file
// @Summary Load courses
// @Description Reads the configured courses file and inserts every course. Loading again stores duplicates.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LoadCoursesResponse}
// @Failure 503 {object} dto.APIResponse "Course source unavailable"
// @Router /courses/load [post]
func (c *CourseController) LoadCourses(ctx *gin.Context) {
	loaded, err := c.courseService.LoadDataStructure(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoadCoursesResponse{
		Loaded: loaded,
		Stats:  c.courseService.Stats(),
	}))
}
