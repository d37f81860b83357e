package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/courseplanner/internal/app/controllers"
	"github.com/yigit/courseplanner/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, courseController *controllers.CourseController) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/stats", courseController.GetStats)
		courses.GET("/:code", courseController.GetCourseByCode)
		courses.POST("/load", courseController.LoadCourses)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
