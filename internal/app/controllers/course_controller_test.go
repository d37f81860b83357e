package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseplanner/internal/app/controllers"
	"github.com/yigit/courseplanner/internal/app/models"
	"github.com/yigit/courseplanner/internal/app/routes"
	"github.com/yigit/courseplanner/internal/coursetable"
	"github.com/yigit/courseplanner/internal/pkg/apperrors"
)

// fakeCourseService serves a table filled on load
type fakeCourseService struct {
	table   *coursetable.Table
	source  []models.Course
	loadErr error
}

func (s *fakeCourseService) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	result := s.table.Lookup(courseID)
	if !result.OK() {
		return nil, apperrors.NewCourseNotFoundError(courseID)
	}
	return &result.Course, nil
}

func (s *fakeCourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.table.List(), nil
}

func (s *fakeCourseService) LoadDataStructure(ctx context.Context) (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	for _, c := range s.source {
		s.table.Insert(c)
	}
	return len(s.source), nil
}

func (s *fakeCourseService) Stats() coursetable.Stats {
	return s.table.Stats()
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newRouter(t *testing.T, service *fakeCourseService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router, controllers.NewCourseController(service))
	return router
}

func newLoadedService(t *testing.T) *fakeCourseService {
	t.Helper()
	table, err := coursetable.New(5)
	require.NoError(t, err)
	service := &fakeCourseService{table: table, source: []models.Course{
		{Code: "CS101", Name: "Intro"},
		{Code: "MA201", Name: "Calc"},
		{Code: "CS2", Name: "DS"},
	}}
	_, err = service.LoadDataStructure(context.Background())
	require.NoError(t, err)
	return service
}

func do(t *testing.T, router *gin.Engine, method, target string) (int, envelope) {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestGetAllCourses(t *testing.T) {
	router := newRouter(t, newLoadedService(t))

	status, body := do(t, router, http.MethodGet, "/api/v1/courses")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"courses":[
		{"code":"CS101","name":"Intro"},
		{"code":"CS2","name":"DS"},
		{"code":"MA201","name":"Calc"}
	]}`, string(body.Data))
}

func TestGetAllCoursesPaginated(t *testing.T) {
	router := newRouter(t, newLoadedService(t))

	status, body := do(t, router, http.MethodGet, "/api/v1/courses?page=2&size=2")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{
		"courses":[{"code":"MA201","name":"Calc"}],
		"currentPage":2,"totalPages":2,"pageSize":2,"totalItems":3
	}`, string(body.Data))
}

func TestGetAllCoursesPagePastTheEnd(t *testing.T) {
	router := newRouter(t, newLoadedService(t))

	for _, target := range []string{
		"/api/v1/courses?page=9&size=2",
		"/api/v1/courses?page=92233720368547758&size=200",
		"/api/v1/courses?page=9223372036854775807&size=1",
	} {
		status, body := do(t, router, http.MethodGet, target)
		require.Equal(t, http.StatusOK, status, target)
		require.Nil(t, body.Error, target)

		var list struct {
			Courses    []json.RawMessage `json:"courses"`
			TotalItems int               `json:"totalItems"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &list), target)
		require.Empty(t, list.Courses, target)
		require.Equal(t, 3, list.TotalItems, target)
	}
}

func TestGetCourseByCode(t *testing.T) {
	router := newRouter(t, newLoadedService(t))

	t.Run("Found", func(t *testing.T) {
		status, body := do(t, router, http.MethodGet, "/api/v1/courses/MA201")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"code":"MA201","name":"Calc"}`, string(body.Data))
	})

	t.Run("NotFound", func(t *testing.T) {
		status, body := do(t, router, http.MethodGet, "/api/v1/courses/CS999")
		require.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, body.Error)
		require.Equal(t, "RES_001", body.Error.Code)
		require.Equal(t, "Course with ID CS999 not found.", body.Error.Message)
		require.Equal(t, "CS999", body.Error.Details["courseId"])
	})
}

func TestGetStats(t *testing.T) {
	router := newRouter(t, newLoadedService(t))

	status, body := do(t, router, http.MethodGet, "/api/v1/courses/stats")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"buckets":5,"occupiedBuckets":2,"courses":3,"deepestBucket":2}`, string(body.Data))
}

func TestLoadCourses(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := newLoadedService(t)
		router := newRouter(t, service)

		status, body := do(t, router, http.MethodPost, "/api/v1/courses/load")
		require.Equal(t, http.StatusOK, status)
		require.JSONEq(t, `{"loaded":3,"stats":{"buckets":5,"occupiedBuckets":2,"courses":6,"deepestBucket":4}}`, string(body.Data))
	})

	t.Run("SourceUnavailable", func(t *testing.T) {
		service := newLoadedService(t)
		service.loadErr = apperrors.ErrSourceUnavailable
		router := newRouter(t, service)

		status, body := do(t, router, http.MethodPost, "/api/v1/courses/load")
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.Equal(t, "SRV_002", body.Error.Code)
	})
}

func TestHealth(t *testing.T) {
	status, body := do(t, newRouter(t, newLoadedService(t)), http.MethodGet, "/api/v1/health")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"ok"}`, string(body.Data))
}
