package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yigit/courseplanner/internal/coursetable"
)

var (
	courseServicePrometheusMetrics sync.Once

	coursesLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "courseplanner",
			Subsystem: "course_table",
			Name:      "courses_loaded_total",
			Help:      "Number of courses inserted into the course table",
		})
	courseLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "courseplanner",
			Subsystem: "course_table",
			Name:      "lookups_total",
			Help:      "Number of course lookups, by outcome",
		},
		[]string{"outcome"})
	tableOccupiedBuckets = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "courseplanner",
			Subsystem: "course_table",
			Name:      "occupied_buckets",
			Help:      "Number of buckets holding at least one course",
		})
	tableDeepestBucket = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "courseplanner",
			Subsystem: "course_table",
			Name:      "deepest_bucket_courses",
			Help:      "Number of courses in the fullest bucket, which grows with the number of codes sharing a length",
		})
)

func registerMetrics() {
	courseServicePrometheusMetrics.Do(func() {
		prometheus.MustRegister(coursesLoaded)
		prometheus.MustRegister(courseLookups)
		prometheus.MustRegister(tableOccupiedBuckets)
		prometheus.MustRegister(tableDeepestBucket)
	})
}

func observeStats(stats coursetable.Stats) {
	tableOccupiedBuckets.Set(float64(stats.OccupiedBuckets))
	tableDeepestBucket.Set(float64(stats.DeepestBucket))
}
