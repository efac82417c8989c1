package prometheus

import (
	"time"

	"catalog-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Domain operation metrics
	ProductOperationsCounter *prometheus.CounterVec
	InquiryOperationsCounter *prometheus.CounterVec

	// Notification metrics
	NotificationSentCounter   prometheus.Counter
	NotificationFailedCounter prometheus.Counter

	// Upload metrics
	UploadedFilesCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of admin login attempts",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of failed admin login attempts",
		},
	)

	ProductOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	InquiryOperationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_inquiry_operations_total",
			Help: "Total number of inquiry operations",
		},
		[]string{"operation"},
	)

	NotificationSentCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_notifications_sent_total",
			Help: "Total number of inquiry notifications delivered",
		},
	)

	NotificationFailedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_notifications_failed_total",
			Help: "Total number of inquiry notifications that failed to deliver",
		},
	)

	UploadedFilesCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_uploaded_files_total",
			Help: "Total number of stored upload files",
		},
	)
}

// ObserveHttpRequest records one handled HTTP request
func ObserveHttpRequest(method, path, status string, duration time.Duration) {
	if HttpRequestsTotal == nil || HttpRequestDuration == nil {
		return
	}
	HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAuthAttempt increments the login attempt counter
func RecordAuthAttempt() {
	if AuthAttemptsCounter != nil {
		AuthAttemptsCounter.Inc()
	}
}

// RecordAuthError increments the failed login counter
func RecordAuthError() {
	if AuthErrorsCounter != nil {
		AuthErrorsCounter.Inc()
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	if ProductOperationsCounter != nil {
		ProductOperationsCounter.WithLabelValues(operation).Inc()
	}
}

// RecordInquiryOperation increments the counter for inquiry operations
func RecordInquiryOperation(operation string) {
	if InquiryOperationsCounter != nil {
		InquiryOperationsCounter.WithLabelValues(operation).Inc()
	}
}

// RecordNotificationSent increments the delivered notification counter
func RecordNotificationSent() {
	if NotificationSentCounter != nil {
		NotificationSentCounter.Inc()
	}
}

// RecordNotificationFailed increments the failed notification counter
func RecordNotificationFailed() {
	if NotificationFailedCounter != nil {
		NotificationFailedCounter.Inc()
	}
}

// RecordUploadedFiles adds n to the stored upload counter
func RecordUploadedFiles(n int) {
	if UploadedFilesCounter != nil {
		UploadedFilesCounter.Add(float64(n))
	}
}
