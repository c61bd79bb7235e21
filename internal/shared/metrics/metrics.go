package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	recommendRequestedTotal atomic.Uint64
	recommendCompletedTotal atomic.Uint64
	recommendFailedTotal    atomic.Uint64

	recommendDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncRecommendRequested increments the requested counter.
func IncRecommendRequested() {
	recommendRequestedTotal.Add(1)
}

// IncRecommendCompleted increments the completed counter.
func IncRecommendCompleted() {
	recommendCompletedTotal.Add(1)
}

// IncRecommendFailed increments the failed counter.
func IncRecommendFailed() {
	recommendFailedTotal.Add(1)
}

// ObserveRecommendDurationMs records a recommendation pipeline duration in milliseconds.
func ObserveRecommendDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	recommendDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommend_requested_total", "Total recommendation requests received", recommendRequestedTotal.Load())
	writeCounter(&buf, "recommend_completed_total", "Total recommendation requests completed", recommendCompletedTotal.Load())
	writeCounter(&buf, "recommend_failed_total", "Total recommendation requests failed", recommendFailedTotal.Load())
	writeHistogram(&buf, "recommend_duration_ms", "Recommendation pipeline duration in milliseconds", recommendDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
