package session

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Metrics holds running counts and average durations of the pipeline stages.
type Metrics struct {
	mu sync.Mutex

	Repairs         int64
	Assemblies      int64
	Edits           int64
	RejectedEdits   int64
	AvgRepairTime   time.Duration
	AvgAssembleTime time.Duration
	AvgEditTime     time.Duration
	PeakGoroutines  int
	PeakMemoryUsage uint64
	StartTime       time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// MetricsSnapshot is a copy of Metrics safe to read without the lock.
type MetricsSnapshot struct {
	Repairs         int64         `json:"repairs"`
	Assemblies      int64         `json:"assemblies"`
	Edits           int64         `json:"edits"`
	RejectedEdits   int64         `json:"rejectedEdits"`
	AvgRepairTime   time.Duration `json:"avgRepairTime"`
	AvgAssembleTime time.Duration `json:"avgAssembleTime"`
	AvgEditTime     time.Duration `json:"avgEditTime"`
	PeakGoroutines  int           `json:"peakGoroutines"`
	PeakMemoryUsage uint64        `json:"peakMemoryUsage"`
	Uptime          time.Duration `json:"uptime"`
}

func runningAvg(avg time.Duration, n int64, d time.Duration) time.Duration {
	return (avg*time.Duration(n-1) + d) / time.Duration(n)
}

func (m *Metrics) TrackRepair(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Repairs++
	m.AvgRepairTime = runningAvg(m.AvgRepairTime, m.Repairs, d)
}

func (m *Metrics) TrackAssemble(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Assemblies++
	m.AvgAssembleTime = runningAvg(m.AvgAssembleTime, m.Assemblies, d)
}

func (m *Metrics) TrackEdit(d time.Duration, rejected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rejected {
		m.RejectedEdits++
		return
	}
	m.Edits++
	m.AvgEditTime = runningAvg(m.AvgEditTime, m.Edits, d)
}

// UpdateSystemMetrics records peak goroutine count and heap allocation.
func (m *Metrics) UpdateSystemMetrics() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	goroutines := runtime.NumGoroutine()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.PeakGoroutines = max(m.PeakGoroutines, goroutines)
	m.PeakMemoryUsage = max(m.PeakMemoryUsage, ms.Alloc)
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		Repairs:         m.Repairs,
		Assemblies:      m.Assemblies,
		Edits:           m.Edits,
		RejectedEdits:   m.RejectedEdits,
		AvgRepairTime:   m.AvgRepairTime,
		AvgAssembleTime: m.AvgAssembleTime,
		AvgEditTime:     m.AvgEditTime,
		PeakGoroutines:  m.PeakGoroutines,
		PeakMemoryUsage: m.PeakMemoryUsage,
		Uptime:          time.Since(m.StartTime),
	}
}

func (m *Metrics) LogMetrics() {
	s := m.Snapshot()
	log.Printf("=== Layout Metrics ===")
	log.Printf("Uptime: %v", s.Uptime)
	log.Printf("Repairs: %d (avg %v)", s.Repairs, s.AvgRepairTime)
	log.Printf("Assemblies: %d (avg %v)", s.Assemblies, s.AvgAssembleTime)
	log.Printf("Edits: %d applied, %d rejected (avg %v)", s.Edits, s.RejectedEdits, s.AvgEditTime)
	log.Printf("Peak goroutines: %d", s.PeakGoroutines)
	log.Printf("Peak memory usage: %d bytes", s.PeakMemoryUsage)
}

// StartReporting logs the metrics every interval until stop is closed.
func (m *Metrics) StartReporting(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.UpdateSystemMetrics()
				m.LogMetrics()
			case <-stop:
				return
			}
		}
	}()
}
