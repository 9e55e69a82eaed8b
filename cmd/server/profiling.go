package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

// StartProfiling starts the pprof server on its own port
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	go func() {
		log.Printf("Starting pprof server on :%s", config.Port)
		log.Printf("CPU profile: http://localhost:%s/debug/pprof/profile", config.Port)
		log.Printf("Heap profile: http://localhost:%s/debug/pprof/heap", config.Port)
		if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
			log.Printf("pprof server failed: %v", err)
		}
	}()
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv() ProfilingConfig {
	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	return ProfilingConfig{
		Enabled: os.Getenv("ENABLE_PROFILING") == "true",
		Port:    port,
	}
}
