package prefetchcache

import (
	"math"
	"os"
	"strconv"
)

const (
	defaultMemoryLimitBytes int64 = 4 * 1024 * 1024 * 1024 // 4 GiB
	defaultChunkSizeBytes   int64 = 1 * 1024 * 1024        // 1 MiB
	defaultTopK                   = 4
)

// Config carries the tunables enumerated in the prefetch cache's external
// interface. ChunkSizeBytes is accepted and stored but has no behavioral
// effect in this core; it is reserved for future byte-range caching.
type Config struct {
	MemoryLimitBytes int64 // bytes; default 4 GiB
	ChunkSizeBytes   int64 // bytes; default 1 MiB; reserved, unused

	Adaptive bool    // switches the predictor between fixed and decaying modes
	TopK     int     // max prefetch candidates per request, in both modes
	Decay    float64 // (0,1]; consulted only if Adaptive
	MinConf  float64 // [0,1]; consulted only if Adaptive
}

// withDefaults fills in zero-valued fields with the documented defaults.
func (c Config) withDefaults() Config {
	if c.MemoryLimitBytes == 0 {
		c.MemoryLimitBytes = defaultMemoryLimitBytes
	}
	if c.ChunkSizeBytes == 0 {
		c.ChunkSizeBytes = defaultChunkSizeBytes
	}
	if c.TopK == 0 {
		c.TopK = defaultTopK
	}
	return c
}

// memoryLimitFromEnv reads an optional override of the memory limit, in
// gibibytes, from the PFGB environment variable. Adapted from the
// teacher's calcMemLimit (memlimit.go), which reads the equivalent
// BEGB variable; the parsing robustness (reject NaN/Inf/negative) is
// carried over unchanged.
func memoryLimitFromEnv(fallback int64) int64 {
	e := os.Getenv("PFGB")
	if e == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(e, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		panic("malformed PFGB environment variable, should be a number of gigabytes: " + e)
	}
	return int64(f * 1024 * 1024 * 1024)
}
