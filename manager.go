// Package prefetchcache is a read-side file-content prefetch cache meant
// to sit behind a user-space filesystem adapter (out of scope for this
// module — see SPEC_FULL.md §1). Manager is the facade the adapter talks
// to: it wires access events into the predictor, predicted candidates
// into the async reader, and serves reads from the LRU store.
package prefetchcache

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/elliotnunn/prefetchcache/internal/lrustore"
	"github.com/elliotnunn/prefetchcache/internal/predictor"
	"github.com/elliotnunn/prefetchcache/internal/reader"
)

// Manager is process-wide state with an explicit New/Shutdown lifecycle:
// one per mount. It is safe for concurrent use by multiple adapter
// threads.
type Manager struct {
	store *lrustore.Store
	rdr   *reader.Reader
	pred  *predictor.Predictor
	cfg   Config
}

// New allocates the LRU store with cap = cfg.MemoryLimitBytes (overridden
// by the PFGB environment variable, in GiB, when it is set) and starts
// the async reader. cfg.ChunkSizeBytes is accepted and stored but has no
// behavioral effect in this core (reserved for future range caching).
func New(cfg Config) *Manager {
	cfg = cfg.withDefaults()
	cfg.MemoryLimitBytes = memoryLimitFromEnv(cfg.MemoryLimitBytes)

	store := lrustore.New(cfg.MemoryLimitBytes)
	m := &Manager{
		store: store,
		rdr:   reader.New(store),
		pred: predictor.New(predictor.Config{
			Adaptive: cfg.Adaptive,
			Decay:    cfg.Decay,
			MinConf:  cfg.MinConf,
			TopK:     cfg.TopK,
		}),
		cfg: cfg,
	}
	slog.Info("managerStart",
		"memoryLimitBytes", cfg.MemoryLimitBytes,
		"chunkSizeBytes", cfg.ChunkSizeBytes,
		"adaptive", cfg.Adaptive)
	return m
}

// SetRoot replaces the backing-directory root used to resolve normalized
// paths for hydration. Forwarded to the async reader; affects all
// subsequent hydrations.
func (m *Manager) SetRoot(root string) {
	m.rdr.SetRoot(root)
}

// Request normalizes path, enqueues it for hydration, feeds it to the
// predictor as an access event, then enqueues the predictor's candidates
// for the next step — deduplicated against the current queue and the
// store, and always after the explicit request so that it is served
// first. Request never fails visibly to the caller: missing files, short
// reads, and I/O errors all just leave the path ABSENT for the reader to
// retry on a later Request.
func (m *Manager) Request(path string) {
	np := Normalize(path)
	m.rdr.Enqueue(np)
	m.pred.Observe(np)

	for _, cand := range m.pred.Predict() {
		if m.store.Contains(cand) || m.rdr.Queued(cand) {
			continue
		}
		m.rdr.Enqueue(cand)
	}
}

// Lookup reports whether path (normalized) is resident. The returned
// token is an opaque, adapter-facing hit signal; no bytes are returned
// here. A nil token accompanies a miss.
func (m *Manager) Lookup(path string) (present bool, token any) {
	np := Normalize(path)
	if m.store.Contains(np) {
		return true, np
	}
	return false, nil
}

// ReadRange returns bytes [offset, min(offset+length, len)) of the
// resident entry for path. It returns (nil, false) if the path is not
// resident; an empty, non-nil-but-zero-length slice and true if offset
// is at or past the end of the buffer.
func (m *Manager) ReadRange(path string, length, offset int64) ([]byte, bool) {
	np := Normalize(path)
	h, ok := m.store.Get(np)
	if !ok {
		return nil, false
	}
	data := h.Bytes()
	if offset < 0 {
		offset = 0
	}
	if offset >= int64(len(data)) {
		return []byte{}, true
	}
	end := offset + length
	if end > int64(len(data)) || length < 0 {
		end = int64(len(data))
	}
	return data[offset:end], true
}

// Status renders a human-readable operator diagnostic: bytes used,
// cached paths head-to-tail, and pending queue paths. The output format
// is not a stable contract.
func (m *Manager) Status() string {
	var b strings.Builder
	used := m.store.BytesUsed()
	fmt.Fprintf(&b, "used: %.2f MiB / %.2f MiB (cap)\n",
		float64(used)/(1<<20), float64(m.store.Cap())/(1<<20))
	fmt.Fprintf(&b, "evictions: %d\n", m.store.Evictions())
	fmt.Fprintf(&b, "cached (head to tail): %v\n", m.store.CachedPaths())
	fmt.Fprintf(&b, "pending: %v\n", m.rdr.Pending())
	nodes, edges := m.pred.Stats()
	fmt.Fprintf(&b, "predictor: %d nodes, %d edges, adaptive=%v\n", nodes, edges, m.cfg.Adaptive)
	return b.String()
}

// Shutdown drains the async reader and stops it. Idempotent.
func (m *Manager) Shutdown() {
	m.rdr.Shutdown()
	slog.Info("managerStop")
}
