// Package predictor implements a first-order Markov predictor over file
// identifiers (normalized paths). Every observed transition a->b increases
// the weight of that edge; predict ranks a's successors by weight,
// tie-broken by most-recent update. An optional adaptive mode decays
// older transitions and drops low-confidence candidates.
package predictor

import (
	"sort"
	"sync"
)

// Config controls the predictor's mode. Decay and MinConf are only
// consulted when Adaptive is true; TopK applies in both modes.
type Config struct {
	Adaptive bool
	Decay    float64 // (0,1]; multiplies a node's outgoing weights before each increment
	MinConf  float64 // [0,1]; candidates with w_ab/total[a] below this are dropped
	TopK     int     // truncate Predict's result to this many candidates
}

const defaultTopK = 4
const pruneEpsilon = 1e-6

type edge struct {
	weight float64
	seq    uint64 // monotonic counter at last update, for the tie-break rule
}

// Predictor consumes an ordered stream of access events via Observe and
// emits ranked prefetch candidates via Predict. Safe for concurrent use.
type Predictor struct {
	mu      sync.Mutex
	cfg     Config
	succ    map[string]map[string]*edge
	total   map[string]float64
	last    string
	hasLast bool
	seq     uint64
}

// New constructs a Predictor. A zero-valued Config is valid and selects
// non-adaptive mode with a default TopK.
func New(cfg Config) *Predictor {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	if cfg.Decay <= 0 || cfg.Decay > 1 {
		cfg.Decay = 1
	}
	return &Predictor{
		cfg:   cfg,
		succ:  make(map[string]map[string]*edge),
		total: make(map[string]float64),
	}
}

// Observe records that path was accessed, immediately after the last
// observed path (within the same session). The very first call, or a
// repeated observation of the same path, only updates last without
// creating a self-edge.
func (p *Predictor) Observe(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.hasLast && p.last != path {
		p.bumpLocked(p.last, path)
	}
	p.last = path
	p.hasLast = true
}

func (p *Predictor) bumpLocked(a, b string) {
	p.seq++

	if p.cfg.Adaptive && p.cfg.Decay < 1 {
		if out, ok := p.succ[a]; ok {
			var newTotal float64
			for dst, e := range out {
				e.weight *= p.cfg.Decay
				if e.weight < pruneEpsilon {
					delete(out, dst)
					continue
				}
				newTotal += e.weight
			}
			p.total[a] = newTotal
		}
	}

	out, ok := p.succ[a]
	if !ok {
		out = make(map[string]*edge)
		p.succ[a] = out
	}
	e, ok := out[b]
	if !ok {
		e = &edge{}
		out[b] = e
	}
	e.weight++
	e.seq = p.seq
	p.total[a] += 1
}

// Predict returns successors of the last observed path, ranked by weight
// descending and tie-broken by most-recent update, truncated to TopK. In
// adaptive mode candidates whose relative probability falls below
// MinConf are dropped. Returns nil if the last path is unknown or has no
// surviving successors.
func (p *Predictor) Predict() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasLast {
		return nil
	}
	out, ok := p.succ[p.last]
	if !ok || len(out) == 0 {
		return nil
	}

	type cand struct {
		path   string
		weight float64
		seq    uint64
	}
	cands := make([]cand, 0, len(out))
	total := p.total[p.last]
	for dst, e := range out {
		if e.weight <= 0 {
			continue
		}
		if p.cfg.Adaptive && total > 0 && e.weight/total < p.cfg.MinConf {
			continue
		}
		cands = append(cands, cand{dst, e.weight, e.seq})
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].weight != cands[j].weight {
			return cands[i].weight > cands[j].weight
		}
		return cands[i].seq > cands[j].seq
	})

	if len(cands) == 0 {
		return nil
	}
	if len(cands) > p.cfg.TopK {
		cands = cands[:p.cfg.TopK]
	}

	result := make([]string, len(cands))
	for i, c := range cands {
		result[i] = c.path
	}
	return result
}

// Stats reports the number of distinct source nodes and total edges
// currently tracked, for operator diagnostics via Manager.Status.
func (p *Predictor) Stats() (nodes, edges int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	nodes = len(p.succ)
	for _, out := range p.succ {
		edges += len(out)
	}
	return
}
