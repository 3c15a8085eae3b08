package engine

import (
	"log/slog"
)

// Comparison is one pairing of two items presented for a single vote.
// There is no special property or priority to either side.
type Comparison struct {
	Left  string
	Right string
}

// ScoreEntry is the final score of a single item.
type ScoreEntry struct {
	Item  string
	Score int
}

// Engine owns item storage, pairing strategy and scoring. Items are opaque
// strings; callers decide how to encode structure into them.
type Engine struct {
	sessionPath string
	pushed      []string
	run         *run
}

// run is one comparison round over a snapshot of the pushed items.
type run struct {
	order  []string // snapshot order, also the score-report order
	known  map[string]bool
	it     *pairIterator
	scores map[string]int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSessionPath makes the engine persist pushed items to the given file
// so a quit during setup does not lose them. Empty path disables
// persistence.
func WithSessionPath(path string) Option {
	return func(e *Engine) {
		e.sessionPath = path
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load restores previously pushed items from the session file. It is the
// one-time initialization step; the engine is usable without it, starting
// from an empty item list.
func (e *Engine) Load() error {
	if e.sessionPath == "" {
		return nil
	}
	items, err := loadSession(e.sessionPath)
	if err != nil {
		return err
	}
	e.pushed = items
	return nil
}

// Items returns all items pushed so far, in push order.
func (e *Engine) Items() []string {
	items := make([]string, len(e.pushed))
	copy(items, e.pushed)
	return items
}

// PushItem records a new item.
func (e *Engine) PushItem(text string) {
	e.pushed = append(e.pushed, text)
	e.persist()
}

// HasOngoingComparison reports whether a comparison round is in progress.
func (e *Engine) HasOngoingComparison() bool {
	return e.run != nil
}

// ResetComparison discards any in-progress round.
func (e *Engine) ResetComparison() {
	if e.run != nil {
		slog.Debug("resetting ongoing comparison")
	}
	e.run = nil
}

// StartComparison begins a round over the items pushed so far. The pushed
// list is consumed: it is snapshotted into the round and cleared.
func (e *Engine) StartComparison() {
	order := dedupe(e.pushed)
	known := make(map[string]bool, len(order))
	for _, item := range order {
		known[item] = true
	}

	e.run = &run{
		order:  order,
		known:  known,
		it:     newPairIterator(order),
		scores: make(map[string]int),
	}
	e.pushed = nil
	e.persist()
	slog.Debug("comparison started", "items", len(order))
}

// NextComparison advances the pairing sequence. nil signals exhaustion.
// Consecutive pairs share one item, preferring the last tracked winner
// while comparisons for it remain.
func (e *Engine) NextComparison() *Comparison {
	if e.run == nil {
		return nil
	}
	p := e.run.it.next()
	if p == nil {
		return nil
	}
	return &Comparison{Left: p.left, Right: p.right}
}

// TrackResult records one outcome: winner beats loser. The winner's score
// increases by one; the loser is ensured to be tracked. The iterator is
// biased toward the winner for the next pair.
func (e *Engine) TrackResult(winner, loser string) {
	if e.run == nil {
		return
	}
	if !e.run.known[winner] || !e.run.known[loser] {
		slog.Warn("ignoring result for unknown item", "winner", winner, "loser", loser)
		return
	}
	slog.Debug("tracking result", "winner", winner, "loser", loser)
	e.run.it.winner(winner)
	e.run.scores[winner]++
	if _, ok := e.run.scores[loser]; !ok {
		e.run.scores[loser] = 0
	}
}

// Scores returns one entry per item of the current round, in snapshot
// order. Items that never won score zero. Valid once comparisons are
// exhausted, but callable at any point of a round.
func (e *Engine) Scores() []ScoreEntry {
	if e.run == nil {
		return nil
	}
	entries := make([]ScoreEntry, 0, len(e.run.order))
	for _, item := range e.run.order {
		entries = append(entries, ScoreEntry{Item: item, Score: e.run.scores[item]})
	}
	return entries
}

func (e *Engine) persist() {
	if e.sessionPath == "" {
		return
	}
	if err := saveSession(e.sessionPath, e.pushed); err != nil {
		slog.Warn("failed to persist session", "error", err)
	}
}

// dedupe drops repeated items, keeping the first occurrence.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
