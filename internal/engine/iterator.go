package engine

// pair is an unordered pairing of two items.
type pair struct {
	left  string
	right string
}

func (p pair) other(item string) string {
	if p.left == item {
		return p.right
	}
	return p.left
}

// pairIterator walks an exhaustive pair set such that every pair after the
// first shares exactly one item with the previous one. When the caller
// tracks a winner, the next pair keeps the winning item as long as an
// unused pair for it remains; only then does it fall back to the loser's
// side.
type pairIterator struct {
	pairs  []pair
	used   []bool
	byItem map[string][]int

	prev       *pair
	prevWinner string
	prevLoser  string
	hasResult  bool
}

// newPairIterator builds the exhaustive pair set over items: exactly one
// pair for every unordered item combination, n*(n-1)/2 pairs total.
func newPairIterator(items []string) *pairIterator {
	it := &pairIterator{
		byItem: make(map[string][]int),
	}

	for i := len(items) - 1; i >= 1; i-- {
		for j := 0; j < i; j++ {
			idx := len(it.pairs)
			it.pairs = append(it.pairs, pair{left: items[i], right: items[j]})
			it.byItem[items[i]] = append(it.byItem[items[i]], idx)
			it.byItem[items[j]] = append(it.byItem[items[j]], idx)
		}
	}
	it.used = make([]bool, len(it.pairs))

	return it
}

func (it *pairIterator) firstUnusedFor(item string) int {
	for _, idx := range it.byItem[item] {
		if !it.used[idx] {
			return idx
		}
	}
	return -1
}

// next returns the next pair, or nil when no reachable pair remains.
func (it *pairIterator) next() *pair {
	var winner, loser string
	switch {
	case it.hasResult:
		winner, loser = it.prevWinner, it.prevLoser
	case it.prev != nil:
		winner, loser = it.prev.left, it.prev.right
	default:
		seed := -1
		for i := range it.pairs {
			if !it.used[i] {
				seed = i
				break
			}
		}
		if seed < 0 {
			return nil
		}
		winner, loser = it.pairs[seed].left, it.pairs[seed].right
	}

	idx := it.firstUnusedFor(winner)
	if idx < 0 {
		idx = it.firstUnusedFor(loser)
	}
	if idx < 0 {
		return nil
	}

	it.used[idx] = true
	p := it.pairs[idx]
	it.prev = &p
	it.hasResult = false
	return &p
}

// winner records which item of the previous pair won, biasing the next
// pair selection toward it.
func (it *pairIterator) winner(w string) {
	if it.prev == nil {
		return
	}
	it.prevWinner = w
	it.prevLoser = it.prev.other(w)
	it.hasResult = true
}
