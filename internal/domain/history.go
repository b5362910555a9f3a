package domain

// history is a persistent append-only list of movements. Nodes are never
// modified once linked, so a Wallet shares its prefix with every wallet it
// was derived from and appending costs O(1).
type history struct {
	prev *history
	tx   Transaction
	size int
}

func newHistory(txs []Transaction) *history {
	var h *history
	for _, t := range txs {
		h = h.append(t)
	}
	return h
}

func (h *history) append(t Transaction) *history {
	return &history{prev: h, tx: t, size: h.len() + 1}
}

func (h *history) len() int {
	if h == nil {
		return 0
	}
	return h.size
}

// slice returns the movements oldest first in a freshly allocated slice.
func (h *history) slice() []Transaction {
	out := make([]Transaction, h.len())
	for n := h; n != nil; n = n.prev {
		out[n.size-1] = n.tx
	}
	return out
}
