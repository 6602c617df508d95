package model

// historySize is how many recent generations are kept for cycle detection
const historySize = 5

// History keeps hashes of recent generations so the driver can tell when a
// pattern has settled into a still life or a short cycle
type History struct {
	hashes []string
}

// UpdateHistory adds the grid's current state and drops the oldest entries
func (h *History) UpdateHistory(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the grid matches one of the last three recorded
// generations, i.e. it is static or cycles with period 3 or less
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) == 0 {
		return false
	}

	current := g.GetGridHash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
