package mh

// Chain is the frozen outcome of a sampling run: an ordered, append-only
// sequence of coefficient vectors laid out in a single fixed-capacity
// arena. Row 0 is the externally supplied initialization; for i ≥ 1,
// row i is either row i−1 (rejected) or the accepted candidate. Every
// entry is finite by construction.
//
// A Chain is read-only once returned; callers must not mutate the rows.
type Chain struct {
	draws    [][]float64 // S rows, each of length dim, views into one arena
	dim      int
	accepted int
}

// newChain allocates the S×dim arena and seeds row 0 with initial.
func newChain(s, dim int, initial []float64) *Chain {
	arena := make([]float64, s*dim)
	rows := make([][]float64, s)
	for i := range rows {
		rows[i] = arena[i*dim : (i+1)*dim : (i+1)*dim]
	}
	copy(rows[0], initial)
	return &Chain{draws: rows, dim: dim}
}

// Len returns S, the number of stored states (initialization included).
func (c *Chain) Len() int { return len(c.draws) }

// Dim returns the coefficient dimension of every state.
func (c *Chain) Dim() int { return c.dim }

// At returns the i-th state. The slice aliases the chain's storage;
// treat it as read-only.
func (c *Chain) At(i int) []float64 { return c.draws[i] }

// Draws returns all states, row 0 first. Rows alias the chain's storage;
// treat them as read-only.
func (c *Chain) Draws() [][]float64 { return c.draws }

// Accepted returns the number of accepted proposals, in [0, Len()−1].
func (c *Chain) Accepted() int { return c.accepted }

// AcceptanceRate returns Accepted()/(Len()−1), the coarse tuning
// diagnostic for the proposal scale.
func (c *Chain) AcceptanceRate() float64 {
	if len(c.draws) < 2 {
		return 0
	}
	return float64(c.accepted) / float64(len(c.draws)-1)
}
