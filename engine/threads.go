package engine

// ThreadPool tracks how many worker goroutines root-move evaluation may use.
// Wired to the "Threads" option.
type ThreadPool struct {
	count int
}

// Set resizes the pool. Counts are clamped to the option's [1, 512] range so
// a direct caller cannot produce a zero-width pool.
func (p *ThreadPool) Set(n int) {
	p.count = Clamp(n, 1, 512)
}

func (p *ThreadPool) Size() int {
	if p.count == 0 {
		return 1
	}
	return p.count
}
