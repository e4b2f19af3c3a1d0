package sim

// Metrics aggregates the session counters exposed to the presentation
// layer: elapsed time, stars collected, and the current leader-to-
// companion gap. Collected is a running total for the whole session;
// it survives batch regeneration and resets only on a full reset.
type Metrics struct {
	Elapsed   float64
	Collected int
	Distance  float64
}

// Pace returns the average seconds per collected star. Before the
// first pickup there is no pace yet: ok is false and the display layer
// must show a sentinel instead of a number.
func (m Metrics) Pace() (pace float64, ok bool) {
	if m.Collected <= 0 {
		return 0, false
	}
	return m.Elapsed / float64(m.Collected), true
}

// Observer receives throttled metric publications from the simulation,
// at most once per Tuning.PublishEvery of wall-clock time regardless of
// frame rate. Implementations must not retain references into the
// simulation; Metrics is a value copy.
type Observer interface {
	ObserveMetrics(m Metrics)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(m Metrics)

// ObserveMetrics calls f(m).
func (f ObserverFunc) ObserveMetrics(m Metrics) { f(m) }
