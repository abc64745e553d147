package main

import (
	"log/slog"

	"github.com/katalvlaran/ospfsim/spf"
)

// slogObserver traces SPF steps through the structured logger at debug
// level, decoupling step rendering from the engine itself.
type slogObserver struct {
	log *slog.Logger
}

func newSlogObserver() *slogObserver {
	return &slogObserver{log: slog.Default()}
}

// OnVisit implements spf.Observer.
func (o *slogObserver) OnVisit(node string, dist float64) {
	o.log.Debug("spf visit", "node", node, "dist", dist)
}

// OnRelax implements spf.Observer.
func (o *slogObserver) OnRelax(from, to string, oldDist, newDist float64, updated bool) {
	o.log.Debug("spf relax", "from", from, "to", to, "old", oldDist, "new", newDist, "updated", updated)
}

// traceOptions returns engine options carrying the slog observer when
// --verbose is set. Tracing implies sequential execution; callers must not
// combine it with a worker pool.
func traceOptions() []spf.Option {
	if !verbose {
		return nil
	}

	return []spf.Option{spf.WithObserver(newSlogObserver())}
}
