package equivalency

import (
	"fmt"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// stepReporter follows a go-cmp comparison. It always remembers the paths
// that differ and, when tracing, every compared leaf.
type stepReporter struct {
	trace bool
	path  cmp.Path
	diffs []string
	steps []string
}

func (r *stepReporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *stepReporter) Report(rs cmp.Result) {
	path := describePath(r.path)
	if path == "" {
		path = "root"
	}

	if !rs.Equal() {
		r.diffs = append(r.diffs, path)
	}
	if !r.trace {
		return
	}

	outcome := "equal"
	switch {
	case rs.ByIgnore():
		outcome = "ignored"
	case !rs.Equal():
		outcome = "different"
	}
	r.steps = append(r.steps, fmt.Sprintf("%s: %s", path, outcome))
	zap.S().Debugw("Compared member", "path", path, "outcome", outcome)
}

func (r *stepReporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func (r *stepReporter) firstDifference() (string, bool) {
	if len(r.diffs) == 0 {
		return "", false
	}
	return r.diffs[0], true
}
