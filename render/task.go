package render

import "github.com/gokinema/kinema"

// rleTask is the pending-result slot of one drawable: either a resolved
// span list or a channel the rasterization worker will deliver on. A
// drawable has at most one task in flight; Preprocess produces tasks and
// Rle consumes them.
type rleTask struct {
	spans   kinema.SpanList
	pending chan kinema.SpanList
}

func newPendingTask() *rleTask {
	return &rleTask{pending: make(chan kinema.SpanList, 1)}
}

func resolvedTask(spans kinema.SpanList) *rleTask {
	return &rleTask{spans: spans}
}

// wait blocks until the result is available and memoizes it, so repeated
// waits return the same spans without touching the channel again.
func (t *rleTask) wait() kinema.SpanList {
	if t.pending != nil {
		t.spans = <-t.pending
		t.pending = nil
	}
	return t.spans
}
