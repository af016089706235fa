package observability

import (
	"context"
	"testing"
	"time"
)

type testSearchHooks struct {
	NoopSearchHooks
	starts int
}

func (h *testSearchHooks) OnSearchStart(ctx context.Context, target string, maxDepth int) {
	h.starts++
}

type testStoreHooks struct {
	NoopStoreHooks
	reads int
}

func (h *testStoreHooks) OnStoreRead(ctx context.Context, backend, op string, d time.Duration, err error) {
	h.reads++
}

type testHTTPHooks struct {
	NoopHTTPHooks
	requests int
}

func (h *testHTTPHooks) OnRequest(ctx context.Context, method, path string) {
	h.requests++
}

func TestHookRegistration(t *testing.T) {
	defer Reset()

	sh := &testSearchHooks{}
	st := &testStoreHooks{}
	ht := &testHTTPHooks{}

	SetSearchHooks(sh)
	SetStoreHooks(st)
	SetHTTPHooks(ht)

	Search().OnSearchStart(context.Background(), "(0, 0, 0)", 48)
	Store().OnStoreRead(context.Background(), "memory", "history", 0, nil)
	HTTP().OnRequest(context.Background(), "POST", "/api/v1/search")

	if sh.starts != 1 {
		t.Errorf("search starts = %d, want 1", sh.starts)
	}
	if st.reads != 1 {
		t.Errorf("store reads = %d, want 1", st.reads)
	}
	if ht.requests != 1 {
		t.Errorf("http requests = %d, want 1", ht.requests)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	sh := &testSearchHooks{}
	SetSearchHooks(sh)
	SetSearchHooks(nil)

	Search().OnSearchStart(context.Background(), "(0, 0, 0)", 1)
	if sh.starts != 1 {
		t.Errorf("nil registration replaced hooks, starts = %d", sh.starts)
	}
}

func TestReset(t *testing.T) {
	sh := &testSearchHooks{}
	SetSearchHooks(sh)
	Reset()

	Search().OnSearchStart(context.Background(), "(0, 0, 0)", 1)
	if sh.starts != 0 {
		t.Errorf("Reset did not restore no-op hooks, starts = %d", sh.starts)
	}
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	// Must not panic.
	Search().OnSearchComplete(context.Background(), 10, 5, time.Millisecond, nil)
	Store().OnStoreWrite(context.Background(), "file", "save_result", 0, nil)
	HTTP().OnResponse(context.Background(), "GET", "/healthz", 200, 0)
}
