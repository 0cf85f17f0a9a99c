package sigtest_test

import (
	"testing"

	"github.com/db47h/sigflow"
	"github.com/db47h/sigflow/blocks"
	"github.com/db47h/sigflow/sigtest"
)

func TestRunN(t *testing.T) {
	src := sigtest.Constant("c", sigflow.Joule, 4.5, 11)
	var calls int
	snk := blocks.NewSink("probe", sigflow.Joule, func(v float64, ts sigflow.Timestamp) {
		calls++
		if v != 4.5 || ts != 11 {
			t.Errorf("call %d: %g at t=%d", calls, v, ts)
		}
	})
	if err := sigflow.Connect(snk.In(), src.Out()); err != nil {
		t.Fatal(err)
	}
	sigtest.RunN(t, 3, src, snk)
	if calls != 3 {
		t.Errorf("sink ran %d times", calls)
	}
}
