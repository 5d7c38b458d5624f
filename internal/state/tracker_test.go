package state

import (
	"math/rand"
	"testing"
	"time"

	"github.com/matryer/is"
)

var t0 = time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)

func TestObservePriming(t *testing.T) {
	for _, online := range []bool{true, false} {
		is := is.New(t)
		tr := New()

		_, changed := tr.Observe(online, t0)
		is.True(!changed)

		s := tr.Snapshot()
		is.True(s.Primed)
		is.Equal(s.Online, online)
		is.Equal(s.ChangedAt, t0)
	}
}

func TestObserveSequence(t *testing.T) {
	is := is.New(t)
	tr := New()

	seq := []bool{true, true, false, false, true}
	times := make([]time.Time, len(seq))
	for i := range times {
		times[i] = t0.Add(time.Duration(i) * 30 * time.Minute)
	}

	var changes []Change
	for i, online := range seq {
		if ch, ok := tr.Observe(online, times[i]); ok {
			changes = append(changes, ch)
		}
	}

	is.Equal(len(changes), 2)

	is.Equal(changes[0].Online, false)
	is.Equal(changes[0].At, times[2])
	is.Equal(changes[0].Lasted, times[2].Sub(times[0]))

	is.Equal(changes[1].Online, true)
	is.Equal(changes[1].At, times[4])
	is.Equal(changes[1].Lasted, times[4].Sub(times[2]))
}

func TestObserveStableKeepsTimestamp(t *testing.T) {
	is := is.New(t)
	tr := New()

	tr.Observe(false, t0)
	for i := 1; i <= 10; i++ {
		_, changed := tr.Observe(false, t0.Add(time.Duration(i)*time.Minute))
		is.True(!changed)
	}

	is.Equal(tr.Snapshot().ChangedAt, t0)
}

func TestObserveRandomSequences(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for run := 0; run < 100; run++ {
		tr := New()
		prev := false
		now := t0

		for i := 0; i < 50; i++ {
			online := rnd.Intn(2) == 1
			now = now.Add(time.Minute)

			_, changed := tr.Observe(online, now)
			exp := i > 0 && online != prev
			if changed != exp {
				t.Fatalf("run %d step %d: exp changed=%v got %v", run, i, exp, changed)
			}

			prev = online
		}
	}
}
