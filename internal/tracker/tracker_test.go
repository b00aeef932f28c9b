package tracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/habitual/internal/storage/memory"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	titles []string
	bodies []string
	err    error
}

func (r *recordingNotifier) Notify(title, body string) error {
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
	return r.err
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type fixture struct {
	ctx      context.Context
	store    *memory.Store
	clock    *fakeClock
	notifier *recordingNotifier
	tr       *Tracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:      context.Background(),
		store:    memory.New(),
		clock:    &fakeClock{now: time.Date(2024, 1, 22, 9, 30, 0, 0, time.UTC)},
		notifier: &recordingNotifier{},
	}
	f.tr = New(f.store,
		WithClock(f.clock.Now),
		WithIDs(sequentialIDs()),
		WithNotifier(f.notifier),
		WithTick(time.Millisecond),
	)
	return f
}
