package events_test

import (
	"testing"

	"github.com/ardanlabs/scalability/foundation/events"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestEvents(t *testing.T) {
	t.Log("Given the need to fan out calculation events.")
	{
		t.Logf("\tTest 0:\tWhen two receivers are registered.")
		{
			evts := events.New()

			ch1 := evts.Acquire("one")
			ch2 := evts.Acquire("two")
			if evts.Acquire("one") != ch1 {
				t.Fatalf("\t%s\tTest 0:\tShould get the same channel for the same id.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same channel for the same id.", success)

			evts.Send(events.Event{Kind: "sharding", Summary: "done"})

			for i, ch := range []<-chan events.Event{ch1, ch2} {
				e := <-ch
				if e.Kind != "sharding" {
					t.Fatalf("\t%s\tTest 0:\tShould receive the event on channel %d, got %+v.", failed, i, e)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould receive the event on every channel.", success)

			if err := evts.Release("one"); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to release a channel: %v", failed, err)
			}
			if _, open := <-ch1; open {
				t.Fatalf("\t%s\tTest 0:\tShould close a released channel.", failed)
			}
			if err := evts.Release("one"); err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould not be able to release a channel twice.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to release a channel once.", success)

			evts.Shutdown()
			if _, open := <-ch2; open || evts.Subscribers() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould close all channels on shutdown.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould close all channels on shutdown.", success)
		}

		t.Logf("\tTest 1:\tWhen a receiver falls behind.")
		{
			evts := events.New()
			ch := evts.Acquire("slow")

			for range 150 {
				evts.Send(events.Event{Kind: "layer2"})
			}

			if len(ch) != cap(ch) {
				t.Fatalf("\t%s\tTest 1:\tShould fill the buffer without blocking, got %d.", failed, len(ch))
			}
			t.Logf("\t%s\tTest 1:\tShould drop events without blocking the sender.", success)
		}
	}
}
