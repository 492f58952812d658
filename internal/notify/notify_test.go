package notify

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := New()
	first := b.Subscribe()
	second := b.Subscribe()

	b.Publish()

	for i, ch := range []<-chan struct{}{first, second} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d missed the signal", i)
		}
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	b := New()
	ch := b.Subscribe()

	// Undrained subscriber: repeated publishes coalesce instead of blocking.
	b.Publish()
	b.Publish()
	b.Publish()

	select {
	case <-ch:
	default:
		t.Error("expected at least one coalesced signal")
	}
	select {
	case <-ch:
		t.Error("coalesced signals must not queue beyond the buffer")
	default:
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	b := New()
	b.Publish() // must not panic
}
