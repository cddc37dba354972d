package event

import "testing"

func TestPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(TopicEditApplied, func(ev Event) {
		got = append(got, ev)
	})

	bus.Publish(New(TopicEditApplied, "payload", "test"))

	if len(got) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(got))
	}
	if got[0].Payload != "payload" || got[0].Source != "test" {
		t.Errorf("event = %+v", got[0])
	}
	if got[0].ID == "" || got[0].Timestamp.IsZero() {
		t.Error("event metadata not stamped")
	}
}

func TestTopicIsolation(t *testing.T) {
	bus := NewBus()

	hits := 0
	bus.Subscribe(TopicMarkersUpdated, func(Event) { hits++ })

	bus.Publish(New(TopicEditApplied, nil, "test"))
	if hits != 0 {
		t.Error("handler received an event from another topic")
	}

	bus.Publish(New(TopicMarkersUpdated, nil, "test"))
	if hits != 1 {
		t.Errorf("hits = %d", hits)
	}
}

func TestSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(TopicEditApplied, func(Event) { order = append(order, 1) })
	bus.Subscribe(TopicEditApplied, func(Event) { order = append(order, 2) })

	bus.Publish(New(TopicEditApplied, nil, "test"))
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("delivery order = %v", order)
	}
}

func TestCancel(t *testing.T) {
	bus := NewBus()

	hits := 0
	sub := bus.Subscribe(TopicEditApplied, func(Event) { hits++ })

	bus.Publish(New(TopicEditApplied, nil, "test"))
	sub.Cancel()
	bus.Publish(New(TopicEditApplied, nil, "test"))

	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}

	// Double cancel is harmless.
	sub.Cancel()
}
