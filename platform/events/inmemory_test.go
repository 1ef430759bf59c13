package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"roommatch_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	Value string
}

func (e testEvent) EventName() string { return "test.event" }

func TestInMemoryBusPublishSync(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var got []string
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, event Event) error {
		got = append(got, event.(testEvent).Value)
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), Value: "a"}); err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	if len(got) != 1 || got[0] != "a" {
		t.Errorf("handler saw %v, want [a]", got)
	}
}

func TestInMemoryBusAsyncPublish(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, _ Event) error {
		wg.Done()
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async handler never ran")
	}
}

func TestInMemoryBusUnrelatedEvents(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	called := false
	bus.Subscribe("other.event", HandlerFunc(func(_ context.Context, _ Event) error {
		called = true
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	if called {
		t.Error("handler for a different event name was invoked")
	}
}
