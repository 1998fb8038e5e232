package screw

const (
	ON_SLEEP EventType = iota
	ON_WAKE
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// SleepEvent is sent once a body settled on its target and stopped moving.
type SleepEvent struct {
	Body *Body
}

func (e SleepEvent) Type() EventType { return ON_SLEEP }

// WakeEvent is sent when a sleeping body starts moving again.
type WakeEvent struct {
	Body *Body
}

func (e WakeEvent) Type() EventType { return ON_WAKE }

// EventListener - callback for events
type EventListener func(event Event)

// Events collects sleep transitions during a Step and sends them to the
// listeners at its end, from the goroutine calling Step.
// The zero value is ready to use.
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Last sleep state seen for each body
	sleepStates map[*Body]bool
}

func NewEvents() Events {
	return Events{
		listeners:   make(map[EventType][]EventListener),
		buffer:      make([]Event, 0, 64),
		sleepStates: make(map[*Body]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// processSleepEvents compares each body with its state at the previous Step.
// A body seen for the first time only records its state.
func (e *Events) processSleepEvents(bodies []*Body) {
	if e.sleepStates == nil {
		e.sleepStates = make(map[*Body]bool)
	}

	for _, body := range bodies {
		trackedState, exists := e.sleepStates[body]
		if !exists {
			e.sleepStates[body] = body.IsSleeping
			continue
		}

		if !trackedState && body.IsSleeping {
			e.buffer = append(e.buffer, SleepEvent{Body: body})
			e.sleepStates[body] = true
		} else if trackedState && !body.IsSleeping {
			e.buffer = append(e.buffer, WakeEvent{Body: body})
			e.sleepStates[body] = false
		}
	}
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		for _, listener := range e.listeners[event.Type()] {
			listener(event)
		}
	}
	e.buffer = e.buffer[:0]
}
