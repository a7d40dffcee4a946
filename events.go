package headpose

const (
	TRACKING_START EventType = iota
	TRACKING_STOP
	CONFIG_ERROR
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// StartEvent is emitted once tracking becomes active
type StartEvent struct {
	Adapter *Adapter
	Status  string
}

func (e StartEvent) Type() EventType { return TRACKING_START }

// StopEvent is emitted once tracking becomes inactive and the start pose is restored
type StopEvent struct {
	Adapter *Adapter
	Status  string
}

func (e StopEvent) Type() EventType { return TRACKING_STOP }

// ConfigErrorEvent is emitted when tracking cannot start because the adapter is misconfigured
type ConfigErrorEvent struct {
	Adapter *Adapter
	Reason  string
}

func (e ConfigErrorEvent) Type() EventType { return CONFIG_ERROR }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 8),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// Pending returns the number of buffered events
func (e *Events) Pending() int {
	return len(e.buffer)
}

// Flush sends all buffered events and clears the buffer.
// Listeners may trigger new events, they are delivered on the next flush.
func (e *Events) Flush() {
	pending := e.buffer
	e.buffer = make([]Event, 0, cap(pending))

	for _, event := range pending {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
}
