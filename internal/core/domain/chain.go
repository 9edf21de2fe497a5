package domain

// Event names used by the chain.
const (
	EventOne   = "event1"
	EventTwo   = "event2"
	EventThree = "event3"
)

// EventStart is emitted once by the entry point to start the chain.
const EventStart = EventThree

// FiredLine returns the line printed when the named event fires.
func FiredLine(name string) string {
	switch name {
	case EventOne:
		return "Event1 fired!"
	case EventTwo:
		return "Event2 fired!"
	case EventThree:
		return "Event3 fired!"
	default:
		return ""
	}
}
