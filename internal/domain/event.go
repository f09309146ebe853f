package domain

type EventKind string

const (
	EventCommand EventKind = "command"
	EventButton  EventKind = "button"
)

const (
	CommandStart = "start"
	CommandHelp  = "help"
	CommandPlay  = "play"
)

// Event is one inbound interaction. Command is set for EventCommand, Data and
// Origin for EventButton.
type Event struct {
	ID         string
	Kind       EventKind
	Command    string
	Data       string
	UserID     int64
	ChatID     int64
	Origin     MessageRef
	CallbackID string
}
