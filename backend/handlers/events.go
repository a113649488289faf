package handlers

import (
	"sync"
	"time"

	"contacts-manager/backend/system"

	"github.com/gofiber/fiber/v2"
)

// Event types
const (
	EventInfo    = "info"
	EventWarning = "warning"
	EventError   = "error"
	EventSuccess = "success"
)

type Event struct {
	Time    string `json:"time"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EventLog keeps the most recent activity, newest first.
type EventLog struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{capacity: capacity}
}

// Add records an event and mirrors it to the file logger.
func (l *EventLog) Add(eventType, message string) {
	l.mu.Lock()
	event := Event{
		Time:    time.Now().Format("2006-01-02 15:04:05"),
		Type:    eventType,
		Message: message,
	}
	l.events = append([]Event{event}, l.events...)
	if len(l.events) > l.capacity {
		l.events = l.events[:l.capacity]
	}
	l.mu.Unlock()

	switch eventType {
	case EventError:
		system.Error("%s", message)
	case EventWarning:
		system.Warn("%s", message)
	default:
		system.Info("%s", message)
	}
}

// List returns a copy of the log.
func (l *EventLog) List() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Event, len(l.events))
	copy(result, l.events)
	return result
}

// GetEvents returns recent activity
// GET /api/admin/events
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	return c.JSON(h.Events.List())
}
