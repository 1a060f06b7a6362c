package dashboard

import (
	"time"

	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

func seedAttendants() []models.Contact {
	return []models.Contact{
		{ID: "1", Name: "John Doe", Phone: "+1234567890", Status: models.StatusOnline},
		{ID: "2", Name: "Jane Smith", Phone: "+1234567891", Status: models.StatusOffline},
	}
}

func seedClients() []models.Contact {
	return []models.Contact{
		{ID: "1", Name: "Alice Johnson", Phone: "+1234567892", Status: models.StatusOnline},
		{ID: "2", Name: "Bob Wilson", Phone: "+1234567893", Status: models.StatusOffline},
	}
}

func seedBots() []models.Contact {
	return []models.Contact{
		{ID: "1", Name: "Support Bot", Phone: "+1234567894", Status: models.StatusOnline},
	}
}

func seedInstances() []models.Instance {
	return []models.Instance{
		{ID: "1", Name: "Main Instance", Number: "+1234567895", Status: models.StatusConnected},
	}
}

func seedChats() []models.Chat {
	return []models.Chat{
		{
			ID:        "1",
			ContactID: "1",
			Messages: []models.Message{
				{ID: "1", Sender: "Alice Johnson", Content: "Hello, I need help", Timestamp: "10:30 AM", Type: models.MessageReceived},
				{ID: "2", Sender: "John Doe", Content: "How can I assist you?", Timestamp: "10:31 AM", Type: models.MessageSent},
			},
			LastMessage: "How can I assist you?",
			Timestamp:   "10:31 AM",
		},
	}
}

// DefaultSchedule is the availability schedule a new session starts with
func DefaultSchedule() models.Schedule {
	s := make(models.Schedule, len(models.Weekdays))
	for _, day := range models.Weekdays {
		switch day {
		case time.Saturday, time.Sunday:
			s[day] = models.DaySchedule{Enabled: false, StartTime: "09:00", EndTime: "13:00"}
		default:
			s[day] = models.DaySchedule{Enabled: true, StartTime: "09:00", EndTime: "18:00"}
		}
	}
	return s
}
