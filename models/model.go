package models

import "time"

// Role is the role a manager picks at login
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAttendant  Role = "attendant"
	RoleSupervisor Role = "supervisor"
)

// Roles lists the selectable roles in display order
var Roles = []Role{RoleAdmin, RoleAttendant, RoleSupervisor}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAttendant, RoleSupervisor:
		return true
	}
	return false
}

// User represents the logged-in manager
type User struct {
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Phone string `json:"phone"`
}

// Clone returns a copy of u
func (u User) Clone() User {
	return u
}

// ContactStatus is the presence of an attendant, client or bot
type ContactStatus string

const (
	StatusOnline  ContactStatus = "online"
	StatusOffline ContactStatus = "offline"
)

// Contact represents an attendant, client or bot
type Contact struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Phone  string        `json:"phone"`
	Status ContactStatus `json:"status"`
}

// InstanceStatus is the connection state of a WhatsApp instance
type InstanceStatus string

const (
	StatusConnected    InstanceStatus = "connected"
	StatusDisconnected InstanceStatus = "disconnected"
)

// Instance represents a configured WhatsApp number
type Instance struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Number string         `json:"number"`
	Status InstanceStatus `json:"status"`
}

// MessageType tells whether a message was sent by the helpdesk or received from a client
type MessageType string

const (
	MessageSent     MessageType = "sent"
	MessageReceived MessageType = "received"
)

// Message represents a chat message
type Message struct {
	ID        string      `json:"id"`
	Sender    string      `json:"sender"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
	Type      MessageType `json:"type"`
}

// Chat represents a conversation with a client.
// ContactID points into the clients collection and may not resolve.
type Chat struct {
	ID          string    `json:"id"`
	ContactID   string    `json:"contact_id"`
	Messages    []Message `json:"messages"`
	LastMessage string    `json:"last_message"`
	Timestamp   string    `json:"timestamp"`
}

// DaySchedule is the availability window for one weekday
type DaySchedule struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Weekdays lists the days of a schedule, Monday first
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Schedule is a weekly availability schedule keyed by weekday
type Schedule map[time.Weekday]DaySchedule

// Clone returns an independent copy of s
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for day, entry := range s {
		out[day] = entry
	}
	return out
}
