package models

import "fmt"

// Tab is one of the dashboard panels
type Tab int

const (
	TabAttendants Tab = iota
	TabClients
	TabBots
	TabInstances
	TabChatHistory
)

// Tabs lists the dashboard panels in display order
var Tabs = []Tab{TabAttendants, TabClients, TabBots, TabInstances, TabChatHistory}

// Key returns the translation key of the tab label
func (t Tab) Key() string {
	switch t {
	case TabClients:
		return "clients"
	case TabBots:
		return "bots"
	case TabInstances:
		return "instances"
	case TabChatHistory:
		return "chatHistory"
	default:
		return "attendants"
	}
}

// ParseTab parses a tab key or index; unknown values map to the attendants tab
func ParseTab(s string) Tab {
	for _, t := range Tabs {
		if t.Key() == s || fmt.Sprint(int(t)) == s {
			return t
		}
	}
	return TabAttendants
}

// Kind is a creatable record kind
type Kind string

const (
	KindAttendant Kind = "attendant"
	KindClient    Kind = "client"
	KindBot       Kind = "bot"
	KindInstance  Kind = "instance"
)

// Kinds lists the creatable kinds in tab order
var Kinds = []Kind{KindAttendant, KindClient, KindBot, KindInstance}

// ParseKind parses a kind name, accepting the plural form used in URLs
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s || string(k)+"s" == s {
			return k, true
		}
	}
	return "", false
}

// KindForTab returns the kind created from a tab.
// The chat history tab has no kind of its own and falls back to attendants.
func KindForTab(t Tab) Kind {
	switch t {
	case TabClients:
		return KindClient
	case TabBots:
		return KindBot
	case TabInstances:
		return KindInstance
	default:
		return KindAttendant
	}
}

// Tab returns the tab that lists records of this kind
func (k Kind) Tab() Tab {
	switch k {
	case KindClient:
		return TabClients
	case KindBot:
		return TabBots
	case KindInstance:
		return TabInstances
	default:
		return TabAttendants
	}
}

// InactiveStatus returns the status new records of this kind start with
func (k Kind) InactiveStatus() string {
	if k == KindInstance {
		return string(StatusDisconnected)
	}
	return string(StatusOffline)
}

// DialogTitleKey returns the translation key of the add dialog title
func (k Kind) DialogTitleKey() string {
	switch k {
	case KindClient:
		return "addNewClient"
	case KindBot:
		return "addNewBot"
	case KindInstance:
		return "addNewInstance"
	default:
		return "addNewAttendant"
	}
}

// NumberLabelKey returns the translation key of the phone field label
func (k Kind) NumberLabelKey() string {
	if k == KindInstance {
		return "instanceNumber"
	}
	return "phoneNumber"
}

// ListTitleKey returns the translation key of the list header
func (k Kind) ListTitleKey() string {
	if k == KindInstance {
		return "whatsappInstances"
	}
	return k.Tab().Key()
}
