package dashboard

import (
	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

// Side is where a message bubble is drawn
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// SideOf returns the side a message is drawn on: sent messages right, received left
func SideOf(m models.Message) Side {
	if m.Type == models.MessageSent {
		return SideRight
	}
	return SideLeft
}

// ChatSummary is one row of the chat list
type ChatSummary struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	KnownClient bool   `json:"known_client"`
	LastMessage string `json:"last_message"`
	Timestamp   string `json:"timestamp"`
	Selected    bool   `json:"selected"`
}

// MessageView is a message with its drawing side
type MessageView struct {
	models.Message
	Side Side `json:"side"`
}

// ChatView is the detail view of the selected chat
type ChatView struct {
	ChatSummary
	Messages []MessageView `json:"messages"`
}

// LookupClient resolves a chat's contact id against the clients collection
func (s *State) LookupClient(id string) (models.Contact, bool) {
	for _, c := range s.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

func (s *State) summarize(chat models.Chat) ChatSummary {
	sum := ChatSummary{
		ID:          chat.ID,
		LastMessage: chat.LastMessage,
		Timestamp:   chat.Timestamp,
		Selected:    chat.ID == s.SelectedChatID,
	}

	if c, ok := s.LookupClient(chat.ContactID); ok {
		sum.ClientName = c.Name
		sum.KnownClient = true
	} else {
		sum.ClientName = s.T().Text("unknownClient")
	}
	return sum
}

// ChatList returns one summary per chat in collection order
func (s *State) ChatList() []ChatSummary {
	out := make([]ChatSummary, 0, len(s.Chats))
	for _, chat := range s.Chats {
		out = append(out, s.summarize(chat))
	}
	return out
}

// SelectChat selects the chat with id. An unknown id clears the selection.
func (s *State) SelectChat(id string) bool {
	for _, chat := range s.Chats {
		if chat.ID == id {
			s.SelectedChatID = id
			return true
		}
	}
	s.SelectedChatID = ""
	return false
}

// Chat returns the full view of the chat with id
func (s *State) Chat(id string) (ChatView, bool) {
	for _, chat := range s.Chats {
		if chat.ID != id {
			continue
		}

		view := ChatView{
			ChatSummary: s.summarize(chat),
			Messages:    make([]MessageView, 0, len(chat.Messages)),
		}
		for _, m := range chat.Messages {
			view.Messages = append(view.Messages, MessageView{Message: m, Side: SideOf(m)})
		}
		return view, true
	}
	return ChatView{}, false
}

// SelectedChat returns the selected chat with every message in insertion order
func (s *State) SelectedChat() (ChatView, bool) {
	if s.SelectedChatID == "" {
		return ChatView{}, false
	}
	return s.Chat(s.SelectedChatID)
}
