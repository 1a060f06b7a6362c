// Package dashboard holds the application state of one dashboard session and the
// events that change it. All state lives in State; the login and profile components
// only hand values back through return values and callbacks.
package dashboard

import (
	"errors"
	"strconv"
	"time"

	"github.com/mbenaiss/whatsapp-helpdesk/i18n"
	"github.com/mbenaiss/whatsapp-helpdesk/login"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/profile"
)

// View selects which page the session renders
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewProfile   View = "profile"
)

// AddDialog is the state of the "add record" dialog
type AddDialog struct {
	Open  bool        `json:"open"`
	Kind  models.Kind `json:"kind"`
	Name  string      `json:"name"`
	Phone string      `json:"phone"`
}

// State is the whole state of one dashboard session
type State struct {
	User       *models.User `json:"user,omitempty"`
	View       View         `json:"view"`
	Language   string       `json:"language"`
	Tab        models.Tab   `json:"tab"`
	LoginError string       `json:"login_error,omitempty"`

	Attendants []models.Contact  `json:"attendants"`
	Clients    []models.Contact  `json:"clients"`
	Bots       []models.Contact  `json:"bots"`
	Instances  []models.Instance `json:"instances"`
	Chats      []models.Chat     `json:"chats"`

	SelectedChatID string          `json:"selected_chat_id,omitempty"`
	Dialog         AddDialog       `json:"dialog"`
	Schedule       models.Schedule `json:"schedule"`
	Profile        *profile.Page   `json:"profile,omitempty"`

	LastID int64 `json:"last_id"`
}

var now = time.Now

// New returns a logged-out session holding the seed data
func New(language string) *State {
	if language == "" {
		language = i18n.DefaultLanguage
	}

	return &State{
		View:       ViewLogin,
		Language:   language,
		Tab:        models.TabAttendants,
		Attendants: seedAttendants(),
		Clients:    seedClients(),
		Bots:       seedBots(),
		Instances:  seedInstances(),
		Chats:      seedChats(),
		Schedule:   DefaultSchedule(),
	}
}

// T returns the translation table of the session language
func (s *State) T() i18n.Translations {
	return i18n.Get(s.Language)
}

// Authenticated reports whether a user is logged in
func (s *State) Authenticated() bool {
	return s.User != nil
}

// Login validates the form and, on success, opens the dashboard for the new user.
// A validation failure is kept in LoginError until dismissed or a later login succeeds.
func (s *State) Login(f login.Form) error {
	user, err := login.Submit(f)
	if err != nil {
		var verr *login.ValidationError
		if errors.As(err, &verr) {
			s.LoginError = verr.Key
		}
		return err
	}

	s.User = &user
	s.View = ViewDashboard
	s.LoginError = ""
	return nil
}

// DismissLoginError hides the login validation message
func (s *State) DismissLoginError() {
	s.LoginError = ""
}

// Logout clears the user and returns to the login page
func (s *State) Logout() {
	s.User = nil
	s.View = ViewLogin
	s.Profile = nil
	s.Dialog = AddDialog{}
}

// SetLanguage switches the translation table. Data is left untouched.
func (s *State) SetLanguage(lang string) {
	s.Language = lang
}

// SelectTab switches the visible dashboard panel
func (s *State) SelectTab(t models.Tab) {
	s.Tab = t
}

func (s *State) nextID() string {
	id := now().UnixMilli()
	if id <= s.LastID {
		id = s.LastID + 1
	}
	s.LastID = id
	return strconv.FormatInt(id, 10)
}
