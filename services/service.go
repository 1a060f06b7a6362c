package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
	"github.com/mbenaiss/whatsapp-helpdesk/i18n"
	"github.com/mbenaiss/whatsapp-helpdesk/login"
	"github.com/mbenaiss/whatsapp-helpdesk/metrics"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/session"
	"github.com/mbenaiss/whatsapp-helpdesk/whatsapp"
)

var (
	// ErrNotAuthenticated is returned for dashboard actions of a logged-out session
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotFound is returned for an unknown record id where one is required
	ErrNotFound = errors.New("not found")
	// ErrUnknownKind is returned for a record kind outside attendant, client, bot and instance
	ErrUnknownKind = errors.New("unknown record kind")
)

func checkKind(kind models.Kind) error {
	for _, k := range models.Kinds {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// Service is the set of user actions on a dashboard session
type Service interface {
	State(ctx context.Context, sid string) (*dashboard.State, error)
	Login(ctx context.Context, sid string, form login.Form) (*dashboard.State, error)
	DismissLoginError(ctx context.Context, sid string) error
	Logout(ctx context.Context, sid string) error
	SetLanguage(ctx context.Context, sid string, lang string) error

	SelectTab(ctx context.Context, sid string, tab models.Tab) error
	OpenAddDialog(ctx context.Context, sid string) error
	ConfirmAdd(ctx context.Context, sid string, name, phone string) error
	CancelAdd(ctx context.Context, sid string) error
	AddRecord(ctx context.Context, sid string, kind models.Kind, name, phone string) (string, error)
	DeleteRecord(ctx context.Context, sid string, kind models.Kind, id string) error
	SelectChat(ctx context.Context, sid string, id string) error
	InstanceQR(ctx context.Context, sid string, id string, size int) ([]byte, error)

	OpenProfile(ctx context.Context, sid string) error
	CloseProfile(ctx context.Context, sid string) error
	EditProfile(ctx context.Context, sid string) error
	SaveProfile(ctx context.Context, sid string, user models.User) error
	CancelProfile(ctx context.Context, sid string) error
	EditSchedule(ctx context.Context, sid string) error
	SaveSchedule(ctx context.Context, sid string, schedule models.Schedule) error
	CancelSchedule(ctx context.Context, sid string) error
}

type service struct {
	sessions *session.Manager
	metrics  *metrics.Metrics
	log      *zap.SugaredLogger
}

// NewService creates a new Service over the session manager
func NewService(sessions *session.Manager, m *metrics.Metrics, log *zap.SugaredLogger) Service {
	return &service{sessions: sessions, metrics: m, log: log}
}

func (s *service) update(ctx context.Context, sid string, fn func(*dashboard.State) error) (*dashboard.State, error) {
	return s.sessions.Update(ctx, sid, fn)
}

// authed runs fn against the session state, failing for logged-out sessions
func (s *service) authed(ctx context.Context, sid string, fn func(*dashboard.State) error) error {
	_, err := s.update(ctx, sid, func(st *dashboard.State) error {
		if !st.Authenticated() {
			return ErrNotAuthenticated
		}
		return fn(st)
	})
	return err
}

// State returns the current session state
func (s *service) State(ctx context.Context, sid string) (*dashboard.State, error) {
	return s.sessions.Get(ctx, sid)
}

// Login validates the form and logs the session in
func (s *service) Login(ctx context.Context, sid string, form login.Form) (*dashboard.State, error) {
	st, err := s.update(ctx, sid, func(st *dashboard.State) error {
		return st.Login(form)
	})

	var verr *login.ValidationError
	switch {
	case errors.As(err, &verr):
		s.metrics.Logins.WithLabelValues("rejected").Inc()
		s.log.Infow("login rejected", "session", sid, "reason", verr.Message)
	case err != nil:
		return nil, fmt.Errorf("failed to log in: %w", err)
	default:
		s.metrics.Logins.WithLabelValues("ok").Inc()
		s.log.Infow("logged in", "session", sid, "role", st.User.Role)
	}

	return st, err
}

func (s *service) DismissLoginError(ctx context.Context, sid string) error {
	_, err := s.update(ctx, sid, func(st *dashboard.State) error {
		st.DismissLoginError()
		return nil
	})
	return err
}

// Logout clears the session user
func (s *service) Logout(ctx context.Context, sid string) error {
	_, err := s.update(ctx, sid, func(st *dashboard.State) error {
		st.Logout()
		return nil
	})
	if err == nil {
		s.log.Infow("logged out", "session", sid)
	}
	return err
}

// SetLanguage switches the session language. The switch is counted under the
// language of the table served, so unknown codes count as the default language.
func (s *service) SetLanguage(ctx context.Context, sid string, lang string) error {
	_, err := s.update(ctx, sid, func(st *dashboard.State) error {
		st.SetLanguage(lang)
		return nil
	})
	if err == nil {
		served := lang
		if !i18n.IsSupported(served) {
			served = i18n.DefaultLanguage
		}
		s.metrics.LanguageChanges.WithLabelValues(served).Inc()
	}
	return err
}

func (s *service) SelectTab(ctx context.Context, sid string, tab models.Tab) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.SelectTab(tab)
		return nil
	})
}

func (s *service) OpenAddDialog(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.OpenAddDialog()
		return nil
	})
}

// ConfirmAdd stages the dialog input and confirms it. Incomplete input leaves the
// dialog open without an error.
func (s *service) ConfirmAdd(ctx context.Context, sid string, name, phone string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		kind := st.Dialog.Kind
		st.SetDialogInput(name, phone)
		if id, ok := st.ConfirmAdd(); ok {
			s.metrics.RecordsAdded.WithLabelValues(string(kind)).Inc()
			s.log.Infow("record added", "session", sid, "kind", kind, "id", id)
		}
		return nil
	})
}

func (s *service) CancelAdd(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.CancelAdd()
		return nil
	})
}

// AddRecord adds a record of kind directly, without the dialog.
// It returns an empty id when name or phone is empty.
func (s *service) AddRecord(ctx context.Context, sid string, kind models.Kind, name, phone string) (string, error) {
	if err := checkKind(kind); err != nil {
		return "", err
	}

	var id string
	err := s.authed(ctx, sid, func(st *dashboard.State) error {
		var ok bool
		id, ok = st.Add(kind, name, phone)
		if ok {
			s.metrics.RecordsAdded.WithLabelValues(string(kind)).Inc()
			s.log.Infow("record added", "session", sid, "kind", kind, "id", id)
		}
		return nil
	})
	return id, err
}

// DeleteRecord removes a record. Unknown ids are not an error.
func (s *service) DeleteRecord(ctx context.Context, sid string, kind models.Kind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	return s.authed(ctx, sid, func(st *dashboard.State) error {
		if st.Delete(kind, id) {
			s.metrics.RecordsDeleted.WithLabelValues(string(kind)).Inc()
			s.log.Infow("record deleted", "session", sid, "kind", kind, "id", id)
		}
		return nil
	})
}

func (s *service) SelectChat(ctx context.Context, sid string, id string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.SelectTab(models.TabChatHistory)
		st.SelectChat(id)
		return nil
	})
}

// InstanceQR returns the pairing QR code PNG of an instance
func (s *service) InstanceQR(ctx context.Context, sid string, id string, size int) ([]byte, error) {
	st, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if !st.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	in, ok := st.FindInstance(id)
	if !ok {
		return nil, fmt.Errorf("instance %s: %w", id, ErrNotFound)
	}

	return whatsapp.QRCode(in.Number, size)
}

func (s *service) OpenProfile(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.OpenProfile()
		return nil
	})
}

func (s *service) CloseProfile(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.CloseProfile()
		return nil
	})
}

func (s *service) EditProfile(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.EditProfile()
		return nil
	})
}

// SaveProfile stages user as the edited profile and saves it
func (s *service) SaveProfile(ctx context.Context, sid string, user models.User) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		if !user.Role.Valid() {
			user.Role = st.User.Role
		}
		st.StageProfile(user)
		st.SaveProfile()
		return nil
	})
}

func (s *service) CancelProfile(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.CancelProfile()
		return nil
	})
}

func (s *service) EditSchedule(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.EditSchedule()
		return nil
	})
}

// SaveSchedule stages schedule as the edited schedule and saves it
func (s *service) SaveSchedule(ctx context.Context, sid string, schedule models.Schedule) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.StageSchedule(schedule)
		st.SaveSchedule(s.log)
		return nil
	})
}

func (s *service) CancelSchedule(ctx context.Context, sid string) error {
	return s.authed(ctx, sid, func(st *dashboard.State) error {
		st.CancelSchedule()
		return nil
	})
}
