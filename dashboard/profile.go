package dashboard

import (
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/profile"
)

// OpenProfile switches to the profile page of the current user
func (s *State) OpenProfile() {
	if s.User == nil {
		return
	}
	s.Profile = profile.New(*s.User, s.Schedule)
	s.View = ViewProfile
}

// CloseProfile goes back to the dashboard. Unsaved edits are dropped.
func (s *State) CloseProfile() {
	s.Profile = nil
	if s.User != nil {
		s.View = ViewDashboard
	} else {
		s.View = ViewLogin
	}
}

func (s *State) page() *profile.Page {
	if s.Profile == nil && s.User != nil {
		s.Profile = profile.New(*s.User, s.Schedule)
	}
	return s.Profile
}

// EditProfile starts editing the profile fields
func (s *State) EditProfile() {
	if p := s.page(); p != nil {
		p.EditUser()
	}
}

// StageProfile replaces the staged profile fields
func (s *State) StageProfile(u models.User) {
	if p := s.page(); p != nil {
		p.StageUser(u)
	}
}

// SaveProfile commits the staged profile fields as the session user
func (s *State) SaveProfile() {
	if p := s.page(); p != nil {
		p.SaveUser(func(u models.User) {
			s.User = &u
		})
	}
}

// CancelProfile drops the staged profile fields
func (s *State) CancelProfile() {
	if p := s.page(); p != nil {
		p.CancelUser()
	}
}

// EditSchedule starts editing the availability schedule
func (s *State) EditSchedule() {
	if p := s.page(); p != nil {
		p.EditSchedule()
	}
}

// StageSchedule replaces the staged schedule
func (s *State) StageSchedule(schedule models.Schedule) {
	if p := s.page(); p != nil {
		p.StageSchedule(schedule)
	}
}

// SaveSchedule commits the staged schedule and keeps it for the rest of the session
func (s *State) SaveSchedule(log *zap.SugaredLogger) {
	if p := s.page(); p != nil {
		p.SaveSchedule(log, func(schedule models.Schedule) {
			s.Schedule = schedule
		})
	}
}

// CancelSchedule drops the staged schedule
func (s *State) CancelSchedule() {
	if p := s.page(); p != nil {
		p.CancelSchedule()
	}
}
