// Package profile implements the profile page: editing the current user and the
// weekly availability schedule.
package profile

import (
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

// Page holds the two independent edit flows of the profile page
type Page struct {
	User     Draft[models.User]     `json:"user"`
	Schedule Draft[models.Schedule] `json:"schedule"`
}

// New returns a page showing user and schedule
func New(user models.User, schedule models.Schedule) *Page {
	return &Page{
		User:     NewDraft(user),
		Schedule: NewDraft(schedule),
	}
}

// EditUser starts editing the profile fields
func (p *Page) EditUser() {
	p.User.Edit()
}

// StageUser replaces the staged profile fields
func (p *Page) StageUser(u models.User) {
	p.User.Stage(u)
}

// SaveUser commits the staged profile fields and hands them to onUpdate
func (p *Page) SaveUser(onUpdate func(models.User)) {
	u, ok := p.User.Save()
	if ok && onUpdate != nil {
		onUpdate(u)
	}
}

// CancelUser drops staged profile fields
func (p *Page) CancelUser() {
	p.User.Cancel()
}

// EditSchedule starts editing the schedule
func (p *Page) EditSchedule() {
	p.Schedule.Edit()
}

// StageSchedule replaces the staged schedule
func (p *Page) StageSchedule(s models.Schedule) {
	p.Schedule.Stage(s)
}

// SaveSchedule commits the staged schedule, logs it and hands it to onSave if set
func (p *Page) SaveSchedule(log *zap.SugaredLogger, onSave func(models.Schedule)) {
	s, ok := p.Schedule.Save()
	if !ok {
		return
	}

	if log != nil {
		for _, day := range models.Weekdays {
			entry := s[day]
			log.Debugw("schedule saved",
				"day", day.String(),
				"enabled", entry.Enabled,
				"start", entry.StartTime,
				"end", entry.EndTime,
			)
		}
	}

	if onSave != nil {
		onSave(s.Clone())
	}
}

// CancelSchedule drops the staged schedule
func (p *Page) CancelSchedule() {
	p.Schedule.Cancel()
}
