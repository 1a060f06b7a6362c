package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

func testSchedule() models.Schedule {
	s := models.Schedule{}
	for _, day := range models.Weekdays {
		s[day] = models.DaySchedule{Enabled: day != time.Sunday, StartTime: "09:00", EndTime: "18:00"}
	}
	return s
}

func TestSaveUserRoundTrip(t *testing.T) {
	original := models.User{Name: "Carol", Role: models.RoleAdmin, Phone: "+15550000"}
	p := New(original, testSchedule())

	var updated *models.User
	p.EditUser()
	staged := p.User.Staged
	staged.Name = "X"
	p.StageUser(staged)
	p.SaveUser(func(u models.User) { updated = &u })

	require.NotNil(t, updated)
	assert.Equal(t, "X", updated.Name)
	assert.False(t, p.User.Editing)

	p.EditUser()
	assert.Equal(t, "X", p.User.Staged.Name)
	assert.Equal(t, "X", p.User.Committed.Name)
}

func TestCancelUserRestoresCommitted(t *testing.T) {
	original := models.User{Name: "Carol", Role: models.RoleAdmin, Phone: "+15550000"}
	p := New(original, testSchedule())

	called := false
	p.EditUser()
	p.StageUser(models.User{Name: "X", Role: models.RoleSupervisor, Phone: "1"})
	p.CancelUser()
	p.SaveUser(func(models.User) { called = true })

	assert.False(t, called)
	assert.False(t, p.User.Editing)
	assert.Equal(t, original, p.User.Committed)
	assert.Equal(t, original, p.User.Staged)
}

func TestStageIgnoredWhileViewing(t *testing.T) {
	original := models.User{Name: "Carol", Role: models.RoleAttendant, Phone: "1"}
	p := New(original, testSchedule())

	p.StageUser(models.User{Name: "X"})
	assert.Equal(t, original, p.User.Staged)
}

func TestScheduleEditsAreIndependent(t *testing.T) {
	p := New(models.User{Name: "Carol"}, testSchedule())

	p.EditSchedule()
	staged := p.Schedule.Staged.Clone()
	staged[time.Monday] = models.DaySchedule{Enabled: false, StartTime: "10:00", EndTime: "12:00"}
	p.StageSchedule(staged)

	assert.True(t, p.Schedule.Committed[time.Monday].Enabled)
	assert.False(t, p.User.Editing)

	var saved models.Schedule
	p.SaveSchedule(zap.NewNop().Sugar(), func(s models.Schedule) { saved = s })

	assert.False(t, p.Schedule.Editing)
	assert.Equal(t, "10:00", p.Schedule.Committed[time.Monday].StartTime)
	assert.Equal(t, p.Schedule.Committed, saved)

	saved[time.Tuesday] = models.DaySchedule{}
	assert.True(t, p.Schedule.Committed[time.Tuesday].Enabled)
}

func TestCancelScheduleRestoresCommitted(t *testing.T) {
	schedule := testSchedule()
	p := New(models.User{Name: "Carol"}, schedule)

	p.EditSchedule()
	p.Schedule.Staged[time.Friday] = models.DaySchedule{}
	p.CancelSchedule()

	assert.Equal(t, schedule, p.Schedule.Committed)
	assert.Equal(t, schedule, p.Schedule.Staged)
}
