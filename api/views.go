package api

import (
	"strings"
	"time"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
	"github.com/mbenaiss/whatsapp-helpdesk/i18n"
	"github.com/mbenaiss/whatsapp-helpdesk/login"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

type page struct {
	T         i18n.Translations
	Language  string
	Languages []i18n.Language
	Back      string
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type loginPage struct {
	page
	Form  login.Form
	Roles []option
	Error string
}

type tabLink struct {
	Value  int
	Label  string
	Active bool
}

type dialogView struct {
	Open        bool
	Title       string
	NumberLabel string
	Name        string
	Phone       string
}

type dashboardPage struct {
	page
	User      models.User
	RoleLabel string
	Tabs      []tabLink
	ChatTab   bool
	Kind      models.Kind
	ListTitle string
	Count     int
	Contacts  []models.Contact
	Instances []models.Instance
	Chats     []dashboard.ChatSummary
	Selected  *dashboard.ChatView
	Dialog    dialogView
}

type dayRow struct {
	Key     string
	Label   string
	Enabled bool
	Start   string
	End     string
}

type profilePage struct {
	page
	User            models.User
	RoleLabel       string
	Staged          models.User
	Editing         bool
	Roles           []option
	Days            []dayRow
	ScheduleEditing bool
}

func newPage(st *dashboard.State, back string) page {
	return page{
		T:         st.T(),
		Language:  st.Language,
		Languages: i18n.Supported(),
		Back:      back,
	}
}

func roleOptions(t i18n.Translations, selected models.Role) []option {
	out := make([]option, 0, len(models.Roles))
	for _, r := range models.Roles {
		out = append(out, option{Value: string(r), Label: t.Text(string(r)), Selected: r == selected})
	}
	return out
}

func newLoginPage(st *dashboard.State, form login.Form) loginPage {
	p := loginPage{
		page: newPage(st, "/login"),
		Form: form,
	}

	role := models.Role(form.Role)
	if !role.Valid() {
		role = models.RoleAttendant
	}
	p.Roles = roleOptions(p.T, role)

	if st.LoginError != "" {
		p.Error = p.T.Text(st.LoginError)
	}
	return p
}

func newDashboardPage(st *dashboard.State) dashboardPage {
	p := dashboardPage{
		page:      newPage(st, "/dashboard"),
		User:      *st.User,
		RoleLabel: st.T().Text(string(st.User.Role)),
		ChatTab:   st.Tab == models.TabChatHistory,
	}

	for _, tab := range models.Tabs {
		p.Tabs = append(p.Tabs, tabLink{
			Value:  int(tab),
			Label:  p.T.Text(tab.Key()),
			Active: tab == st.Tab,
		})
	}

	if p.ChatTab {
		p.ListTitle = p.T.Text("clientChats")
		p.Chats = st.ChatList()
		if chat, ok := st.SelectedChat(); ok {
			p.Selected = &chat
		}
	} else {
		p.Kind = models.KindForTab(st.Tab)
		p.ListTitle = p.T.Text(p.Kind.ListTitleKey())
		p.Count = st.Count(p.Kind)
		if p.Kind == models.KindInstance {
			p.Instances = st.Instances
		} else {
			p.Contacts = st.Contacts(p.Kind)
		}
	}

	if st.Dialog.Open {
		p.Dialog = dialogView{
			Open:        true,
			Title:       p.T.Text(st.Dialog.Kind.DialogTitleKey()),
			NumberLabel: p.T.Text(st.Dialog.Kind.NumberLabelKey()),
			Name:        st.Dialog.Name,
			Phone:       st.Dialog.Phone,
		}
	}

	return p
}

func dayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}

func newProfilePage(st *dashboard.State) profilePage {
	p := profilePage{page: newPage(st, "/profile")}
	if st.Profile == nil {
		return p
	}

	user := st.Profile.User
	p.User = user.Committed
	p.RoleLabel = p.T.Text(string(user.Committed.Role))
	p.Staged = user.Staged
	p.Editing = user.Editing
	p.Roles = roleOptions(p.T, user.Staged.Role)

	schedule := st.Profile.Schedule
	p.ScheduleEditing = schedule.Editing
	shown := schedule.Committed
	if schedule.Editing {
		shown = schedule.Staged
	}
	for _, day := range models.Weekdays {
		entry := shown[day]
		p.Days = append(p.Days, dayRow{
			Key:     dayKey(day),
			Label:   p.T.Text(dayKey(day)),
			Enabled: entry.Enabled,
			Start:   entry.StartTime,
			End:     entry.EndTime,
		})
	}

	return p
}
