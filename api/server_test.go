package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
	"github.com/mbenaiss/whatsapp-helpdesk/metrics"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/services"
	"github.com/mbenaiss/whatsapp-helpdesk/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// browser replays the session cookie like a browser would
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	log := zap.NewNop().Sugar()
	m := metrics.New()
	svc := services.NewService(session.NewManager(session.NewMemoryStore(), "en", log), m, log)

	srv, err := NewServer(svc, m, log, Options{
		Port:          "0",
		SessionSecret: "test-secret",
		SessionMaxAge: time.Hour,
	})
	require.NoError(t, err)

	return &browser{t: t, handler: srv.Handler()}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		b.cookies = cookies
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	return b.do(http.MethodPost, path, form)
}

func (b *browser) login(name, role string) {
	b.t.Helper()
	w := b.post("/login", url.Values{"name": {name}, "phone": {"+1 555 0100"}, "role": {role}})
	require.Equal(b.t, http.StatusSeeOther, w.Code)
	require.Equal(b.t, "/dashboard", w.Header().Get("Location"))
}

func (b *browser) state() *dashboard.State {
	b.t.Helper()
	w := b.get("/api/state")
	require.Equal(b.t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    *dashboard.State `json:"data"`
	}
	require.NoError(b.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(b.t, resp.Success)
	return resp.Data
}

func TestHealth(t *testing.T) {
	b := newBrowser(t)
	w := b.get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"ok"}`, w.Body.String())
}

func TestIndexRedirects(t *testing.T) {
	b := newBrowser(t)

	w := b.get("/")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.NotEmpty(t, b.cookies)

	b.login("Carol", "admin")
	w = b.get("/")
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLoginValidation(t *testing.T) {
	b := newBrowser(t)

	w := b.post("/login", url.Values{"name": {"Carol"}, "phone": {"abc"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid phone number")
	assert.Contains(t, w.Body.String(), `value="Carol"`)

	w = b.post("/login", url.Values{"name": {"  "}, "phone": {"+1"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all fields")

	b.post("/login/dismiss", nil)
	w = b.get("/login")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Please fill in all fields")
}

func TestDashboardRequiresLogin(t *testing.T) {
	b := newBrowser(t)

	for _, path := range []string{"/dashboard", "/profile"} {
		w := b.get(path)
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := b.post("/dashboard/tab", url.Values{"tab": {"bots"}})
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestWelcomeBanner(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	w := b.get("/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome, Carol (Administrator)")
	assert.Contains(t, w.Body.String(), "John Doe")
	assert.Contains(t, w.Body.String(), "Attendants (2)")
}

func TestAddInstance(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	b.post("/dashboard/tab", url.Values{"tab": {"instances"}})
	b.post("/dashboard/dialog", nil)

	w := b.get("/dashboard")
	assert.Contains(t, w.Body.String(), "Add New Instance")
	assert.Contains(t, w.Body.String(), "Instance Number")

	w = b.post("/dashboard/dialog/confirm", url.Values{"name": {"Backup"}, "phone": {""}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, b.state().Dialog.Open)

	b.post("/dashboard/dialog/confirm", url.Values{"name": {"Backup"}, "phone": {"+1999"}})

	st := b.state()
	assert.False(t, st.Dialog.Open)
	require.Len(t, st.Instances, 2)
	assert.Equal(t, "Backup", st.Instances[1].Name)
	assert.Equal(t, models.StatusDisconnected, st.Instances[1].Status)
}

func TestDelete(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	w := b.post("/dashboard/records/clients/2/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, b.state().Clients, 1)

	w = b.post("/dashboard/records/clients/2/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Len(t, b.state().Clients, 1)

	w = b.post("/dashboard/records/robots/1/delete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHistory(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	b.post("/dashboard/tab", url.Values{"tab": {"chatHistory"}})
	w := b.get("/dashboard")
	assert.Contains(t, w.Body.String(), "Alice Johnson")
	assert.Contains(t, w.Body.String(), "Select a chat to view history")

	b.post("/dashboard/chats/1", nil)
	w = b.get("/dashboard")
	assert.Contains(t, w.Body.String(), "Hello, I need help")
	assert.Contains(t, w.Body.String(), `class="bubble right"`)
	assert.Contains(t, w.Body.String(), `class="bubble left"`)
}

func TestLanguageSwitch(t *testing.T) {
	b := newBrowser(t)

	w := b.post("/dashboard/language", url.Values{"lang": {"pt"}, "back": {"/login"}})
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = b.get("/login")
	assert.Contains(t, w.Body.String(), "Entrar no Painel")

	w = b.post("/dashboard/language", url.Values{"lang": {"en"}, "back": {"https://example.com"}})
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestProfileFlow(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	w := b.get("/profile")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User Profile")

	w = b.get("/dashboard")
	assert.Equal(t, "/profile", w.Header().Get("Location"))

	b.post("/profile/edit", nil)
	b.post("/profile/save", url.Values{"name": {"Dora"}, "phone": {"+1"}, "role": {"supervisor"}})
	b.post("/profile/back", nil)

	w = b.get("/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome, Dora (Supervisor)")
}

func TestProfileCancel(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	b.get("/profile")
	b.post("/profile/edit", nil)
	b.post("/profile/cancel", nil)
	b.post("/profile/save", url.Values{"name": {"Dora"}, "phone": {"+1"}})

	assert.Equal(t, "Carol", b.state().User.Name)
}

func TestScheduleSave(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	b.get("/profile")
	b.post("/profile/schedule/edit", nil)

	form := url.Values{}
	for _, day := range models.Weekdays {
		key := dayKey(day)
		form.Set(key+"_start", "10:00")
		form.Set(key+"_end", "16:00")
	}
	form.Set("sunday_enabled", "on")
	b.post("/profile/schedule/save", form)

	st := b.state()
	assert.True(t, st.Schedule[time.Sunday].Enabled)
	assert.False(t, st.Schedule[time.Monday].Enabled)
	assert.Equal(t, "10:00", st.Schedule[time.Friday].StartTime)

	b.post("/profile/back", nil)
	b.get("/profile")
	assert.Equal(t, "16:00", b.state().Profile.Schedule.Committed[time.Sunday].EndTime)
}

func TestTranslationsEndpoint(t *testing.T) {
	b := newBrowser(t)

	w := b.get("/api/translations/es")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "es", resp.Message)
	assert.Equal(t, "Clientes", resp.Data["clients"])

	w = b.get("/api/translations/xx")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Message)
	assert.Equal(t, "Clients", resp.Data["clients"])
}

func TestInstanceQR(t *testing.T) {
	b := newBrowser(t)

	w := b.get("/api/instances/1/qr")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	b.login("Carol", "admin")
	w = b.get("/api/instances/1/qr?size=64")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = b.get("/api/instances/42/qr")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	w := b.get("/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `helpdesk_logins_total{result="ok"} 1`)
}

func TestAddFromChatHistoryAddsAttendant(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	b.post("/dashboard/tab", url.Values{"tab": {"chatHistory"}})
	w := b.get("/dashboard")
	assert.Contains(t, w.Body.String(), `action="/dashboard/dialog"`)

	b.post("/dashboard/dialog", nil)
	w = b.get("/dashboard")
	assert.Contains(t, w.Body.String(), "Add New Attendant")

	b.post("/dashboard/dialog/confirm", url.Values{"name": {"Eve"}, "phone": {"+1777"}})
	st := b.state()
	require.Len(t, st.Attendants, 3)
	assert.Equal(t, "Eve", st.Attendants[2].Name)
	assert.Equal(t, models.TabChatHistory, st.Tab)
}

func TestProfileShowsUserReadOnly(t *testing.T) {
	b := newBrowser(t)
	b.login("Carol", "admin")

	w := b.get("/profile")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Full Name: Carol")
	assert.Contains(t, body, "Phone Number: +1 555 0100")
	assert.Contains(t, body, "Role: Administrator")
	assert.NotContains(t, body, `name="name"`)
}
