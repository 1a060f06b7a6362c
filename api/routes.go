package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mbenaiss/whatsapp-helpdesk/dashboard"
	"github.com/mbenaiss/whatsapp-helpdesk/i18n"
	"github.com/mbenaiss/whatsapp-helpdesk/login"
	"github.com/mbenaiss/whatsapp-helpdesk/models"
	"github.com/mbenaiss/whatsapp-helpdesk/services"
)

const defaultQRSize = 256

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// fail answers a failed page action. Logged-out sessions go back to the login page.
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotAuthenticated) {
		redirect(c, "/login")
		return
	}

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.String(status, http.StatusText(status))
}

// act runs a page action and redirects to location on success
func (s *Server) act(c *gin.Context, location string, err error) {
	if err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, location)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnknownKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "ok",
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	st, err := s.service.State(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	if st.Authenticated() {
		redirect(c, "/dashboard")
		return
	}
	redirect(c, "/login")
}

func (s *Server) handleLoginPage(c *gin.Context) {
	st, err := s.service.State(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	if st.Authenticated() {
		redirect(c, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "login", newLoginPage(st, login.Form{}))
}

func (s *Server) handleLogin(c *gin.Context) {
	var form login.Form
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid form")
		return
	}

	st, err := s.service.Login(c.Request.Context(), sessionID(c), form)
	var verr *login.ValidationError
	if errors.As(err, &verr) {
		c.HTML(http.StatusUnprocessableEntity, "login", newLoginPage(st, form))
		return
	}

	s.act(c, "/dashboard", err)
}

func (s *Server) handleDismissLoginError(c *gin.Context) {
	s.act(c, "/login", s.service.DismissLoginError(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleLogout(c *gin.Context) {
	s.act(c, "/login", s.service.Logout(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleDashboard(c *gin.Context) {
	st, err := s.service.State(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	switch {
	case !st.Authenticated():
		redirect(c, "/login")
	case st.View == dashboard.ViewProfile:
		redirect(c, "/profile")
	default:
		c.HTML(http.StatusOK, "dashboard", newDashboardPage(st))
	}
}

func (s *Server) handleSelectTab(c *gin.Context) {
	tab := models.ParseTab(c.PostForm("tab"))
	s.act(c, "/dashboard", s.service.SelectTab(c.Request.Context(), sessionID(c), tab))
}

func (s *Server) handleLanguage(c *gin.Context) {
	back := c.PostForm("back")
	switch back {
	case "/login", "/dashboard", "/profile":
	default:
		back = "/"
	}

	s.act(c, back, s.service.SetLanguage(c.Request.Context(), sessionID(c), c.PostForm("lang")))
}

func (s *Server) handleOpenDialog(c *gin.Context) {
	s.act(c, "/dashboard", s.service.OpenAddDialog(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleConfirmDialog(c *gin.Context) {
	err := s.service.ConfirmAdd(c.Request.Context(), sessionID(c), c.PostForm("name"), c.PostForm("phone"))
	s.act(c, "/dashboard", err)
}

func (s *Server) handleCancelDialog(c *gin.Context) {
	s.act(c, "/dashboard", s.service.CancelAdd(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleDelete(c *gin.Context) {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		s.fail(c, fmt.Errorf("%q: %w", c.Param("kind"), services.ErrUnknownKind))
		return
	}

	s.act(c, "/dashboard", s.service.DeleteRecord(c.Request.Context(), sessionID(c), kind, c.Param("id")))
}

func (s *Server) handleSelectChat(c *gin.Context) {
	s.act(c, "/dashboard", s.service.SelectChat(c.Request.Context(), sessionID(c), c.Param("id")))
}

func (s *Server) handleProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	st, err := s.service.State(ctx, sid)
	if err != nil {
		s.fail(c, err)
		return
	}

	if st.View != dashboard.ViewProfile {
		if err := s.service.OpenProfile(ctx, sid); err != nil {
			s.fail(c, err)
			return
		}
		if st, err = s.service.State(ctx, sid); err != nil {
			s.fail(c, err)
			return
		}
	}

	c.HTML(http.StatusOK, "profile", newProfilePage(st))
}

func (s *Server) handleProfileBack(c *gin.Context) {
	s.act(c, "/dashboard", s.service.CloseProfile(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleProfileEdit(c *gin.Context) {
	s.act(c, "/profile", s.service.EditProfile(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleProfileSave(c *gin.Context) {
	user := models.User{
		Name:  c.PostForm("name"),
		Phone: c.PostForm("phone"),
		Role:  models.Role(c.PostForm("role")),
	}
	s.act(c, "/profile", s.service.SaveProfile(c.Request.Context(), sessionID(c), user))
}

func (s *Server) handleProfileCancel(c *gin.Context) {
	s.act(c, "/profile", s.service.CancelProfile(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleScheduleEdit(c *gin.Context) {
	s.act(c, "/profile", s.service.EditSchedule(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleScheduleSave(c *gin.Context) {
	schedule := make(models.Schedule, len(models.Weekdays))
	for _, day := range models.Weekdays {
		key := dayKey(day)
		schedule[day] = models.DaySchedule{
			Enabled:   c.PostForm(key+"_enabled") != "",
			StartTime: c.PostForm(key + "_start"),
			EndTime:   c.PostForm(key + "_end"),
		}
	}

	s.act(c, "/profile", s.service.SaveSchedule(c.Request.Context(), sessionID(c), schedule))
}

func (s *Server) handleScheduleCancel(c *gin.Context) {
	s.act(c, "/profile", s.service.CancelSchedule(c.Request.Context(), sessionID(c)))
}

func (s *Server) handleState(c *gin.Context) {
	st, err := s.service.State(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Message: fmt.Sprintf("Failed to get state: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    st,
	})
}

func (s *Server) handleTranslations(c *gin.Context) {
	lang := c.Param("lang")
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}

	// Unknown codes get the English table; the message names the table served.
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: lang,
		Data:    i18n.Get(lang),
	})
}

func (s *Server) handleInstanceQR(c *gin.Context) {
	size := defaultQRSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		if n, err := strconv.Atoi(sizeStr); err == nil && n > 0 && n <= 1024 {
			size = n
		}
	}

	png, err := s.service.InstanceQR(c.Request.Context(), sessionID(c), c.Param("id"), size)
	if err != nil {
		status := statusOf(err)
		if status == http.StatusInternalServerError {
			s.log.Errorw("failed to render QR code", "instance", c.Param("id"), "error", err)
		}
		c.JSON(status, Response{
			Success: false,
			Message: fmt.Sprintf("Failed to get QR code: %v", err),
		})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
