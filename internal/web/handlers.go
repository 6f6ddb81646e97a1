package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/editor"
	"github.com/Zachkp/portfolio/internal/session"
)

type pageData struct {
	Title     string
	Page      *content.Page
	Session   *session.Session
	Contact   contact.Result
	Dialog    *editor.Dialog
	HasResume bool
}

type loginData struct {
	Title string
	Error string
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// redirect sends the browser to target. htmx requests get HX-Redirect so the
// whole page reloads instead of swapping the response into a fragment.
func redirect(c *gin.Context, target string) {
	if isHTMX(c) {
		c.Header("HX-Redirect", target)
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, content.ErrIndexOutOfRange),
		errors.Is(err, content.ErrUnknownSection),
		errors.Is(err, editor.ErrUnknownDialog):
		status = http.StatusNotFound
	default:
		s.l.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.String(status, http.StatusText(status))
}

func paramIndex(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return i, true
}

func (s *Server) renderPage(c *gin.Context, status int, data pageData) {
	page, err := s.content.Page(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	data.Title = s.title
	data.Page = page
	data.Session = session.FromContext(c)
	data.HasResume = s.resume.Path != "" || s.resume.URL != ""
	c.HTML(status, "index.html", data)
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderPage(c, http.StatusOK, pageData{})
}

func (s *Server) handleLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginData{Title: s.title})
}

func (s *Server) handleLogin(c *gin.Context) {
	sess, err := s.sessions.SignIn(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		s.l.Info("failed sign-in", zap.String("client", s.sessions.HashIP(c.ClientIP())))
		c.HTML(http.StatusUnauthorized, "login.html", loginData{Title: s.title, Error: "Invalid username or password"})
		return
	}
	if err := s.sessions.Save(c, &sess); err != nil {
		s.fail(c, err)
		return
	}
	s.l.Info("signed in", zap.String("user", sess.Username))
	redirect(c, "/")
}

func (s *Server) handleLogout(c *gin.Context) {
	sess := session.FromContext(c)
	sess.SignOut()
	if err := s.sessions.Save(c, sess); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "/")
}

func (s *Server) handleToggleMode(c *gin.Context) {
	sess := session.FromContext(c)
	sess.ToggleAdminMode()
	if sess.SignedIn {
		if err := s.sessions.Save(c, sess); err != nil {
			s.fail(c, err)
			return
		}
	}
	redirect(c, "/")
}

func (s *Server) dialogParams(c *gin.Context) (string, int, bool) {
	id := c.Param("dialog")
	if c.Param("index") == "" {
		if editor.IsList(id) {
			c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return "", 0, false
		}
		return id, 0, true
	}
	idx, ok := paramIndex(c, "index")
	return id, idx, ok
}

func (s *Server) showDialog(c *gin.Context, d *editor.Dialog) {
	if isHTMX(c) {
		c.HTML(http.StatusOK, "dialog.html", d)
		return
	}
	s.renderPage(c, http.StatusOK, pageData{Dialog: d})
}

func (s *Server) handleOpenDialog(c *gin.Context) {
	id, idx, ok := s.dialogParams(c)
	if !ok {
		return
	}
	d, err := s.editor.Open(c.Request.Context(), id, idx)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.showDialog(c, d)
}

// handleCloseDialog is cancel. It never touches the store.
func (s *Server) handleCloseDialog(c *gin.Context) {
	if isHTMX(c) {
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleSaveDialog(c *gin.Context) {
	id, idx, ok := s.dialogParams(c)
	if !ok {
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	values := make(map[string]string, len(c.Request.PostForm))
	for k := range c.Request.PostForm {
		values[k] = c.Request.PostForm.Get(k)
	}

	if err := s.editor.Save(c.Request.Context(), id, idx, values); err != nil {
		s.fail(c, err)
		return
	}
	d := editor.Dialog{ID: id, Index: idx}
	redirect(c, "/#"+d.Anchor())
}

func (s *Server) afterSkillsChange(c *gin.Context) {
	if !isHTMX(c) {
		c.Redirect(http.StatusSeeOther, "/#skills")
		return
	}
	d, err := s.editor.Open(c.Request.Context(), "skills", 0)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "dialog.html", d)
}

func (s *Server) handleAddSkill(c *gin.Context) {
	cat, ok := paramIndex(c, "cat")
	if !ok {
		return
	}
	if _, err := s.content.AddSkill(c.Request.Context(), cat, c.PostForm("skill")); err != nil {
		s.fail(c, err)
		return
	}
	s.afterSkillsChange(c)
}

func (s *Server) handleRemoveSkill(c *gin.Context) {
	cat, ok := paramIndex(c, "cat")
	if !ok {
		return
	}
	idx, ok := paramIndex(c, "idx")
	if !ok {
		return
	}
	if err := s.content.RemoveSkill(c.Request.Context(), cat, idx); err != nil {
		s.fail(c, err)
		return
	}
	s.afterSkillsChange(c)
}

func (s *Server) handleDeleteWork(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	if err := s.content.DeleteWorkItem(c.Request.Context(), idx); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "/#projects")
}

func (s *Server) handleDeletePortfolio(c *gin.Context) {
	idx, ok := paramIndex(c, "index")
	if !ok {
		return
	}
	if err := s.content.DeletePortfolioItem(c.Request.Context(), idx); err != nil {
		s.fail(c, err)
		return
	}
	redirect(c, "/#projects")
}

func (s *Server) handleReset(c *gin.Context) {
	if c.PostForm("confirm") != "yes" {
		c.String(http.StatusBadRequest, "reset not confirmed")
		return
	}
	if err := s.content.Reset(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	s.l.Warn("content reset to defaults", zap.String("user", session.FromContext(c).Username))
	redirect(c, "/")
}

func (s *Server) handleContact(c *gin.Context) {
	var f contact.Form
	if err := c.ShouldBind(&f); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	res := s.submitter.Submit(c.Request.Context(), f)
	if isHTMX(c) {
		c.HTML(http.StatusOK, "contact_form.html", res)
		return
	}
	s.renderPage(c, http.StatusOK, pageData{Contact: res})
}
