package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSender struct {
	calls int
	last  Form
	err   error
}

func (c *countingSender) Send(_ context.Context, f Form) error {
	c.calls++
	c.last = f
	return c.err
}

func fullForm() Form {
	return Form{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Let's talk"}
}

func TestSubmit_MissingFieldsStaysIdle(t *testing.T) {
	cases := map[string]func(*Form){
		"name":    func(f *Form) { f.Name = "" },
		"email":   func(f *Form) { f.Email = "" },
		"message": func(f *Form) { f.Message = "" },
	}

	for field, blank := range cases {
		t.Run(field, func(t *testing.T) {
			sender := &countingSender{}
			s := NewSubmitter(sender, "", nil)

			f := fullForm()
			blank(&f)
			res := s.Submit(context.Background(), f)

			assert.Equal(t, Idle, res.Outcome)
			assert.Equal(t, NoticeError, res.Notice.Kind)
			assert.Equal(t, f, res.Form)
			assert.Zero(t, sender.calls)
		})
	}
}

func TestSubmit_SubjectOptional(t *testing.T) {
	sender := &countingSender{}
	s := NewSubmitter(sender, "", nil)

	f := fullForm()
	f.Subject = ""
	res := s.Submit(context.Background(), f)

	assert.Equal(t, Success, res.Outcome)
	assert.Equal(t, 1, sender.calls)
}

func TestSubmit_SuccessClearsForm(t *testing.T) {
	sender := &countingSender{}
	s := NewSubmitter(sender, "me@example.com", nil)

	res := s.Submit(context.Background(), fullForm())

	assert.Equal(t, Success, res.Outcome)
	assert.Equal(t, Form{}, res.Form)
	assert.Equal(t, NoticeSuccess, res.Notice.Kind)
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, fullForm(), sender.last)
}

func TestSubmit_FailurePreservesForm(t *testing.T) {
	sender := &countingSender{err: errors.New("boom")}
	s := NewSubmitter(sender, "me@example.com", nil)

	res := s.Submit(context.Background(), fullForm())

	assert.Equal(t, Failed, res.Outcome)
	assert.Equal(t, fullForm(), res.Form)
	assert.Equal(t, NoticeError, res.Notice.Kind)
	assert.Contains(t, res.Notice.Description, "me@example.com")
	assert.Equal(t, 1, sender.calls)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestHTTPSender_PostsJSON(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var got map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]string{
			"name": "Ada", "email": "ada@example.com", "subject": "Hi", "message": "Let's talk",
		}, got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := &HTTPSender{Endpoint: srv.URL, Client: srv.Client()}
	require.NoError(t, sender.Send(context.Background(), fullForm()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestHTTPSender_NonOKIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := &HTTPSender{Endpoint: srv.URL}
	err := sender.Send(context.Background(), fullForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPSender_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	sender := &HTTPSender{Endpoint: url}
	assert.Error(t, sender.Send(context.Background(), fullForm()))
}

func TestHTTPSender_NoEndpoint(t *testing.T) {
	assert.Error(t, (&HTTPSender{}).Send(context.Background(), fullForm()))
}

func TestSubmitter_WithHTTPSenderFailureKeepsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewSubmitter(&HTTPSender{Endpoint: srv.URL}, "", nil)
	res := s.Submit(context.Background(), fullForm())

	assert.Equal(t, Failed, res.Outcome)
	assert.Equal(t, fullForm(), res.Form)
}

func TestSMTPSender_Send(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Username: "bot@example.com", Password: "pw", To: "owner@example.com"})

	var gotAddr string
	var gotMsg []byte
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		gotMsg = msg
		assert.Equal(t, "bot@example.com", from)
		assert.Equal(t, []string{"owner@example.com"}, to)
		return nil
	}

	f := fullForm()
	f.Name = "Ada\r\nBcc: victim@example.com"
	require.NoError(t, s.Send(context.Background(), f))

	assert.Equal(t, "smtp.gmail.com:587", gotAddr)
	headers := strings.SplitN(string(gotMsg), "\r\n\r\n", 2)[0]
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Reply-To: ada@example.com")
}

func TestSMTPSender_MissingCredentials(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{To: "owner@example.com"})
	assert.Error(t, s.Send(context.Background(), fullForm()))

	s = NewSMTPSender(SMTPConfig{Username: "u", Password: "p"})
	assert.Error(t, s.Send(context.Background(), fullForm()))
}
