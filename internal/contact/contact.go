// Package contact handles contact form submissions.
//
// A submission moves Idle -> Submitting -> Success or Failed and always lands
// back in Idle. Validation failures never leave Idle and never reach the Sender.
package contact

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// State is the position of a submission in the form's state machine.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Form holds the visitor's input.
type Form struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Validate reports whether the required fields are filled in.
func (f Form) Validate() error {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// ErrMissingFields is returned when name, email or message is empty.
var ErrMissingFields = errors.New("please fill in all required fields")

// Sender delivers a validated submission.
type Sender interface {
	Send(ctx context.Context, f Form) error
}

// NoticeKind tells the page how to style a notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the toast shown after a submission attempt.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

// Result is what the page renders after a submission attempt.
type Result struct {
	// Outcome is Success or Failed after a send attempt, Idle after a
	// validation failure. The form itself is always back in Idle.
	Outcome State
	Form    Form
	Notice  Notice
}

// Submitter runs submissions through the state machine.
type Submitter struct {
	sender Sender
	direct string
	l      *zap.Logger
}

// NewSubmitter returns a Submitter that delivers through sender. directEmail
// is offered to visitors as a fallback when sending fails.
func NewSubmitter(sender Sender, directEmail string, l *zap.Logger) *Submitter {
	if l == nil {
		l = zap.NewNop()
	}
	return &Submitter{sender: sender, direct: directEmail, l: l.Named("contact")}
}

// Submit validates f and makes exactly one delivery attempt.
func (s *Submitter) Submit(ctx context.Context, f Form) Result {
	if err := f.Validate(); err != nil {
		return Result{
			Outcome: Idle,
			Form:    f,
			Notice:  Notice{Kind: NoticeError, Title: "Error", Description: "Please fill in all required fields."},
		}
	}

	s.l.Debug("submitting contact form", zap.Stringer("state", Submitting))

	if err := s.sender.Send(ctx, f); err != nil {
		s.l.Error("contact submission failed", zap.Error(err))
		desc := "Sorry, there was an error sending your message. Please try again later"
		if s.direct != "" {
			desc += " or email " + s.direct + " directly"
		}
		return Result{
			Outcome: Failed,
			Form:    f,
			Notice:  Notice{Kind: NoticeError, Title: "Message not sent", Description: desc + "."},
		}
	}

	s.l.Info("contact message sent", zap.String("from", f.Email))
	return Result{
		Outcome: Success,
		Form:    Form{},
		Notice:  Notice{Kind: NoticeSuccess, Title: "Message Sent!", Description: "Thank you for reaching out. I'll get back to you within 24 hours."},
	}
}
