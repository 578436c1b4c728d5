package services

import (
	"context"
	"errors"
	"testing"

	"fedoffice/internal/domain"
)

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

type fakeMailer struct {
	err    error
	lastTo string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.lastTo = to
	return f.err
}

func TestSummaryService_EmailSummary(t *testing.T) {
	f := newLookupFixture()
	f.regs.byProtocol["EVE-100"] = confirmedRegistration()
	f.events.events["ev-1"] = &domain.Event{ID: "ev-1", Title: "Copa"}

	t.Run("sends the rendered summary", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewSummaryService(f.service(), mailer, &fakeRenderer{}, testLogger())
		if err := svc.EmailSummary(context.Background(), "EVE-100", "ana@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mailer.lastTo != "ana@example.com" {
			t.Fatalf("expected send to ana@example.com, got %q", mailer.lastTo)
		}
	})

	t.Run("unknown protocol keeps ErrNotFound", func(t *testing.T) {
		svc := NewSummaryService(f.service(), &fakeMailer{}, &fakeRenderer{}, testLogger())
		err := svc.EmailSummary(context.Background(), "missing", "ana@example.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("mailer failure surfaces", func(t *testing.T) {
		svc := NewSummaryService(f.service(), &fakeMailer{err: errors.New("ses throttled")}, &fakeRenderer{}, testLogger())
		if err := svc.EmailSummary(context.Background(), "EVE-100", "ana@example.com"); err == nil {
			t.Fatal("expected error")
		}
	})
}
