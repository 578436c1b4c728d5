package services

import (
	"context"
	"fmt"
	"log/slog"

	"fedoffice/internal/domain"
)

type summaryService struct {
	lookup   domain.LookupService
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewSummaryService returns a SummaryService that resolves a registration and
// mails it using the "registration_summary" template.
func NewSummaryService(lookup domain.LookupService, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.SummaryService {
	return &summaryService{
		lookup:   lookup,
		mailer:   mailer,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *summaryService) EmailSummary(ctx context.Context, protocol, to string) error {
	details, err := s.lookup.GetByProtocol(ctx, protocol)
	if err != nil {
		return err
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_summary", details)
	if err != nil {
		return fmt.Errorf("render registration summary: %w", err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send registration summary: %w", err)
	}
	s.logger.InfoContext(ctx, "registration summary sent", "protocol", details.Protocol, "to", to)
	return nil
}
