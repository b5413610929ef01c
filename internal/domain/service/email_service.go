package service

import (
	"context"
	"time"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/pkg/logger"
)

// EmailSender is the delivery transport (SMTP, provider API). The logging
// service wraps whichever transport is configured.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// EmailService sends mail best-effort and records every attempt in
// email_logs. Failures are logged, never returned to the triggering flow.
type EmailService struct {
	sender      EmailSender
	contactRepo repository.ContactRepository
}

func NewEmailService(sender EmailSender, contactRepo repository.ContactRepository) *EmailService {
	return &EmailService{
		sender:      sender,
		contactRepo: contactRepo,
	}
}

func (s *EmailService) Send(ctx context.Context, to, subject, body string) {
	log := &entity.EmailLog{
		To:        to,
		Subject:   subject,
		Body:      body,
		Status:    entity.EmailSent,
		CreatedAt: time.Now(),
	}

	if s.sender != nil {
		if err := s.sender.Send(ctx, to, subject, body); err != nil {
			logger.Warn("Email delivery failed: to=%s subject=%q err=%v", to, subject, err)
			log.Status = entity.EmailFailed
			log.ErrorText = err.Error()
		}
	}

	if err := s.contactRepo.CreateEmailLog(ctx, log); err != nil {
		logger.Warn("Failed to record email log: %v", err)
	}
}
