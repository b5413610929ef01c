package usecase

import (
	"context"
	"fmt"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/domain/service"
	"portfolia/internal/infrastructure/ratelimit"
	"portfolia/internal/infrastructure/realtime"
	"portfolia/pkg/errors"
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type ContactUseCase struct {
	contactRepo repository.ContactRepository
	email       *service.EmailService
	notifier    *NotificationUseCase
	bus         *realtime.Bus
	rateLimiter *ratelimit.RateLimiter
	adminEmail  string
}

func NewContactUseCase(
	contactRepo repository.ContactRepository,
	email *service.EmailService,
	notifier *NotificationUseCase,
	bus *realtime.Bus,
	adminEmail string,
) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		email:       email,
		notifier:    notifier,
		bus:         bus,
		rateLimiter: ratelimit.NewRateLimiter(),
		adminEmail:  adminEmail,
	}
}

// Submit records a contact-form message, mails the site owner and raises an
// admin notification. Rate limited per client to keep the form from being a
// spam cannon.
func (uc *ContactUseCase) Submit(ctx context.Context, clientKey string, input ContactInput) (*entity.ContactMessage, error) {
	allowed, waitTime := uc.rateLimiter.Allow(clientKey, "contact_submit")
	if !allowed {
		return nil, errors.TooManyRequests("Too many messages. Please try again later.", waitTime)
	}

	msg := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Body:    input.Body,
	}
	if err := uc.contactRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.bus.Publish(realtime.ChangeEvent{
		Event: realtime.EventInsert,
		Table: contactTable,
		New:   msg,
	})

	if uc.adminEmail != "" {
		subject := fmt.Sprintf("Contact form: %s", input.Subject)
		body := fmt.Sprintf("From: %s <%s>\n\n%s", input.Name, input.Email, input.Body)
		uc.email.Send(ctx, uc.adminEmail, subject, body)
	}

	uc.notifier.Dispatch(ctx, entity.NotificationEvent{
		Title:      "New Contact Message",
		Body:       input.Subject,
		Type:       entity.NotifyEmail,
		SenderName: input.Name,
	})

	return msg, nil
}

func (uc *ContactUseCase) ListMessages(ctx context.Context, limit, offset int) ([]*entity.ContactMessage, int64, error) {
	return uc.contactRepo.ListMessages(ctx, limit, offset)
}

func (uc *ContactUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.contactRepo.MarkRead(ctx, id)
}

func (uc *ContactUseCase) ListEmailLogs(ctx context.Context, limit, offset int) ([]*entity.EmailLog, int64, error) {
	return uc.contactRepo.ListEmailLogs(ctx, limit, offset)
}
