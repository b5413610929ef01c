package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/domain/service"
	"portfolia/internal/infrastructure/realtime"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

type InitializeDonationInput struct {
	Email    string
	Amount   int64 // minor units
	Currency string
	Channel  string // "" = any, "mobile_money" for MPesa
}

type DonationUseCase struct {
	donationRepo    repository.DonationRepository
	gateway         service.PaymentGatewayService
	bus             *realtime.Bus
	defaultCurrency string
}

func NewDonationUseCase(
	donationRepo repository.DonationRepository,
	gateway service.PaymentGatewayService,
	bus *realtime.Bus,
	defaultCurrency string,
) *DonationUseCase {
	return &DonationUseCase{
		donationRepo:    donationRepo,
		gateway:         gateway,
		bus:             bus,
		defaultCurrency: defaultCurrency,
	}
}

// Initialize starts a checkout with the gateway and hands the client the
// reference it must bring back for verification.
func (uc *DonationUseCase) Initialize(ctx context.Context, input InitializeDonationInput) (*service.PaymentInit, error) {
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Amount must be positive", nil)
	}

	currency := input.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	var channels []string
	if input.Channel != "" {
		channels = []string{input.Channel}
	}

	reference := fmt.Sprintf("don_%s", uuid.New().String())

	init, err := uc.gateway.InitializePayment(ctx, service.PaymentRequest{
		Email:     input.Email,
		Amount:    input.Amount,
		Currency:  currency,
		Reference: reference,
		Channels:  channels,
	})
	if err != nil {
		return nil, errors.PaymentFailed("Could not start the payment", err)
	}

	return init, nil
}

// Verify asks the gateway about the reference and records the donation only
// on a verified success. The reference doubles as the idempotency key, so a
// replayed verification (callback-page refresh) returns the already-recorded
// row instead of inserting a second one.
func (uc *DonationUseCase) Verify(ctx context.Context, reference, donorName string) (*entity.Donation, error) {
	if reference == "" {
		return nil, errors.BadRequest("Reference is required", nil)
	}

	verification, err := uc.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		return nil, errors.PaymentFailed("Payment verification failed", err)
	}

	if verification.Status != "success" {
		logger.Info("Donation %s not successful (status=%s); nothing recorded", reference, verification.Status)
		return nil, errors.PaymentFailed("Payment was not completed", nil)
	}

	donation := &entity.Donation{
		Email:     verification.Email,
		Name:      donorName,
		Amount:    verification.Amount,
		Currency:  verification.Currency,
		Reference: reference,
		Channel:   verification.Channel,
		Status:    entity.DonationSuccess,
		PaidAt:    verification.PaidAt,
	}

	created, existing, err := uc.donationRepo.Create(ctx, donation)
	if err != nil {
		return nil, err
	}
	if !created {
		return existing, nil
	}

	uc.bus.Publish(realtime.ChangeEvent{
		Event:        realtime.EventInsert,
		Table:        donationsTable,
		New:          donation,
		FilterValues: map[string]string{"reference": reference},
	})

	return donation, nil
}

// List is the admin donations view.
func (uc *DonationUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Donation, int64, error) {
	return uc.donationRepo.List(ctx, limit, offset)
}
