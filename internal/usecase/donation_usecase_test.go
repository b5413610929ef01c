package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/service"
	"portfolia/internal/infrastructure/realtime"
	apperrors "portfolia/pkg/errors"
)

func donationFixture(t *testing.T) (*DonationUseCase, *fakeDonationRepo, *fakeGateway) {
	t.Helper()
	repo := newFakeDonationRepo()
	gateway := newFakeGateway()
	uc := NewDonationUseCase(repo, gateway, realtime.NewBus(), "KES")
	return uc, repo, gateway
}

func TestInitializeRejectsNonPositiveAmount(t *testing.T) {
	uc, _, _ := donationFixture(t)

	_, err := uc.Initialize(context.Background(), InitializeDonationInput{Email: "a@b.c", Amount: 0})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	_, err = uc.Initialize(context.Background(), InitializeDonationInput{Email: "a@b.c", Amount: -500})
	assert.Error(t, err)
}

func TestInitializeGeneratesUniqueReference(t *testing.T) {
	uc, _, _ := donationFixture(t)

	first, err := uc.Initialize(context.Background(), InitializeDonationInput{Email: "a@b.c", Amount: 1000})
	require.NoError(t, err)
	second, err := uc.Initialize(context.Background(), InitializeDonationInput{Email: "a@b.c", Amount: 1000})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.Reference, "don_"))
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestInitializeWrapsGatewayFailure(t *testing.T) {
	uc, _, gateway := donationFixture(t)
	gateway.initErr = errors.New("gateway timeout")

	_, err := uc.Initialize(context.Background(), InitializeDonationInput{Email: "a@b.c", Amount: 1000})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "PAYMENT_FAILED"))
}

func TestVerifyRecordsOnlyGatewayConfirmedSuccess(t *testing.T) {
	uc, repo, gateway := donationFixture(t)
	gateway.verifications["don_ok"] = &service.PaymentVerification{
		Reference: "don_ok",
		Status:    "success",
		Amount:    2500,
		Currency:  "KES",
		Channel:   "mobile_money",
		Email:     "giver@example.com",
		PaidAt:    time.Now(),
	}

	donation, err := uc.Verify(context.Background(), "don_ok", "Giver")
	require.NoError(t, err)

	assert.Equal(t, entity.DonationSuccess, donation.Status)
	assert.Equal(t, int64(2500), donation.Amount)
	assert.Equal(t, "mobile_money", donation.Channel)

	stored, err := repo.GetByReference(context.Background(), "don_ok")
	require.NoError(t, err)
	assert.Equal(t, donation.ID, stored.ID)
}

func TestVerifyFailedPaymentRecordsNothing(t *testing.T) {
	uc, repo, gateway := donationFixture(t)
	gateway.verifications["don_bad"] = &service.PaymentVerification{
		Reference: "don_bad",
		Status:    "failed",
	}

	_, err := uc.Verify(context.Background(), "don_bad", "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "PAYMENT_FAILED"))

	_, err = repo.GetByReference(context.Background(), "don_bad")
	assert.Error(t, err, "a failed payment must leave no donation row")
}

func TestVerifyPendingPaymentRecordsNothing(t *testing.T) {
	uc, repo, gateway := donationFixture(t)
	gateway.verifications["don_wait"] = &service.PaymentVerification{
		Reference: "don_wait",
		Status:    "pending",
	}

	_, err := uc.Verify(context.Background(), "don_wait", "")
	assert.Error(t, err)

	_, err = repo.GetByReference(context.Background(), "don_wait")
	assert.Error(t, err)
}

func TestVerifyIsIdempotentPerReference(t *testing.T) {
	uc, repo, gateway := donationFixture(t)
	gateway.verifications["don_once"] = &service.PaymentVerification{
		Reference: "don_once",
		Status:    "success",
		Amount:    1000,
		Currency:  "KES",
		Email:     "giver@example.com",
		PaidAt:    time.Now(),
	}

	first, err := uc.Verify(context.Background(), "don_once", "Giver")
	require.NoError(t, err)

	// The thank-you page was refreshed: same reference verified again.
	second, err := uc.Verify(context.Background(), "don_once", "Giver")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "a replayed verification must return the original row")

	donations, total, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, donations, 1)
}

func TestVerifyRequiresReference(t *testing.T) {
	uc, _, _ := donationFixture(t)

	_, err := uc.Verify(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}
