package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
	"github.com/givewell/donation-service/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func donationEvent(email string) *domain.DonationEvent {
	return &domain.DonationEvent{
		EventID:       "evt_1",
		PaymentRef:    "pi_123",
		Amount:        decimal.NewFromInt(50),
		Currency:      "USD",
		DonorName:     "Jane Doe",
		DonorEmail:    email,
		Designation:   "general",
		PaymentMethod: "card",
	}
}

type webhookDeps struct {
	verifier  *mocks.MockEventVerifier
	donations *mocks.MockDonationRepository
	mailer    *mocks.MockMailer
}

func newWebhookUseCase(t *testing.T, stripeCfg configs.Stripe, donationCfg configs.Donation) (*WebhookUseCase, webhookDeps) {
	d := webhookDeps{
		verifier:  mocks.NewMockEventVerifier(t),
		donations: mocks.NewMockDonationRepository(t),
		mailer:    mocks.NewMockMailer(t),
	}
	u := NewWebhookUseCase(d.verifier, d.donations, d.mailer, stripeCfg, donationCfg, discardLogger())
	return u, d
}

func TestWebhookRecordsDonationAndSendsReceipt(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(donationEvent("jane@example.com"), nil)
	d.donations.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Run(func(ctx context.Context, don *domain.Donation) {
			don.ID = 7
			assert.Equal(t, "pi_123", don.PaymentRef)
			assert.Equal(t, domain.DonationCompleted, don.Status)
			assert.Equal(t, "50.00", don.Amount.StringFixed(2))
		}).
		Return(nil)
	d.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("port.Message")).
		Run(func(ctx context.Context, msg port.Message) {
			assert.Equal(t, "jane@example.com", msg.To)
			assert.Contains(t, msg.HTML, "50.00")
			assert.Contains(t, msg.HTML, "pi_123")
		}).
		Return(nil)
	d.donations.EXPECT().MarkReceiptSent(mock.Anything, int64(7)).Return(nil)

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
}

func TestWebhookAnonymousEmailSkipsReceipt(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(donationEvent(domain.AnonymousEmail), nil)
	d.donations.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Donation")).Return(nil)

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
	d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestWebhookInsertFailureStillAcknowledges(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(donationEvent("jane@example.com"), nil)
	d.donations.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Donation")).Return(errors.New("connection reset"))

	// persistence failure must not surface to the gateway
	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
	d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestWebhookReceiptFailureStillAcknowledges(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(donationEvent("jane@example.com"), nil)
	d.donations.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Donation")).Return(nil)
	d.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("port.Message")).Return(errors.New("provider down"))

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
	d.donations.AssertNotCalled(t, "MarkReceiptSent", mock.Anything, mock.Anything)
}

func TestWebhookVerificationFailureRejects(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=bad"

	verifyErr := fmt.Errorf("%w: no matching v1 signature", port.ErrSignatureMismatch)
	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(nil, verifyErr)

	err := u.HandlePaymentWebhook(context.Background(), payload, header)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrSignatureMismatch)
}

func TestWebhookSkewRejectedByDefault(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{AllowUnverifiedOnSkew: false}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).
		Return(nil, fmt.Errorf("%w: timestamp too old", port.ErrTimestampSkew))

	err := u.HandlePaymentWebhook(context.Background(), payload, header)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrTimestampSkew)
	d.verifier.AssertNotCalled(t, "ParseUnverified", mock.Anything)
}

func TestWebhookSkewFallbackWhenEnabled(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{AllowUnverifiedOnSkew: true}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).
		Return(nil, fmt.Errorf("%w: timestamp too old", port.ErrTimestampSkew))
	d.verifier.EXPECT().ParseUnverified(payload).Return(donationEvent(domain.AnonymousEmail), nil)
	d.donations.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Donation")).Return(nil)

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
}

func TestWebhookSkewFallbackBadJSONReturnsOriginalError(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{AllowUnverifiedOnSkew: true}, configs.Donation{})
	payload, header := []byte(`{not json`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).
		Return(nil, fmt.Errorf("%w: timestamp too old", port.ErrTimestampSkew))
	d.verifier.EXPECT().ParseUnverified(payload).
		Return(nil, fmt.Errorf("%w: invalid character", port.ErrMalformedPayload))

	err := u.HandlePaymentWebhook(context.Background(), payload, header)
	require.Error(t, err)
	// the rejection carries the original verification failure
	assert.ErrorIs(t, err, port.ErrTimestampSkew)
}

func TestWebhookIgnoredEventType(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(nil, nil)

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
	d.donations.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// Redelivery of the same payload currently records two donation rows. This
// pins the historical behavior behind the default config; flipping
// DONATION_IDEMPOTENT changes it, see below.
func TestWebhookReplayDoubleRecords(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{Idempotent: false})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(donationEvent(domain.AnonymousEmail), nil).Twice()
	d.donations.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Donation")).Return(nil).Twice()

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
}

func TestWebhookIdempotentSkipsDuplicate(t *testing.T) {
	u, d := newWebhookUseCase(t, configs.Stripe{}, configs.Donation{Idempotent: true})
	payload, header := []byte(`{}`), "t=1,v1=ab"

	d.verifier.EXPECT().VerifyAndParse(payload, header).Return(donationEvent(domain.AnonymousEmail), nil)
	d.donations.EXPECT().ExistsByPaymentRef(mock.Anything, "pi_123").Return(true, nil)

	require.NoError(t, u.HandlePaymentWebhook(context.Background(), payload, header))
	d.donations.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
