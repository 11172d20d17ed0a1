package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
)

// WebhookUseCase processes inbound payment webhook deliveries: verify (or
// fallback-parse), record the donation, then best-effort send the receipt.
// Persistence and delivery failures are logged and swallowed so the
// gateway sees success and does not redeliver against a non-idempotent
// insert; only verification failures reject the delivery.
type WebhookUseCase struct {
	verifier  port.EventVerifier
	donations port.DonationRepository
	mailer    port.Mailer
	logger    *slog.Logger

	// allowUnverifiedOnSkew accepts timestamp-skewed payloads without
	// authenticity. A known integrity gap, kept behind an explicit switch.
	allowUnverifiedOnSkew bool
	idempotent            bool
}

// NewWebhookUseCase wires the webhook processing pipeline.
func NewWebhookUseCase(
	verifier port.EventVerifier,
	donations port.DonationRepository,
	mailer port.Mailer,
	stripeCfg configs.Stripe,
	donationCfg configs.Donation,
	logger *slog.Logger,
) *WebhookUseCase {
	return &WebhookUseCase{
		verifier:              verifier,
		donations:             donations,
		mailer:                mailer,
		logger:                logger,
		allowUnverifiedOnSkew: stripeCfg.AllowUnverifiedOnSkew,
		idempotent:            donationCfg.Idempotent,
	}
}

// HandlePaymentWebhook verifies and processes one delivery. A non-nil
// return means reject with 400; nil means acknowledge, regardless of what
// happened to the donation internally.
func (u *WebhookUseCase) HandlePaymentWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, verifyErr := u.verifier.VerifyAndParse(payload, sigHeader)
	if verifyErr != nil {
		if !errors.Is(verifyErr, port.ErrTimestampSkew) || !u.allowUnverifiedOnSkew {
			return verifyErr
		}
		u.logger.Warn("signature timestamp outside tolerance, accepting unverified payload",
			slog.Any("verify_error", verifyErr))
		var err error
		if event, err = u.verifier.ParseUnverified(payload); err != nil {
			// reject with the original verification failure
			return verifyErr
		}
	}
	if event == nil {
		// event type this subsystem ignores
		return nil
	}

	u.record(ctx, event)
	return nil
}

// record inserts the donation row and triggers the receipt. Every failure
// past this point is log-and-continue by contract.
func (u *WebhookUseCase) record(ctx context.Context, event *domain.DonationEvent) {
	if u.idempotent {
		exists, err := u.donations.ExistsByPaymentRef(ctx, event.PaymentRef)
		if err != nil {
			u.logger.Error("idempotency check failed", slog.String("payment_ref", event.PaymentRef), slog.Any("error", err))
			return
		}
		if exists {
			u.logger.Info("duplicate webhook delivery skipped", slog.String("payment_ref", event.PaymentRef))
			return
		}
	}

	donation := event.Donation()
	if err := u.donations.Insert(ctx, donation); err != nil {
		u.logger.Error("donation insert failed",
			slog.String("payment_ref", donation.PaymentRef), slog.Any("error", err))
		return
	}
	u.logger.Info("donation recorded",
		slog.Int64("id", donation.ID),
		slog.String("payment_ref", donation.PaymentRef),
		slog.String("amount", donation.Amount.StringFixed(2)),
		slog.String("currency", donation.Currency))

	u.sendReceipt(ctx, donation)
}

// sendReceipt emails the donor-facing receipt. Skipped for anonymous or
// missing addresses; provider errors are absorbed, delivery is best effort.
func (u *WebhookUseCase) sendReceipt(ctx context.Context, d *domain.Donation) {
	if d.DonorEmail == "" || d.DonorEmail == domain.AnonymousEmail {
		return
	}
	html, err := renderReceipt(d)
	if err != nil {
		u.logger.Error("receipt render failed", slog.Int64("donation_id", d.ID), slog.Any("error", err))
		return
	}
	if err := u.mailer.Send(ctx, port.Message{
		To:      d.DonorEmail,
		Subject: "Thank you for your donation",
		HTML:    html,
	}); err != nil {
		u.logger.Error("receipt send failed", slog.Int64("donation_id", d.ID), slog.Any("error", err))
		return
	}
	if err := u.donations.MarkReceiptSent(ctx, d.ID); err != nil {
		u.logger.Error("receipt flag update failed", slog.Int64("donation_id", d.ID), slog.Any("error", err))
	}
}
