package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
)

// CampaignUseCase runs the newsletter dispatch loop. Sends are strictly
// sequential: send N+1 does not start until send N's tracking row is
// written, so tracking rows land in subscriber-list order. Throughput is
// paced by a token bucket sized to the provider's ceiling.
type CampaignUseCase struct {
	campaigns   port.CampaignRepository
	subscribers port.SubscriberRepository
	mailer      port.Mailer
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewCampaignUseCase wires the dispatcher. The limiter is built from the
// dispatch config; per-subscriber pacing replaces the historical fixed
// inter-send sleep.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	subscribers port.SubscriberRepository,
	mailer port.Mailer,
	cfg configs.Dispatch,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns:   campaigns,
		subscribers: subscribers,
		mailer:      mailer,
		limiter:     rate.NewLimiter(rate.Limit(cfg.SendsPerSecond), cfg.Burst),
		logger:      logger,
	}
}

// Dispatch runs one full campaign pass: mark sending, fetch the active
// set, send to each subscriber with per-recipient tracking, finalize the
// campaign, then bump subscriber counters in a second pass. A non-nil
// error means the job itself failed before any sends; per-recipient
// failures only show up in the result. Once the campaign is marked
// sending, every exit path, panics included, reaches a terminal state.
func (u *CampaignUseCase) Dispatch(ctx context.Context, req port.DispatchRequest) (res *port.DispatchResult, err error) {
	if err := u.campaigns.MarkSending(ctx, req.CampaignID); err != nil {
		return nil, fmt.Errorf("mark campaign sending: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("campaign dispatch panicked",
				slog.Int64("campaign_id", req.CampaignID), slog.Any("panic", r))
			u.finalize(ctx, req.CampaignID, domain.CampaignFailed, &port.DispatchResult{}, nil)
			res, err = nil, fmt.Errorf("campaign dispatch panicked: %v", r)
		}
	}()

	subs, err := u.subscribers.ListActive(ctx)
	if err != nil {
		// job-level failure before any sends: force the terminal state
		u.finalize(ctx, req.CampaignID, domain.CampaignFailed, &port.DispatchResult{}, nil)
		return nil, fmt.Errorf("fetch active subscribers: %w", err)
	}

	res = &port.DispatchResult{Total: len(subs)}
	sentTo := make([]int64, 0, len(subs))

	for _, sub := range subs {
		sendErr := u.sendOne(ctx, req, sub)

		tr := &domain.CampaignTracking{
			CampaignID:   req.CampaignID,
			SubscriberID: sub.ID,
			Status:       domain.TrackingSent,
		}
		if sendErr != nil {
			tr.Status = domain.TrackingFailed
			tr.ErrorMessage = sendErr.Error()
		}
		if err := u.campaigns.InsertTracking(ctx, tr); err != nil {
			u.logger.Error("tracking write failed",
				slog.Int64("campaign_id", req.CampaignID),
				slog.Int64("subscriber_id", sub.ID),
				slog.Any("error", err))
			// losing the audit row counts as that recipient's failure
			if sendErr == nil {
				sendErr = fmt.Errorf("tracking write: %w", err)
			}
		}

		if sendErr != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", sub.Email, sendErr))
			u.logger.Warn("campaign send failed",
				slog.Int64("campaign_id", req.CampaignID),
				slog.String("email", sub.Email),
				slog.Any("error", sendErr))
			continue
		}
		res.Sent++
		sentTo = append(sentTo, sub.ID)
	}

	status := domain.CampaignSent
	// an empty campaign did not fail; only an all-failure pass does
	if res.Total > 0 && res.Failed == res.Total {
		status = domain.CampaignFailed
	}
	sentAt := time.Now().UTC()
	u.finalize(ctx, req.CampaignID, status, res, &sentAt)

	// separate counter pass, one read + one write per successful recipient
	for _, id := range sentTo {
		if err := u.subscribers.RecordEmailSent(ctx, id, sentAt); err != nil {
			u.logger.Error("subscriber counter update failed",
				slog.Int64("subscriber_id", id), slog.Any("error", err))
		}
	}

	u.logger.Info("campaign dispatched",
		slog.Int64("campaign_id", req.CampaignID),
		slog.String("status", string(status)),
		slog.Int("sent", res.Sent),
		slog.Int("failed", res.Failed),
		slog.Int("total", res.Total))
	return res, nil
}

// finalize writes the terminal campaign state; its own failure is only
// logged, the dispatch outcome stands.
func (u *CampaignUseCase) finalize(ctx context.Context, id int64, status domain.CampaignStatus, res *port.DispatchResult, sentAt *time.Time) {
	if err := u.campaigns.Finalize(ctx, id, status, res.Sent, res.Failed, res.Total, sentAt); err != nil {
		u.logger.Error("campaign finalize failed", slog.Int64("campaign_id", id), slog.Any("error", err))
	}
}

// sendOne waits for a limiter token and sends a single email. Any error,
// limiter or provider, counts as that recipient's failure.
func (u *CampaignUseCase) sendOne(ctx context.Context, req port.DispatchRequest, sub domain.Subscriber) error {
	if err := u.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return u.mailer.Send(ctx, port.Message{
		To:      sub.Email,
		Subject: req.Subject,
		HTML:    req.Content,
	})
}
