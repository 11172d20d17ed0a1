package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
	"github.com/givewell/donation-service/internal/core/port/mocks"
)

// wide-open limiter so tests are not paced
var testDispatchCfg = configs.Dispatch{SendsPerSecond: 1000, Burst: 1000}

type campaignDeps struct {
	campaigns   *mocks.MockCampaignRepository
	subscribers *mocks.MockSubscriberRepository
	mailer      *mocks.MockMailer
}

func newCampaignUseCase(t *testing.T) (*CampaignUseCase, campaignDeps) {
	d := campaignDeps{
		campaigns:   mocks.NewMockCampaignRepository(t),
		subscribers: mocks.NewMockSubscriberRepository(t),
		mailer:      mocks.NewMockMailer(t),
	}
	u := NewCampaignUseCase(d.campaigns, d.subscribers, d.mailer, testDispatchCfg, discardLogger())
	return u, d
}

func activeSubscribers(n int) []domain.Subscriber {
	subs := make([]domain.Subscriber, 0, n)
	for i := 1; i <= n; i++ {
		subs = append(subs, domain.Subscriber{
			ID:     int64(i),
			Email:  fmt.Sprintf("subscriber%d@example.com", i),
			Status: domain.SubscriberActive,
		})
	}
	return subs
}

func TestDispatchPartialFailure(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 42, Subject: "August update", Content: "<p>Hello</p>"}
	subs := activeSubscribers(3)

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(42)).Return(nil)
	d.subscribers.EXPECT().ListActive(mock.Anything).Return(subs, nil)

	d.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m port.Message) bool {
		return m.To == subs[1].Email
	})).Return(errors.New("mailbox full"))
	d.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m port.Message) bool {
		return m.To != subs[1].Email
	})).Return(nil).Twice()

	// one tracking row per subscriber, written in list order
	var tracked []*domain.CampaignTracking
	d.campaigns.EXPECT().
		InsertTracking(mock.Anything, mock.AnythingOfType("*domain.CampaignTracking")).
		Run(func(ctx context.Context, tr *domain.CampaignTracking) {
			tracked = append(tracked, tr)
		}).
		Return(nil).
		Times(3)

	d.campaigns.EXPECT().
		Finalize(mock.Anything, int64(42), domain.CampaignSent, 2, 1, 3, mock.AnythingOfType("*time.Time")).
		Return(nil)

	// counters bump only for the successful recipients
	d.subscribers.EXPECT().RecordEmailSent(mock.Anything, subs[0].ID, mock.AnythingOfType("time.Time")).Return(nil)
	d.subscribers.EXPECT().RecordEmailSent(mock.Anything, subs[2].ID, mock.AnythingOfType("time.Time")).Return(nil)

	res, err := u.Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], subs[1].Email)

	require.Len(t, tracked, 3)
	assert.Equal(t, subs[0].ID, tracked[0].SubscriberID)
	assert.Equal(t, domain.TrackingSent, tracked[0].Status)
	assert.Equal(t, subs[1].ID, tracked[1].SubscriberID)
	assert.Equal(t, domain.TrackingFailed, tracked[1].Status)
	assert.NotEmpty(t, tracked[1].ErrorMessage)
	assert.Equal(t, subs[2].ID, tracked[2].SubscriberID)
	assert.Equal(t, domain.TrackingSent, tracked[2].Status)
}

func TestDispatchNoSubscribers(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 42, Subject: "August update", Content: "<p>Hello</p>"}

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(42)).Return(nil)
	d.subscribers.EXPECT().ListActive(mock.Anything).Return(nil, nil)
	// empty audience is not a failure
	d.campaigns.EXPECT().
		Finalize(mock.Anything, int64(42), domain.CampaignSent, 0, 0, 0, mock.AnythingOfType("*time.Time")).
		Return(nil)

	res, err := u.Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, &port.DispatchResult{}, res)
	d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatchAllSendsFail(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 42, Subject: "August update", Content: "<p>Hello</p>"}
	subs := activeSubscribers(2)

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(42)).Return(nil)
	d.subscribers.EXPECT().ListActive(mock.Anything).Return(subs, nil)
	d.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("port.Message")).Return(errors.New("provider down")).Twice()
	d.campaigns.EXPECT().
		InsertTracking(mock.Anything, mock.AnythingOfType("*domain.CampaignTracking")).
		Return(nil).
		Times(2)
	d.campaigns.EXPECT().
		Finalize(mock.Anything, int64(42), domain.CampaignFailed, 0, 2, 2, mock.AnythingOfType("*time.Time")).
		Return(nil)

	res, err := u.Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Failed)
	assert.Len(t, res.Errors, 2)
	d.subscribers.AssertNotCalled(t, "RecordEmailSent", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchUnknownCampaign(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 99, Subject: "s", Content: "c"}

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(99)).Return(port.ErrCampaignNotFound)

	res, err := u.Dispatch(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	assert.Nil(t, res)
	d.subscribers.AssertNotCalled(t, "ListActive", mock.Anything)
}

func TestDispatchSubscriberFetchFailure(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 42, Subject: "s", Content: "c"}

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(42)).Return(nil)
	d.subscribers.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("connection refused"))
	// no send pass happened, so sent_at stays unset
	d.campaigns.EXPECT().
		Finalize(mock.Anything, int64(42), domain.CampaignFailed, 0, 0, 0, (*time.Time)(nil)).
		Return(nil)

	res, err := u.Dispatch(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, res)
	d.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatchTrackingWriteCountsAsFailure(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 42, Subject: "s", Content: "c"}
	subs := activeSubscribers(2)

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(42)).Return(nil)
	d.subscribers.EXPECT().ListActive(mock.Anything).Return(subs, nil)
	d.mailer.EXPECT().Send(mock.Anything, mock.AnythingOfType("port.Message")).Return(nil).Twice()

	// first audit row is lost, second lands
	d.campaigns.EXPECT().
		InsertTracking(mock.Anything, mock.MatchedBy(func(tr *domain.CampaignTracking) bool {
			return tr.SubscriberID == subs[0].ID
		})).
		Return(errors.New("disk full"))
	d.campaigns.EXPECT().
		InsertTracking(mock.Anything, mock.MatchedBy(func(tr *domain.CampaignTracking) bool {
			return tr.SubscriberID == subs[1].ID
		})).
		Return(nil)

	d.campaigns.EXPECT().
		Finalize(mock.Anything, int64(42), domain.CampaignSent, 1, 1, 2, mock.AnythingOfType("*time.Time")).
		Return(nil)
	d.subscribers.EXPECT().RecordEmailSent(mock.Anything, subs[1].ID, mock.AnythingOfType("time.Time")).Return(nil)

	res, err := u.Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "tracking write")
}

func TestDispatchPanicFinalizesFailed(t *testing.T) {
	u, d := newCampaignUseCase(t)
	req := port.DispatchRequest{CampaignID: 42, Subject: "s", Content: "c"}
	subs := activeSubscribers(1)

	d.campaigns.EXPECT().MarkSending(mock.Anything, int64(42)).Return(nil)
	d.subscribers.EXPECT().ListActive(mock.Anything).Return(subs, nil)
	d.mailer.EXPECT().
		Send(mock.Anything, mock.AnythingOfType("port.Message")).
		Run(func(ctx context.Context, msg port.Message) {
			panic("nil template")
		}).
		Return(nil)
	// a panic mid-pass still reaches a terminal state
	d.campaigns.EXPECT().
		Finalize(mock.Anything, int64(42), domain.CampaignFailed, 0, 0, 0, (*time.Time)(nil)).
		Return(nil)

	res, err := u.Dispatch(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil template")
	assert.Nil(t, res)
}
