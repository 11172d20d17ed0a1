package domain

import "time"

// CampaignStatus enumerates the dispatch state machine:
// draft -> sending -> {sent, failed}.
type CampaignStatus string

const (
	CampaignDraft   CampaignStatus = "draft"
	CampaignSending CampaignStatus = "sending"
	CampaignSent    CampaignStatus = "sent"
	CampaignFailed  CampaignStatus = "failed"
)

// Campaign is one newsletter send job. The counters and SentAt are persisted
// when dispatch finalizes.
type Campaign struct {
	ID              int64
	Subject         string
	Content         string
	Status          CampaignStatus
	TotalRecipients int
	TotalSent       int
	TotalFailed     int
	SentAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TrackingStatus is the per-recipient outcome of one send attempt.
type TrackingStatus string

const (
	TrackingSent   TrackingStatus = "sent"
	TrackingFailed TrackingStatus = "failed"
)

// CampaignTracking is the audit record of a single (campaign, subscriber)
// send attempt. ErrorMessage is set only on failure. Rows are written once
// per subscriber per dispatch pass and never updated.
type CampaignTracking struct {
	ID           int64
	CampaignID   int64
	SubscriberID int64
	Status       TrackingStatus
	ErrorMessage string
	CreatedAt    time.Time
}
