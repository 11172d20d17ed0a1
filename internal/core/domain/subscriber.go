package domain

import "time"

// SubscriberStatus enumerates newsletter recipient states. Only active
// subscribers are eligible for campaign dispatch.
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberBounced      SubscriberStatus = "bounced"
)

// Subscriber is a newsletter recipient. EmailCount and LastEmailSentAt are
// maintained by the campaign dispatcher after each successful send.
type Subscriber struct {
	ID              int64
	Email           string
	Name            string
	Status          SubscriberStatus
	EmailCount      int
	LastEmailSentAt *time.Time
	CreatedAt       time.Time
}
