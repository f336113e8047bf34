// Package notify delivers inquiry alerts to the office. Delivery is
// best effort: a failed notification is logged and dropped, it never
// blocks or fails the submission that triggered it.
package notify

import (
	"context"
	"fmt"
	"strings"

	awsclient "sabi-consults/internal/common/aws"
	"sabi-consults/internal/common/config"
	"sabi-consults/internal/common/logger"
	"sabi-consults/internal/models"
)

// Notifier is the inquiry alert hook. Implementations must tolerate
// partial delivery failure internally.
type Notifier interface {
	InquirySubmitted(ctx context.Context, inquiry *models.Inquiry, listingTitle string)
}

// NoOp discards all notifications. Used when notifications are
// disabled and in tests.
type NoOp struct{}

func (NoOp) InquirySubmitted(context.Context, *models.Inquiry, string) {}

// AWSNotifier emails the office via SES and mirrors the alert onto an
// SNS topic when one is configured.
type AWSNotifier struct {
	ses    *awsclient.SESClient
	sns    *awsclient.SNSClient
	config config.NotificationConfig
	logger logger.Logger
}

// NewAWSNotifier builds the SES and SNS clients for the configured
// region.
func NewAWSNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*AWSNotifier, error) {
	sesClient, err := awsclient.NewSESClient(ctx, cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create SES client: %w", err)
	}

	var snsClient *awsclient.SNSClient
	if cfg.SNSTopicARN != "" {
		snsClient, err = awsclient.NewSNSClient(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, fmt.Errorf("failed to create SNS client: %w", err)
		}
	}

	return &AWSNotifier{
		ses:    sesClient,
		sns:    snsClient,
		config: cfg,
		logger: log,
	}, nil
}

func (n *AWSNotifier) InquirySubmitted(ctx context.Context, inquiry *models.Inquiry, listingTitle string) {
	subject, body := inquiryMessage(inquiry, listingTitle)

	if err := n.ses.SendPlainEmail(ctx, n.config.FromEmail, n.config.OfficeEmail, subject, body); err != nil {
		n.logger.WithError(err).Warn("Failed to send inquiry email", map[string]interface{}{
			"inquiry_id": inquiry.ID,
		})
	}

	if n.sns != nil {
		if err := n.sns.PublishToTopic(ctx, n.config.SNSTopicARN, subject, body); err != nil {
			n.logger.WithError(err).Warn("Failed to publish inquiry notification", map[string]interface{}{
				"inquiry_id": inquiry.ID,
				"topic_arn":  n.config.SNSTopicARN,
			})
		}
	}
}

func inquiryMessage(inquiry *models.Inquiry, listingTitle string) (subject, body string) {
	subject = "New inquiry from " + inquiry.Name
	if listingTitle != "" {
		subject += " about " + listingTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", inquiry.Name)
	fmt.Fprintf(&b, "Email: %s\n", inquiry.Email)
	fmt.Fprintf(&b, "Phone: %s\n", inquiry.Phone)
	if listingTitle != "" {
		fmt.Fprintf(&b, "Property: %s\n", listingTitle)
	}
	fmt.Fprintf(&b, "\n%s\n", inquiry.Message)
	return subject, b.String()
}
