// Package notification implements the notifier port over Amazon SES.
// Notifications are best effort by contract: handlers log failures and
// never roll back a delivery because an email bounced.
package notification

import (
	"context"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// emailSender sends one plain-text email. Split from the notifier so
// tests can capture messages without AWS.
type emailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SESV2Sender sends email through the AWS SES v2 API.
type SESV2Sender struct {
	client    *sesv2.Client
	fromEmail string
}

// NewSESV2Sender creates an SES sender, loading AWS credentials from
// the environment.
func NewSESV2Sender(ctx context.Context, region, fromEmail string) (*SESV2Sender, error) {
	if fromEmail == "" {
		return nil, errs.NewValueIsRequiredError("from email")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &SESV2Sender{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends one plain-text email via SES.
func (s *SESV2Sender) SendEmail(ctx context.Context, to, subject, body string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: &s.fromEmail,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    &subject,
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    &body,
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return errs.NewExternalServiceErrorWithCause("ses", err)
	}
	return nil
}
