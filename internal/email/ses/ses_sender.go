package ses

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"veridoc/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendTaskReady(ctx context.Context, toEmail, toName, docTitle, docNumber, stage string, dueDate time.Time) error {
	subject := fmt.Sprintf("Action required: %s stage for %s", stage, docNumber)
	htmlBody := buildTaskReadyHTML(toName, docTitle, docNumber, stage, dueDate, s.frontendURL)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s (%s) has reached the %s stage and is waiting on your role.\nDue date: %s\n\nOpen the register: %s\n\nVeriDoc Quality Team",
		toName, docTitle, docNumber, stage, dueDate.Format("02 Jan 2006"), s.frontendURL,
	)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendDocumentEffective(ctx context.Context, toEmail, toName, docTitle, docNumber string) error {
	subject := fmt.Sprintf("Now effective: %s", docNumber)
	htmlBody := buildEffectiveHTML(toName, docTitle, docNumber, s.frontendURL)
	textBody := fmt.Sprintf(
		"Hi %s,\n\n%s (%s) has completed its approval workflow and is now effective.\n\nOpen the register: %s\n\nVeriDoc Quality Team",
		toName, docTitle, docNumber, s.frontendURL,
	)
	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildTaskReadyHTML(name, docTitle, docNumber, stage string, dueDate time.Time, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">A document is waiting on your role</h2>
  <p>Hi %s,</p>
  <p><strong>%s</strong> (%s) has reached the <strong>%s</strong> stage of its review workflow.</p>
  <p>The step is due by <strong>%s</strong>.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Register</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">VeriDoc - Controlled Document Management</p>
</body>
</html>`, name, docTitle, docNumber, stage, dueDate.Format("02 Jan 2006"), frontendURL)
}

func buildEffectiveHTML(name, docTitle, docNumber, frontendURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Document now effective</h2>
  <p>Hi %s,</p>
  <p><strong>%s</strong> (%s) has completed its approval workflow and is now effective.</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open Register</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">VeriDoc - Controlled Document Management</p>
</body>
</html>`, name, docTitle, docNumber, frontendURL)
}
