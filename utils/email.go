// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"

	"go-shopfront/models"
)

// EmailService sends storefront notifications using Postmark. A service
// built without an API token is disabled and drops sends, so the demo boots
// without credentials.
type EmailService struct {
	client *postmark.Client
	sender string
	shop   string
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService(apiToken, sender, shopEmail string) *EmailService {
	es := &EmailService{sender: sender, shop: shopEmail}
	if apiToken != "" {
		es.client = postmark.NewClient(apiToken, "")
	}
	return es
}

// Enabled reports whether sends will actually go out.
func (es *EmailService) Enabled() bool {
	return es.client != nil && es.shop != ""
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendSubmissionNotification mails the shop inbox about a checkout
// submission. The submission itself is never stored.
func (es *EmailService) SendSubmissionNotification(sub models.OrderSubmission) error {
	if !es.Enabled() {
		return nil
	}
	subject := "New checkout submission"
	content := fmt.Sprintf(
		"<strong>Buyer:</strong> %v<br><strong>Product:</strong> %v<br><strong>Address:</strong> %v<br><strong>Contact:</strong> %v %v",
		sub.BuyerBillingID,
		sub.ChosenProduct,
		sub.ShippingAddress,
		sub.ContactMethod,
		sub.ContactInfo,
	)
	return es.SendEmail(es.shop, subject, content)
}
