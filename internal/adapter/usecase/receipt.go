package usecase

import (
	"html/template"
	"strings"

	"github.com/givewell/donation-service/internal/core/domain"
)

// receiptTmpl is the donor-facing HTML receipt. Donor-supplied fields are
// escaped by html/template.
var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your donation!</h2>
  <p>Dear {{.DonorName}},</p>
  <p>We gratefully acknowledge your gift of <strong>{{.FormattedAmount}} {{.Currency}}</strong>.</p>
  {{if .ShowDesignation}}<p>Designation: {{.Designation}}</p>{{end}}
  <p>Transaction reference: {{.PaymentRef}}</p>
  <p>This letter serves as your receipt for tax purposes. No goods or
  services were provided in exchange for this contribution.</p>
  <p>If you have any questions about your donation, just reply to this
  email.</p>
  <p>With thanks,<br>The Donations Team</p>
</body>
</html>`))

type receiptData struct {
	DonorName       string
	FormattedAmount string
	Currency        string
	Designation     string
	ShowDesignation bool
	PaymentRef      string
}

// renderReceipt produces the receipt HTML for a recorded donation. The
// designation line is omitted for the default bucket.
func renderReceipt(d *domain.Donation) (string, error) {
	var b strings.Builder
	err := receiptTmpl.Execute(&b, receiptData{
		DonorName:       d.DonorName,
		FormattedAmount: d.Amount.StringFixed(2),
		Currency:        d.Currency,
		Designation:     d.Designation,
		ShowDesignation: d.Designation != "" && d.Designation != "general",
		PaymentRef:      d.PaymentRef,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
