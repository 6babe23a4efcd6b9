package email

import (
	"fmt"
	"html"
)

// Template keys for the outbound client messages an admin can send from a
// request's detail page.
type Template string

const (
	TemplateClarification Template = "clarification"
	TemplateQuote         Template = "quote"
	TemplateDeposit       Template = "deposit"

	// Internal notification sent to the studio inbox on every new request.
	TemplateAdminNewRequest Template = "admin_new_request"
)

type Message struct {
	Subject string
	HTML    string
}

// NewRequestAdminEmail notifies the studio inbox about a fresh submission.
type NewRequestParams struct {
	PublicID    string
	ClientName  string
	ClientEmail string
	Summary     string
	AdminURL    string
}

func NewRequestAdminEmail(p NewRequestParams) Message {
	return Message{
		Subject: fmt.Sprintf("New commission request: %s", p.PublicID),
		HTML: fmt.Sprintf(`
      <h2>New Commission Request</h2>
      <p><b>Reference:</b> %s</p>
      <p><b>Client:</b> %s (%s)</p>
      <p><b>Summary:</b> %s</p>
      <p><a href="%s">View in admin</a></p>
    `,
			html.EscapeString(p.PublicID),
			html.EscapeString(p.ClientName),
			html.EscapeString(p.ClientEmail),
			html.EscapeString(p.Summary),
			p.AdminURL,
		),
	}
}

type ClientEmailParams struct {
	Template   Template
	PublicID   string
	ClientName string
	Message    string

	// Optional amounts in cents, rendered as dollars when present.
	QuoteCents   *int64
	DepositCents *int64
}

// BuildClientEmail renders one of the templated client messages. Unknown
// template keys are rejected so a typo never silently sends a deposit mail.
func BuildClientEmail(p ClientEmailParams) (Message, error) {
	name := p.ClientName
	if name == "" {
		name = "there"
	}
	greeting := fmt.Sprintf("Hi %s,", html.EscapeString(name))

	footer := fmt.Sprintf(`
    <p style="margin-top:24px;color:#666;font-size:12px">
      — Vibrant Art Group<br/>
      Reference: <strong>%s</strong>
    </p>
  `, html.EscapeString(p.PublicID))

	body := html.EscapeString(p.Message)

	switch p.Template {
	case TemplateClarification:
		return Message{
			Subject: fmt.Sprintf("Quick question about your commission (%s)", p.PublicID),
			HTML: fmt.Sprintf(`
        <div style="font-family: ui-sans-serif, system-ui, -apple-system; line-height:1.5">
          <p>%s</p>
          <p>Thanks for your commission request! We have a quick clarification before we can quote it:</p>
          <p style="white-space:pre-wrap">%s</p>
          %s
        </div>
      `, greeting, body, footer),
		}, nil

	case TemplateQuote:
		amount := ""
		if p.QuoteCents != nil {
			amount = fmt.Sprintf("<p><strong>$%.2f</strong></p>", float64(*p.QuoteCents)/100)
		}
		return Message{
			Subject: fmt.Sprintf("Quote for your commission (%s)", p.PublicID),
			HTML: fmt.Sprintf(`
        <div style="font-family: ui-sans-serif, system-ui, -apple-system; line-height:1.5">
          <p>%s</p>
          <p>Here's your quote for the commission request <strong>%s</strong>:</p>
          %s
          <p style="white-space:pre-wrap">%s</p>
          %s
        </div>
      `, greeting, html.EscapeString(p.PublicID), amount, body, footer),
		}, nil

	case TemplateDeposit:
		amount := ""
		if p.DepositCents != nil {
			amount = fmt.Sprintf("<p><strong>$%.2f</strong></p>", float64(*p.DepositCents)/100)
		}
		return Message{
			Subject: fmt.Sprintf("Deposit request for your commission (%s)", p.PublicID),
			HTML: fmt.Sprintf(`
        <div style="font-family: ui-sans-serif, system-ui, -apple-system; line-height:1.5">
          <p>%s</p>
          <p>To begin work on <strong>%s</strong>, we request a deposit:</p>
          %s
          <p style="white-space:pre-wrap">%s</p>
          %s
        </div>
      `, greeting, html.EscapeString(p.PublicID), amount, body, footer),
		}, nil
	}

	return Message{}, fmt.Errorf("unknown client email template %q", p.Template)
}
