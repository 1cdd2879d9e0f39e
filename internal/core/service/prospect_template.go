package service

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
)

const notificationSubject = "New Prospect Application Received"

// Both variants render from the same data so text and HTML stay consistent.
var prospectTextTmpl = texttemplate.Must(texttemplate.New("prospect_text").Parse(`New Prospect Application Received

A new prospect application has been submitted by {{.FirstName}} {{.LastName}}.

Contact Information:
- Name: {{.FirstName}} {{.LastName}}
- Email: {{.Email}}
- Phone: {{.Phone}}
- Preferred Contact Method: {{.PreferredContact}}
{{- if .BusinessName}}
- Business: {{.BusinessName}}
{{- end}}

Goals:
- Financial Goals: {{.FinancialGoals}}
- Challenges: {{.Challenges}}

Services Requested:
{{- range .Services}}
- {{.}}
{{- end}}

Budget Range:
- {{.BudgetRange}}
{{if .Notes}}
Additional Notes:
{{.Notes}}
{{end}}
Please review this application in the admin dashboard and follow up with the prospect as soon as possible.

Regards,
Zomma Team`))

var prospectHTMLTmpl = htmltemplate.Must(htmltemplate.New("prospect_html").Parse(`<!DOCTYPE html>
<html>
  <body>
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; line-height: 1.6;">
      <h2 style="color: #fe5d2f;">New Prospect Application Received</h2>
      <p>A new prospect application has been submitted by <strong>{{.FirstName}} {{.LastName}}</strong>.</p>

      <div style="margin: 15px 0; padding: 15px; background-color: #f8fafc; border-radius: 4px;">
        <h3 style="color: #fe5d2f;">Contact Information</h3>
        <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
        <p><strong>Phone:</strong> {{.Phone}}</p>
        <p><strong>Preferred Contact:</strong> {{.PreferredContact}}</p>
        {{- if .BusinessName}}
        <p><strong>Business:</strong> {{.BusinessName}}</p>
        {{- end}}
      </div>

      <div style="margin: 15px 0; padding: 15px; background-color: #f8fafc; border-radius: 4px;">
        <h3 style="color: #fe5d2f;">Goals</h3>
        <p><strong>Financial Goals:</strong> {{.FinancialGoals}}</p>
        <p><strong>Challenges:</strong> {{.Challenges}}</p>
      </div>

      <div style="margin: 15px 0; padding: 15px; background-color: #f8fafc; border-radius: 4px;">
        <h3 style="color: #fe5d2f;">Services Requested</h3>
        <ul>
          {{- range .Services}}
          <li>{{.}}</li>
          {{- end}}
        </ul>
      </div>

      <div style="margin: 15px 0; padding: 15px; background-color: #f8fafc; border-radius: 4px;">
        <h3 style="color: #fe5d2f;">Budget Range</h3>
        <p>{{.BudgetRange}}</p>
      </div>

      {{- if .Notes}}
      <div style="margin: 15px 0; padding: 15px; background-color: #f8fafc; border-radius: 4px;">
        <h3 style="color: #fe5d2f;">Additional Notes</h3>
        <p>{{.Notes}}</p>
      </div>
      {{- end}}

      <p>Please review this application in the admin dashboard and follow up with the prospect as soon as possible.</p>
      <div style="margin-top: 20px; color: #64748b; font-size: 14px; border-top: 1px solid #e2e8f0; padding-top: 20px; text-align: center;">
        <p style="color: #fe5d2f; font-weight: 500;">Zomma</p>
        <p style="font-size: 12px;">This is an automated message. Please do not reply to this email.</p>
      </div>
    </div>
  </body>
</html>`))

type prospectTemplateData struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	PreferredContact string
	BusinessName     string
	FinancialGoals   string
	Challenges       string
	Services         []string
	BudgetRange      string
	Notes            string
}

// renderProspectNotification produces the subject, plain-text body, and HTML
// body for a new-prospect notification.
func renderProspectNotification(p *domain.Prospect) (subject, text, html string, err error) {
	data := prospectTemplateData{
		FirstName:        p.Contact.Name.FirstName,
		LastName:         p.Contact.Name.LastName,
		Email:            p.Contact.Email,
		Phone:            p.Contact.Phone,
		PreferredContact: string(p.Contact.PreferredContact),
		BusinessName:     p.Contact.BusinessName,
		FinancialGoals:   p.Goals.FinancialGoals,
		Challenges:       p.Goals.Challenges,
		Services:         p.Services.SelectedServices,
		BudgetRange:      string(p.Budget.BudgetRange),
		Notes:            p.Notes,
	}

	var textBuf strings.Builder
	if err := prospectTextTmpl.Execute(&textBuf, data); err != nil {
		return "", "", "", fmt.Errorf("render text body: %w", err)
	}

	var htmlBuf strings.Builder
	if err := prospectHTMLTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", "", fmt.Errorf("render html body: %w", err)
	}

	return notificationSubject, textBuf.String(), htmlBuf.String(), nil
}
