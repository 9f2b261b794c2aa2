package notification

import (
	"bytes"
	"fmt"
	html "html/template"
	"strings"
	text "text/template"

	"github.com/injoybeauty/salon-api/internal/model"
)

type intakeView struct {
	Form         *model.IntakeForm
	SensoryNeeds []string
	MobilityNeed []string
	Business     string
}

type contactView struct {
	Msg      *model.ContactMessage
	Business string
}

var intakeHTML = html.Must(html.New("intake").Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #E5C4C4, #D4A5A5); padding: 20px; border-radius: 10px; margin-bottom: 20px;">
    <h1 style="color: #3D3D3D; margin: 0;">New Intake Form Submitted</h1>
  </div>

  <div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <h2 style="color: #D4A5A5; margin-top: 0;">Client Information</h2>
    <p><strong>Name:</strong> {{.Form.ClientName}}</p>
    <p><strong>Email:</strong> {{.Form.Email}}</p>
    <p><strong>Phone:</strong> {{if .Form.Phone}}{{.Form.Phone}}{{else}}Not provided{{end}}</p>
    <p><strong>Client Type:</strong> {{.Form.ClientType}}</p>
  </div>

  <div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <h2 style="color: #D4A5A5; margin-top: 0;">Service Details</h2>
    <p><strong>Location:</strong> {{.Form.ServiceLocation}}</p>
    <p><strong>Address:</strong> {{if .Form.Address}}{{.Form.Address}}{{else}}N/A (In-salon){{end}}</p>
    <p><strong>Service Requested:</strong><br>{{if .Form.ServiceRequested}}{{.Form.ServiceRequested}}{{else}}Not specified{{end}}</p>
  </div>

  <div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <h2 style="color: #D4A5A5; margin-top: 0;">Hair Details</h2>
    <p><strong>Current Length:</strong> {{if .Form.HairLength}}{{.Form.HairLength}}{{else}}Not specified{{end}}</p>
    <p><strong>Desired Style:</strong> {{if .Form.DesiredStyle}}{{.Form.DesiredStyle}}{{else}}Not specified{{end}}</p>
    {{if .Form.DesiredStyleOther}}<p><strong>Style Notes:</strong> {{.Form.DesiredStyleOther}}</p>{{end}}
    <p><strong>Hair Type:</strong> {{if .Form.HairType}}{{.Form.HairType}}{{else}}Not specified{{end}}</p>
  </div>

  <div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <h2 style="color: #D4A5A5; margin-top: 0;">Sensory &amp; Support Needs</h2>
    {{if .SensoryNeeds}}<ul style="margin: 0; padding-left: 20px;">{{range .SensoryNeeds}}<li>{{.}}</li>{{end}}</ul>{{else}}<p>None selected</p>{{end}}
    {{if .Form.OtherSensoryNeeds}}<p><strong>Other Sensory Notes:</strong><br>{{.Form.OtherSensoryNeeds}}</p>{{end}}
  </div>

  <div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <h2 style="color: #D4A5A5; margin-top: 0;">Mobility &amp; Safety</h2>
    {{if .MobilityNeed}}<ul style="margin: 0; padding-left: 20px;">{{range .MobilityNeed}}<li>{{.}}</li>{{end}}</ul>{{else}}<p>None selected</p>{{end}}
    {{if .Form.BehaviourNotes}}<p><strong>Behaviour Notes:</strong><br>{{.Form.BehaviourNotes}}</p>{{end}}
  </div>

  {{if .Form.AdditionalNotes}}<div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <h2 style="color: #D4A5A5; margin-top: 0;">Additional Notes</h2>
    <p>{{.Form.AdditionalNotes}}</p>
  </div>{{end}}

  <div style="text-align: center; padding: 20px; color: #6B6B6B;">
    <p>This form was submitted through the {{.Business}} website.</p>
    <p><a href="mailto:{{.Form.Email}}" style="color: #D4A5A5;">Reply to {{.Form.ClientName}}</a></p>
  </div>
</body>
</html>`))

var intakeText = text.Must(text.New("intake").Parse(`New Intake Form Submitted

CLIENT INFORMATION
Name: {{.Form.ClientName}}
Email: {{.Form.Email}}
Phone: {{if .Form.Phone}}{{.Form.Phone}}{{else}}Not provided{{end}}
Client Type: {{.Form.ClientType}}

SERVICE DETAILS
Location: {{.Form.ServiceLocation}}
Address: {{if .Form.Address}}{{.Form.Address}}{{else}}N/A (In-salon){{end}}
Service Requested: {{if .Form.ServiceRequested}}{{.Form.ServiceRequested}}{{else}}Not specified{{end}}

HAIR DETAILS
Current Length: {{if .Form.HairLength}}{{.Form.HairLength}}{{else}}Not specified{{end}}
Desired Style: {{if .Form.DesiredStyle}}{{.Form.DesiredStyle}}{{else}}Not specified{{end}}
Hair Type: {{if .Form.HairType}}{{.Form.HairType}}{{else}}Not specified{{end}}

SENSORY & SUPPORT NEEDS
{{if .SensoryNeeds}}{{range .SensoryNeeds}}- {{.}}
{{end}}{{else}}None selected
{{end}}{{if .Form.OtherSensoryNeeds}}Other Notes: {{.Form.OtherSensoryNeeds}}
{{end}}
MOBILITY & SAFETY
{{if .MobilityNeed}}{{range .MobilityNeed}}- {{.}}
{{end}}{{else}}None selected
{{end}}{{if .Form.BehaviourNotes}}Behaviour Notes: {{.Form.BehaviourNotes}}
{{end}}{{if .Form.AdditionalNotes}}
ADDITIONAL NOTES
{{.Form.AdditionalNotes}}
{{end}}
---
This form was submitted through the {{.Business}} website.`))

var contactHTML = html.Must(html.New("contact").Parse(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #E5C4C4, #D4A5A5); padding: 20px; border-radius: 10px; margin-bottom: 20px;">
    <h1 style="color: #3D3D3D; margin: 0;">New Contact Message</h1>
  </div>

  <div style="background: #FAF8F5; padding: 20px; border-radius: 10px; margin-bottom: 15px;">
    <p><strong>From:</strong> {{.Msg.Name}} &lt;{{.Msg.Email}}&gt;</p>
    {{if .Msg.Subject}}<p><strong>Subject:</strong> {{.Msg.Subject}}</p>{{end}}
    <p>{{.Msg.Message}}</p>
  </div>

  <div style="text-align: center; padding: 20px; color: #6B6B6B;">
    <p>This message was sent through the {{.Business}} website.</p>
    <p><a href="mailto:{{.Msg.Email}}" style="color: #D4A5A5;">Reply to {{.Msg.Name}}</a></p>
  </div>
</body>
</html>`))

var contactText = text.Must(text.New("contact").Parse(`New Contact Message

From: {{.Msg.Name}} <{{.Msg.Email}}>
{{if .Msg.Subject}}Subject: {{.Msg.Subject}}
{{end}}
{{.Msg.Message}}

---
This message was sent through the {{.Business}} website.`))

func sensoryNeeds(form *model.IntakeForm) []string {
	var needs []string
	if form.SensitiveToNoise {
		needs = append(needs, "Sensitive to loud noise")
	}
	if form.SensitiveToTouch {
		needs = append(needs, "Sensitive to touch")
	}
	if form.DoesNotLikeWater {
		needs = append(needs, "Does not like water")
	}
	if form.NervousAnxious {
		needs = append(needs, "Nervous/anxious during appointments")
	}
	if form.EnjoysFidgetToys {
		needs = append(needs, "Enjoys fidget toys")
	}
	if form.NeedsWeightedCape {
		needs = append(needs, "Would benefit from weighted cape")
	}
	if form.RequiresQuietEnvironment {
		needs = append(needs, "Requires quiet/low-sensory environment")
	}
	return needs
}

func mobilityNeeds(form *model.IntakeForm) []string {
	var needs []string
	if form.UsesWheelchair {
		needs = append(needs, "Uses wheelchair")
	}
	if form.LimitedMobility {
		needs = append(needs, "Limited mobility")
	}
	if form.HasBehaviours {
		needs = append(needs, "May have behaviours (see notes)")
	}
	return needs
}

func renderIntake(form *model.IntakeForm, business string) (subject, textBody, htmlBody string, err error) {
	view := intakeView{
		Form:         form,
		SensoryNeeds: sensoryNeeds(form),
		MobilityNeed: mobilityNeeds(form),
		Business:     business,
	}

	var tb, hb bytes.Buffer
	if err := intakeText.Execute(&tb, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render intake text body: %w", err)
	}
	if err := intakeHTML.Execute(&hb, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render intake html body: %w", err)
	}

	subject = fmt.Sprintf("New Intake Form: %s", form.ClientName)
	return subject, tb.String(), hb.String(), nil
}

func renderContact(msg *model.ContactMessage, business string) (subject, textBody, htmlBody string, err error) {
	view := contactView{Msg: msg, Business: business}

	var tb, hb bytes.Buffer
	if err := contactText.Execute(&tb, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render contact text body: %w", err)
	}
	if err := contactHTML.Execute(&hb, view); err != nil {
		return "", "", "", fmt.Errorf("failed to render contact html body: %w", err)
	}

	subject = fmt.Sprintf("New Contact Message from %s", msg.Name)
	if msg.Subject != "" {
		subject = fmt.Sprintf("%s: %s", subject, strings.TrimSpace(msg.Subject))
	}
	return subject, tb.String(), hb.String(), nil
}
