// Package notification renders order confirmations and hands them to a
// mail transport.
package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
)

const confirmationTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Order confirmation {{.OrderNumber}}</title></head>
<body style="font-family: Arial, sans-serif; color: #222;">
<h2>Order confirmation</h2>
<p>Dear {{.ClientName}},</p>
<p>We have registered your survey order with the following details:</p>
<table cellpadding="4" style="border-collapse: collapse;">
<tr><td><strong>Order number</strong></td><td>{{.OrderNumber}}</td></tr>
<tr><td><strong>Survey type</strong></td><td>{{.SurveyType}}</td></tr>
<tr><td><strong>Vessel</strong></td><td>{{.VesselName}}</td></tr>
<tr><td><strong>Port</strong></td><td>{{.PortName}}</td></tr>
<tr><td><strong>Status</strong></td><td>{{.Status}}</td></tr>
<tr><td><strong>Created</strong></td><td>{{.CreatedAt}}</td></tr>
</table>
{{- if .CustomMessage}}
<p>{{.CustomMessage}}</p>
{{- end}}
<p>Please reply to this email if any of the details are incorrect.</p>
<p>Kind regards,<br>Survey Operations</p>
</body>
</html>
`

// Confirmation is a rendered order confirmation
type Confirmation struct {
	Subject string
	HTML    string
}

type confirmationData struct {
	ClientName    string
	OrderNumber   string
	SurveyType    string
	VesselName    string
	PortName      string
	Status        string
	CreatedAt     string
	CustomMessage string
}

// Formatter renders order confirmation emails. It is safe for concurrent use.
type Formatter struct {
	tmpl *template.Template
}

func NewFormatter() *Formatter {
	return &Formatter{
		tmpl: template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

// Render fills the template from the order aggregate. Only the first ship
// and its first port call are shown; missing values render as "-". All
// values are HTML-escaped.
func (f *Formatter) Render(order *domain.OrderAggregate, customMessage string) (*Confirmation, error) {
	data := confirmationData{
		ClientName:    order.ClientName,
		OrderNumber:   order.OrderNumber,
		SurveyType:    order.SurveyType,
		VesselName:    "-",
		PortName:      "-",
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC1123),
		CustomMessage: strings.TrimSpace(customMessage),
	}
	if len(order.Ships) > 0 {
		ship := order.Ships[0]
		data.VesselName = ship.VesselName
		if len(ship.Ports) > 0 {
			data.PortName = ship.Ports[0].PortName
		}
	}

	var buf bytes.Buffer
	if err := f.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render confirmation: %w", err)
	}

	return &Confirmation{
		Subject: fmt.Sprintf("Order confirmation %s", order.OrderNumber),
		HTML:    buf.String(),
	}, nil
}
