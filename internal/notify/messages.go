package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

var templates = template.Must(template.New("notify").Parse(`
{{define "intake"}}<h2>{{.Title}}</h2>
<p><strong>Cliente:</strong> {{.Client.Name}} &lt;{{.Client.Email}}&gt; {{.Client.Phone}}</p>
{{if .Client.Location}}<p><strong>Ubicación:</strong> {{.Client.Location}}</p>{{end}}
<p><strong>Vehículo:</strong> {{.Vehicle}}</p>
{{if .Request.DamageType}}<p><strong>Daño:</strong> {{.Request.DamageType}}</p>{{end}}
{{if .Zones}}<p><strong>Zonas:</strong> {{.Zones}}</p>{{end}}
{{if .Request.DamageNotes}}<p>{{.Request.DamageNotes}}</p>{{end}}
<p><strong>Estado:</strong> {{.Status}}</p>
<p><strong>Fotos:</strong> {{len .Request.Photos}}{{if .PhotosFailed}} ({{.PhotosFailed}} no se pudieron subir){{end}}</p>
{{range .Request.Photos}}<p><a href="{{.}}">{{.}}</a></p>{{end}}{{end}}

{{define "quote"}}<h2>Presupuesto generado</h2>
<p><strong>Cliente:</strong> {{.Client}}</p>
<p><strong>Vehículo:</strong> {{.Vehicle}}</p>
<p><strong>Total:</strong> $ {{.Total}}</p>
{{if .URL}}<p><a href="{{.URL}}">Descargar PDF</a></p>{{end}}{{end}}

{{define "digest"}}<h2>Resumen del {{.Date}}</h2>
<h3>Turnos de hoy ({{len .Appointments}})</h3>
<ul>{{range .Appointments}}<li>{{.Time}} {{.Label}}</li>{{else}}<li>Sin turnos</li>{{end}}</ul>
<h3>Solicitudes pendientes ({{len .Pending}})</h3>
<ul>{{range .Pending}}<li>{{.Label}}</li>{{else}}<li>Sin pendientes</li>{{end}}</ul>{{end}}

{{define "coverage"}}<h2>Coberturas por vencer desde el {{.Date}}</h2>
<ul>{{range .Lines}}<li>{{.Time}} {{.Label}}</li>{{end}}</ul>{{end}}
`))

func render(name string, data interface{}) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return template.HTMLEscapeString(fmt.Sprintf("%v", data))
	}
	return strings.TrimSpace(buf.String())
}

func clientName(req *domain.Request) string {
	if req.Client == nil {
		return ""
	}
	return req.Client.Name
}

// IntakeMessage announces a new public form submission
func IntakeMessage(req *domain.Request, client *domain.Client, photosFailed int) Message {
	title := fmt.Sprintf("Nueva solicitud: %s", req.ServiceLine.Label())
	data := struct {
		Title        string
		Client       *domain.Client
		Request      *domain.Request
		Vehicle      string
		Zones        string
		Status       string
		PhotosFailed int
	}{
		Title:        title,
		Client:       client,
		Request:      req,
		Vehicle:      req.VehicleLabel(),
		Zones:        strings.Join(req.DamageZones, ", "),
		Status:       req.Status.Label(),
		PhotosFailed: photosFailed,
	}

	text := fmt.Sprintf("%s\n%s (%s, %s)\n%s\nEstado: %s\nFotos: %d",
		client.Name, req.VehicleLabel(), client.Email, client.Phone,
		req.DamageType, req.Status.Label(), len(req.Photos))

	return Message{
		Subject: fmt.Sprintf("%s - %s", title, client.Name),
		HTML:    render("intake", data),
		Text:    text,
		ReplyTo: client.Email,
	}
}

// QuoteMessage announces a generated quote
func QuoteMessage(req *domain.Request, url string, total decimal.Decimal) Message {
	data := struct {
		Client  string
		Vehicle string
		Total   string
		URL     string
	}{
		Client:  clientName(req),
		Vehicle: req.VehicleLabel(),
		Total:   total.StringFixed(2),
		URL:     url,
	}

	return Message{
		Subject: fmt.Sprintf("Presupuesto generado - %s", data.Client),
		HTML:    render("quote", data),
		Text:    fmt.Sprintf("%s\nTotal: $ %s\n%s", data.Vehicle, data.Total, url),
	}
}

type digestLine struct {
	Time  string
	Label string
}

// DigestMessage summarises the day for the operator
func DigestMessage(day time.Time, appointments, pending []domain.Request, loc *time.Location) Message {
	data := struct {
		Date         string
		Appointments []digestLine
		Pending      []digestLine
	}{Date: day.In(loc).Format("02/01/2006")}

	var text strings.Builder
	text.WriteString("Turnos de hoy:\n")
	for i := range appointments {
		req := &appointments[i]
		line := digestLine{Label: strings.TrimSpace(clientName(req) + " " + req.VehicleLabel())}
		if req.ScheduledAt != nil {
			line.Time = req.ScheduledAt.In(loc).Format("15:04")
		}
		data.Appointments = append(data.Appointments, line)
		fmt.Fprintf(&text, "%s %s\n", line.Time, line.Label)
	}
	fmt.Fprintf(&text, "Pendientes: %d\n", len(pending))
	for i := range pending {
		req := &pending[i]
		line := digestLine{Label: fmt.Sprintf("%s - %s %s", req.ServiceLine.Label(), clientName(req), req.VehicleLabel())}
		data.Pending = append(data.Pending, line)
	}

	return Message{
		Subject: fmt.Sprintf("Resumen diario %s", data.Date),
		HTML:    render("digest", data),
		Text:    strings.TrimSpace(text.String()),
	}
}

// CoverageEndingMessage lists coverage plans that end soon so the operator can renew them
func CoverageEndingMessage(from time.Time, requests []domain.Request, loc *time.Location) Message {
	var text strings.Builder
	lines := make([]digestLine, 0, len(requests))
	for i := range requests {
		req := &requests[i]
		line := digestLine{Label: strings.TrimSpace(clientName(req) + " " + req.VehicleLabel())}
		if req.Cobertura != nil && req.Cobertura.CoverageEnd != nil {
			line.Time = time.Time(*req.Cobertura.CoverageEnd).Format("02/01/2006")
		}
		lines = append(lines, line)
		fmt.Fprintf(&text, "%s %s\n", line.Time, line.Label)
	}

	data := struct {
		Date  string
		Lines []digestLine
	}{Date: from.In(loc).Format("02/01/2006"), Lines: lines}

	return Message{
		Subject: fmt.Sprintf("Coberturas por vencer (%d)", len(requests)),
		HTML:    render("coverage", data),
		Text:    strings.TrimSpace(text.String()),
	}
}
