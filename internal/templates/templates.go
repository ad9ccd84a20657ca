package templates

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"rioserver/internal/models"
)

// ErrUnsupportedFormType is returned by Build for discriminators no
// template set exists for.
var ErrUnsupportedFormType = errors.New("unsupported form type")

// Email is one rendered message. To is empty for the admin template,
// whose recipient comes from configuration.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Templates is the pair produced for one submission. Client is nil when
// no contact email can be derived from the payload; that is not an
// error.
type Templates struct {
	Admin  Email
	Client *Email
}

// Build maps a submission payload to its rendered admin and client
// templates. It is pure: same payload, same output.
func Build(formType models.FormType, payload interface{}) (*Templates, error) {
	switch formType {
	case models.FormTypeFlight:
		if d, ok := payload.(*models.FlightData); ok {
			return buildFlight(d), nil
		}
	case models.FormTypeLogistics:
		if d, ok := payload.(*models.LogisticsData); ok {
			return buildLogistics(d), nil
		}
	}
	return nil, ErrUnsupportedFormType
}

// safe renders missing values as a placeholder dash so tables never
// contain empty cells.
func safe(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func safeInt(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// compact collapses runs of whitespace; template parameters must not
// contain newlines.
func compact(v string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(v, " "))
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

const emailShell = `
<!doctype html>
<html>
<head>
  <meta charset="UTF-8" />
  <style>
    body { font-family: 'Segoe UI', Arial, sans-serif; background: #f5f7fb; padding: 24px; color: #111827; }
    .card { background: #ffffff; border-radius: 12px; padding: 24px; max-width: 720px; margin: 0 auto; box-shadow: 0 10px 30px rgba(0,0,0,0.06); }
    h1 { margin: 0 0 8px 0; font-size: 22px; color: #0f172a; }
    h2 { margin: 16px 0 8px 0; font-size: 16px; color: #0f172a; }
    p { margin: 6px 0; line-height: 1.5; }
    .muted { color: #6b7280; }
    .section { margin-top: 16px; padding-top: 12px; border-top: 1px solid #e5e7eb; }
    table { width: 100%; border-collapse: collapse; margin-top: 8px; }
    th, td { text-align: left; padding: 8px 6px; border-bottom: 1px solid #e5e7eb; font-size: 14px; }
    th { background: #f3f4f6; color: #111827; }
    .badge { display: inline-block; padding: 4px 8px; border-radius: 8px; background: #e0f2fe; color: #0ea5e9; font-weight: 600; font-size: 12px; }
  </style>
</head>
<body>
  <div class="card">
    <div style="display:flex; align-items:center; justify-content:space-between; gap:12px;">
      <h1>{{TITLE}}</h1>
      <span class="badge">RIO</span>
    </div>
    {{SUBTITLE}}
    {{BODY}}
  </div>
</body>
</html>`

func wrapEmail(title, subtitle, body string) string {
	subtitleHTML := ""
	if subtitle != "" {
		subtitleHTML = `<p class="muted">` + html.EscapeString(subtitle) + `</p>`
	}
	out := strings.Replace(emailShell, "{{TITLE}}", html.EscapeString(title), 1)
	out = strings.Replace(out, "{{SUBTITLE}}", subtitleHTML, 1)
	out = strings.Replace(out, "{{BODY}}", body, 1)
	return out
}

type row struct {
	label string
	value string
}

func renderRows(rows []row) string {
	var b strings.Builder
	b.WriteString("<table><tbody>")
	for _, r := range rows {
		fmt.Fprintf(&b, `<tr><th style="width: 36%%;">%s</th><td>%s</td></tr>`,
			html.EscapeString(r.label), html.EscapeString(safe(r.value)))
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func renderPassengers(passengers []models.Passenger) string {
	if len(passengers) == 0 {
		return "<p class='muted'>No passengers provided.</p>"
	}
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	b.WriteString("<th>#</th><th>Name</th><th>Gender</th><th>DOB</th><th>Nationality</th><th>Passport</th><th>Email</th><th>Phone</th>")
	b.WriteString("</tr></thead><tbody>")
	for idx, p := range passengers {
		fmt.Fprintf(&b,
			"<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s (exp: %s)</td><td>%s</td><td>%s</td></tr>",
			idx+1,
			html.EscapeString(safe(p.FullName)),
			html.EscapeString(safe(p.Gender)),
			html.EscapeString(safe(p.DOB)),
			html.EscapeString(safe(p.Nationality)),
			html.EscapeString(safe(p.PassportNumber)),
			html.EscapeString(safe(p.PassportExpiry)),
			html.EscapeString(safe(p.Email)),
			html.EscapeString(safe(p.Phone)))
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func section(heading, content string) string {
	return `<div class="section"><h2>` + heading + `</h2>` + content + `</div>`
}

func buildFlight(d *models.FlightData) *Templates {
	trip := d.TripInformation

	tripSection := renderRows([]row{
		{"Trip Type", trip.TripType},
		{"From", trip.DepartureAirport},
		{"To", trip.DestinationAirport},
		{"Departure Date", trip.DepartureDate},
		{"Return Date", trip.ReturnDate},
		{"Departure Time", trip.PreferredDepartureTime},
		{"Preferred Airline", trip.PreferredAirline},
		{"Cabin Class", trip.PreferredCabinClass},
		{"Passengers (A/C/I)", trip.PassengersText},
		{"Total Passengers", safeInt(d.Totals.TotalPassengers)},
	})

	requestsSection := renderRows([]row{
		{"Seat Preference", d.SpecialRequests.SeatPreference},
		{"Meal Preference", d.SpecialRequests.MealPreference},
		{"Wheelchair Assistance", d.SpecialRequests.WheelchairAssistance},
		{"Additional Requests", d.SpecialRequests.AdditionalRequests},
	})

	paymentSection := renderRows([]row{
		{"Payment Method", d.Payment.PaymentMethod},
		{"Billing Name", d.Payment.BillingName},
		{"Billing Address", d.Payment.BillingAddress},
		{"Agreement Confirmed", yesNo(d.Payment.Agreement)},
	})

	body := section("Trip Information", tripSection) +
		section("Passenger Details", renderPassengers(d.Passengers)) +
		section("Special Requests", requestsSection) +
		section("Payment &amp; Confirmation", paymentSection)

	adminSubject := fmt.Sprintf("Flight Ticketing Request - %s to %s",
		safe(trip.DepartureAirport), safe(trip.DestinationAirport))

	out := &Templates{
		Admin: Email{
			Subject: adminSubject,
			HTML:    wrapEmail("New Flight Ticketing Submission", "", body),
		},
	}

	if to := d.ContactEmail(); to != "" {
		out.Client = &Email{
			To:      to,
			Subject: "We received your flight ticketing request",
			HTML: wrapEmail(
				"Your flight request is confirmed",
				"Thank you for submitting your booking details. Our team will contact you shortly.",
				body),
		}
	}
	return out
}

func buildLogistics(d *models.LogisticsData) *Templates {
	dim := d.ShipmentDetails.Dimensions

	requestSection := renderRows([]row{
		{"Logistics Type", d.Request.LogisticsType},
		{"Service Type", d.Request.ServiceType},
		{"Shipment Urgency", d.Request.ShipmentUrgency},
	})

	shipmentSection := renderRows([]row{
		{"Description", d.ShipmentDetails.Description},
		{"Cargo Type", d.ShipmentDetails.CargoType},
		{"Packages", d.ShipmentDetails.Packages},
		{"Weight (kg)", d.ShipmentDetails.Weight},
		{"Dimensions (cm)", fmt.Sprintf("L %s x W %s x H %s", safe(dim.Length), safe(dim.Width), safe(dim.Height))},
		{"Calculated Volume (m³)", d.Volume},
	})

	pickupSection := renderRows([]row{
		{"Pickup Address", d.PickupDelivery.PickupAddress},
		{"Pickup Date", d.PickupDelivery.PickupDate},
		{"Delivery Address", d.PickupDelivery.DeliveryAddress},
		{"Delivery Date", d.PickupDelivery.DeliveryDate},
		{"Need Packing Service", d.PickupDelivery.NeedPacking},
		{"Need Customs Clearance", d.PickupDelivery.NeedCustoms},
	})

	insuranceSection := renderRows([]row{
		{"Need Cargo Insurance", d.Insurance.NeedInsurance},
		{"Declared Cargo Value (USD)", d.Insurance.DeclaredValue},
	})

	attachmentsNote := "None"
	if len(d.Notes.Files) > 0 {
		attachmentsNote = "Included"
	}
	notesSection := renderRows([]row{
		{"Special Handling Instructions", d.Notes.SpecialHandling},
		{"Attachments", attachmentsNote},
	})

	body := section("Request Type", requestSection) +
		section("Shipper Information", partySection(d.Shipper)) +
		section("Receiver Information", partySection(d.Receiver)) +
		section("Shipment Details", shipmentSection) +
		section("Pickup &amp; Delivery", pickupSection) +
		section("Insurance", insuranceSection) +
		section("Additional Notes", notesSection)

	adminSubject := fmt.Sprintf("Logistics Quotation Request - %s", safe(d.Request.LogisticsType))

	out := &Templates{
		Admin: Email{
			Subject: adminSubject,
			HTML:    wrapEmail("New Logistics Submission", "", body),
		},
	}

	if to := d.ContactEmail(); to != "" {
		out.Client = &Email{
			To:      to,
			Subject: "We received your logistics quotation request",
			HTML: wrapEmail(
				"Your logistics request is confirmed",
				"Thank you for submitting your shipment details. Our team will contact you shortly.",
				body),
		}
	}
	return out
}

func partySection(p models.Party) string {
	return renderRows([]row{
		{"Company", p.Company},
		{"Full Name", p.FullName},
		{"Phone", p.Phone},
		{"Email", p.Email},
		{"Country", p.Country},
		{"City", p.City},
	})
}
