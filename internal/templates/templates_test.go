package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rioserver/internal/models"
)

func TestBuildFlightEmptyPayloadRendersPlaceholders(t *testing.T) {
	tpl, err := Build(models.FormTypeFlight, &models.FlightData{})
	require.NoError(t, err)

	assert.Equal(t, "Flight Ticketing Request - - to -", tpl.Admin.Subject)
	assert.Contains(t, tpl.Admin.HTML, "New Flight Ticketing Submission")
	assert.Contains(t, tpl.Admin.HTML, "No passengers provided.")

	// Every missing field renders as a dash, never as an empty cell.
	assert.NotContains(t, tpl.Admin.HTML, "<td></td>")
	assert.Contains(t, tpl.Admin.HTML, "<td>-</td>")

	// No contact email in the payload: no client template, not an error.
	assert.Nil(t, tpl.Client)
}

func TestBuildFlightClientTemplate(t *testing.T) {
	data := &models.FlightData{
		TripInformation: models.TripInformation{
			TripType:           "one-way",
			DepartureAirport:   "KGL",
			DestinationAirport: "DXB",
			DepartureDate:      "2026-09-01",
		},
		Passengers: []models.Passenger{
			{FullName: "Jane Doe", Email: "jane@example.com", Phone: "+250700000000"},
		},
	}

	tpl, err := Build(models.FormTypeFlight, data)
	require.NoError(t, err)

	assert.Equal(t, "Flight Ticketing Request - KGL to DXB", tpl.Admin.Subject)
	assert.Contains(t, tpl.Admin.HTML, "Jane Doe")

	require.NotNil(t, tpl.Client)
	assert.Equal(t, "jane@example.com", tpl.Client.To)
	assert.Equal(t, "We received your flight ticketing request", tpl.Client.Subject)
	assert.Contains(t, tpl.Client.HTML, "Your flight request is confirmed")
}

func TestBuildLogisticsEmptyPayloadRendersPlaceholders(t *testing.T) {
	tpl, err := Build(models.FormTypeLogistics, &models.LogisticsData{})
	require.NoError(t, err)

	assert.Equal(t, "Logistics Quotation Request - -", tpl.Admin.Subject)
	assert.Contains(t, tpl.Admin.HTML, "New Logistics Submission")
	assert.NotContains(t, tpl.Admin.HTML, "<td></td>")
	assert.Contains(t, tpl.Admin.HTML, "L - x W - x H -")
	assert.Nil(t, tpl.Client)
}

func TestBuildLogisticsClientFallsBackToReceiver(t *testing.T) {
	data := &models.LogisticsData{
		Request:  models.LogisticsRequest{LogisticsType: "Sea Freight"},
		Receiver: models.Party{Email: "receiver@example.com"},
		Notes:    models.LogisticsNotes{Files: []string{"invoice.pdf"}},
	}

	tpl, err := Build(models.FormTypeLogistics, data)
	require.NoError(t, err)

	assert.Equal(t, "Logistics Quotation Request - Sea Freight", tpl.Admin.Subject)
	assert.Contains(t, tpl.Admin.HTML, "Included")

	require.NotNil(t, tpl.Client)
	assert.Equal(t, "receiver@example.com", tpl.Client.To)
	assert.Equal(t, "We received your logistics quotation request", tpl.Client.Subject)
}

func TestBuildUnsupportedFormType(t *testing.T) {
	_, err := Build(models.FormType("other"), &models.FlightData{})
	assert.ErrorIs(t, err, ErrUnsupportedFormType)

	// Payload and discriminator must agree.
	_, err = Build(models.FormTypeFlight, &models.LogisticsData{})
	assert.ErrorIs(t, err, ErrUnsupportedFormType)
}

func TestRenderedHTMLEscapesValues(t *testing.T) {
	data := &models.FlightData{
		TripInformation: models.TripInformation{
			DepartureAirport: "<script>alert(1)</script>",
		},
	}

	tpl, err := Build(models.FormTypeFlight, data)
	require.NoError(t, err)

	assert.NotContains(t, tpl.Admin.HTML, "<script>alert(1)</script>")
	assert.Contains(t, tpl.Admin.HTML, "&lt;script&gt;")
}

func TestCompactCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", compact("  a\n b\t\tc "))
	assert.Equal(t, "", compact("   "))
}

func TestSafePlaceholders(t *testing.T) {
	assert.Equal(t, "-", safe(""))
	assert.Equal(t, "KGL", safe("KGL"))
	assert.Equal(t, "-", safeInt(0))
	assert.Equal(t, "3", safeInt(3))
}

func TestWrapEmailStructure(t *testing.T) {
	out := wrapEmail("Title", "Subtitle", "<p>body</p>")
	assert.True(t, strings.Contains(out, "<h1>Title</h1>"))
	assert.Contains(t, out, `<p class="muted">Subtitle</p>`)
	assert.Contains(t, out, "<p>body</p>")

	out = wrapEmail("Title", "", "<p>body</p>")
	assert.NotContains(t, out, `class="muted"`)
}
