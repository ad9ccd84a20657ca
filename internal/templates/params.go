package templates

import (
	"fmt"
	"strconv"

	"rioserver/internal/models"
)

// WhatsApp template parameter builders. Each builder emits its full
// parameter list; the dispatcher truncates where the provisioned
// template accepts fewer slots (flight admin templates take 5).

// FlightAdminParamLimit is the slot count of the provisioned flight
// admin template.
const FlightAdminParamLimit = 5

// BuildAdminParams dispatches to the admin parameter builder for the
// payload's form type.
func BuildAdminParams(formType models.FormType, payload interface{}) ([]string, error) {
	switch formType {
	case models.FormTypeFlight:
		if d, ok := payload.(*models.FlightData); ok {
			return BuildFlightAdminParams(d), nil
		}
	case models.FormTypeLogistics:
		if d, ok := payload.(*models.LogisticsData); ok {
			return BuildLogisticsAdminParams(d), nil
		}
	}
	return nil, ErrUnsupportedFormType
}

func BuildFlightAdminParams(d *models.FlightData) []string {
	trip := d.TripInformation
	var first models.Passenger
	if len(d.Passengers) > 0 {
		first = d.Passengers[0]
	}

	v1 := fmt.Sprintf("%s (Phone: %s)", safe(first.FullName), safe(first.Phone))
	v2 := fmt.Sprintf("%s to %s (%s)", safe(trip.DepartureAirport), safe(trip.DestinationAirport), safe(trip.TripType))

	v3 := safe(trip.DepartureDate)
	if trip.ReturnDate != "" {
		v3 += " - " + trip.ReturnDate
	}
	airline := trip.PreferredAirline
	if airline == "" {
		airline = "Not specified"
	}
	v3 += fmt.Sprintf(", %s, %s", safe(trip.PreferredCabinClass), airline)

	v4base := ""
	if d.Totals.TotalPassengers > 0 {
		v4base = strconv.Itoa(d.Totals.TotalPassengers)
	} else {
		v4base = trip.PassengersText
	}
	v4 := safe(v4base)
	if trip.PassengersText != "" {
		v4 += " (" + trip.PassengersText + ")"
	}

	v5 := fmt.Sprintf("%s, %s, %s",
		safe(d.SpecialRequests.SeatPreference),
		safe(d.SpecialRequests.MealPreference),
		safe(d.SpecialRequests.WheelchairAssistance))
	v6 := fmt.Sprintf("%s - Bill to: %s", safe(d.Payment.PaymentMethod), safe(d.Payment.BillingName))

	return compactAll(v1, v2, v3, v4, v5, v6)
}

func BuildFlightClientParams(d *models.FlightData) []string {
	trip := d.TripInformation
	var first models.Passenger
	if len(d.Passengers) > 0 {
		first = d.Passengers[0]
	}

	v1 := safe(first.FullName)
	v2 := fmt.Sprintf("%s -> %s (%s), %s", safe(trip.DepartureAirport), safe(trip.DestinationAirport),
		safe(trip.TripType), safe(trip.DepartureDate))
	if trip.ReturnDate != "" {
		v2 += " - " + trip.ReturnDate
	}

	return compactAll(v1, v2)
}

func BuildLogisticsAdminParams(d *models.LogisticsData) []string {
	sd := d.ShipmentDetails
	dim := sd.Dimensions
	pd := d.PickupDelivery

	contactName := d.Shipper.FullName
	if contactName == "" {
		contactName = d.Receiver.FullName
	}
	contactPhone := d.Shipper.Phone
	if contactPhone == "" {
		contactPhone = d.Receiver.Phone
	}

	v1 := fmt.Sprintf("%s (Phone: %s)", safe(contactName), safe(contactPhone))
	v2 := fmt.Sprintf("%s -> %s (%s/%s)", safe(pd.PickupAddress), safe(pd.DeliveryAddress),
		safe(d.Request.LogisticsType), safe(d.Request.ServiceType))
	v3 := fmt.Sprintf("%s, %skg, %s, Packages: %s, Dim: L%sxW%sxH%s, Vol: %s",
		safe(sd.Description), safe(sd.Weight), safe(sd.CargoType), safe(sd.Packages),
		safe(dim.Length), safe(dim.Width), safe(dim.Height), safe(d.Volume))
	v4 := fmt.Sprintf("Urgency: %s, Pickup: %s, Delivery: %s",
		safe(d.Request.ShipmentUrgency), safe(pd.PickupDate), safe(pd.DeliveryDate))
	v5 := fmt.Sprintf("Insurance: %s (%s USD), Packing: %s, Customs: %s",
		safe(d.Insurance.NeedInsurance), safe(d.Insurance.DeclaredValue),
		safe(pd.NeedPacking), safe(pd.NeedCustoms))

	handling := d.Notes.SpecialHandling
	if handling == "" {
		handling = "None"
	}
	hasFiles := "No"
	if len(d.Notes.Files) > 0 {
		hasFiles = "Yes"
	}
	v6 := fmt.Sprintf("Notes: %s, Attachments: %s", handling, hasFiles)

	return compactAll(v1, v2, v3, v4, v5, v6)
}

func BuildLogisticsClientParams(d *models.LogisticsData) []string {
	pd := d.PickupDelivery

	contactName := d.Shipper.FullName
	if contactName == "" {
		contactName = d.Receiver.FullName
	}

	v1 := safe(contactName)
	v2 := fmt.Sprintf("%s -> %s (%s to %s)", safe(pd.PickupAddress), safe(pd.DeliveryAddress),
		safe(pd.PickupDate), safe(pd.DeliveryDate))

	return compactAll(v1, v2)
}

func compactAll(params ...string) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = compact(p)
	}
	return out
}
