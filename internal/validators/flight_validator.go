package validators

import (
	"fmt"

	"rioserver/internal/models"
)

// Flight wizard steps: 0 trip information, 1 passenger details,
// 2 special requests (free-form, nothing required), 3 payment.
const flightSteps = 4

// ValidateFlight aggregates the field-presence rules of every wizard
// step. The intake path treats the result as advisory: incomplete
// submissions are logged, not rejected.
func ValidateFlight(d *models.FlightData) map[string]string {
	errs := map[string]string{}
	for step := 0; step < flightSteps; step++ {
		for field, msg := range FlightStepErrors(step, d) {
			errs[field] = msg
		}
	}
	return errs
}

// FlightStepErrors checks the presence rules gating one wizard step.
func FlightStepErrors(step int, d *models.FlightData) map[string]string {
	errs := map[string]string{}

	if step == 0 {
		trip := d.TripInformation
		if trip.TripType == "" {
			errs["tripType"] = "Trip type is required"
		}
		if trip.DepartureAirport == "" {
			errs["departureAirport"] = "Departure airport is required"
		}
		if trip.DestinationAirport == "" {
			errs["destinationAirport"] = "Destination airport is required"
		}
		if trip.DepartureDate == "" {
			errs["departureDate"] = "Departure date is required"
		}
		if trip.TripType == "round-trip" && trip.ReturnDate == "" {
			errs["returnDate"] = "Return date is required for round trips"
		}
		if trip.PreferredDepartureTime == "" {
			errs["preferredDepartureTime"] = "Choose a time"
		}
		if trip.PreferredCabinClass == "" {
			errs["preferredCabinClass"] = "Choose a cabin class"
		}
		if d.Totals.TotalPassengers < 1 && len(d.Passengers) == 0 {
			errs["passengers"] = "At least one passenger is required"
		}
	}

	if step == 1 {
		for idx, pax := range d.Passengers {
			prefix := fmt.Sprintf("Passenger %d", idx+1)
			key := func(field string) string { return fmt.Sprintf("pax-%d-%s", idx, field) }
			if pax.FullName == "" {
				errs[key("fullName")] = prefix + ": full name required"
			}
			if pax.Gender == "" {
				errs[key("gender")] = prefix + ": gender required"
			}
			if pax.DOB == "" {
				errs[key("dob")] = prefix + ": date of birth required"
			}
			if pax.Nationality == "" {
				errs[key("nationality")] = prefix + ": nationality required"
			}
			if pax.PassportNumber == "" {
				errs[key("passportNumber")] = prefix + ": passport number required"
			}
			if pax.PassportExpiry == "" {
				errs[key("passportExpiry")] = prefix + ": passport expiry required"
			}
			if pax.Email == "" {
				errs[key("email")] = prefix + ": email required"
			}
			if pax.Phone == "" {
				errs[key("phone")] = prefix + ": phone required"
			}
		}
	}

	if step == 3 {
		payment := d.Payment
		if payment.PaymentMethod == "" {
			errs["paymentMethod"] = "Payment method is required"
		}
		if payment.BillingName == "" {
			errs["billingName"] = "Billing name is required"
		}
		if payment.BillingAddress == "" {
			errs["billingAddress"] = "Billing address is required"
		}
		if !payment.Agreement {
			errs["agreement"] = "Please confirm the details are correct"
		}
	}

	return errs
}
