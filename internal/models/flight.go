package models

// FlightData is the payload variant for formType "flight". Field names
// mirror the wizard's wire format, so bson tags stay camelCase.
type FlightData struct {
	TripInformation TripInformation `json:"tripInformation" bson:"tripInformation"`
	Passengers      []Passenger     `json:"passengers" bson:"passengers"`
	SpecialRequests SpecialRequests `json:"specialRequests" bson:"specialRequests"`
	Payment         FlightPayment   `json:"payment" bson:"payment"`
	Totals          FlightTotals    `json:"totals" bson:"totals"`
}

type TripInformation struct {
	TripType               string `json:"tripType" bson:"tripType"`
	DepartureAirport       string `json:"departureAirport" bson:"departureAirport"`
	DestinationAirport     string `json:"destinationAirport" bson:"destinationAirport"`
	DepartureDate          string `json:"departureDate" bson:"departureDate"`
	ReturnDate             string `json:"returnDate" bson:"returnDate"`
	PreferredDepartureTime string `json:"preferredDepartureTime" bson:"preferredDepartureTime"`
	PreferredAirline       string `json:"preferredAirline" bson:"preferredAirline"`
	PreferredCabinClass    string `json:"preferredCabinClass" bson:"preferredCabinClass"`
	PassengersText         string `json:"passengersText" bson:"passengersText"`
}

type Passenger struct {
	FullName       string `json:"fullName" bson:"fullName"`
	Gender         string `json:"gender" bson:"gender"`
	DOB            string `json:"dob" bson:"dob"`
	Nationality    string `json:"nationality" bson:"nationality"`
	PassportNumber string `json:"passportNumber" bson:"passportNumber"`
	PassportExpiry string `json:"passportExpiry" bson:"passportExpiry"`
	Email          string `json:"email" bson:"email"`
	Phone          string `json:"phone" bson:"phone"`
}

type SpecialRequests struct {
	SeatPreference       string `json:"seatPreference" bson:"seatPreference"`
	MealPreference       string `json:"mealPreference" bson:"mealPreference"`
	WheelchairAssistance string `json:"wheelchairAssistance" bson:"wheelchairAssistance"`
	AdditionalRequests   string `json:"additionalRequests" bson:"additionalRequests"`
}

type FlightPayment struct {
	PaymentMethod  string `json:"paymentMethod" bson:"paymentMethod"`
	BillingName    string `json:"billingName" bson:"billingName"`
	BillingAddress string `json:"billingAddress" bson:"billingAddress"`
	Agreement      bool   `json:"agreement" bson:"agreement"`
}

type FlightTotals struct {
	TotalPassengers int `json:"totalPassengers" bson:"totalPassengers"`
}

// ContactEmail returns the first passenger email, if any. Used to derive
// the optional client-facing template recipient.
func (d *FlightData) ContactEmail() string {
	for _, p := range d.Passengers {
		if p.Email != "" {
			return p.Email
		}
	}
	return ""
}
