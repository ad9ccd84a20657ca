package models

import "strconv"

// LogisticsData is the payload variant for formType "logistics".
// Numeric-looking fields stay strings: they arrive as free-text inputs.
type LogisticsData struct {
	Request         LogisticsRequest `json:"request" bson:"request"`
	Shipper         Party            `json:"shipper" bson:"shipper"`
	Receiver        Party            `json:"receiver" bson:"receiver"`
	ShipmentDetails ShipmentDetails  `json:"shipmentDetails" bson:"shipmentDetails"`
	PickupDelivery  PickupDelivery   `json:"pickupDelivery" bson:"pickupDelivery"`
	Insurance       Insurance        `json:"insurance" bson:"insurance"`
	Notes           LogisticsNotes   `json:"notes" bson:"notes"`
	Volume          string           `json:"volume" bson:"volume"`
}

type LogisticsRequest struct {
	LogisticsType   string `json:"logisticsType" bson:"logisticsType"`
	ServiceType     string `json:"serviceType" bson:"serviceType"`
	ShipmentUrgency string `json:"shipmentUrgency" bson:"shipmentUrgency"`
}

type Party struct {
	Company  string `json:"company" bson:"company"`
	FullName string `json:"fullName" bson:"fullName"`
	Phone    string `json:"phone" bson:"phone"`
	Email    string `json:"email" bson:"email"`
	Country  string `json:"country" bson:"country"`
	City     string `json:"city" bson:"city"`
}

type ShipmentDetails struct {
	Description string     `json:"description" bson:"description"`
	CargoType   string     `json:"cargoType" bson:"cargoType"`
	Packages    string     `json:"packages" bson:"packages"`
	Weight      string     `json:"weight" bson:"weight"`
	Dimensions  Dimensions `json:"dimensions" bson:"dimensions"`
}

type Dimensions struct {
	Length string `json:"length" bson:"length"`
	Width  string `json:"width" bson:"width"`
	Height string `json:"height" bson:"height"`
}

type PickupDelivery struct {
	PickupAddress   string `json:"pickupAddress" bson:"pickupAddress"`
	PickupDate      string `json:"pickupDate" bson:"pickupDate"`
	DeliveryAddress string `json:"deliveryAddress" bson:"deliveryAddress"`
	DeliveryDate    string `json:"deliveryDate" bson:"deliveryDate"`
	NeedPacking     string `json:"needPacking" bson:"needPacking"`
	NeedCustoms     string `json:"needCustoms" bson:"needCustoms"`
}

type Insurance struct {
	NeedInsurance string `json:"needInsurance" bson:"needInsurance"`
	DeclaredValue string `json:"declaredValue" bson:"declaredValue"`
}

type LogisticsNotes struct {
	SpecialHandling string   `json:"specialHandling" bson:"specialHandling"`
	Files           []string `json:"files" bson:"files"`
}

// Volume computes the shipment volume in cubic meters (cm dimensions,
// three decimals). Any missing or non-positive dimension yields an empty
// string so no volume is shown.
func (d Dimensions) Volume() string {
	l := parseDimension(d.Length)
	w := parseDimension(d.Width)
	h := parseDimension(d.Height)
	if l <= 0 || w <= 0 || h <= 0 {
		return ""
	}
	return strconv.FormatFloat(l*w*h/1e6, 'f', 3, 64)
}

func parseDimension(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ContactEmail returns the shipper email, falling back to the receiver.
func (d *LogisticsData) ContactEmail() string {
	if d.Shipper.Email != "" {
		return d.Shipper.Email
	}
	return d.Receiver.Email
}
