package validators

import "rioserver/internal/models"

// Logistics wizard steps: 0 request type, 1 shipper, 2 receiver,
// 3 shipment details, 4 pickup and delivery, 5 insurance.
const logisticsSteps = 6

func ValidateLogistics(d *models.LogisticsData) map[string]string {
	errs := map[string]string{}
	for step := 0; step < logisticsSteps; step++ {
		for field, msg := range LogisticsStepErrors(step, d) {
			errs[field] = msg
		}
	}
	return errs
}

// LogisticsStepErrors checks the presence rules gating one wizard step.
func LogisticsStepErrors(step int, d *models.LogisticsData) map[string]string {
	errs := map[string]string{}

	switch step {
	case 0:
		if d.Request.LogisticsType == "" {
			errs["logisticsType"] = "Select a logistics type"
		}
		if d.Request.ServiceType == "" {
			errs["serviceType"] = "Select a service type"
		}
		if d.Request.ShipmentUrgency == "" {
			errs["shipmentUrgency"] = "Select shipment urgency"
		}
	case 1:
		partyErrors(errs, "shipper", d.Shipper)
	case 2:
		partyErrors(errs, "receiver", d.Receiver)
	case 3:
		sd := d.ShipmentDetails
		if sd.Description == "" {
			errs["description"] = "Description required"
		}
		if sd.CargoType == "" {
			errs["cargoType"] = "Cargo type required"
		}
		if sd.Packages == "" {
			errs["packages"] = "Number of packages required"
		}
		if sd.Weight == "" {
			errs["weight"] = "Weight required"
		}
		if sd.Dimensions.Length == "" || sd.Dimensions.Width == "" || sd.Dimensions.Height == "" {
			errs["dimensions"] = "All dimensions required"
		}
	case 4:
		pd := d.PickupDelivery
		if pd.PickupAddress == "" {
			errs["pickupAddress"] = "Pickup address required"
		}
		if pd.PickupDate == "" {
			errs["pickupDate"] = "Pickup date required"
		}
		if pd.DeliveryAddress == "" {
			errs["deliveryAddress"] = "Delivery address required"
		}
	case 5:
		if d.Insurance.NeedInsurance == "Yes" && d.Insurance.DeclaredValue == "" {
			errs["declaredValue"] = "Declared value required"
		}
	}

	return errs
}

func partyErrors(errs map[string]string, role string, p models.Party) {
	if p.FullName == "" {
		errs[role+".fullName"] = "Required"
	}
	if p.Phone == "" {
		errs[role+".phone"] = "Required"
	}
	if p.Email == "" {
		errs[role+".email"] = "Required"
	}
	if p.Country == "" {
		errs[role+".country"] = "Required"
	}
	if p.City == "" {
		errs[role+".city"] = "Required"
	}
}
