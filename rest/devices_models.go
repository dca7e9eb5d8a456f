package rest

import "smart-home-api/db"

type CreateSmartDeviceRequest struct {
	Name     string `json:"name" validate:"required"`
	VendorID string `json:"vendor_id,omitempty"`
	IsOn     bool   `json:"is_on"`
	Voltage  string `json:"voltage"`
	Power    string `json:"power"`
}

// SmartDeviceStatusRequest rewrites the full status triple. All three
// fields are required; pointers distinguish absent from zero-valued.
type SmartDeviceStatusRequest struct {
	IsOn    *bool   `json:"is_on"`
	Voltage *string `json:"voltage"`
	Power   *string `json:"power"`
}

type SmartDeviceResponse struct {
	ID        int    `json:"id"`
	HouseName string `json:"house_name,omitempty"`
	RoomName  string `json:"room_name,omitempty"`
	Name      string `json:"name"`
	VendorID  string `json:"vendor_id"`
	IsOn      bool   `json:"is_on"`
	Voltage   string `json:"voltage"`
	Power     string `json:"power"`
}

func toSmartDeviceResponse(device db.SmartDevice) SmartDeviceResponse {
	return SmartDeviceResponse{
		ID:        device.ID,
		HouseName: device.HouseName,
		RoomName:  device.RoomName,
		Name:      device.Name,
		VendorID:  device.VendorID,
		IsOn:      device.IsOn,
		Voltage:   device.Voltage,
		Power:     device.Power,
	}
}
