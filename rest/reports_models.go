package rest

type HouseReportResponse struct {
	HouseID   int `json:"house_id"`
	Rooms     int `json:"rooms"`
	Devices   int `json:"devices"`
	DevicesOn int `json:"devices_on"`
}
