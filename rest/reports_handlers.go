package rest

import (
	"github.com/gofiber/fiber/v2"
)

// GetRoomDeviceReportHandler returns a plain-text status description
// for the device named by the ?device query parameter.
func (s *Server) GetRoomDeviceReportHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	deviceName := c.Query("device")
	if deviceName == "" {
		return ReturnBadRequest(c, "device is required")
	}

	report, err := s.Reporter.DescribeDevice(houseID, roomID, deviceName)
	if err != nil {
		return ReturnStorageError(c, err, "Smart device not found")
	}

	return c.SendString(report)
}

func (s *Server) GetHouseReportHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	summary, err := s.Store.GetHouseSummary(houseID)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	return c.JSON(HouseReportResponse{
		HouseID:   houseID,
		Rooms:     summary.Rooms,
		Devices:   summary.Devices,
		DevicesOn: summary.DevicesOn,
	})
}
