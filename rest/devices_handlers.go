package rest

import (
	"smart-home-api/db"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) CreateSmartDeviceHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	var req CreateSmartDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return ReturnBadRequest(c, "name is required")
	}

	device, err := s.Store.CreateSmartDevice(houseID, roomID, &db.SmartDevice{
		Name:     req.Name,
		VendorID: req.VendorID,
		IsOn:     req.IsOn,
		Voltage:  req.Voltage,
		Power:    req.Power,
	})
	if err != nil {
		return ReturnStorageError(c, err, "Room not found")
	}

	return c.Status(fiber.StatusCreated).JSON(toSmartDeviceResponse(*device))
}

func (s *Server) ListRoomSmartDevicesHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	devices, err := s.Store.GetRoomSmartDevices(houseID, roomID)
	if err != nil {
		return ReturnStorageError(c, err, "Room not found")
	}

	response := make([]SmartDeviceResponse, len(devices))
	for i, device := range devices {
		response[i] = toSmartDeviceResponse(device)
	}

	return c.JSON(response)
}

func (s *Server) ListHouseSmartDevicesHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	devices, err := s.Store.GetHouseSmartDevices(houseID)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	response := make([]SmartDeviceResponse, len(devices))
	for i, device := range devices {
		response[i] = toSmartDeviceResponse(device)
	}

	return c.JSON(response)
}

func (s *Server) GetSmartDeviceHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	deviceID, err := c.ParamsInt("device_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid device_id")
	}

	device, err := s.Store.GetSmartDevice(houseID, roomID, deviceID)
	if err != nil {
		return ReturnStorageError(c, err, "Smart device not found")
	}

	return c.JSON(toSmartDeviceResponse(*device))
}

func (s *Server) UpdateSmartDeviceStatusHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	deviceID, err := c.ParamsInt("device_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid device_id")
	}

	var req SmartDeviceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.IsOn == nil {
		return ReturnBadRequest(c, "is_on is required")
	}
	if req.Voltage == nil {
		return ReturnBadRequest(c, "voltage is required")
	}
	if req.Power == nil {
		return ReturnBadRequest(c, "power is required")
	}

	device, err := s.Store.UpdateSmartDeviceStatus(houseID, roomID, deviceID, *req.IsOn, *req.Voltage, *req.Power)
	if err != nil {
		return ReturnStorageError(c, err, "Smart device not found")
	}

	return c.JSON(toSmartDeviceResponse(*device))
}

func (s *Server) RenameSmartDeviceHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	deviceID, err := c.ParamsInt("device_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid device_id")
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return ReturnBadRequest(c, "name is required")
	}

	device, err := s.Store.RenameSmartDevice(houseID, roomID, deviceID, req.Name)
	if err != nil {
		return ReturnStorageError(c, err, "Smart device not found")
	}

	return c.JSON(toSmartDeviceResponse(*device))
}

func (s *Server) DeleteSmartDeviceHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	deviceID, err := c.ParamsInt("device_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid device_id")
	}

	device, err := s.Store.DeleteSmartDevice(houseID, roomID, deviceID)
	if err != nil {
		return ReturnStorageError(c, err, "Smart device not found")
	}

	return c.JSON(toSmartDeviceResponse(*device))
}
