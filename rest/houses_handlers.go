package rest

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) CreateHouseHandler(c *fiber.Ctx) error {
	var req CreateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return ReturnBadRequest(c, "name is required")
	}

	house, err := s.Store.CreateHouse(req.Name)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	return c.Status(fiber.StatusCreated).JSON(toHouseResponse(*house))
}

func (s *Server) ListHousesHandler(c *fiber.Ctx) error {
	houses, err := s.Store.GetHouses()
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	response := make([]HouseResponse, len(houses))
	for i, house := range houses {
		response[i] = toHouseResponse(house)
	}

	return c.JSON(response)
}

func (s *Server) GetHouseHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	house, err := s.Store.GetHouse(houseID)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	return c.JSON(toHouseResponse(*house))
}

func (s *Server) RenameHouseHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return ReturnBadRequest(c, "name is required")
	}

	house, err := s.Store.RenameHouse(houseID, req.Name)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	return c.JSON(toHouseResponse(*house))
}

// DeleteHouseHandler deletes a house together with its rooms and
// devices and returns the pre-deletion snapshot of the house.
func (s *Server) DeleteHouseHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	house, err := s.Store.DeleteHouse(houseID)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	return c.JSON(toHouseResponse(*house))
}
