package rest

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) CreateRoomHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return ReturnBadRequest(c, "name is required")
	}

	room, err := s.Store.CreateRoom(houseID, req.Name)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	return c.Status(fiber.StatusCreated).JSON(toRoomResponse(*room))
}

func (s *Server) ListRoomsHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	rooms, err := s.Store.GetRooms(houseID)
	if err != nil {
		return ReturnStorageError(c, err, "House not found")
	}

	response := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		response[i] = toRoomResponse(room)
	}

	return c.JSON(response)
}

func (s *Server) GetRoomHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	room, err := s.Store.GetRoom(houseID, roomID)
	if err != nil {
		return ReturnStorageError(c, err, "Room not found")
	}

	return c.JSON(toRoomResponse(*room))
}

func (s *Server) RenameRoomHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	var req RenameRequest
	if err := c.BodyParser(&req); err != nil {
		return ReturnBadRequest(c, "Invalid request body")
	}

	if req.Name == "" {
		return ReturnBadRequest(c, "name is required")
	}

	room, err := s.Store.RenameRoom(houseID, roomID, req.Name)
	if err != nil {
		return ReturnStorageError(c, err, "Room not found")
	}

	return c.JSON(toRoomResponse(*room))
}

// DeleteRoomHandler deletes a room together with its devices and
// returns the pre-deletion snapshot of the room.
func (s *Server) DeleteRoomHandler(c *fiber.Ctx) error {
	houseID, err := c.ParamsInt("house_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid house_id")
	}

	roomID, err := c.ParamsInt("room_id")
	if err != nil {
		return ReturnBadRequest(c, "Invalid room_id")
	}

	room, err := s.Store.DeleteRoom(houseID, roomID)
	if err != nil {
		return ReturnStorageError(c, err, "Room not found")
	}

	return c.JSON(toRoomResponse(*room))
}
