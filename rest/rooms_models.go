package rest

import "smart-home-api/db"

type CreateRoomRequest struct {
	Name string `json:"name" validate:"required"`
}

type RoomResponse struct {
	ID        int    `json:"id"`
	HouseName string `json:"house_name,omitempty"`
	Name      string `json:"name"`
}

func toRoomResponse(room db.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID,
		HouseName: room.HouseName,
		Name:      room.Name,
	}
}
