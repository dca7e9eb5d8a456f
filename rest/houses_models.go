package rest

import "smart-home-api/db"

type CreateHouseRequest struct {
	Name string `json:"name" validate:"required"`
}

// RenameRequest is the body shared by all rename endpoints.
type RenameRequest struct {
	Name string `json:"name" validate:"required"`
}

type HouseResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func toHouseResponse(house db.House) HouseResponse {
	return HouseResponse{
		ID:   house.ID,
		Name: house.Name,
	}
}
