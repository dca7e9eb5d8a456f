package rest

import (
	"smart-home-api/db"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Server holds the handler layer's collaborators. The store is
// injected at startup rather than reached through a package global.
type Server struct {
	Store    *db.Store
	Reporter db.DeviceReporter
}

func NewServer(store *db.Store) *Server {
	return &Server{
		Store:    store,
		Reporter: store,
	}
}

func Init(app *fiber.App, store *db.Store) {
	s := NewServer(store)

	SetupSwagger(app)

	app.Post("/houses", s.CreateHouseHandler)
	app.Get("/houses", s.ListHousesHandler)
	app.Patch("/houses/rename/:house_id", s.RenameHouseHandler)
	app.Get("/houses/:house_id", s.GetHouseHandler)
	app.Delete("/houses/:house_id", s.DeleteHouseHandler)
	app.Get("/houses/:house_id/report", s.GetHouseReportHandler)

	app.Post("/houses/:house_id/rooms", s.CreateRoomHandler)
	app.Get("/houses/:house_id/rooms", s.ListRoomsHandler)
	app.Patch("/houses/:house_id/rooms/rename/:room_id", s.RenameRoomHandler)
	app.Get("/houses/:house_id/rooms/:room_id", s.GetRoomHandler)
	app.Delete("/houses/:house_id/rooms/:room_id", s.DeleteRoomHandler)
	app.Get("/houses/:house_id/rooms/:room_id/report", s.GetRoomDeviceReportHandler)

	app.Post("/houses/:house_id/rooms/:room_id/devices", s.CreateSmartDeviceHandler)
	app.Get("/houses/:house_id/rooms/:room_id/devices", s.ListRoomSmartDevicesHandler)
	app.Patch("/houses/:house_id/rooms/:room_id/devices/rename/:device_id", s.RenameSmartDeviceHandler)
	app.Get("/houses/:house_id/rooms/:room_id/devices/:device_id", s.GetSmartDeviceHandler)
	app.Patch("/houses/:house_id/rooms/:room_id/devices/:device_id", s.UpdateSmartDeviceStatusHandler)
	app.Delete("/houses/:house_id/rooms/:room_id/devices/:device_id", s.DeleteSmartDeviceHandler)

	app.Get("/houses/:house_id/devices", s.ListHouseSmartDevicesHandler)

	log.Info("REST API started")
}
