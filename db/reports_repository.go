package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// DeviceReporter produces a textual status description for a device
// located by its room context and name.
type DeviceReporter interface {
	DescribeDevice(houseID, roomID int, deviceName string) (string, error)
}

// StaticReport is a pass-through reporter that returns its own text
// for any lookup.
type StaticReport string

func (r StaticReport) DescribeDevice(houseID, roomID int, deviceName string) (string, error) {
	return string(r), nil
}

func (s *Store) DescribeDevice(houseID, roomID int, deviceName string) (string, error) {
	device, err := scanSmartDevice(s.db.QueryRow(
		smartDeviceSelect+`
		WHERE smart_devices.house_id = $1
		  AND smart_devices.room_id = $2
		  AND smart_devices.device_name = $3`,
		houseID, roomID, deviceName,
	))

	if err == sql.ErrNoRows {
		return "", sql.ErrNoRows
	}
	if err != nil {
		return "", fmt.Errorf("failed to describe device: %w", err)
	}

	stats, err := json.Marshal(map[string]interface{}{
		"is_on":   device.IsOn,
		"voltage": device.Voltage,
		"power":   device.Power,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode device stats: %w", err)
	}

	return fmt.Sprintf(
		"Title: %s\nRoom: %s\nVendor ID: %s\nStats: %s",
		device.Name, device.RoomName, device.VendorID, stats,
	), nil
}

type HouseSummary struct {
	Rooms     int
	Devices   int
	DevicesOn int
}

// GetHouseSummary counts the rooms and devices under a house. Returns
// sql.ErrNoRows when the house itself does not exist.
func (s *Store) GetHouseSummary(houseID int) (*HouseSummary, error) {
	if _, err := getHouse(s.db, houseID); err != nil {
		return nil, err
	}

	var query string
	if s.IsSQLite() {
		query = `
			SELECT
				(SELECT COUNT(*) FROM rooms WHERE house_id = $1) AS rooms,
				COUNT(id) AS devices,
				COALESCE(SUM(CASE WHEN is_on THEN 1 ELSE 0 END), 0) AS devices_on
			FROM smart_devices
			WHERE house_id = $1
		`
	} else {
		query = `
			SELECT
				(SELECT COUNT(*) FROM rooms WHERE house_id = $1) AS rooms,
				COUNT(id) AS devices,
				COUNT(id) FILTER (WHERE is_on) AS devices_on
			FROM smart_devices
			WHERE house_id = $1
		`
	}

	summary := &HouseSummary{}
	err := s.db.QueryRow(query, houseID).Scan(&summary.Rooms, &summary.Devices, &summary.DevicesOn)
	if err != nil {
		return nil, fmt.Errorf("failed to get house summary: %w", err)
	}

	return summary, nil
}
