package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const smartDeviceSelect = `
	SELECT smart_devices.id, smart_devices.house_id, smart_devices.room_id,
	       houses.house_name, rooms.room_name,
	       smart_devices.vendor_id, smart_devices.device_name,
	       smart_devices.is_on, smart_devices.voltage, smart_devices.power
	FROM smart_devices
	JOIN houses ON houses.id = smart_devices.house_id
	JOIN rooms ON rooms.id = smart_devices.room_id
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSmartDevice(row rowScanner) (*SmartDevice, error) {
	device := &SmartDevice{}
	err := row.Scan(
		&device.ID,
		&device.HouseID,
		&device.RoomID,
		&device.HouseName,
		&device.RoomName,
		&device.VendorID,
		&device.Name,
		&device.IsOn,
		&device.Voltage,
		&device.Power,
	)
	if err != nil {
		return nil, err
	}
	return device, nil
}

func getSmartDevice(q querier, houseID, roomID, deviceID int) (*SmartDevice, error) {
	device, err := scanSmartDevice(q.QueryRow(
		smartDeviceSelect+`
		WHERE smart_devices.house_id = $1
		  AND smart_devices.room_id = $2
		  AND smart_devices.id = $3`,
		houseID, roomID, deviceID,
	))

	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get smart device: %w", err)
	}

	return device, nil
}

// CreateSmartDevice inserts a device under the given house/room pair.
// The insert selects from the rooms table scoped on both ids, which
// keeps the device's redundant house_id consistent with its room's and
// turns a missing or mismatched parent chain into sql.ErrNoRows.
// A vendor id is generated when the caller does not supply one.
func (s *Store) CreateSmartDevice(houseID, roomID int, device *SmartDevice) (*SmartDevice, error) {
	vendorID := device.VendorID
	if vendorID == "" {
		vendorID = fmt.Sprintf("dev_%s", uuid.New().String()[:8])
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`
		INSERT INTO smart_devices (house_id, room_id, vendor_id, device_name, is_on, voltage, power)
		SELECT house_id, id, $3, $4, $5, $6, $7 FROM rooms WHERE house_id = $1 AND id = $2
		RETURNING id
	`, houseID, roomID, vendorID, device.Name, device.IsOn, device.Voltage, device.Power).Scan(&id)

	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create smart device: %w", err)
	}

	created, err := getSmartDevice(tx, houseID, roomID, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

func (s *Store) GetSmartDevice(houseID, roomID, deviceID int) (*SmartDevice, error) {
	return getSmartDevice(s.db, houseID, roomID, deviceID)
}

func (s *Store) GetRoomSmartDevices(houseID, roomID int) ([]SmartDevice, error) {
	rows, err := s.db.Query(
		smartDeviceSelect+`
		WHERE smart_devices.house_id = $1
		  AND smart_devices.room_id = $2`,
		houseID, roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query smart devices: %w", err)
	}
	defer rows.Close()

	return collectSmartDevices(rows)
}

func (s *Store) GetHouseSmartDevices(houseID int) ([]SmartDevice, error) {
	rows, err := s.db.Query(
		smartDeviceSelect+"WHERE smart_devices.house_id = $1",
		houseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query smart devices: %w", err)
	}
	defer rows.Close()

	return collectSmartDevices(rows)
}

func collectSmartDevices(rows *sql.Rows) ([]SmartDevice, error) {
	devices := []SmartDevice{}
	for rows.Next() {
		device, err := scanSmartDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan smart device: %w", err)
		}
		devices = append(devices, *device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating smart devices: %w", err)
	}

	return devices, nil
}

// UpdateSmartDeviceStatus rewrites the status triple and returns the
// post-update row.
func (s *Store) UpdateSmartDeviceStatus(houseID, roomID, deviceID int, isOn bool, voltage, power string) (*SmartDevice, error) {
	return s.updateSmartDevice(houseID, roomID, deviceID,
		"UPDATE smart_devices SET is_on = $4, voltage = $5, power = $6 WHERE house_id = $1 AND room_id = $2 AND id = $3",
		isOn, voltage, power,
	)
}

// RenameSmartDevice rewrites only the device name.
func (s *Store) RenameSmartDevice(houseID, roomID, deviceID int, name string) (*SmartDevice, error) {
	return s.updateSmartDevice(houseID, roomID, deviceID,
		"UPDATE smart_devices SET device_name = $4 WHERE house_id = $1 AND room_id = $2 AND id = $3",
		name,
	)
}

func (s *Store) updateSmartDevice(houseID, roomID, deviceID int, query string, args ...interface{}) (*SmartDevice, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	params := append([]interface{}{houseID, roomID, deviceID}, args...)
	result, err := tx.Exec(query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to update smart device: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	device, err := getSmartDevice(tx, houseID, roomID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return device, nil
}

func (s *Store) DeleteSmartDevice(houseID, roomID, deviceID int) (*SmartDevice, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	device, err := getSmartDevice(tx, houseID, roomID, deviceID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		"DELETE FROM smart_devices WHERE house_id = $1 AND room_id = $2 AND id = $3",
		houseID, roomID, deviceID,
	); err != nil {
		return nil, fmt.Errorf("failed to delete smart device: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return device, nil
}
