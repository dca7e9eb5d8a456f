package db

import (
	"database/sql"
	"fmt"
)

const roomSelect = `
	SELECT rooms.id, rooms.house_id, houses.house_name, rooms.room_name
	FROM rooms
	JOIN houses ON houses.id = rooms.house_id
`

func getRoom(q querier, houseID, roomID int) (*Room, error) {
	room := &Room{}
	err := q.QueryRow(
		roomSelect+"WHERE houses.id = $1 AND rooms.id = $2",
		houseID, roomID,
	).Scan(&room.ID, &room.HouseID, &room.HouseName, &room.Name)

	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

// CreateRoom inserts a room under houseID. The insert selects from the
// houses table, so a nonexistent house yields sql.ErrNoRows instead of
// a foreign key fault.
func (s *Store) CreateRoom(houseID int, name string) (*Room, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`
		INSERT INTO rooms (house_id, room_name)
		SELECT id, $2 FROM houses WHERE id = $1
		RETURNING id
	`, houseID, name).Scan(&id)

	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	room, err := getRoom(tx, houseID, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return room, nil
}

func (s *Store) GetRoom(houseID, roomID int) (*Room, error) {
	return getRoom(s.db, houseID, roomID)
}

func (s *Store) GetRooms(houseID int) ([]Room, error) {
	rows, err := s.db.Query(
		roomSelect+"WHERE rooms.house_id = $1",
		houseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	rooms := []Room{}
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.ID, &room.HouseID, &room.HouseName, &room.Name); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}

func (s *Store) RenameRoom(houseID, roomID int, name string) (*Room, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE rooms SET room_name = $3 WHERE house_id = $1 AND id = $2",
		houseID, roomID, name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rename room: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	room, err := getRoom(tx, houseID, roomID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return room, nil
}

// DeleteRoom removes a room and, via cascade, its devices, returning
// the pre-deletion snapshot of the room.
func (s *Store) DeleteRoom(houseID, roomID int) (*Room, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	room, err := getRoom(tx, houseID, roomID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(
		"DELETE FROM rooms WHERE house_id = $1 AND id = $2",
		houseID, roomID,
	); err != nil {
		return nil, fmt.Errorf("failed to delete room: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return room, nil
}
