package db

import (
	"database/sql"
	"fmt"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the row helpers
// can run inside or outside a transaction.
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

func getHouse(q querier, houseID int) (*House, error) {
	house := &House{}
	err := q.QueryRow(
		"SELECT id, house_name FROM houses WHERE id = $1",
		houseID,
	).Scan(&house.ID, &house.Name)

	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	return house, nil
}

// CreateHouse inserts a house and reads it back in the same
// transaction so the caller receives the server-assigned id.
func (s *Store) CreateHouse(name string) (*House, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int
	if err := tx.QueryRow(
		"INSERT INTO houses (house_name) VALUES ($1) RETURNING id",
		name,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	house, err := getHouse(tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return house, nil
}

func (s *Store) GetHouse(houseID int) (*House, error) {
	return getHouse(s.db, houseID)
}

func (s *Store) GetHouses() ([]House, error) {
	rows, err := s.db.Query("SELECT id, house_name FROM houses")
	if err != nil {
		return nil, fmt.Errorf("failed to query houses: %w", err)
	}
	defer rows.Close()

	houses := []House{}
	for rows.Next() {
		var house House
		if err := rows.Scan(&house.ID, &house.Name); err != nil {
			return nil, fmt.Errorf("failed to scan house: %w", err)
		}
		houses = append(houses, house)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating houses: %w", err)
	}

	return houses, nil
}

func (s *Store) RenameHouse(houseID int, name string) (*House, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE houses SET house_name = $2 WHERE id = $1",
		houseID, name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rename house: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}

	house, err := getHouse(tx, houseID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return house, nil
}

// DeleteHouse removes a house and, through the schema's cascading
// foreign keys, every room and device under it. The returned value is
// the house row as it was immediately before deletion.
func (s *Store) DeleteHouse(houseID int) (*House, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	house, err := getHouse(tx, houseID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec("DELETE FROM houses WHERE id = $1", houseID); err != nil {
		return nil, fmt.Errorf("failed to delete house: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return house, nil
}
