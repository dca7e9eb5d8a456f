package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"smart-home-api/db"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupTestDB(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.ConnectWithConfig(db.Config{
		Driver:   "sqlite",
		Database: ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	schemaPath := filepath.Join("..", "db-schema.sql")
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("Failed to read schema file: %v", err)
	}

	schema := string(schemaBytes)
	schema = strings.ReplaceAll(schema, "SERIAL PRIMARY KEY", "INTEGER PRIMARY KEY AUTOINCREMENT")

	if _, err := store.DB().Exec(schema); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}

	return store
}

func setupTestApp(store *db.Store) *fiber.App {
	app := fiber.New()
	Init(app, store)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to perform request: %v", err)
	}

	return resp
}

func testSmartDevice(name string) *db.SmartDevice {
	return &db.SmartDevice{
		Name:     name,
		VendorID: "WE23_134",
		IsOn:     true,
		Voltage:  "220",
		Power:    "2A",
	}
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return body
}
