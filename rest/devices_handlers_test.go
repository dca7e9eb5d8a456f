package rest

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreateSmartDeviceHandler(t *testing.T) {
	store := setupTestDB(t)
	app := setupTestApp(store)

	house, err := store.CreateHouse("My Home")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	if _, err := store.CreateRoom(house.ID, "Dinner"); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	other, err := store.CreateHouse("Summer House")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	if _, err := store.CreateRoom(other.ID, "Porch"); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	tests := []struct {
		name           string
		path           string
		payload        interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Missing name",
			path:           "/houses/1/rooms/1/devices",
			payload:        CreateSmartDeviceRequest{},
			expectedStatus: fiber.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Unknown room",
			path:           "/houses/1/rooms/99/devices",
			payload:        CreateSmartDeviceRequest{Name: "Smart Socket"},
			expectedStatus: fiber.StatusNotFound,
			checkResponse:  nil,
		},
		{
			name:           "Room belongs to another house",
			path:           "/houses/1/rooms/2/devices",
			payload:        CreateSmartDeviceRequest{Name: "Smart Socket"},
			expectedStatus: fiber.StatusNotFound,
			checkResponse:  nil,
		},
		{
			name: "Valid request",
			path: "/houses/1/rooms/1/devices",
			payload: CreateSmartDeviceRequest{
				Name:     "Smart Socket",
				VendorID: "WE23_134",
				IsOn:     true,
				Voltage:  "220",
				Power:    "2A",
			},
			expectedStatus: fiber.StatusCreated,
			checkResponse: func(t *testing.T, body []byte) {
				var response SmartDeviceResponse
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response.ID == 0 {
					t.Error("Expected server-assigned id to be populated")
				}
				if response.Name != "Smart Socket" || response.VendorID != "WE23_134" {
					t.Errorf("Unexpected device fields: %+v", response)
				}
				if !response.IsOn || response.Voltage != "220" || response.Power != "2A" {
					t.Errorf("Unexpected status fields: %+v", response)
				}
				if response.HouseName != "My Home" || response.RoomName != "Dinner" {
					t.Errorf("Expected derived names, got %+v", response)
				}
			},
		},
		{
			name:           "Generated vendor id",
			path:           "/houses/1/rooms/1/devices",
			payload:        CreateSmartDeviceRequest{Name: "Thermostat"},
			expectedStatus: fiber.StatusCreated,
			checkResponse: func(t *testing.T, body []byte) {
				var response SmartDeviceResponse
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if !strings.HasPrefix(response.VendorID, "dev_") {
					t.Errorf("Expected generated vendor id, got '%s'", response.VendorID)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, "POST", tt.path, tt.payload)

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Response: %s",
					tt.expectedStatus, resp.StatusCode, string(readBody(t, resp)))
				return
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, readBody(t, resp))
			}
		})
	}
}

func TestGetSmartDeviceHandler(t *testing.T) {
	store := setupTestDB(t)
	app := setupTestApp(store)

	house, err := store.CreateHouse("My Home")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	room, err := store.CreateRoom(house.ID, "Dinner")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if _, err := store.CreateRoom(house.ID, "Bedroom"); err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if _, err := store.CreateSmartDevice(house.ID, room.ID, testSmartDevice("Smart Socket")); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "Existing device",
			path:           "/houses/1/rooms/1/devices/1",
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "Unknown device",
			path:           "/houses/1/rooms/1/devices/99",
			expectedStatus: fiber.StatusNotFound,
		},
		{
			name:           "Device under the wrong room",
			path:           "/houses/1/rooms/2/devices/1",
			expectedStatus: fiber.StatusNotFound,
		},
		{
			name:           "Invalid device id",
			path:           "/houses/1/rooms/1/devices/abc",
			expectedStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, "GET", tt.path, nil)
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, resp.StatusCode)
			}
		})
	}
}

func TestListSmartDevicesHandlers(t *testing.T) {
	store := setupTestDB(t)
	app := setupTestApp(store)

	house, err := store.CreateHouse("My Home")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	dinner, err := store.CreateRoom(house.ID, "Dinner")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	bedroom, err := store.CreateRoom(house.ID, "Bedroom")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	for _, name := range []string{"Smart Socket", "Lamp"} {
		if _, err := store.CreateSmartDevice(house.ID, dinner.ID, testSmartDevice(name)); err != nil {
			t.Fatalf("Failed to create device: %v", err)
		}
	}
	if _, err := store.CreateSmartDevice(house.ID, bedroom.ID, testSmartDevice("Heater")); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}

	resp := doRequest(t, app, "GET", "/houses/1/rooms/1/devices", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var devices []SmartDeviceResponse
	if err := json.Unmarshal(readBody(t, resp), &devices); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(devices) != 2 {
		t.Errorf("Expected 2 devices in the dinner room, got %d", len(devices))
	}
	for _, device := range devices {
		if device.RoomName != "Dinner" || device.HouseName != "My Home" {
			t.Errorf("Expected derived names, got %+v", device)
		}
	}

	// House-wide listing spans rooms.
	resp = doRequest(t, app, "GET", "/houses/1/devices", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if err := json.Unmarshal(readBody(t, resp), &devices); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(devices) != 3 {
		t.Fatalf("Expected 3 devices in the house, got %d", len(devices))
	}

	rooms := map[string]int{}
	for _, device := range devices {
		rooms[device.RoomName]++
	}
	if rooms["Dinner"] != 2 || rooms["Bedroom"] != 1 {
		t.Errorf("Unexpected room distribution: %v", rooms)
	}

	resp = doRequest(t, app, "GET", "/houses/1/rooms/2/devices", nil)
	if err := json.Unmarshal(readBody(t, resp), &devices); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(devices) != 1 {
		t.Errorf("Expected 1 device in the bedroom, got %d", len(devices))
	}
}

func TestUpdateSmartDeviceStatusHandler(t *testing.T) {
	store := setupTestDB(t)
	app := setupTestApp(store)

	house, err := store.CreateHouse("My Home")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	room, err := store.CreateRoom(house.ID, "Dinner")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if _, err := store.CreateSmartDevice(house.ID, room.ID, testSmartDevice("Smart Socket")); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}

	isOn := false
	voltage := "230"
	power := "1A"

	tests := []struct {
		name           string
		path           string
		payload        interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, body []byte)
	}{
		{
			name:           "Missing is_on",
			path:           "/houses/1/rooms/1/devices/1",
			payload:        SmartDeviceStatusRequest{Voltage: &voltage, Power: &power},
			expectedStatus: fiber.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Missing voltage",
			path:           "/houses/1/rooms/1/devices/1",
			payload:        SmartDeviceStatusRequest{IsOn: &isOn, Power: &power},
			expectedStatus: fiber.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Missing power",
			path:           "/houses/1/rooms/1/devices/1",
			payload:        SmartDeviceStatusRequest{IsOn: &isOn, Voltage: &voltage},
			expectedStatus: fiber.StatusBadRequest,
			checkResponse:  nil,
		},
		{
			name:           "Unknown device",
			path:           "/houses/1/rooms/1/devices/99",
			payload:        SmartDeviceStatusRequest{IsOn: &isOn, Voltage: &voltage, Power: &power},
			expectedStatus: fiber.StatusNotFound,
			checkResponse:  nil,
		},
		{
			name:           "Valid request",
			path:           "/houses/1/rooms/1/devices/1",
			payload:        SmartDeviceStatusRequest{IsOn: &isOn, Voltage: &voltage, Power: &power},
			expectedStatus: fiber.StatusOK,
			checkResponse: func(t *testing.T, body []byte) {
				var response SmartDeviceResponse
				if err := json.Unmarshal(body, &response); err != nil {
					t.Fatalf("Failed to unmarshal response: %v", err)
				}
				if response.IsOn || response.Voltage != "230" || response.Power != "1A" {
					t.Errorf("Expected updated status triple, got %+v", response)
				}
				if response.Name != "Smart Socket" {
					t.Errorf("Expected name to be untouched, got '%s'", response.Name)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, "PATCH", tt.path, tt.payload)

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Response: %s",
					tt.expectedStatus, resp.StatusCode, string(readBody(t, resp)))
				return
			}

			if tt.checkResponse != nil {
				tt.checkResponse(t, readBody(t, resp))
			}
		})
	}
}

func TestRenameSmartDeviceHandler(t *testing.T) {
	store := setupTestDB(t)
	app := setupTestApp(store)

	house, err := store.CreateHouse("My Home")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	room, err := store.CreateRoom(house.ID, "Dinner")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if _, err := store.CreateSmartDevice(house.ID, room.ID, testSmartDevice("Smart Socket")); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}

	resp := doRequest(t, app, "PATCH", "/houses/1/rooms/1/devices/rename/1", RenameRequest{Name: "Wall Socket"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d. Response: %s", resp.StatusCode, string(readBody(t, resp)))
	}

	var device SmartDeviceResponse
	if err := json.Unmarshal(readBody(t, resp), &device); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if device.Name != "Wall Socket" {
		t.Errorf("Expected name 'Wall Socket', got '%s'", device.Name)
	}
	if !device.IsOn || device.Voltage != "220" || device.Power != "2A" {
		t.Errorf("Expected status fields to be untouched, got %+v", device)
	}

	resp = doRequest(t, app, "PATCH", "/houses/1/rooms/1/devices/rename/99", RenameRequest{Name: "Wall Socket"})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404 for unknown device, got %d", resp.StatusCode)
	}
}

func TestDeleteSmartDeviceHandler(t *testing.T) {
	store := setupTestDB(t)
	app := setupTestApp(store)

	house, err := store.CreateHouse("My Home")
	if err != nil {
		t.Fatalf("Failed to create house: %v", err)
	}
	room, err := store.CreateRoom(house.ID, "Dinner")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if _, err := store.CreateSmartDevice(house.ID, room.ID, testSmartDevice("Smart Socket")); err != nil {
		t.Fatalf("Failed to create device: %v", err)
	}

	resp := doRequest(t, app, "DELETE", "/houses/1/rooms/1/devices/1", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var snapshot SmartDeviceResponse
	if err := json.Unmarshal(readBody(t, resp), &snapshot); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if snapshot.ID != 1 || snapshot.Name != "Smart Socket" || snapshot.VendorID != "WE23_134" {
		t.Errorf("Expected pre-deletion snapshot, got %+v", snapshot)
	}

	resp = doRequest(t, app, "GET", "/houses/1/rooms/1/devices/1", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404 after deletion, got %d", resp.StatusCode)
	}

	resp = doRequest(t, app, "DELETE", "/houses/1/rooms/1/devices/1", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("Expected status 404 for repeated deletion, got %d", resp.StatusCode)
	}
}
