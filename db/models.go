package db

type House struct {
	ID   int
	Name string
}

// Room carries a read-time copy of the owning house's name; it is
// populated by a join, never stored.
type Room struct {
	ID        int
	HouseID   int
	HouseName string
	Name      string
}

type SmartDevice struct {
	ID        int
	HouseID   int
	RoomID    int
	HouseName string
	RoomName  string
	VendorID  string
	Name      string
	IsOn      bool
	Voltage   string
	Power     string
}
