package domain

import "time"

// Device is a heater bound to the authenticated account. Records are
// read-only from the client side; the server owns their lifecycle.
type Device struct {
	DID         string
	Alias       string
	ProductName string
	MAC         string
	Online      bool
}

// DeviceState is the last mode a device reported. It is re-fetched on
// every query, never cached.
type DeviceState struct {
	Mode      Mode
	UpdatedAt time.Time // zero when the API omits a timestamp
}
