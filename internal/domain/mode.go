package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Mode is the heating mode of a device. The zero value is invalid.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeComfort
	ModeEco
	ModeFrostProtection
	ModeStop
	ModeComfortMinus1
	ModeComfortMinus2
)

func (m Mode) Valid() bool {
	return m >= ModeComfort && m <= ModeComfortMinus2
}

// String returns the CLI token for the mode.
func (m Mode) String() string {
	switch m {
	case ModeComfort:
		return "comfort"
	case ModeEco:
		return "eco"
	case ModeFrostProtection:
		return "frost-protection"
	case ModeStop:
		return "stop"
	case ModeComfortMinus1:
		return "comfort-1"
	case ModeComfortMinus2:
		return "comfort-2"
	default:
		return "unknown"
	}
}

// WireCode returns the numeric code the API uses for the mode.
func (m Mode) WireCode() int {
	switch m {
	case ModeComfort:
		return 0
	case ModeEco:
		return 1
	case ModeFrostProtection:
		return 2
	case ModeStop:
		return 3
	case ModeComfortMinus1:
		return 4
	case ModeComfortMinus2:
		return 5
	default:
		return -1
	}
}

// WireString returns the string code the API uses for the mode.
func (m Mode) WireString() string {
	switch m {
	case ModeComfort:
		return "cft"
	case ModeEco:
		return "eco"
	case ModeFrostProtection:
		return "fro"
	case ModeStop:
		return "stop"
	case ModeComfortMinus1:
		return "cft1"
	case ModeComfortMinus2:
		return "cft2"
	default:
		return ""
	}
}

// ParseMode converts a CLI token into a Mode. Unrecognized tokens are an
// error, never coerced to a default: a wrong heating command has physical
// consequences.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "comfort":
		return ModeComfort, nil
	case "eco":
		return ModeEco, nil
	case "frost-protection", "frost":
		return ModeFrostProtection, nil
	case "stop":
		return ModeStop, nil
	case "comfort-1", "comfort-minus-1":
		return ModeComfortMinus1, nil
	case "comfort-2", "comfort-minus-2":
		return ModeComfortMinus2, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %q (valid modes: comfort, eco, frost-protection, stop, comfort-1, comfort-2)", ErrUnknownMode, s)
	}
}

// ModeFromWireCode converts the API's numeric code into a Mode.
func ModeFromWireCode(code int) (Mode, error) {
	switch code {
	case 0:
		return ModeComfort, nil
	case 1:
		return ModeEco, nil
	case 2:
		return ModeFrostProtection, nil
	case 3:
		return ModeStop, nil
	case 4:
		return ModeComfortMinus1, nil
	case 5:
		return ModeComfortMinus2, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %d", ErrUnrecognizedWireCode, code)
	}
}

// ModeFromWireString converts the API's string code into a Mode.
func ModeFromWireString(s string) (Mode, error) {
	switch s {
	case "cft":
		return ModeComfort, nil
	case "eco":
		return ModeEco, nil
	case "fro":
		return ModeFrostProtection, nil
	case "stop":
		return ModeStop, nil
	case "cft1":
		return ModeComfortMinus1, nil
	case "cft2":
		return ModeComfortMinus2, nil
	default:
		return ModeUnknown, fmt.Errorf("%w: %q", ErrUnrecognizedWireCode, s)
	}
}

// ModeFromWire decodes a raw JSON mode value. The API reports modes as
// either an integer or a string code depending on the device generation.
// Decoding goes through pointers so a JSON null is rejected instead of
// reading as the zero code (Comfort).
func ModeFromWire(raw json.RawMessage) (Mode, error) {
	var code *int
	if err := json.Unmarshal(raw, &code); err == nil && code != nil {
		return ModeFromWireCode(*code)
	}

	var s *string
	if err := json.Unmarshal(raw, &s); err == nil && s != nil {
		return ModeFromWireString(*s)
	}

	return ModeUnknown, fmt.Errorf("%w: %s", ErrUnrecognizedWireCode, string(raw))
}
