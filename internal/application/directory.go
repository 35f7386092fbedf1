package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"heatzyctl/internal/domain"
)

// DeviceLister is the slice of the API client the directory needs.
type DeviceLister interface {
	ListDevices(ctx context.Context) ([]domain.Device, error)
	GetDevice(ctx context.Context, did string) (domain.Device, error)
}

// Directory resolves a user-supplied device selector to one device record.
type Directory struct {
	devices DeviceLister
	logger  *slog.Logger
}

func NewDirectory(devices DeviceLister, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{devices: devices, logger: logger}
}

// ResolveByName matches the alias exactly and case-sensitively against the
// account's device list. Aliases are not unique, so more than one match is
// an error rather than a guess: the command would otherwise go to the wrong
// physical heater.
func (d *Directory) ResolveByName(ctx context.Context, alias string) (domain.Device, error) {
	devices, err := d.devices.ListDevices(ctx)
	if err != nil {
		return domain.Device{}, err
	}

	var matches []domain.Device
	for _, dev := range devices {
		if dev.Alias == alias {
			matches = append(matches, dev)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Device{}, fmt.Errorf("device %q: %w", alias, domain.ErrNotFound)
	case 1:
		d.logger.Debug("resolved device", "alias", alias, "did", matches[0].DID)
		return matches[0], nil
	default:
		return domain.Device{}, fmt.Errorf("%w: %d devices named %q, use --id instead", domain.ErrAmbiguousAlias, len(matches), alias)
	}
}

// ResolveByID is a pass-through to the device info endpoint.
func (d *Directory) ResolveByID(ctx context.Context, did string) (domain.Device, error) {
	return d.devices.GetDevice(ctx, did)
}

// Resolve dispatches on whichever selector is set. Exactly one must be.
func (d *Directory) Resolve(ctx context.Context, name, id string) (domain.Device, error) {
	switch {
	case name != "" && id != "":
		return domain.Device{}, errors.New("specify either a device name or a device id, not both")
	case name != "":
		return d.ResolveByName(ctx, name)
	case id != "":
		return d.ResolveByID(ctx, id)
	default:
		return domain.Device{}, errors.New("a device name or a device id is required")
	}
}
