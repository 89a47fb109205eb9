package model

import (
	"fmt"
	"math"
	"time"
)

// Altitude units accepted by Position.FormatAltitude
const (
	AltitudeUnitMeters = "m"
	AltitudeUnitFeet   = "ft"
)

const (
	// ValuePlaceholder is shown for telemetry values that were never received
	ValuePlaceholder = "--"

	metersPerFoot = 0.3048

	// MovementEpsilon is the smallest coordinate delta treated as movement
	MovementEpsilon = 1e-9
)

// Position is the last known GPS fix of a drone
type Position struct {
	Latitude  float64
	Longitude float64
	AltitudeM float64   // altitude above ground in meters
	UpdatedAt time.Time // when the fix was recorded
	Valid     bool      // false until the first fix is recorded
}

// FormatLatitude returns the latitude with the given decimal precision,
// or the placeholder when no fix was recorded yet
func (p Position) FormatLatitude(precision int) string {
	if !p.Valid {
		return ValuePlaceholder
	}
	return fmt.Sprintf("%.*f", precision, p.Latitude)
}

// FormatLongitude returns the longitude with the given decimal precision,
// or the placeholder when no fix was recorded yet
func (p Position) FormatLongitude(precision int) string {
	if !p.Valid {
		return ValuePlaceholder
	}
	return fmt.Sprintf("%.*f", precision, p.Longitude)
}

// FormatAltitude returns the altitude in the requested unit ("m" or "ft"),
// or the placeholder when no fix was recorded yet
func (p Position) FormatAltitude(unit string) string {
	if !p.Valid {
		return ValuePlaceholder
	}
	if unit == AltitudeUnitFeet {
		return fmt.Sprintf("%.1f ft", p.AltitudeM/metersPerFoot)
	}
	return fmt.Sprintf("%.1f m", p.AltitudeM)
}

// FormatUpdated returns the fix timestamp as a wall-clock string,
// or the placeholder when no fix was recorded yet
func (p Position) FormatUpdated() string {
	if !p.Valid || p.UpdatedAt.IsZero() {
		return ValuePlaceholder
	}
	return p.UpdatedAt.Format("15:04:05")
}

// MovedFrom reports whether this fix differs from a previous one by more
// than MovementEpsilon in any coordinate. A fix always counts as movement
// when there was no previous valid fix.
func (p Position) MovedFrom(prev Position) bool {
	if !p.Valid {
		return false
	}
	if !prev.Valid {
		return true
	}
	return math.Abs(p.Latitude-prev.Latitude) > MovementEpsilon ||
		math.Abs(p.Longitude-prev.Longitude) > MovementEpsilon ||
		math.Abs(p.AltitudeM-prev.AltitudeM) > MovementEpsilon
}

// Drone represents a single fleet vehicle as shown in the sidebar
type Drone struct {
	Name      string     // display name, e.g. "Freyja"
	ImagePath string     // path to the vehicle image, may be empty
	Link      LinkStatus // telemetry link state
	GPSActive bool       // whether the GPS signal is currently usable
	Position  Position   // last fix recorded while GPS was active
}

// GPSKnown reports whether the GPS state has ever been observable. It is
// false until the link has been live at least once.
func (d *Drone) GPSKnown() bool {
	return d.Link != LinkStatusOffline || d.Position.Valid
}
