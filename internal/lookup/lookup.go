// Package lookup provides static code-to-name tables for airports, carriers,
// and aircraft. The tables are read-only after initialization and shared
// process-wide; unknown codes fall back to the raw code string so a lookup
// never fails hard and never returns empty for non-empty input.
package lookup

import "strings"

// Table maps upstream codes to display names.
type Table map[string]string

// Lookup returns the display name for code, or code unchanged when unmapped.
// Matching is case-insensitive on the code.
func (t Table) Lookup(code string) string {
	if name, ok := t[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// AirportCity resolves an IATA airport code to its city name.
func AirportCity(code string) string {
	return airportCities.Lookup(code)
}

// CarrierName resolves a two-character carrier code to the airline name.
func CarrierName(code string) string {
	return carrierNames.Lookup(code)
}

// AircraftName resolves an upstream equipment code to the aircraft model name.
func AircraftName(code string) string {
	return aircraftNames.Lookup(code)
}
