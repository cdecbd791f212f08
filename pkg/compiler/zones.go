package compiler

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxZones bounds the zone allocator.
	MaxZones = 10

	// GlobalZoneSize is the capacity of the implicit global zone.
	GlobalZoneSize = 1024 * 1024

	// DefaultZoneSize is the capacity of zones created by zone statements.
	DefaultZoneSize = 64 * 1024
)

var (
	// ErrTooManyZones is returned once the fixed zone capacity is reached.
	ErrTooManyZones = errors.New("too many memory zones")

	// ErrZoneFull is returned when a reservation would exceed a zone's
	// capacity.
	ErrZoneFull = errors.New("zone capacity exceeded")
)

// MemoryZone is a named fixed-capacity arena record. UsedBytes is
// declarative bookkeeping, not a real allocator: Reserve only checks the
// counter against the capacity. AutoCleanup is recorded but has no
// enforced effect.
type MemoryZone struct {
	Name        string
	Capacity    int
	UsedBytes   int
	AutoCleanup bool
}

// ZoneAllocator owns the bounded set of zones for one compilation. Zones
// are never resized or freed during a run.
type ZoneAllocator struct {
	zones []MemoryZone
}

// NewZoneAllocator creates the allocator with the global zone already in
// place, before any user statement runs.
func NewZoneAllocator() *ZoneAllocator {
	z := &ZoneAllocator{}
	z.zones = append(z.zones, MemoryZone{
		Name:     GlobalZoneName,
		Capacity: GlobalZoneSize,
	})
	return z
}

// Create appends a new zone and returns its id.
func (z *ZoneAllocator) Create(name string, capacity int, autoCleanup bool) (int, error) {
	if len(z.zones) >= MaxZones {
		return 0, fmt.Errorf("%q: %w", name, ErrTooManyZones)
	}
	z.zones = append(z.zones, MemoryZone{
		Name:        name,
		Capacity:    capacity,
		AutoCleanup: autoCleanup,
	})
	return len(z.zones) - 1, nil
}

// Reserve records n bytes of use in the given zone. The counter only
// grows; a reservation past the capacity is refused and the counter is
// left unchanged.
func (z *ZoneAllocator) Reserve(id, n int) error {
	if id < 0 || id >= len(z.zones) {
		return fmt.Errorf("no zone with id %d", id)
	}
	zone := &z.zones[id]
	if zone.UsedBytes+n > zone.Capacity {
		return fmt.Errorf("%q: %w", zone.Name, ErrZoneFull)
	}
	zone.UsedBytes += n
	return nil
}

// IDByName returns the id of the named zone, or the global zone's id
// when the name is unknown.
func (z *ZoneAllocator) IDByName(name string) int {
	for i, zone := range z.zones {
		if zone.Name == name {
			return i
		}
	}
	return 0
}

// Zone returns the zone record for id.
func (z *ZoneAllocator) Zone(id int) (MemoryZone, bool) {
	if id < 0 || id >= len(z.zones) {
		return MemoryZone{}, false
	}
	return z.zones[id], true
}

// Zones returns the zones in creation order. The slice is shared;
// callers must not mutate it.
func (z *ZoneAllocator) Zones() []MemoryZone {
	return z.zones
}

func (z *ZoneAllocator) Len() int { return len(z.zones) }

func (z *ZoneAllocator) String() string {
	var sb strings.Builder
	sb.WriteString("Zones:\n")
	for i, zone := range z.zones {
		fmt.Fprintf(&sb, "  %d: %-16s %d/%d bytes, autoCleanup=%v\n",
			i, zone.Name, zone.UsedBytes, zone.Capacity, zone.AutoCleanup)
	}
	return sb.String()
}
