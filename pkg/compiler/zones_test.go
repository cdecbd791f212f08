package compiler

import (
	"errors"
	"fmt"
	"testing"
)

func TestZoneAllocator(t *testing.T) {
	t.Run("GlobalZoneExists", func(t *testing.T) {
		z := NewZoneAllocator()
		zone, ok := z.Zone(0)
		if !ok {
			t.Fatal("no global zone")
		}
		if zone.Name != GlobalZoneName {
			t.Errorf("name: got %q", zone.Name)
		}
		if zone.Capacity != GlobalZoneSize {
			t.Errorf("capacity: got %d, want %d", zone.Capacity, GlobalZoneSize)
		}
		if zone.AutoCleanup {
			t.Error("global zone should not auto-clean")
		}
	})

	t.Run("Create", func(t *testing.T) {
		z := NewZoneAllocator()
		id, err := z.Create("fast_math", DefaultZoneSize, true)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if id != 1 {
			t.Errorf("id: got %d, want 1", id)
		}
		zone, _ := z.Zone(id)
		if zone.UsedBytes != 0 {
			t.Errorf("used: got %d, want 0", zone.UsedBytes)
		}
		if !zone.AutoCleanup {
			t.Error("AutoCleanup not recorded")
		}
	})

	t.Run("TooManyZones", func(t *testing.T) {
		z := NewZoneAllocator()
		for i := z.Len(); i < MaxZones; i++ {
			if _, err := z.Create(fmt.Sprintf("z%d", i), DefaultZoneSize, true); err != nil {
				t.Fatalf("create %d: %v", i, err)
			}
		}
		_, err := z.Create("extra", DefaultZoneSize, true)
		if !errors.Is(err, ErrTooManyZones) {
			t.Fatalf("overflow create: got %v, want ErrTooManyZones", err)
		}
		// Previously created zones remain intact.
		if z.Len() != MaxZones {
			t.Errorf("zones after overflow: got %d, want %d", z.Len(), MaxZones)
		}
		if _, ok := z.Zone(MaxZones - 1); !ok {
			t.Error("last zone lost after failed create")
		}
	})

	t.Run("Reserve", func(t *testing.T) {
		z := NewZoneAllocator()
		id, _ := z.Create("small", 100, true)

		if err := z.Reserve(id, 60); err != nil {
			t.Fatalf("first reserve: %v", err)
		}
		if err := z.Reserve(id, 41); !errors.Is(err, ErrZoneFull) {
			t.Fatalf("over-capacity reserve: got %v, want ErrZoneFull", err)
		}
		// A refused reservation leaves the counter alone.
		zone, _ := z.Zone(id)
		if zone.UsedBytes != 60 {
			t.Errorf("used: got %d, want 60", zone.UsedBytes)
		}
		if err := z.Reserve(id, 40); err != nil {
			t.Fatalf("exact-fit reserve: %v", err)
		}
	})

	t.Run("IDByName", func(t *testing.T) {
		z := NewZoneAllocator()
		id, _ := z.Create("fast_math", DefaultZoneSize, true)
		if got := z.IDByName("fast_math"); got != id {
			t.Errorf("IDByName: got %d, want %d", got, id)
		}
		if got := z.IDByName("nope"); got != 0 {
			t.Errorf("unknown name should fall back to global, got %d", got)
		}
	})
}
