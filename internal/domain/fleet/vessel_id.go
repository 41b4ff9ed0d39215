package fleet

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// VesselID is a value object representing a vessel's unique identifier
type VesselID struct {
	value string
}

// IDGenerator produces fresh vessel identifiers
type IDGenerator func() VesselID

// NewVesselID creates a new VesselID with a generated UUID
func NewVesselID() VesselID {
	return VesselID{value: "bq-" + uuid.New().String()}
}

// NewVesselIDFromString creates a VesselID from an existing identifier.
// Seed records use short ids such as "bq-1", so only emptiness is rejected.
func NewVesselIDFromString(id string) (VesselID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return VesselID{}, fmt.Errorf("vessel_id cannot be empty")
	}
	return VesselID{value: id}, nil
}

// MustNewVesselIDFromString creates a VesselID from a string, panicking if invalid.
// Use this only for literals such as seed data.
func MustNewVesselIDFromString(id string) VesselID {
	vid, err := NewVesselIDFromString(id)
	if err != nil {
		panic(err)
	}
	return vid
}

func (v VesselID) String() string {
	return v.value
}

// Equals checks if two VesselIDs are equal
func (v VesselID) Equals(other VesselID) bool {
	return v.value == other.value
}

// IsZero checks if the VesselID is the zero value (nothing selected / uninitialized)
func (v VesselID) IsZero() bool {
	return v.value == ""
}
