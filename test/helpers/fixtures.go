package helpers

import (
	"fmt"
	"time"

	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/internal/domain/shared"
)

// ReferenceTime is the fixed "now" used by board fixtures
var ReferenceTime = time.Date(2024, 9, 13, 10, 0, 0, 0, time.UTC)

// NewFixedClock returns a mock clock pinned at ReferenceTime
func NewFixedClock() *shared.MockClock {
	return shared.NewMockClock(ReferenceTime)
}

// SequentialVesselIDs yields "new-1", "new-2", ... so created ids are predictable
func SequentialVesselIDs() fleet.IDGenerator {
	n := 0
	return func() fleet.VesselID {
		n++
		return fleet.MustNewVesselIDFromString(fmt.Sprintf("new-%d", n))
	}
}
