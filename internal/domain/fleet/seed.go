package fleet

type seedVessel struct {
	id     string
	name   string
	code   string
	port   string
	status OperationalStatus
	leads  []string
}

var seedFleet = []seedVessel{
	{"bq-1", "Aurora del Sur", "CHI-VAL-0921", "Valparaíso", StatusOperational, []string{"Juan Pérez"}},
	{"bq-2", "Nanina", "ARG-MDP-1120", "Mar del Plata", StatusOperational, []string{"Marcos Popovich", "Sofía Díaz"}},
	{"bq-3", "Pacífica Austral", "CHI-TAL-3310", "Talcahuano", StatusUnderRepair, []string{"Carla Rivas"}},
	{"bq-4", "Tridente Magallánico", "CHI-PMO-4478", "Punta Arenas", StatusInPort, []string{"Diego Muñoz"}},
}

// SeedVessels returns the fleet a new session starts with
func SeedVessels() []Vessel {
	vessels := make([]Vessel, 0, len(seedFleet))
	for _, s := range seedFleet {
		v, err := ReconstructVessel(MustNewVesselIDFromString(s.id), s.name, s.code, s.port, s.status, s.leads...)
		if err != nil {
			panic(err)
		}
		vessels = append(vessels, v)
	}
	return vessels
}

// NewSeededRegistry returns a registry holding the seed fleet with the first
// vessel selected.
func NewSeededRegistry(idGen IDGenerator) *VesselRegistry {
	vessels := SeedVessels()
	registry, err := NewVesselRegistry(idGen, vessels...)
	if err != nil {
		panic(err)
	}
	registry.Select(vessels[0].ID())
	return registry
}
