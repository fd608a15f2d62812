package catalog

// Seed returns the built-in catalog used when no external source is
// configured. Order matters: it defines the catalog order.
func Seed() []Location {
	return []Location{
		{
			ID:          "loc-001",
			Name:        "Golden Gate Yoga Studio",
			Description: "Vinyasa and restorative yoga classes with views of the bridge",
			Latitude:    37.8024,
			Longitude:   -122.4581,
			Category:    "Yoga",
			Rating:      4.8,
			Address:     "3601 Lyon St, San Francisco, CA",
		},
		{
			ID:          "loc-002",
			Name:        "Mission Meditation Center",
			Description: "Guided mindfulness and silent meditation sessions, drop-ins welcome",
			Latitude:    37.7599,
			Longitude:   -122.4148,
			Category:    "Meditation",
			Rating:      4.6,
			Address:     "988 Valencia St, San Francisco, CA",
		},
		{
			ID:          "loc-003",
			Name:        "Presidio Trail Run Club",
			Description: "Group trail running through eucalyptus groves and coastal bluffs",
			Latitude:    37.7989,
			Longitude:   -122.4662,
			Category:    "Fitness",
			Rating:      4.7,
		},
		{
			ID:          "loc-004",
			Name:        "Soma Float Spa",
			Description: "Sensory deprivation float tanks and infrared sauna",
			Latitude:    37.7785,
			Longitude:   -122.4056,
			Category:    "Spa",
			Rating:      4.4,
			Address:     "660 Folsom St, San Francisco, CA",
		},
		{
			ID:          "loc-005",
			Name:        "Green Apple Juice Bar",
			Description: "Cold-pressed juices, smoothie bowls and herbal tonics",
			Latitude:    37.7692,
			Longitude:   -122.4481,
			Category:    "Nutrition",
			Rating:      4.2,
			Address:     "1222 9th Ave, San Francisco, CA",
		},
		{
			ID:          "loc-006",
			Name:        "Ocean Beach Tai Chi",
			Description: "Sunrise tai chi and qigong on the sand, all levels",
			Latitude:    37.7594,
			Longitude:   -122.5107,
			Category:    "Meditation",
			Rating:      4.9,
		},
		{
			ID:          "loc-007",
			Name:        "Dolores Park Bootcamp",
			Description: "High-intensity outdoor circuit training in Dolores Park",
			Latitude:    37.7596,
			Longitude:   -122.4269,
			Category:    "Fitness",
			Rating:      4.3,
			Address:     "Dolores St & 19th St, San Francisco, CA",
		},
		{
			ID:          "loc-008",
			Name:        "Nob Hill Thermal Baths",
			Description: "Historic bathhouse with hot pools, cold plunge and massage",
			Latitude:    37.7930,
			Longitude:   -122.4161,
			Category:    "Spa",
			Rating:      4.5,
			Address:     "1155 Pine St, San Francisco, CA",
		},
		{
			ID:          "loc-009",
			Name:        "Richmond Acupuncture Collective",
			Description: "Community acupuncture and cupping on a sliding scale",
			Latitude:    37.7775,
			Longitude:   -122.4839,
			Category:    "Holistic",
			Rating:      4.6,
			Address:     "5812 Geary Blvd, San Francisco, CA",
		},
		{
			ID:          "loc-010",
			Name:        "Bernal Heights Yoga Loft",
			Description: "Small-group hatha yoga and breathwork above the hill",
			Latitude:    37.7430,
			Longitude:   -122.4154,
			Category:    "Yoga",
			Rating:      4.7,
		},
		{
			ID:          "loc-011",
			Name:        "Embarcadero Pilates Works",
			Description: "Reformer pilates studio on the waterfront",
			Latitude:    37.7955,
			Longitude:   -122.3937,
			Category:    "Fitness",
			Rating:      4.1,
			Address:     "Pier 9, The Embarcadero, San Francisco, CA",
		},
		{
			ID:          "loc-012",
			Name:        "Sunset Sound Healing",
			Description: "Gong baths and singing bowl sessions in the Outer Sunset",
			Latitude:    37.7536,
			Longitude:   -122.4951,
			Category:    "Holistic",
			Rating:      4.8,
			Address:     "3884 Noriega St, San Francisco, CA",
		},
	}
}
