package osmparser

var (
	acceptedHighway = map[string]struct{}{
		"motorway":       {},
		"motorway_link":  {},
		"trunk":          {},
		"trunk_link":     {},
		"primary":        {},
		"primary_link":   {},
		"secondary":      {},
		"secondary_link": {},
		"tertiary":       {},
		"tertiary_link":  {},
		"residential":    {},
		"service":        {},
		"unclassified":   {},
		"living_street":  {},
		"motorroad":      {},
		"track":          {},
	}

	// ways with any of these tag values are not drivable or are mapped badly.
	rejectedTagValues = map[string]map[string]struct{}{
		"access": {
			"no": {}, "emergency": {}, "military": {}, "bus": {}, "employees": {}, "forestry": {},
		},
		"bicycle": {
			"designated": {}, "destination": {}, "dismount": {}, "official": {}, "permit": {},
		},
		"foot": {
			"designated": {}, "destination": {}, "permit": {},
		},
		"highway": {
			"bridleway": {}, "cyclist_waiting_aid": {}, "road": {}, "steps": {}, "cycleway": {}, "path": {},
		},
		"motorcar": {
			"delivery": {}, "destination": {}, "forestry": {}, "agricultural": {},
		},
		"motor_vehicle": {
			"delivery": {}, "destination": {}, "forestry": {}, "agricultural": {}, "official": {},
		},
		"service": {
			"yard": {}, "*": {}, "da": {}, "spur": {}, "fire_road": {}, "droga_wewnetrzna": {},
		},
		"surface": {
			"grass": {}, "grass_paver": {}, "rock": {}, "paving_stones:30": {}, "wood": {}, "woodchips": {},
		},
		"tracktype": {
			"grade1": {}, "grade2": {}, "grade3": {}, "grade4": {}, "grade5": {},
		},
	}

	// any value of these tags rejects the way.
	rejectedTagKeys = []string{"area"}

	// km/h, used when the way has no usable maxspeed tag.
	highwayDefaultSpeed = map[string]float64{
		"motorway":       140,
		"trunk":          120,
		"primary":        90,
		"secondary":      70,
		"motorway_link":  60,
		"primary_link":   60,
		"trunk_link":     60,
		"tertiary":       50,
		"unclassified":   50,
		"secondary_link": 50,
	}
)

const (
	defaultSpeed    = 30.0 // km/h
	urbanSpeed      = 50.0 // km/h, PL:urban
	mphToKmh        = 1.60934
	knotsToKmh      = 1.852
	reverseOneWay   = "-1"
	roundaboutValue = "roundabout"
)

type osmWay struct {
	id       int64
	nodes    []int64
	highway  string
	maxSpeed float64 // km/h
	oneWay   bool
	reversed bool
}

type NodeCoord struct {
	lat float64
	lon float64
}

func NewNodeCoord(lat, lon float64) NodeCoord {
	return NodeCoord{lat, lon}
}
