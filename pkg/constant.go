package pkg

const (
	INF_WEIGHT float64 = 1e15

	EARTH_RADIUS_KM = 6371.0
	EARTH_RADIUS_M  = 6371000.0
)

// default routing parameters
const (
	DEFAULT_LEFT_TURN_MIN_ANGLE    = 45.0  // degree
	DEFAULT_PENALTY_TO_BETTER_ROAD = 30.0  // second
	DEFAULT_PENALTY_TO_EQUAL_ROAD  = 20.0  // second
	DEFAULT_PENALTY_TO_WORSE_ROAD  = 10.0  // second
	DEFAULT_HEURISTIC_MAX_SPEED    = 140.0 // km/h
	DEFAULT_MAX_POINTS_ALLOWED     = 7
)

// enum of road category transition on a turn
type CategoryTransition int8

const (
	WORSE_ROAD  CategoryTransition = -1 // turning from a better road onto a worse one
	EQUAL_ROAD  CategoryTransition = 0
	BETTER_ROAD CategoryTransition = 1
)

func (c CategoryTransition) String() string {
	switch c {
	case WORSE_ROAD:
		return "worse"
	case EQUAL_ROAD:
		return "equal"
	default:
		return "better"
	}
}

type RoadCategory uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       RoadCategory = 0
	TRUNK          RoadCategory = 1
	PRIMARY        RoadCategory = 2
	SECONDARY      RoadCategory = 3
	TERTIARY       RoadCategory = 4
	RESIDENTIAL    RoadCategory = 5
	SERVICE        RoadCategory = 6
	UNCLASSIFIED   RoadCategory = 7
	MOTORWAY_LINK  RoadCategory = 8
	TRUNK_LINK     RoadCategory = 9
	PRIMARY_LINK   RoadCategory = 10
	SECONDARY_LINK RoadCategory = 11
	TERTIARY_LINK  RoadCategory = 12
	LIVING_STREET  RoadCategory = 13
	ROAD           RoadCategory = 14
	TRACK          RoadCategory = 15
	MOTORROAD      RoadCategory = 16
	UNKNOWN        RoadCategory = 17
)

const UNRANKED_CATEGORY = 7

// categoryRank. lower is better. categories missing from the table rank UNRANKED_CATEGORY.
var categoryRank = map[RoadCategory]int{
	MOTORWAY:       1,
	TRUNK:          2,
	PRIMARY:        3,
	SECONDARY:      4,
	MOTORWAY_LINK:  5,
	PRIMARY_LINK:   5,
	TRUNK_LINK:     5,
	TERTIARY:       6,
	UNCLASSIFIED:   6,
	SECONDARY_LINK: 6,
}

func (c RoadCategory) Rank() int {
	if rank, ok := categoryRank[c]; ok {
		return rank
	}
	return UNRANKED_CATEGORY
}

func (c RoadCategory) String() string {
	switch c {
	case MOTORWAY:
		return "motorway"
	case TRUNK:
		return "trunk"
	case PRIMARY:
		return "primary"
	case SECONDARY:
		return "secondary"
	case TERTIARY:
		return "tertiary"
	case RESIDENTIAL:
		return "residential"
	case SERVICE:
		return "service"
	case UNCLASSIFIED:
		return "unclassified"
	case MOTORWAY_LINK:
		return "motorway_link"
	case TRUNK_LINK:
		return "trunk_link"
	case PRIMARY_LINK:
		return "primary_link"
	case SECONDARY_LINK:
		return "secondary_link"
	case TERTIARY_LINK:
		return "tertiary_link"
	case LIVING_STREET:
		return "living_street"
	case ROAD:
		return "road"
	case TRACK:
		return "track"
	case MOTORROAD:
		return "motorroad"
	default:
		return "unknown"
	}
}

func GetRoadCategory(roadType string) RoadCategory {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	case "track":
		return TRACK
	case "motorroad":
		return MOTORROAD
	default:
		return UNKNOWN
	}
}

// CompareRoadCategories. WORSE_ROAD if from ranks strictly better than to, EQUAL_ROAD on the same rank,
// BETTER_ROAD otherwise.
func CompareRoadCategories(from, to RoadCategory) CategoryTransition {
	fromRank, toRank := from.Rank(), to.Rank()
	switch {
	case fromRank < toRank:
		return WORSE_ROAD
	case fromRank == toRank:
		return EQUAL_ROAD
	default:
		return BETTER_ROAD
	}
}
