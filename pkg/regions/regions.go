package regions

// Simple package containing the routing values accepted by the Riot API.
// Create the types for clarity.
type (
	Routing  string
	Platform string
)

// Platforms served by each regional routing host.
// The routing host answers match-v5, the platform host answers league-v4.
var RoutingList = map[Routing][]Platform{
	"americas": {"br1", "la1", "la2", "na1"},
	"europe":   {"eun1", "euw1", "tr1", "me1", "ru"},
	"asia":     {"kr", "jp1"},
	"sea":      {"oc1", "sg2", "tw2", "vn2"},
}

// Validate checks that the platform belongs to the given routing region.
func Validate(routing string, platform string) bool {
	platforms, exists := RoutingList[Routing(routing)]
	if !exists {
		return false
	}

	for _, p := range platforms {
		if p == Platform(platform) {
			return true
		}
	}
	return false
}
