package tiervalues

// ApexTiers lists the league-v4 path segments of the tiers above diamond.
// These leagues come back as a single page each, no pagination needed.
var ApexTiers = []string{"challenger", "grandmaster", "master"}

// IsApex reports whether a tier name belongs to the apex tiers.
func IsApex(tier string) bool {
	for _, apex := range ApexTiers {
		if apex == tier {
			return true
		}
	}
	return false
}
