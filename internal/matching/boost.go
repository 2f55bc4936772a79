package matching

import "github.com/compasshud/compass/internal/catalog"

const (
	boostBase           = 5.0
	diversityThreshold  = 0.6
	diversityMultiplier = 1.6
	hbcuBonus           = 10.0
	researchVeryHigh    = 8.0
	researchHigh        = 5.0
)

// boost returns the bonus the requested preferences earn an institution.
// Every preference counts once.
func boost(inst *catalog.Institution, req Request) float64 {
	var total float64
	culture := inst.Culture

	for p := range req.wants() {
		scale := req.weight(p) / 10

		switch p {
		case PreferGreek:
			if isSet(culture.Greek) {
				total += scale * boostBase
			}
		case PreferSports:
			if isSet(culture.Athletics) {
				total += scale * boostBase
			}
		case PreferDiversity:
			if culture.DiversityIndex != nil && *culture.DiversityIndex > diversityThreshold {
				total += scale * boostBase * diversityMultiplier
			}
		case PreferHBCU:
			if isSet(culture.HBCU) {
				total += hbcuBonus
			}
		case PreferResearch:
			if culture.ResearchClass == nil {
				continue
			}
			switch *culture.ResearchClass {
			case catalog.ResearchVeryHigh:
				total += scale * researchVeryHigh
			case catalog.ResearchHigh:
				total += scale * researchHigh
			}
		}
	}

	return total
}

func isSet(v *bool) bool {
	return v != nil && *v
}
