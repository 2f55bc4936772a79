package scoring

// Persona groups occupation sectors that value cost, outcome and prestige alike.
type Persona string

const (
	PersonaBalanced Persona = "balanced"
	PersonaLeader   Persona = "leader"
	PersonaCreative Persona = "creative"
	PersonaEngineer Persona = "engineer"
	PersonaHealer   Persona = "healer"
)

// Weights are the maximum points of the three score components.
type Weights struct {
	ROI      float64
	Budget   float64
	Prestige float64
}

var personaWeights = map[Persona]Weights{
	PersonaBalanced: {ROI: 40, Budget: 30, Prestige: 30},
	PersonaLeader:   {ROI: 40, Budget: 20, Prestige: 40},
	PersonaCreative: {ROI: 20, Budget: 60, Prestige: 20},
	PersonaEngineer: {ROI: 60, Budget: 20, Prestige: 20},
	PersonaHealer:   {ROI: 35, Budget: 35, Prestige: 30},
}

// personaSectors is checked in order; the first persona listing the prefix wins.
var personaSectors = []struct {
	persona  Persona
	prefixes []string
}{
	{persona: PersonaLeader, prefixes: []string{"11", "13"}},
	{persona: PersonaCreative, prefixes: []string{"27", "21", "25"}},
	{persona: PersonaEngineer, prefixes: []string{"15", "17"}},
	{persona: PersonaHealer, prefixes: []string{"29", "51"}},
}

// PersonaFor returns the persona of an occupation prefix.
func PersonaFor(occupationPrefix string) Persona {
	for _, entry := range personaSectors {
		for _, prefix := range entry.prefixes {
			if prefix == occupationPrefix {
				return entry.persona
			}
		}
	}
	return PersonaBalanced
}

// Weights returns the component weights of the persona.
func (p Persona) Weights() Weights {
	if w, ok := personaWeights[p]; ok {
		return w
	}
	return personaWeights[PersonaBalanced]
}
