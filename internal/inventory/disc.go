package inventory

import "psybench/internal/domain"

// DISCQuadrants en orden de prioridad para desempates.
var DISCQuadrants = []string{"D", "I", "S", "C"}

func dc(id string, d, i, s, c string) Item {
	return Item{
		ID:        id,
		Inventory: domain.InventoryDISC,
		Type:      ForcedChoicePair,
		Words:     [4]string{d, i, s, c},
	}
}

// DISCItems: 24 cuartetos de palabras. La posición dentro del cuarteto fija
// el cuadrante: 1=D, 2=I, 3=S, 4=C.
var DISCItems = []Item{
	dc("DISC1", "Decisive", "Enthusiastic", "Patient", "Precise"),
	dc("DISC2", "Bold", "Talkative", "Loyal", "Careful"),
	dc("DISC3", "Competitive", "Sociable", "Steady", "Accurate"),
	dc("DISC4", "Direct", "Persuasive", "Calm", "Analytical"),
	dc("DISC5", "Forceful", "Expressive", "Supportive", "Systematic"),
	dc("DISC6", "Daring", "Charming", "Gentle", "Exacting"),
	dc("DISC7", "Assertive", "Optimistic", "Consistent", "Logical"),
	dc("DISC8", "Demanding", "Lively", "Agreeable", "Orderly"),
	dc("DISC9", "Determined", "Playful", "Easygoing", "Disciplined"),
	dc("DISC10", "Ambitious", "Inspiring", "Predictable", "Perfectionist"),
	dc("DISC11", "Strong-willed", "Outgoing", "Modest", "Diplomatic"),
	dc("DISC12", "Adventurous", "Spontaneous", "Stable", "Cautious"),
	dc("DISC13", "Commanding", "Convincing", "Kind", "Thorough"),
	dc("DISC14", "Self-reliant", "Animated", "Cooperative", "Meticulous"),
	dc("DISC15", "Results-driven", "Popular", "Sincere", "Reserved"),
	dc("DISC16", "Vigorous", "Cheerful", "Accommodating", "Factual"),
	dc("DISC17", "Pioneering", "Persuading", "Deliberate", "Structured"),
	dc("DISC18", "Blunt", "Impulsive", "Tolerant", "Methodical"),
	dc("DISC19", "Independent", "Trusting", "Harmonious", "Skeptical"),
	dc("DISC20", "Goal-oriented", "Magnetic", "Relaxed", "Detailed"),
	dc("DISC21", "Firm", "Warm", "Willing", "Objective"),
	dc("DISC22", "Energetic", "Fun-loving", "Dependable", "Conscientious"),
	dc("DISC23", "Risk-taking", "Open", "Neighborly", "Restrained"),
	dc("DISC24", "Persistent", "Vivacious", "Satisfied", "Prepared"),
}
