package inventory

import "psybench/internal/domain"

// Dominios Big Five en orden canónico.
var BigFiveDomains = []string{"N", "E", "O", "A", "C"}

// BigFiveDomainNames mapea la letra de dominio a su nombre.
var BigFiveDomainNames = map[string]string{
	"N": "neuroticism",
	"E": "extraversion",
	"O": "openness",
	"A": "agreeableness",
	"C": "conscientiousness",
}

// BigFiveFacetNames mapea código de faceta a nombre descriptivo.
var BigFiveFacetNames = map[string]string{
	"N1": "anxiety", "N2": "anger", "N3": "depression",
	"N4": "self-consciousness", "N5": "immoderation", "N6": "vulnerability",
	"E1": "friendliness", "E2": "gregariousness", "E3": "assertiveness",
	"E4": "activity level", "E5": "excitement-seeking", "E6": "cheerfulness",
	"O1": "imagination", "O2": "artistic interests", "O3": "emotionality",
	"O4": "adventurousness", "O5": "intellect", "O6": "liberalism",
	"A1": "trust", "A2": "morality", "A3": "altruism",
	"A4": "cooperation", "A5": "modesty", "A6": "sympathy",
	"C1": "self-efficacy", "C2": "orderliness", "C3": "dutifulness",
	"C4": "achievement-striving", "C5": "self-discipline", "C6": "cautiousness",
}

// BigFiveFacetCodes lista las 30 facetas en orden estable (N1..C6). Es el
// orden usado para el vector de facetas persistido.
var BigFiveFacetCodes = []string{
	"N1", "N2", "N3", "N4", "N5", "N6",
	"E1", "E2", "E3", "E4", "E5", "E6",
	"O1", "O2", "O3", "O4", "O5", "O6",
	"A1", "A2", "A3", "A4", "A5", "A6",
	"C1", "C2", "C3", "C4", "C5", "C6",
}

func bf(id, facet, statement string, reversed bool) Item {
	return Item{
		ID:        id,
		Inventory: domain.InventoryBigFive,
		Type:      Likert5,
		Statement: statement,
		Facet:     facet,
		Reversed:  reversed,
	}
}

// BigFiveItems: 5 dominios x 6 facetas x 4 ítems. Los ítems marcados reversed
// puntúan con la transformación 6-s.
var BigFiveItems = []Item{
	// Neuroticism
	bf("N1_1", "N1", "I worry about things.", false),
	bf("N1_2", "N1", "I fear for the worst.", false),
	bf("N1_3", "N1", "I am relaxed most of the time.", true),
	bf("N1_4", "N1", "I am not easily bothered by things.", true),
	bf("N2_1", "N2", "I get angry easily.", false),
	bf("N2_2", "N2", "I am often in a bad mood.", false),
	bf("N2_3", "N2", "I rarely get irritated.", true),
	bf("N2_4", "N2", "I keep my cool.", true),
	bf("N3_1", "N3", "I often feel blue.", false),
	bf("N3_2", "N3", "I am often down in the dumps.", false),
	bf("N3_3", "N3", "I feel comfortable with myself.", true),
	bf("N3_4", "N3", "I am very pleased with myself.", true),
	bf("N4_1", "N4", "I am easily intimidated.", false),
	bf("N4_2", "N4", "I find it difficult to approach others.", false),
	bf("N4_3", "N4", "I am not embarrassed easily.", true),
	bf("N4_4", "N4", "I am comfortable in unfamiliar situations.", true),
	bf("N5_1", "N5", "I often eat too much.", false),
	bf("N5_2", "N5", "I rarely overindulge.", true),
	bf("N5_3", "N5", "I easily resist temptations.", true),
	bf("N5_4", "N5", "I am able to control my cravings.", true),
	bf("N6_1", "N6", "I panic easily.", false),
	bf("N6_2", "N6", "I become overwhelmed by events.", false),
	bf("N6_3", "N6", "I remain calm under pressure.", true),
	bf("N6_4", "N6", "I can handle complex problems.", true),
	// Extraversion
	bf("E1_1", "E1", "I make friends easily.", false),
	bf("E1_2", "E1", "I feel comfortable around people.", false),
	bf("E1_3", "E1", "I avoid contact with others.", true),
	bf("E1_4", "E1", "I keep others at a distance.", true),
	bf("E2_1", "E2", "I love large parties.", false),
	bf("E2_2", "E2", "I talk to a lot of different people at parties.", false),
	bf("E2_3", "E2", "I prefer to be alone.", true),
	bf("E2_4", "E2", "I avoid crowds.", true),
	bf("E3_1", "E3", "I take charge.", false),
	bf("E3_2", "E3", "I try to lead others.", false),
	bf("E3_3", "E3", "I wait for others to lead the way.", true),
	bf("E3_4", "E3", "I keep in the background.", true),
	bf("E4_1", "E4", "I am always busy.", false),
	bf("E4_2", "E4", "I am always on the go.", false),
	bf("E4_3", "E4", "I like to take it easy.", true),
	bf("E4_4", "E4", "I react slowly.", true),
	bf("E5_1", "E5", "I love excitement.", false),
	bf("E5_2", "E5", "I seek adventure.", false),
	bf("E5_3", "E5", "I would never go hang gliding or bungee jumping.", true),
	bf("E5_4", "E5", "I dislike loud music.", true),
	bf("E6_1", "E6", "I radiate joy.", false),
	bf("E6_2", "E6", "I have a lot of fun.", false),
	bf("E6_3", "E6", "I am seldom amused.", true),
	bf("E6_4", "E6", "I am not easily amused.", true),
	// Openness
	bf("O1_1", "O1", "I have a vivid imagination.", false),
	bf("O1_2", "O1", "I enjoy wild flights of fantasy.", false),
	bf("O1_3", "O1", "I seldom daydream.", true),
	bf("O1_4", "O1", "I have difficulty imagining things.", true),
	bf("O2_1", "O2", "I believe in the importance of art.", false),
	bf("O2_2", "O2", "I see beauty in things that others might not notice.", false),
	bf("O2_3", "O2", "I do not like poetry.", true),
	bf("O2_4", "O2", "I do not enjoy going to art museums.", true),
	bf("O3_1", "O3", "I experience my emotions intensely.", false),
	bf("O3_2", "O3", "I feel others' emotions.", false),
	bf("O3_3", "O3", "I rarely notice my emotional reactions.", true),
	bf("O3_4", "O3", "I don't understand people who get emotional.", true),
	bf("O4_1", "O4", "I prefer variety to routine.", false),
	bf("O4_2", "O4", "I like to visit new places.", false),
	bf("O4_3", "O4", "I am attached to conventional ways.", true),
	bf("O4_4", "O4", "I dislike changes.", true),
	bf("O5_1", "O5", "I love to read challenging material.", false),
	bf("O5_2", "O5", "I like to solve complex problems.", false),
	bf("O5_3", "O5", "I avoid philosophical discussions.", true),
	bf("O5_4", "O5", "I am not interested in theoretical discussions.", true),
	bf("O6_1", "O6", "I tend to vote for liberal political candidates.", false),
	bf("O6_2", "O6", "I believe that there is no absolute right and wrong.", false),
	bf("O6_3", "O6", "I believe in one true religion.", true),
	bf("O6_4", "O6", "I tend to vote for conservative political candidates.", true),
	// Agreeableness
	bf("A1_1", "A1", "I trust others.", false),
	bf("A1_2", "A1", "I believe that others have good intentions.", false),
	bf("A1_3", "A1", "I suspect hidden motives in others.", true),
	bf("A1_4", "A1", "I distrust people.", true),
	bf("A2_1", "A2", "I would never cheat on my taxes.", false),
	bf("A2_2", "A2", "I stick to the rules.", false),
	bf("A2_3", "A2", "I use flattery to get ahead.", true),
	bf("A2_4", "A2", "I know how to get around the rules.", true),
	bf("A3_1", "A3", "I make people feel welcome.", false),
	bf("A3_2", "A3", "I love to help others.", false),
	bf("A3_3", "A3", "I look down on others.", true),
	bf("A3_4", "A3", "I am indifferent to the feelings of others.", true),
	bf("A4_1", "A4", "I am easy to satisfy.", false),
	bf("A4_2", "A4", "I can't stand confrontations.", false),
	bf("A4_3", "A4", "I have a sharp tongue.", true),
	bf("A4_4", "A4", "I love a good fight.", true),
	bf("A5_1", "A5", "I dislike being the center of attention.", false),
	bf("A5_2", "A5", "I dislike talking about myself.", false),
	bf("A5_3", "A5", "I believe that I am better than others.", true),
	bf("A5_4", "A5", "I think highly of myself.", true),
	bf("A6_1", "A6", "I sympathize with the homeless.", false),
	bf("A6_2", "A6", "I feel sympathy for those who are worse off than myself.", false),
	bf("A6_3", "A6", "I am not interested in other people's problems.", true),
	bf("A6_4", "A6", "I believe people should fend for themselves.", true),
	// Conscientiousness
	bf("C1_1", "C1", "I complete tasks successfully.", false),
	bf("C1_2", "C1", "I excel in what I do.", false),
	bf("C1_3", "C1", "I misjudge situations.", true),
	bf("C1_4", "C1", "I don't see the consequences of things.", true),
	bf("C2_1", "C2", "I like order.", false),
	bf("C2_2", "C2", "I like to tidy up.", false),
	bf("C2_3", "C2", "I leave a mess in my room.", true),
	bf("C2_4", "C2", "I leave my belongings around.", true),
	bf("C3_1", "C3", "I keep my promises.", false),
	bf("C3_2", "C3", "I tell the truth.", false),
	bf("C3_3", "C3", "I break rules.", true),
	bf("C3_4", "C3", "I break my promises.", true),
	bf("C4_1", "C4", "I go straight for the goal.", false),
	bf("C4_2", "C4", "I work hard.", false),
	bf("C4_3", "C4", "I do just enough work to get by.", true),
	bf("C4_4", "C4", "I put little time and effort into my work.", true),
	bf("C5_1", "C5", "I get chores done right away.", false),
	bf("C5_2", "C5", "I am always prepared.", false),
	bf("C5_3", "C5", "I waste my time.", true),
	bf("C5_4", "C5", "I have difficulty starting tasks.", true),
	bf("C6_1", "C6", "I avoid mistakes.", false),
	bf("C6_2", "C6", "I choose my words with care.", false),
	bf("C6_3", "C6", "I jump into things without thinking.", true),
	bf("C6_4", "C6", "I make rash decisions.", true),
}
