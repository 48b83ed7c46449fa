package inventory

import "psybench/internal/domain"

// MBTIDimension define un par de polos: Low se elige con puntajes bajos,
// High con puntajes altos.
type MBTIDimension struct {
	Code string
	Low  string
	High string
}

// MBTIDimensions en el orden en que se arma el tipo (p. ej. "ENFJ").
var MBTIDimensions = []MBTIDimension{
	{Code: "IE", Low: "I", High: "E"},
	{Code: "SN", Low: "S", High: "N"},
	{Code: "TF", Low: "T", High: "F"},
	{Code: "JP", Low: "P", High: "J"},
}

func mb(id, dim, left, right string) Item {
	return Item{
		ID:        id,
		Inventory: domain.InventoryMBTI,
		Type:      Likert5,
		Left:      left,
		Right:     right,
		Dimension: dim,
	}
}

// MBTIItems: 4 dimensiones x 8 ítems bipolares. La descripción izquierda
// corresponde al polo bajo (1) y la derecha al polo alto (5).
var MBTIItems = []Item{
	mb("IE1", "IE", "I recharge by spending time alone", "I recharge by being around other people"),
	mb("IE2", "IE", "I think things through before speaking", "I think out loud as I speak"),
	mb("IE3", "IE", "I prefer a few deep friendships", "I prefer a wide circle of acquaintances"),
	mb("IE4", "IE", "Group settings drain my energy", "Group settings energize me"),
	mb("IE5", "IE", "I let others start conversations", "I start conversations with strangers easily"),
	mb("IE6", "IE", "I keep my enthusiasm to myself", "I express my enthusiasm openly"),
	mb("IE7", "IE", "I prefer working independently", "I prefer working with a team"),
	mb("IE8", "IE", "I am reserved at social events", "I am the life of social events"),
	mb("SN1", "SN", "I focus on concrete facts and details", "I focus on patterns and possibilities"),
	mb("SN2", "SN", "I trust direct experience", "I trust hunches and inspiration"),
	mb("SN3", "SN", "I describe things literally", "I describe things with metaphors"),
	mb("SN4", "SN", "I value practical common sense", "I value imaginative new ideas"),
	mb("SN5", "SN", "I live in the present moment", "I live in anticipation of the future"),
	mb("SN6", "SN", "I prefer step-by-step instructions", "I prefer to improvise an approach"),
	mb("SN7", "SN", "I notice what is actually there", "I notice what could be there"),
	mb("SN8", "SN", "I am drawn to proven methods", "I am drawn to novel theories"),
	mb("TF1", "TF", "I decide with my head", "I decide with my heart"),
	mb("TF2", "TF", "I value fairness over harmony", "I value harmony over fairness"),
	mb("TF3", "TF", "Critique is useful even when blunt", "Critique should be softened with tact"),
	mb("TF4", "TF", "I analyze problems impersonally", "I weigh how problems affect people"),
	mb("TF5", "TF", "Being right matters most", "Being kind matters most"),
	mb("TF6", "TF", "I stay detached when others argue", "I step in to smooth things over"),
	mb("TF7", "TF", "I am convinced by logical arguments", "I am convinced by personal appeals"),
	mb("TF8", "TF", "I point out flaws in reasoning", "I point out what people did well"),
	mb("JP1", "JP", "I keep my options open", "I like matters settled and decided"),
	mb("JP2", "JP", "Deadlines are flexible suggestions", "Deadlines are firm commitments"),
	mb("JP3", "JP", "I adapt my plans as I go", "I follow a plan once it is made"),
	mb("JP4", "JP", "I work in bursts of energy", "I work at a steady, scheduled pace"),
	mb("JP5", "JP", "Surprises make life interesting", "Surprises disrupt my routine"),
	mb("JP6", "JP", "I decide at the last possible moment", "I decide well ahead of time"),
	mb("JP7", "JP", "My workspace is organized loosely", "My workspace is organized precisely"),
	mb("JP8", "JP", "I start many projects at once", "I finish one project before the next"),
}
