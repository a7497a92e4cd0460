package domain

// AssociationRule representa uma regra minerada pelo Apriori ("quem compra X também compra Y")
type AssociationRule struct {
	Antecedents      []string `json:"antecedents"`
	Consequents      []string `json:"consequents"`
	AntecedentsLabel string   `json:"antecedents_label"` // Itens separados por ", "
	ConsequentsLabel string   `json:"consequents_label"`
	Support          float64  `json:"support"`
	Confidence       float64  `json:"confidence"`
	Lift             float64  `json:"lift"`
	Leverage         *float64 `json:"leverage,omitempty"`
	Conviction       *float64 `json:"conviction,omitempty"`
}
