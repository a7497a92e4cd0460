package domain

// ItemCount é a frequência de compra de um item
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// DaypartCount é o total de transações em um período do dia
type DaypartCount struct {
	Daypart string `json:"daypart"`
	Count   int    `json:"count"`
}
