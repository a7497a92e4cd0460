// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Transaction representa uma linha do arquivo de transações da padaria
type Transaction struct {
	TransactionNo string `json:"transaction_no,omitempty"`
	Item          string `json:"item"`
	DateTime      string `json:"date_time,omitempty"`
	Daypart       string `json:"daypart"`
	DayType       string `json:"day_type,omitempty"`
}
