package domain

import "time"

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Snapshot guarda as tabelas carregadas na inicialização. Nunca é alterado depois de criado.
type Snapshot struct {
	ID           string
	Source       string
	Transactions []Transaction
	Rules        []AssociationRule
	LoadedAt     time.Time
}

// SnapshotStats resume o snapshot para o healthcheck
type SnapshotStats struct {
	ID           string    `json:"snapshot_id"`
	Source       string    `json:"source"`
	Transactions int       `json:"transactions"`
	Rules        int       `json:"rules"`
	LoadedAt     time.Time `json:"loaded_at"`
}

func (s *Snapshot) Stats() SnapshotStats {
	return SnapshotStats{
		ID:           s.ID,
		Source:       s.Source,
		Transactions: len(s.Transactions),
		Rules:        len(s.Rules),
		LoadedAt:     s.LoadedAt,
	}
}
