package export

import (
	"encoding/json"
	"time"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

type exportRecord struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Acao     string `json:"acao"`
	DataHora string `json:"data_hora"`
	IPOrigem string `json:"ip_origem,omitempty"`
}

func renderJSON(events []domain.AttendanceEvent) ([]byte, error) {
	records := make([]exportRecord, 0, len(events))
	for _, ev := range events {
		records = append(records, exportRecord{
			Nome:     ev.Nome,
			CPF:      ev.CPF,
			Acao:     string(ev.Action),
			DataHora: ev.Timestamp.In(domain.BRT).Format(time.RFC3339),
			IPOrigem: ev.OriginIP,
		})
	}
	return json.Marshal(records)
}
