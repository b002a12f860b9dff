package export

import (
	"bytes"
	"encoding/csv"

	"github.com/incubadora/ponto-api/internal/core/domain"
)

var csvHeader = []string{"Nome", "CPF", "Ação", "Data/Hora"}

func renderCSV(events []domain.AttendanceEvent) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, ev := range events {
		row := []string{ev.Nome, ev.CPF, string(ev.Action), displayTime(ev.Timestamp)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
