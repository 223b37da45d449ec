// Package ingest converte exportações xlsx do ERP na matriz de células
// crua armazenada junto com cada envio de planilha.
package ingest

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

// ParseXLSX lê a primeira aba do arquivo e devolve as linhas como células
// heterogêneas. Valores numéricos viram float64 para preservar os seriais
// de data; textos com zeros à esquerda ou pontuação ficam como string.
func ParseXLSX(r io.Reader) ([]domain.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "abrindo arquivo xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("arquivo xlsx sem abas")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "lendo linhas da planilha")
	}

	out := make([]domain.RawRow, 0, len(rows))
	for _, row := range rows {
		cells := make(domain.RawRow, len(row))
		for i, value := range row {
			cells[i] = coerceCell(value)
		}
		out = append(out, cells)
	}

	return out, nil
}

// coerceCell reproduz a tipagem que um leitor de planilha JSON produziria:
// número quando o texto é numérico puro, string caso contrário. Textos
// como "007" ou "5063 - TORRE" não podem perder a forma original.
func coerceCell(value string) domain.Cell {
	if value == "" {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed != value {
		return value
	}
	if strings.HasPrefix(trimmed, "0") && len(trimmed) > 1 && !strings.HasPrefix(trimmed, "0.") {
		return value
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return value
}
