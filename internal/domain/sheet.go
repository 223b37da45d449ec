package domain

import "time"

// Cell é o valor bruto de uma célula de planilha: string, float64 ou nil.
// Planilhas exportadas do ERP misturam texto livre, números com pontuação
// de localidade e seriais de data do Excel; a normalização fica a cargo do
// pacote reporting.
type Cell = any

// RawRow é uma linha da planilha na ordem original das colunas.
type RawRow []Cell

// SheetType identifica qual dos três conjuntos de dados a planilha representa.
type SheetType string

const (
	SheetPendentes    SheetType = "pendentes"
	SheetCompleted    SheetType = "completed"
	SheetSolicitacoes SheetType = "solicitacoes"
)

// ValidSheetType informa se o tipo recebido no upload é conhecido.
func ValidSheetType(t SheetType) bool {
	switch t {
	case SheetPendentes, SheetCompleted, SheetSolicitacoes:
		return true
	}
	return false
}

// UploadedSheet é uma planilha já convertida em matriz de linhas. A primeira
// linha é sempre o cabeçalho usado para resolver o layout de colunas.
type UploadedSheet struct {
	ID         int64     `json:"id"`
	PublicID   string    `json:"public_id"`
	Type       SheetType `json:"type"`
	Filename   string    `json:"filename"`
	Rows       []RawRow  `json:"rows,omitempty"`
	RowCount   int       `json:"row_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}
