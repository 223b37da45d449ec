package reporting

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

// ErrUnexpectedLayout indica que o cabeçalho da planilha não contém as
// colunas que o processamento exige.
var ErrUnexpectedLayout = errors.New("layout de planilha inesperado")

type planField int

const (
	planCodigoEquip planField = iota
	planNomeEquip
	planFrequencia
	planOrdem
	planReprogramada
	planDataProgramada
	planTipoManutencao
	planCodigoPlano
	planGrupoEquip
)

type solicitacaoField int

const (
	solSolicitacao solicitacaoField = iota
	solStatus
	solPrioridade
	solServico
	solEquipamento
	solOrdemServico
	solStatusOrdem
	solDataServico
	solSolicitante
	solGrupoEquip
)

// Títulos aceitos por coluna, já na forma normalizada (maiúsculas, sem
// acento). Exportações de versões diferentes do ERP variam o rótulo.
var planHeaderSynonyms = map[planField][]string{
	planCodigoEquip:    {"EQUIPAMENTO", "CODIGO DO EQUIPAMENTO", "COD. EQUIPAMENTO"},
	planNomeEquip:      {"DESCRICAO DO EQUIPAMENTO", "NOME DO EQUIPAMENTO", "DESCRICAO EQUIPAMENTO"},
	planFrequencia:     {"FREQUENCIA", "FREQUENCIA (DIAS)", "PERIODICIDADE"},
	planOrdem:          {"ORDEM", "ORDEM DE SERVICO", "O.S.", "NUMERO DA ORDEM"},
	planReprogramada:   {"REPROGRAMADA", "QTD REPROGRAMADA", "REPROGRAMACOES"},
	planDataProgramada: {"DATA PROGRAMADA", "DATA PROGRAMACAO", "DT. PROGRAMADA"},
	planTipoManutencao: {"TIPO DE MANUTENCAO", "TIPO MANUTENCAO", "TIPO"},
	planCodigoPlano:    {"PLANO DE MANUTENCAO", "CODIGO DO PLANO", "PLANO"},
	planGrupoEquip:     {"GRUPO DE EQUIPAMENTO", "GRUPO DO EQUIPAMENTO", "GRUPO"},
}

var solicitacaoHeaderSynonyms = map[solicitacaoField][]string{
	solSolicitacao: {"SOLICITACAO", "NUMERO DA SOLICITACAO", "N. SOLICITACAO"},
	solStatus:      {"STATUS DA SOLICITACAO", "STATUS SOLICITACAO", "SITUACAO DA SOLICITACAO"},
	solPrioridade:  {"PRIORIDADE"},
	solServico:     {"SERVICO", "DESCRICAO DO SERVICO", "SERVICO SOLICITADO"},
	solEquipamento: {"EQUIPAMENTO", "CODIGO DO EQUIPAMENTO"},
	solOrdemServico: {
		"ORDEM DE SERVICO", "ORDEM", "O.S.", "O.S", "OS GERADA",
	},
	solStatusOrdem: {"STATUS DA ORDEM", "STATUS ORDEM", "SITUACAO DA ORDEM"},
	solDataServico: {"DATA DO SERVICO", "DATA SERVICO", "DATA DE EXECUCAO"},
	solSolicitante: {"USUARIO SOLICITANTE", "SOLICITANTE", "USUARIO"},
	solGrupoEquip:  {"GRUPO DE EQUIPAMENTO", "GRUPO DO EQUIPAMENTO", "GRUPO"},
}

var planFieldNames = map[planField]string{
	planCodigoEquip:    "EQUIPAMENTO",
	planNomeEquip:      "DESCRICAO DO EQUIPAMENTO",
	planFrequencia:     "FREQUENCIA",
	planOrdem:          "ORDEM",
	planReprogramada:   "REPROGRAMADA",
	planDataProgramada: "DATA PROGRAMADA",
	planTipoManutencao: "TIPO DE MANUTENCAO",
	planCodigoPlano:    "PLANO DE MANUTENCAO",
	planGrupoEquip:     "GRUPO DE EQUIPAMENTO",
}

var solicitacaoFieldNames = map[solicitacaoField]string{
	solSolicitacao:  "SOLICITACAO",
	solStatus:       "STATUS DA SOLICITACAO",
	solPrioridade:   "PRIORIDADE",
	solServico:      "SERVICO",
	solEquipamento:  "EQUIPAMENTO",
	solOrdemServico: "ORDEM DE SERVICO",
	solStatusOrdem:  "STATUS DA ORDEM",
	solDataServico:  "DATA DO SERVICO",
	solSolicitante:  "USUARIO SOLICITANTE",
	solGrupoEquip:   "GRUPO DE EQUIPAMENTO",
}

// planLayout e solicitacaoLayout traduzem campo lógico em índice de coluna
// de uma exportação concreta.
type planLayout struct {
	columns map[planField]int
}

type solicitacaoLayout struct {
	columns map[solicitacaoField]int
}

func headerTitles(header domain.RawRow) []string {
	titles := make([]string, len(header))
	for i, cell := range header {
		if s := cellString(cell); s != nil {
			titles[i] = normalizeText(*s)
		}
	}
	return titles
}

func findColumn(titles []string, synonyms []string) (int, bool) {
	for _, syn := range synonyms {
		for i, title := range titles {
			if title == syn {
				return i, true
			}
		}
	}
	return 0, false
}

// resolvePlanLayout monta o layout de uma planilha de plano a partir da
// linha de cabeçalho. A coluna de plano é opcional; as demais são
// obrigatórias.
func resolvePlanLayout(header domain.RawRow) (*planLayout, error) {
	titles := headerTitles(header)
	layout := &planLayout{columns: make(map[planField]int)}
	var missing []string
	for field, synonyms := range planHeaderSynonyms {
		idx, ok := findColumn(titles, synonyms)
		if ok {
			layout.columns[field] = idx
			continue
		}
		if field == planCodigoPlano || field == planGrupoEquip {
			continue
		}
		missing = append(missing, planFieldNames[field])
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrUnexpectedLayout,
			"colunas ausentes: %s", strings.Join(missing, ", "))
	}
	return layout, nil
}

func resolveSolicitacaoLayout(header domain.RawRow) (*solicitacaoLayout, error) {
	titles := headerTitles(header)
	layout := &solicitacaoLayout{columns: make(map[solicitacaoField]int)}
	var missing []string
	for field, synonyms := range solicitacaoHeaderSynonyms {
		idx, ok := findColumn(titles, synonyms)
		if ok {
			layout.columns[field] = idx
			continue
		}
		switch field {
		case solPrioridade, solSolicitante, solGrupoEquip:
			continue
		}
		missing = append(missing, solicitacaoFieldNames[field])
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrUnexpectedLayout,
			"colunas ausentes: %s", strings.Join(missing, ", "))
	}
	return layout, nil
}

func (l *planLayout) cell(row domain.RawRow, field planField) domain.Cell {
	idx, ok := l.columns[field]
	if !ok || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func (l *solicitacaoLayout) cell(row domain.RawRow, field solicitacaoField) domain.Cell {
	idx, ok := l.columns[field]
	if !ok || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// setorCell devolve a célula que carrega o código de setor. O código vem
// do grupo de equipamento; exportações antigas sem essa coluna embutem o
// código no próprio campo de equipamento ("5063 - TORRE ...").
func (l *planLayout) setorCell(row domain.RawRow) domain.Cell {
	if _, ok := l.columns[planGrupoEquip]; ok {
		return l.cell(row, planGrupoEquip)
	}
	return l.cell(row, planCodigoEquip)
}

func (l *solicitacaoLayout) setorCell(row domain.RawRow) domain.Cell {
	if _, ok := l.columns[solGrupoEquip]; ok {
		return l.cell(row, solGrupoEquip)
	}
	return l.cell(row, solEquipamento)
}
