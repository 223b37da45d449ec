package reporting

import (
	"math"
	"strings"
	"time"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

type freqSplit int

const (
	splitNone freqSplit = iota
	splitAbove31
	splitAtMost31
)

// planRule descreve declarativamente como reconhecer uma categoria de
// plano: o marcador do tipo de manutenção, o corte de frequência e, para
// preditivas, os códigos de plano aceitos.
type planRule struct {
	marker         string
	split          freqSplit
	preditivaCodes []string
}

var planRules = map[domain.Category]planRule{
	domain.CategoryPreventivaNivel1: {marker: "PREVENTIVA", split: splitAbove31},
	domain.CategoryPreventivaNivel2: {marker: "PREVENTIVA", split: splitAtMost31},
	domain.CategoryLubrificacao:     {marker: "LUBRIFICACAO"},
	domain.CategoryPreditivas:       {marker: "PREDITIVA"},
	domain.CategoryHigienizacao:     {marker: "HIGIENIZACAO"},
}

// daysInMonth devolve a quantidade de dias do mês selecionado
// ("yyyy-mm"), ou do mês corrente quando nenhum foi selecionado.
func daysInMonth(selectedMonth string, now time.Time) int {
	y, m := now.Year(), now.Month()
	if t, err := time.Parse("2006-01", selectedMonth); err == nil {
		y, m = t.Year(), t.Month()
	}
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// freqAbove31 decide de que lado do corte de 31 dias uma frequência cai.
// O valor numérico manda; o texto "maior que 31" só é consultado quando a
// célula não rende número algum. Células vazias ou indecifráveis contam
// como "não maior que 31".
func freqAbove31(cell domain.Cell) bool {
	if cell == nil {
		return false
	}
	if f, isNum := parseFreqNumber(cell); isNum {
		return f > 31
	}
	if s, isStr := cell.(string); isStr {
		lower := strings.ToLower(stripDiacritics(s))
		if strings.Contains(lower, "maior que 31") || strings.Contains(lower, "> 31") {
			return true
		}
	}
	return false
}

func matchesPreditivaCodes(cell domain.Cell, codes []string) bool {
	if len(codes) == 0 {
		return true
	}
	s := cellString(cell)
	if s == nil {
		return false
	}
	digits := digitsOnly(*s)
	if digits == "" {
		return false
	}
	for _, code := range codes {
		if digits == code {
			return true
		}
	}
	return false
}

// classifyPlan seleciona as linhas de plano que pertencem à categoria e as
// converte em ordens de serviço com meta calculada.
func classifyPlan(
	rows []domain.RawRow,
	layout *planLayout,
	rule planRule,
	setorFiltro []string,
	selectedMonth string,
	now time.Time,
) []*domain.WorkOrder {
	days := daysInMonth(selectedMonth, now)
	orders := make([]*domain.WorkOrder, 0)

	for _, row := range rows {
		tipo := cellString(layout.cell(row, planTipoManutencao))
		if tipo == nil || !strings.Contains(normalizeText(*tipo), rule.marker) {
			continue
		}

		freqCell := layout.cell(row, planFrequencia)
		switch rule.split {
		case splitAbove31:
			if !freqAbove31(freqCell) {
				continue
			}
		case splitAtMost31:
			if freqAbove31(freqCell) {
				continue
			}
		}

		if !matchesPreditivaCodes(layout.cell(row, planCodigoPlano), rule.preditivaCodes) {
			continue
		}

		setor := resolveSetor(layout.setorCell(row))
		if !matchesSetorFilter(setor, setorFiltro) {
			continue
		}

		order := &domain.WorkOrder{
			OrdemCodigo:    cellString(layout.cell(row, planOrdem)),
			CodigoEquip:    cellString(layout.cell(row, planCodigoEquip)),
			NomeEquip:      cellString(layout.cell(row, planNomeEquip)),
			Frequencia:     cellString(freqCell),
			Reprogramada:   cellString(layout.cell(row, planReprogramada)),
			DataProgramada: formatPlanDate(layout.cell(row, planDataProgramada)),
			TipoManutencao: tipo,
			Setor:          setor,
			Raw:            row,
		}

		if f, ok := parseFreqNumber(freqCell); ok && f > 0 {
			meta := int(math.Max(1, math.Round(float64(days)/f)))
			order.Meta = &meta
		}

		orders = append(orders, order)
	}

	return orders
}

// Serviços operacionais apontados para a equipe de utilidades; ficam fora
// da tabela do relatório mas continuam contando nos totais.
var hiddenSolicitacaoServices = map[string]bool{
	"COU - PROBLEMA ELETRICO": true,
	"COU - PROBLEMA MECANICO": true,
}

// classifySolicitacoes converte as linhas da planilha de solicitações. Não
// há meta por linha; a meta da categoria sai do comparador.
func classifySolicitacoes(
	rows []domain.RawRow,
	layout *solicitacaoLayout,
	setorFiltro []string,
) []*domain.WorkOrder {
	orders := make([]*domain.WorkOrder, 0)

	for _, row := range rows {
		setor := resolveSetor(layout.setorCell(row))
		if !matchesSetorFilter(setor, setorFiltro) {
			continue
		}

		clean := func(field solicitacaoField) *string {
			s := cellString(layout.cell(row, field))
			if s == nil {
				return nil
			}
			c := strings.TrimSpace(cleanText(*s))
			return &c
		}

		order := &domain.WorkOrder{
			Solicitacao:            clean(solSolicitacao),
			StatusSolicitacao:      clean(solStatus),
			Prioridade:             clean(solPrioridade),
			ServicoSolicitacao:     clean(solServico),
			EquipamentoSolicitacao: clean(solEquipamento),
			OrdemDeServico:         clean(solOrdemServico),
			StatusOrdem:            clean(solStatusOrdem),
			DataServico:            formatSolicitacaoDate(layout.cell(row, solDataServico)),
			UsuarioSolicitante:     clean(solSolicitante),
			Setor:                  setor,
			Raw:                    row,
		}

		if order.ServicoSolicitacao != nil &&
			hiddenSolicitacaoServices[normalizeText(*order.ServicoSolicitacao)] {
			order.HiddenFromTable = true
		}

		isPending := false
		if order.StatusSolicitacao != nil {
			st := removeNumericPrefix(strings.ToLower(stripDiacritics(*order.StatusSolicitacao)))
			isPending = strings.Contains(st, "pend")
		}
		order.HighlightOrdemServico = isPending
		if isPending && (order.OrdemDeServico == nil || strings.TrimSpace(*order.OrdemDeServico) == "") {
			placeholder := "GERAR O.S"
			order.OrdemDeServico = &placeholder
		}

		orders = append(orders, order)
	}

	return orders
}
