package reporting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/pkg/utils"
)

var reSelectedMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Fatores de meta acordados com a gestão da manutenção: preventivas de
// nível 1 e preditivas têm meta cheia, nível 2 admite 15% de folga e as
// demais categorias 5%.
func metaFactor(cat domain.Category) float64 {
	switch cat {
	case domain.CategoryPreventivaNivel1, domain.CategoryPreditivas:
		return 1.0
	case domain.CategoryPreventivaNivel2:
		return 0.85
	default:
		return 0.95
	}
}

// orderKey normaliza o código da ordem para casamento pendente/realizada.
func orderKey(o *domain.WorkOrder) string {
	var raw string
	if o.OrdemCodigo != nil {
		raw = *o.OrdemCodigo
	}
	return reSpaces.ReplaceAllString(strings.TrimSpace(raw), " ")
}

func timestampInMonth(cell domain.Cell, year int, month time.Month) bool {
	t := sortableTimestamp(cell)
	if t == nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

func orderDateInMonth(o *domain.WorkOrder, cat domain.Category, year int, month time.Month) bool {
	var field *string
	if cat == domain.CategorySolicitacoes {
		field = o.DataServico
	} else {
		field = o.DataProgramada
	}
	if field == nil {
		return false
	}
	return timestampInMonth(*field, year, month)
}

// compare cruza ordens pendentes com as realizadas do mês selecionado e
// consolida os contadores da categoria. Devolve nil quando não há mês
// selecionado em formato yyyy-mm.
func compare(
	cat domain.Category,
	pending []*domain.WorkOrder,
	completedAll []*domain.WorkOrder,
	selectedMonth string,
	setorFiltro []string,
) *domain.ComparisonResult {
	if !reSelectedMonth.MatchString(selectedMonth) {
		return nil
	}
	selY, _ := strconv.Atoi(selectedMonth[:4])
	selMNum, _ := strconv.Atoi(selectedMonth[5:])
	selM := time.Month(selMNum)

	completedInMonth := make([]*domain.WorkOrder, 0)
	for _, c := range completedAll {
		if !orderDateInMonth(c, cat, selY, selM) {
			continue
		}
		switch cat {
		case domain.CategorySolicitacoes:
			if !statusFinalizada(c.StatusOrdem) {
				continue
			}
		case domain.CategoryPreditivas:
			if c.TipoManutencao == nil ||
				!strings.Contains(normalizeText(*c.TipoManutencao), "PREDITIVA") {
				continue
			}
		case domain.CategoryPreventivaNivel1:
			if !freqAbove31(deref(c.Frequencia)) {
				continue
			}
		case domain.CategoryPreventivaNivel2:
			if freqAbove31(deref(c.Frequencia)) {
				continue
			}
		}
		if !matchesSetorFilter(c.Setor, setorFiltro) {
			continue
		}
		completedInMonth = append(completedInMonth, c)
	}

	// Primeiro registro realizado com cada chave vence; chave vazia nunca
	// casa.
	completedByKey := make(map[string]*domain.WorkOrder, len(completedInMonth))
	for _, c := range completedInMonth {
		key := orderKey(c)
		if key == "" {
			continue
		}
		if _, ok := completedByKey[key]; !ok {
			completedByKey[key] = c
		}
	}

	matched := make([]domain.MatchedPair, 0)
	for _, p := range pending {
		key := orderKey(p)
		if key == "" {
			continue
		}
		if c, ok := completedByKey[key]; ok {
			matched = append(matched, domain.MatchedPair{Pending: p, Completed: c})
		}
	}

	var totalPendentes int
	if cat == domain.CategorySolicitacoes {
		for _, o := range pending {
			if statusPendente(o.StatusSolicitacao) ||
				statusPendente(o.StatusOrdem) ||
				statusCancelada(o.StatusOrdem) {
				totalPendentes++
			}
		}
	} else {
		for _, o := range pending {
			if o.DataProgramada != nil && timestampInMonth(*o.DataProgramada, selY, selM) {
				totalPendentes++
			}
		}
	}

	completedCount := len(completedInMonth)
	if cat == domain.CategorySolicitacoes {
		// Para solicitações o indicador de realizadas sai da própria
		// planilha de pendentes, olhando o status da ordem gerada.
		completedCount = 0
		for _, o := range pending {
			if statusFinalizada(o.StatusOrdem) {
				completedCount++
			}
		}
	}

	var gerarOS, reprovadas int
	if cat == domain.CategorySolicitacoes {
		for _, o := range pending {
			if statusPendente(o.StatusSolicitacao) {
				gerarOS++
			}
			if statusReprovado(o.StatusSolicitacao) {
				reprovadas++
			}
		}
	}

	var reprogramadas int
	switch cat {
	case domain.CategoryCorretiva, domain.CategoryPredial,
		domain.CategoryMelhoria, domain.CategoryOutros:
		for _, o := range pending {
			if o.Reprogramada == nil {
				continue
			}
			v := strings.ReplaceAll(reSpaces.ReplaceAllString(*o.Reprogramada, ""), ",", ".")
			v = reNonNumeric.ReplaceAllString(v, "")
			if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 1 {
				reprogramadas++
			}
		}
	}

	meta := int(math.Max(0, math.Round(float64(totalPendentes+completedCount)*metaFactor(cat))))

	var percentCompleted, percentMatched *float64
	if meta > 0 {
		p := utils.RoundWithTwoDecimalPlace(float64(completedCount) / float64(meta) * 100)
		percentCompleted = &p
	}
	if totalPendentes > 0 {
		p := utils.RoundWithTwoDecimalPlace(float64(len(matched)) / float64(totalPendentes) * 100)
		percentMatched = &p
	}

	return &domain.ComparisonResult{
		TotalPendentes:             totalPendentes,
		CompletedInMonth:           completedCount,
		OrdensPendentesParaGerarOS: gerarOS,
		SolicitacoesReprovadas:     reprovadas,
		ReprogramadasCount:         reprogramadas,
		Matched:                    matched,
		PercentCompleted:           percentCompleted,
		PercentMatchedOfPendentes:  percentMatched,
		Meta:                       meta,
	}
}
