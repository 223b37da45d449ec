package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

func pendingOrder(ordem, data string) *domain.WorkOrder {
	return &domain.WorkOrder{
		OrdemCodigo:    strPtr(ordem),
		DataProgramada: strPtr(data),
	}
}

func completedOrder(ordem, data, freq string) *domain.WorkOrder {
	return &domain.WorkOrder{
		OrdemCodigo:    strPtr(ordem),
		DataProgramada: strPtr(data),
		Frequencia:     strPtr(freq),
	}
}

func TestCompareCasamentoPorOrdem(t *testing.T) {
	pending := []*domain.WorkOrder{
		pendingOrder("OS-1", "10/04/2024"),
		pendingOrder("OS-2", "12/04/2024"),
	}
	completed := []*domain.WorkOrder{
		// Espaçamento irregular no código não impede o casamento.
		completedOrder("  OS-1  ", "11/04/2024", "60"),
		// Fora do mês selecionado, não conta.
		completedOrder("OS-2", "11/05/2024", "60"),
	}

	comp := compare(domain.CategoryPreventivaNivel1, pending, completed, "2024-04", nil)
	require.NotNil(t, comp)

	assert.Equal(t, 2, comp.TotalPendentes)
	assert.Equal(t, 1, comp.CompletedInMonth)
	assert.Equal(t, 1, comp.MatchedCount())
	assert.Equal(t, "OS-1", *comp.Matched[0].Pending.OrdemCodigo)

	// Meta nível 1: round((2 + 1) * 1.0) = 3.
	assert.Equal(t, 3, comp.Meta)
	require.NotNil(t, comp.PercentCompleted)
	assert.InDelta(t, 33.33, *comp.PercentCompleted, 0.01)
	require.NotNil(t, comp.PercentMatchedOfPendentes)
	assert.InDelta(t, 50.0, *comp.PercentMatchedOfPendentes, 0.01)
}

func TestCompareFiltroDeNivelNasRealizadas(t *testing.T) {
	pending := []*domain.WorkOrder{pendingOrder("OS-1", "10/04/2024")}
	completed := []*domain.WorkOrder{
		completedOrder("OS-1", "11/04/2024", "7"), // frequência curta
	}

	nivel1 := compare(domain.CategoryPreventivaNivel1, pending, completed, "2024-04", nil)
	require.NotNil(t, nivel1)
	assert.Equal(t, 0, nivel1.CompletedInMonth, "realizada de frequência curta não conta no nível 1")

	nivel2 := compare(domain.CategoryPreventivaNivel2, pending, completed, "2024-04", nil)
	require.NotNil(t, nivel2)
	assert.Equal(t, 1, nivel2.CompletedInMonth)
}

func TestCompareChaveVaziaNuncaCasa(t *testing.T) {
	pending := []*domain.WorkOrder{
		{DataProgramada: strPtr("10/04/2024")},
	}
	completed := []*domain.WorkOrder{
		{DataProgramada: strPtr("10/04/2024"), Frequencia: strPtr("60")},
	}

	comp := compare(domain.CategoryPreventivaNivel1, pending, completed, "2024-04", nil)
	require.NotNil(t, comp)
	assert.Equal(t, 0, comp.MatchedCount())
	assert.Equal(t, 1, comp.CompletedInMonth)
}

func TestCompareMetaNivel2ComFolga(t *testing.T) {
	pending := []*domain.WorkOrder{
		pendingOrder("OS-1", "10/04/2024"),
		pendingOrder("OS-2", "11/04/2024"),
		pendingOrder("OS-3", "12/04/2024"),
	}

	comp := compare(domain.CategoryPreventivaNivel2, pending, nil, "2024-04", nil)
	require.NotNil(t, comp)

	// Meta nível 2: round((3 + 0) * 0.85) = round(2.55) = 3.
	assert.Equal(t, 3, comp.Meta)
}

func TestCompareSolicitacoes(t *testing.T) {
	sol := func(statusSol, statusOrdem, dataServico string) *domain.WorkOrder {
		o := &domain.WorkOrder{}
		if statusSol != "" {
			o.StatusSolicitacao = strPtr(statusSol)
		}
		if statusOrdem != "" {
			o.StatusOrdem = strPtr(statusOrdem)
		}
		if dataServico != "" {
			o.DataServico = strPtr(dataServico)
		}
		return o
	}

	pending := []*domain.WorkOrder{
		sol("1 - PENDENTE", "", "10/04/2024"),
		sol("2 - FINALIZADA", "1 - PENDENTE", "11/04/2024"),
		sol("2 - FINALIZADA", "2 - FINALIZADA", "12/04/2024"),
		sol("3 - REPROVADO", "", "13/04/2024"),
		sol("2 - FINALIZADA", "3 - CANCELADA", "14/04/2024"),
	}

	comp := compare(domain.CategorySolicitacoes, pending, nil, "2024-04", nil)
	require.NotNil(t, comp)

	// Pendentes: solicitação pendente, ordem pendente e ordem cancelada.
	assert.Equal(t, 3, comp.TotalPendentes)
	// Realizadas saem do status da ordem na própria planilha de pendentes.
	assert.Equal(t, 1, comp.CompletedInMonth)
	assert.Equal(t, 1, comp.OrdensPendentesParaGerarOS)
	assert.Equal(t, 1, comp.SolicitacoesReprovadas)

	// Meta solicitações: round((3 + 1) * 0.95) = round(3.8) = 4.
	assert.Equal(t, 4, comp.Meta)
}

func TestCompareReprogramadas(t *testing.T) {
	pending := []*domain.WorkOrder{
		{OrdemCodigo: strPtr("OS-1"), Reprogramada: strPtr("2")},
		{OrdemCodigo: strPtr("OS-2"), Reprogramada: strPtr("0")},
		{OrdemCodigo: strPtr("OS-3"), Reprogramada: strPtr("1,0")},
		{OrdemCodigo: strPtr("OS-4")},
	}

	corretiva := compare(domain.CategoryCorretiva, pending, nil, "2024-04", nil)
	require.NotNil(t, corretiva)
	assert.Equal(t, 2, corretiva.ReprogramadasCount)

	// Categorias de plano não contam reprogramadas.
	nivel2 := compare(domain.CategoryPreventivaNivel2, pending, nil, "2024-04", nil)
	require.NotNil(t, nivel2)
	assert.Equal(t, 0, nivel2.ReprogramadasCount)
}

func TestCompareMesInvalido(t *testing.T) {
	assert.Nil(t, compare(domain.CategoryPreventivaNivel1, nil, nil, "", nil))
	assert.Nil(t, compare(domain.CategoryPreventivaNivel1, nil, nil, "abril", nil))
	assert.Nil(t, compare(domain.CategoryPreventivaNivel1, nil, nil, "2024-4", nil))
}

func TestCompareFiltroDeSetorNasRealizadas(t *testing.T) {
	trio := SetorTrio
	semi := SetorSemi

	pending := []*domain.WorkOrder{pendingOrder("OS-1", "10/04/2024")}
	pending[0].Setor = &trio

	c1 := completedOrder("OS-1", "11/04/2024", "60")
	c1.Setor = &semi

	comp := compare(domain.CategoryPreventivaNivel1, pending, []*domain.WorkOrder{c1}, "2024-04", []string{SetorTrio})
	require.NotNil(t, comp)
	assert.Equal(t, 0, comp.CompletedInMonth, "realizada de outro setor não entra no filtro")
}
