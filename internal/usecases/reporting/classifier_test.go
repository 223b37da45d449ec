package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

var classifierNow = time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)

func mustPlanLayout(t *testing.T) *planLayout {
	t.Helper()
	layout, err := resolvePlanLayout(planHeader())
	require.NoError(t, err)
	return layout
}

func planRow(equip string, freq interface{}, ordem, data, tipo string) domain.RawRow {
	return domain.RawRow{equip, "EQUIPAMENTO DE TESTE", freq, ordem, "0", data, tipo, nil}
}

func TestFreqAbove31(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  bool
	}{
		{name: "Numérico acima do corte", input: float64(60), want: true},
		{name: "Exatamente 31 fica abaixo do corte", input: float64(31), want: false},
		{name: "Texto maior que 31 parseia como 31", input: "Maior que 31", want: false},
		{name: "Texto com sinal parseia como 31", input: "> 31", want: false},
		{name: "Texto sem número válido cai no marcador", input: "maior que 31.5.", want: true},
		{name: "Texto numérico", input: "45 dias", want: true},
		{name: "Célula vazia", input: nil, want: false},
		{name: "Texto indecifrável", input: "sob demanda", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, freqAbove31(tt.input))
		})
	}
}

func TestClassifyPlanNivelSplit(t *testing.T) {
	layout := mustPlanLayout(t)
	rows := []domain.RawRow{
		planRow("5063", float64(31), "OS-1", "15/04/2024", "PREVENTIVA"),
		planRow("5080", float64(60), "OS-2", "16/04/2024", "PREVENTIVA"),
		planRow("5068", "Maior que 31", "OS-3", "17/04/2024", "PREVENTIVA"),
		planRow("5070", nil, "OS-4", "18/04/2024", "PREVENTIVA"),
		planRow("5071", float64(7), "OS-5", "19/04/2024", "CORRETIVA"),
	}

	nivel1 := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel1], nil, "2024-04", classifierNow)
	nivel2 := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel2], nil, "2024-04", classifierNow)

	require.Len(t, nivel1, 1)
	assert.Equal(t, "OS-2", *nivel1[0].OrdemCodigo)

	// "Maior que 31" parseia como 31 e fica no nível 2, assim como
	// frequência vazia e as curtas.
	require.Len(t, nivel2, 3)
	assert.Equal(t, "OS-1", *nivel2[0].OrdemCodigo)
	assert.Equal(t, "OS-3", *nivel2[1].OrdemCodigo)
	assert.Equal(t, "OS-4", *nivel2[2].OrdemCodigo)
}

func TestClassifyPlanMetaESetor(t *testing.T) {
	layout := mustPlanLayout(t)
	rows := []domain.RawRow{
		planRow("5063", float64(31), "OS-1", "15/04/2024", "PREVENTIVA"),
	}

	orders := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel2], nil, "2024-04", classifierNow)
	require.Len(t, orders, 1)

	order := orders[0]
	require.NotNil(t, order.Setor)
	assert.Equal(t, SetorTrio, *order.Setor)
	require.NotNil(t, order.DataProgramada)
	assert.Equal(t, "15/04/2024", *order.DataProgramada)

	// Abril tem 30 dias: round(30/31) = 1, com piso de 1 por mês.
	require.NotNil(t, order.Meta)
	assert.Equal(t, 1, *order.Meta)
}

func TestClassifyPlanMetaFrequenciaCurta(t *testing.T) {
	layout := mustPlanLayout(t)
	rows := []domain.RawRow{
		planRow("5063", float64(7), "OS-1", "15/04/2024", "PREVENTIVA"),
	}

	orders := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel2], nil, "2024-04", classifierNow)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].Meta)
	assert.Equal(t, 4, *orders[0].Meta, "round(30/7)")
}

func TestClassifyPlanSetorDaColunaDeGrupo(t *testing.T) {
	header := domain.RawRow{
		"Equipamento", "Descrição do Equipamento", "Frequência", "Ordem",
		"Reprogramada", "Data Programada", "Tipo de Manutenção",
		"Grupo de Equipamento",
	}
	layout, err := resolvePlanLayout(header)
	require.NoError(t, err)

	// O equipamento traz só o nome; o código de setor vem do grupo.
	rows := []domain.RawRow{
		{"TORRE DE RESFRIAMENTO 01", "TORRE", float64(7), "OS-1", "0", "15/04/2024", "PREVENTIVA", "5063"},
		{"PORTARIA", "PORTARIA", float64(7), "OS-2", "0", "16/04/2024", "PREVENTIVA", float64(6124)},
	}

	orders := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel2], nil, "2024-04", classifierNow)
	require.Len(t, orders, 2)
	require.NotNil(t, orders[0].Setor)
	assert.Equal(t, SetorTrio, *orders[0].Setor)
	require.NotNil(t, orders[1].Setor)
	assert.Equal(t, SetorAreaExterna, *orders[1].Setor)

	filtered := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel2], []string{SetorTrio}, "2024-04", classifierNow)
	require.Len(t, filtered, 1)
	assert.Equal(t, "OS-1", *filtered[0].OrdemCodigo)
}

func TestClassifySolicitacoesSetorDaColunaDeGrupo(t *testing.T) {
	header := domain.RawRow{
		"Solicitação", "Status da Solicitação", "Prioridade", "Serviço",
		"Equipamento", "Ordem de Serviço", "Status da Ordem",
		"Data do Serviço", "Usuário Solicitante", "Grupo de Equipamento",
	}
	layout, err := resolveSolicitacaoLayout(header)
	require.NoError(t, err)

	rows := []domain.RawRow{
		{"SOL-1", "1 - PENDENTE", "ALTA", "AJUSTE", "TORRE DE RESFRIAMENTO 01", nil, nil, "10/04/2024", "maria", "5063"},
	}
	orders := classifySolicitacoes(rows, layout, nil)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].Setor)
	assert.Equal(t, SetorTrio, *orders[0].Setor)
}

func TestClassifyPlanFiltroDeSetor(t *testing.T) {
	layout := mustPlanLayout(t)
	rows := []domain.RawRow{
		planRow("5063", float64(7), "OS-1", "15/04/2024", "PREVENTIVA"), // TRIO
		planRow("5068", float64(7), "OS-2", "16/04/2024", "PREVENTIVA"), // SEMI
		planRow("99999", float64(7), "OS-3", "17/04/2024", "PREVENTIVA"),
	}

	orders := classifyPlan(rows, layout, planRules[domain.CategoryPreventivaNivel2], []string{SetorTrio}, "2024-04", classifierNow)
	require.Len(t, orders, 1)
	assert.Equal(t, "OS-1", *orders[0].OrdemCodigo)
}

func TestClassifyPlanPreditivas(t *testing.T) {
	layout := mustPlanLayout(t)
	withPlano := func(equip, ordem, plano string) domain.RawRow {
		return domain.RawRow{equip, "EQUIP", float64(30), ordem, "0", "10/04/2024", "PREDITIVA", plano}
	}
	rows := []domain.RawRow{
		withPlano("5063", "OS-1", "1234 - ANALISE DE VIBRACAO"),
		withPlano("5068", "OS-2", "9999 - TERMOGRAFIA"),
	}

	rule := planRules[domain.CategoryPreditivas]
	rule.preditivaCodes = []string{"1234"}

	orders := classifyPlan(rows, layout, rule, nil, "2024-04", classifierNow)
	require.Len(t, orders, 1)
	assert.Equal(t, "OS-1", *orders[0].OrdemCodigo)

	// Sem lista de códigos, todas as linhas preditivas entram.
	rule.preditivaCodes = nil
	assert.Len(t, classifyPlan(rows, layout, rule, nil, "2024-04", classifierNow), 2)
}

func TestClassifySolicitacoes(t *testing.T) {
	layout, err := resolveSolicitacaoLayout(solicitacaoHeader())
	require.NoError(t, err)

	solRow := func(sol, status, servico, equip string, ordem, statusOrdem interface{}) domain.RawRow {
		return domain.RawRow{sol, status, "ALTA", servico, equip, ordem, statusOrdem, "10/04/2024", "maria"}
	}

	t.Run("Pendente sem O.S recebe marcador para gerar", func(t *testing.T) {
		rows := []domain.RawRow{
			solRow("SOL-1", "1 - PENDENTE", "TROCA DE ROLAMENTO", "5063", nil, nil),
		}
		orders := classifySolicitacoes(rows, layout, nil)
		require.Len(t, orders, 1)

		order := orders[0]
		require.NotNil(t, order.OrdemDeServico)
		assert.Equal(t, "GERAR O.S", *order.OrdemDeServico)
		assert.True(t, order.HighlightOrdemServico)
	})

	t.Run("Pendente com O.S mantém o número e segue destacada", func(t *testing.T) {
		rows := []domain.RawRow{
			solRow("SOL-2", "1 - PENDENTE", "TROCA DE CORREIA", "5063", "OS-77", "1 - PENDENTE"),
		}
		orders := classifySolicitacoes(rows, layout, nil)
		require.Len(t, orders, 1)
		// O destaque acompanha o status pendente, com ou sem O.S existente.
		assert.Equal(t, "OS-77", *orders[0].OrdemDeServico)
		assert.True(t, orders[0].HighlightOrdemServico)
	})

	t.Run("Finalizada não recebe destaque", func(t *testing.T) {
		rows := []domain.RawRow{
			solRow("SOL-7", "2 - FINALIZADA", "TROCA DE CORREIA", "5063", "OS-90", "2 - FINALIZADA"),
		}
		orders := classifySolicitacoes(rows, layout, nil)
		require.Len(t, orders, 1)
		assert.False(t, orders[0].HighlightOrdemServico)
	})

	t.Run("Serviços operacionais ficam fora da tabela", func(t *testing.T) {
		rows := []domain.RawRow{
			solRow("SOL-3", "2 - FINALIZADA", "COU - Problema Elétrico", "5063", "OS-80", "2 - FINALIZADA"),
			solRow("SOL-4", "2 - FINALIZADA", "TROCA DE FILTRO", "5063", "OS-81", "2 - FINALIZADA"),
		}
		orders := classifySolicitacoes(rows, layout, nil)
		require.Len(t, orders, 2)
		assert.True(t, orders[0].HiddenFromTable)
		assert.False(t, orders[1].HiddenFromTable)
	})

	t.Run("Filtro de setor se aplica ao equipamento da solicitação", func(t *testing.T) {
		rows := []domain.RawRow{
			solRow("SOL-5", "1 - PENDENTE", "AJUSTE", "5063", nil, nil), // TRIO
			solRow("SOL-6", "1 - PENDENTE", "AJUSTE", "5068", nil, nil), // SEMI
		}
		orders := classifySolicitacoes(rows, layout, []string{SetorSemi})
		require.Len(t, orders, 1)
		assert.Equal(t, "SOL-6", *orders[0].Solicitacao)
	})
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, daysInMonth("2024-04", classifierNow))
	assert.Equal(t, 29, daysInMonth("2024-02", classifierNow))
	assert.Equal(t, 31, daysInMonth("2023-01", classifierNow))
	assert.Equal(t, 30, daysInMonth("", classifierNow), "sem mês selecionado usa o mês corrente")
}
