package domain

// MatchedPair liga uma ordem pendente à ordem concluída de mesma chave
// dentro da janela do mês selecionado.
type MatchedPair struct {
	Pending   *WorkOrder `json:"pending"`
	Completed *WorkOrder `json:"completed"`
}

// ComparisonResult agrega os contadores de uma categoria para um mês e um
// filtro de setor. É recalculado a cada geração de relatório e nunca
// persistido.
type ComparisonResult struct {
	TotalPendentes   int `json:"total_pendentes"`
	CompletedInMonth int `json:"completed_in_month"`

	// Contadores exclusivos de solicitações.
	OrdensPendentesParaGerarOS int `json:"ordens_pendentes_para_gerar_os"`
	SolicitacoesReprovadas     int `json:"solicitacoes_reprovadas"`

	// Contador das categorias corretiva/predial/melhoria/outros; não
	// aparece no relatório consolidado atual mas faz parte do contrato.
	ReprogramadasCount int `json:"reprogramadas_count"`

	Matched []MatchedPair `json:"matched"`

	// PercentCompleted e PercentMatchedOfPendentes são nil quando o
	// denominador correspondente é zero.
	PercentCompleted          *float64 `json:"percent_completed"`
	PercentMatchedOfPendentes *float64 `json:"percent_matched_of_pendentes"`

	// Meta é o alvo mensal: round((pendentes+realizadas) * fator da
	// categoria), nunca negativo.
	Meta int `json:"meta"`
}

// MatchedCount devolve quantos pares pendente/concluída foram casados.
func (c *ComparisonResult) MatchedCount() int {
	return len(c.Matched)
}

// AdherenceMetrics compara as realizações acumuladas com o esperado
// proporcional ao dia corrente do período.
type AdherenceMetrics struct {
	DaysInPeriod    int      `json:"days_in_period"`
	DayIndex        int      `json:"day_index"`
	ExpectedToDate  float64  `json:"expected_to_date"`
	ActualCompleted int      `json:"actual_completed"`
	AdherencePercent *float64 `json:"adherence_percent"`
}

// ReportSection é o bloco de KPIs de uma categoria no relatório.
type ReportSection struct {
	Category   Category          `json:"category"`
	Label      string            `json:"label"`
	Comparison *ComparisonResult `json:"comparison"`
	Adherence  *AdherenceMetrics `json:"adherence"`
}
