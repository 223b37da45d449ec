package domain

// Category é uma das categorias de ordem de serviço reconhecidas pelo
// relatório consolidado.
type Category string

const (
	CategoryPreventivaNivel1 Category = "preventiva_nivel_1"
	CategoryPreventivaNivel2 Category = "preventiva_nivel_2"
	CategoryLubrificacao     Category = "lubrificacao"
	CategoryHigienizacao     Category = "higienizacao"
	CategoryPreditivas       Category = "preditivas"
	CategorySolicitacoes     Category = "solicitacoes"
	CategoryCorretiva        Category = "corretiva"
	CategoryPredial          Category = "predial"
	CategoryMelhoria         Category = "melhoria"
	CategoryOutros           Category = "outros"
)

// Label devolve o nome exibido da categoria no relatório.
func (c Category) Label() string {
	switch c {
	case CategoryPreventivaNivel1:
		return "Preventiva Nível 1"
	case CategoryPreventivaNivel2:
		return "Preventiva Nível 2"
	case CategoryLubrificacao:
		return "Lubrificação"
	case CategoryHigienizacao:
		return "Higienização"
	case CategoryPreditivas:
		return "Preditivas"
	case CategorySolicitacoes:
		return "Solicitações"
	case CategoryCorretiva:
		return "Corretiva"
	case CategoryPredial:
		return "Predial"
	case CategoryMelhoria:
		return "Melhoria"
	case CategoryOutros:
		return "Outros"
	}
	return string(c)
}

// WorkOrder é uma linha de planilha já classificada. Os campos de plano
// (preventiva/preditiva/lubrificação/higienização) e os de solicitação são
// mutuamente exclusivos; ambos carregam a linha original em Raw para
// rederivações no comparador.
type WorkOrder struct {
	OrdemCodigo    *string `json:"ordem_codigo,omitempty"`
	CodigoEquip    *string `json:"codigo_equip,omitempty"`
	NomeEquip      *string `json:"nome_equip,omitempty"`
	Frequencia     *string `json:"frequencia,omitempty"`
	Reprogramada   *string `json:"reprogramada,omitempty"`
	DataProgramada *string `json:"data_programada,omitempty"`
	TipoManutencao *string `json:"tipo_manutencao,omitempty"`

	// Campos exclusivos de solicitações.
	Solicitacao            *string `json:"solicitacao,omitempty"`
	StatusSolicitacao      *string `json:"status_solicitacao,omitempty"`
	Prioridade             *string `json:"prioridade,omitempty"`
	ServicoSolicitacao     *string `json:"servico_solicitacao,omitempty"`
	EquipamentoSolicitacao *string `json:"equipamento_solicitacao,omitempty"`
	OrdemDeServico         *string `json:"ordem_de_servico,omitempty"`
	StatusOrdem            *string `json:"status_ordem,omitempty"`
	DataServico            *string `json:"data_servico,omitempty"`
	UsuarioSolicitante     *string `json:"usuario_solicitante,omitempty"`
	HighlightOrdemServico  bool    `json:"highlight_ordem_servico,omitempty"`
	HiddenFromTable        bool    `json:"hidden_from_table,omitempty"`

	Setor *string `json:"setor,omitempty"`

	// Meta é a quantidade alvo de ocorrências no mês, derivada da
	// frequência; nil quando a frequência não é um número positivo.
	Meta *int `json:"meta,omitempty"`

	// Raw referencia a linha de origem (somente leitura).
	Raw RawRow `json:"-"`
}
