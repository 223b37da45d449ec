package reporting

import (
	"strings"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

const (
	SetorTrio        = "TRIO"
	SetorSemi        = "SEMI"
	SetorAreaExterna = "AREA EXTERNA"
)

// Mapeamento fixo de código de equipamento para setor fabril, fornecido
// pela engenharia de manutenção.
var setorMap = map[string]string{
	"5063": SetorTrio, "5065": SetorTrio, "5068": SetorSemi,
	"5070": SetorSemi, "5071": SetorAreaExterna, "5072": SetorSemi,
	"5073": SetorSemi, "5074": SetorSemi, "5077": SetorSemi,
	"5080": SetorTrio, "5082": SetorTrio, "5083": SetorSemi,
	"5089": SetorAreaExterna, "5091": SetorAreaExterna, "5092": SetorAreaExterna,
	"5133": SetorAreaExterna, "5135": SetorAreaExterna, "7537": SetorAreaExterna,
	"9022": SetorSemi, "9316": SetorAreaExterna, "9317": SetorAreaExterna,
	"9318": SetorAreaExterna, "9325": SetorAreaExterna, "9326": SetorAreaExterna,
	"9340": SetorTrio, "9341": SetorAreaExterna, "9342": SetorTrio,
	"9343": SetorTrio, "9344": SetorTrio, "9346": SetorTrio,
	"9352": SetorAreaExterna, "9354": SetorSemi, "9357": SetorSemi,
	"9360": SetorSemi, "9361": SetorSemi, "9362": SetorSemi,
	"9363": SetorSemi, "9364": SetorSemi, "9365": SetorSemi,
	"9366": SetorSemi, "9449": SetorAreaExterna, "9596": SetorAreaExterna,
	"11691": SetorAreaExterna, "12367": SetorAreaExterna, "13011": SetorTrio,
	"13846": SetorTrio, "13847": SetorTrio, "13848": SetorSemi,
	"13849": SetorSemi, "13852": SetorTrio, "14701": SetorSemi,
	"14702": SetorSemi, "14703": SetorSemi, "14704": SetorSemi,
	"14705": SetorSemi, "14706": SetorSemi, "14707": SetorSemi,
	"14708": SetorSemi, "14709": SetorTrio, "14710": SetorTrio,
	"14711": SetorTrio, "14716": SetorTrio, "14717": SetorSemi,
	"14718": SetorSemi, "14721": SetorAreaExterna, "14725": SetorTrio,
	"14967": SetorSemi, "16977": SetorAreaExterna, "6858": SetorSemi,
	"5085": SetorSemi, "9348": SetorTrio, "6124": SetorAreaExterna,
}

// resolveSetor localiza o setor de um código de equipamento. Tenta a chave
// apenas com dígitos e depois o texto bruto, cobrindo códigos exportados
// como número ou como "5063 - TORRE".
func resolveSetor(cell domain.Cell) *string {
	s := cellString(cell)
	if s == nil {
		return nil
	}
	if digits := digitsOnly(*s); digits != "" {
		if setor, ok := setorMap[digits]; ok {
			return &setor
		}
	}
	if setor, ok := setorMap[strings.TrimSpace(*s)]; ok {
		return &setor
	}
	return nil
}

// matchesSetorFilter decide se uma ordem passa pelo filtro de setores.
// Filtro vazio aceita tudo; setor desconhecido nunca passa por um filtro
// restritivo.
func matchesSetorFilter(setor *string, filtro []string) bool {
	if len(filtro) == 0 {
		return true
	}
	if setor == nil {
		return false
	}
	for _, f := range filtro {
		if strings.EqualFold(strings.TrimSpace(f), *setor) {
			return true
		}
	}
	return false
}

func formatSetorFiltroLabel(filtro []string) string {
	if len(filtro) == 0 {
		return "Todos os setores"
	}
	return strings.Join(filtro, ", ")
}
