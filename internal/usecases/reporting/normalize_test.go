package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Espaço duro vira espaço comum", input: "1 - PENDENTE", want: "1 - PENDENTE"},
		{name: "Zero-width space é descartado", input: "PREVEN​TIVA", want: "PREVENTIVA"},
		{name: "BOM colado do ERP é descartado", input: "\ufeff1 - PENDENTE", want: "1 - PENDENTE"},
		{name: "Espaços repetidos colapsam", input: "  TROCA   DE  FILTRO ", want: "TROCA DE FILTRO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.input))
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "1 - PENDENTE", normalizeText("\ufeff1 - pendênte"))
	assert.Equal(t, "LUBRIFICACAO", normalizeText("Lubrificação​"))
}
