package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportOptionsFromRequest(t *testing.T) {
	t.Run("Mês e setores vêm da query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/reports/consolidated?month=2024-04&setor=TRIO&setor=SEMI,AREA%20EXTERNA", nil)
		opts := reportOptionsFromRequest(r)

		assert.Equal(t, "2024-04", opts.SelectedMonth)
		assert.Equal(t, []string{"TRIO", "SEMI", "AREA EXTERNA"}, opts.SetorFiltro)
	})

	t.Run("Sem mês na query assume o mês corrente", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/reports/consolidated", nil)
		opts := reportOptionsFromRequest(r)

		assert.Equal(t, time.Now().Format("2006-01"), opts.SelectedMonth)
		assert.Empty(t, opts.SetorFiltro)
	})
}
