package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

func TestComputeAdherenceMesCivil(t *testing.T) {
	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	comp := &domain.ComparisonResult{Meta: 30, CompletedInMonth: 15}

	m := computeAdherence(domain.CategoryPreventivaNivel2, comp, now)
	require.NotNil(t, m)

	assert.Equal(t, 30, m.DaysInPeriod)
	assert.Equal(t, 15, m.DayIndex)
	assert.InDelta(t, 15.0, m.ExpectedToDate, 0.001)
	require.NotNil(t, m.AdherencePercent)
	assert.InDelta(t, 100.0, *m.AdherencePercent, 0.01)
}

func TestComputeAdherenceJanelaDeSolicitacoes(t *testing.T) {
	// Janela de faturamento: 16/03 a 15/04.
	now := time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC)
	comp := &domain.ComparisonResult{Meta: 31, CompletedInMonth: 13}

	m := computeAdherence(domain.CategorySolicitacoes, comp, now)
	require.NotNil(t, m)

	assert.Equal(t, 31, m.DaysInPeriod)
	assert.Equal(t, 26, m.DayIndex, "do dia 16/03 até 10/04 inclusive")
	assert.InDelta(t, 26.0, m.ExpectedToDate, 0.001)
	require.NotNil(t, m.AdherencePercent)
	assert.InDelta(t, 50.0, *m.AdherencePercent, 0.01)
}

func TestComputeAdherenceAposOFimDaJanela(t *testing.T) {
	// No dia 16 a janela 16/03 a 15/04 já fechou.
	now := time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC)
	comp := &domain.ComparisonResult{Meta: 31, CompletedInMonth: 0}

	m := computeAdherence(domain.CategorySolicitacoes, comp, now)
	require.NotNil(t, m)
	assert.Equal(t, 31, m.DaysInPeriod)
	assert.Equal(t, 31, m.DayIndex, "após o fim da janela, o período conta inteiro")
}

func TestComputeAdherenceSemMeta(t *testing.T) {
	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	comp := &domain.ComparisonResult{Meta: 0, CompletedInMonth: 3}

	m := computeAdherence(domain.CategoryLubrificacao, comp, now)
	require.NotNil(t, m)
	assert.Nil(t, m.AdherencePercent, "sem esperado não há percentual de aderência")
}

func TestComputeAdherenceComparacaoNula(t *testing.T) {
	now := time.Date(2024, 4, 15, 10, 0, 0, 0, time.UTC)
	assert.Nil(t, computeAdherence(domain.CategoryPreventivaNivel1, nil, now))
}
