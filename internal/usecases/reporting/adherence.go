package reporting

import (
	"time"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/pkg/utils"
)

// computeAdherence projeta quanto da meta já deveria ter sido cumprido na
// data de hoje. Solicitações seguem a janela de faturamento do dia 16 do
// mês anterior ao dia 15 do corrente; as demais categorias seguem o mês
// civil.
func computeAdherence(
	cat domain.Category,
	comp *domain.ComparisonResult,
	now time.Time,
) *domain.AdherenceMetrics {
	if comp == nil {
		return nil
	}

	meta := float64(comp.Meta)
	actual := comp.CompletedInMonth

	if cat == domain.CategorySolicitacoes {
		periodStart := time.Date(now.Year(), now.Month()-1, 16, 0, 0, 0, 0, now.Location())
		periodEnd := time.Date(now.Year(), now.Month(), 15, 23, 59, 59,
			int(999*time.Millisecond), now.Location())

		totalDays := int(periodEnd.Sub(periodStart).Hours()/24) + 1
		if totalDays < 1 {
			totalDays = 1
		}

		daysElapsed := 0
		if !now.Before(periodStart) {
			if now.After(periodEnd) {
				daysElapsed = totalDays
			} else {
				daysElapsed = int(now.Sub(periodStart).Hours()/24) + 1
			}
		}

		expected := meta / float64(totalDays) * float64(daysElapsed)
		var adherence *float64
		if expected > 0 {
			a := utils.RoundWithTwoDecimalPlace(float64(actual) / expected * 100)
			adherence = &a
		}
		return &domain.AdherenceMetrics{
			DaysInPeriod:     totalDays,
			DayIndex:         daysElapsed,
			ExpectedToDate:   expected,
			ActualCompleted:  actual,
			AdherencePercent: adherence,
		}
	}

	days := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	today := now.Day()
	expected := meta / float64(days) * float64(today)
	var adherence *float64
	if expected > 0 {
		a := utils.RoundWithTwoDecimalPlace(float64(actual) / expected * 100)
		adherence = &a
	}
	return &domain.AdherenceMetrics{
		DaysInPeriod:     days,
		DayIndex:         today,
		ExpectedToDate:   expected,
		ActualCompleted:  actual,
		AdherencePercent: adherence,
	}
}
