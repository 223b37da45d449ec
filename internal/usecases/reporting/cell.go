package reporting

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

// Seriais de data do Excel contam dias a partir de 30/12/1899; a fração do
// serial é a hora do dia.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var reDayMonthYear = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)

// Formatos genéricos aceitos antes do fallback numérico.
var genericDateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func cellFloat(cell domain.Cell) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func cellString(cell domain.Cell) *string {
	if cell == nil {
		return nil
	}
	var s string
	switch v := cell.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case json.Number:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

// decodeDateSerial converte um serial de planilha em instante de
// calendário. Seriais abaixo de 1 só carregam hora do dia e não têm data
// válida.
func decodeDateSerial(serial float64) (time.Time, bool, bool) {
	days := int(math.Floor(serial))
	if days < 1 {
		return time.Time{}, false, false
	}
	secs := int(math.Round((serial - math.Floor(serial)) * 86400))
	t := excelEpoch.AddDate(0, 0, days).Add(time.Duration(secs) * time.Second)
	return t, secs > 0, true
}

// cellDate devolve a data canônica de uma célula heterogênea. Tanto a forma
// de exibição quanto a ordenável derivam deste único decodificador, para
// que nunca divirjam sobre qual data de calendário a célula representa.
func cellDate(cell domain.Cell) (time.Time, bool, bool) {
	if cell == nil {
		return time.Time{}, false, false
	}
	if f, ok := cellFloat(cell); ok {
		return decodeDateSerial(f)
	}
	s, ok := cell.(string)
	if !ok {
		return time.Time{}, false, false
	}
	return parseDateString(s)
}

func parseDateString(s string) (time.Time, bool, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false, false
	}

	if m := reDayMonthYear.FindStringSubmatch(trimmed); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 {
			var hh, mm, ss int
			if m[4] != "" {
				hh, _ = strconv.Atoi(m[4])
				mm, _ = strconv.Atoi(m[5])
			}
			if m[6] != "" {
				ss, _ = strconv.Atoi(m[6])
			}
			if hh <= 23 && mm <= 59 && ss <= 59 {
				t := time.Date(year, time.Month(month), day, hh, mm, ss, 0, time.UTC)
				return t, hh+mm+ss > 0, true
			}
		}
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, t.Hour()+t.Minute()+t.Second() > 0, true
		}
	}

	// Último recurso: descartar a pontuação e tentar como serial. O limite
	// superior é o serial de 31/12/9999; acima disso é lixo de digitação.
	cleaned := strings.TrimSpace(reNonNumeric.ReplaceAllString(trimmed, ""))
	if cleaned != "" {
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil && f <= 2958465 {
			return decodeDateSerial(f)
		}
	}

	return time.Time{}, false, false
}

func formatDateValue(cell domain.Cell, withTime bool) *string {
	if cell == nil {
		return nil
	}
	t, hasTime, ok := cellDate(cell)
	if !ok {
		// Valor indecifrável passa adiante como texto, nunca como erro.
		return cellString(cell)
	}
	s := t.Format("02/01/2006")
	if withTime && hasTime {
		s += t.Format(" 15:04:05")
	}
	return &s
}

// formatPlanDate converte células de data das planilhas de plano para
// dd/mm/yyyy, sem horário.
func formatPlanDate(cell domain.Cell) *string {
	return formatDateValue(cell, false)
}

// formatSolicitacaoDate inclui o horário quando diferente de zero.
func formatSolicitacaoDate(cell domain.Cell) *string {
	return formatDateValue(cell, true)
}

// sortableTimestamp é a forma comparável por mês/ano usada pelo comparador.
func sortableTimestamp(cell domain.Cell) *time.Time {
	t, _, ok := cellDate(cell)
	if !ok {
		return nil
	}
	return &t
}

// parseFreqNumber extrai a frequência numérica de uma célula, tolerando
// pontuação de localidade em valores textuais.
func parseFreqNumber(cell domain.Cell) (float64, bool) {
	if cell == nil {
		return 0, false
	}
	if f, ok := cellFloat(cell); ok {
		return f, true
	}
	s, ok := cell.(string)
	if !ok {
		return 0, false
	}
	cleaned := strings.TrimSpace(reNonNumeric.ReplaceAllString(s, ""))
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
