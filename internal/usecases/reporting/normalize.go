package reporting

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces        = regexp.MustCompile(`\s+`)
	reNonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	reNonDigit      = regexp.MustCompile(`[^0-9]`)
	reNumericPrefix = regexp.MustCompile(`^\s*\d+\s*-?\s*`)
)

var diacriticsRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripDiacritics(s string) string {
	out, _, err := transform.String(diacriticsRemover, s)
	if err != nil {
		return s
	}
	return out
}

// cleanText remove caracteres invisíveis comuns em células coladas do ERP
// (NBSP, zero-width space, BOM) e colapsa espaços em branco.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = strings.ReplaceAll(s, "\u200B", "")
	s = strings.ReplaceAll(s, "\uFEFF", "")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// normalizeText é a normalização canônica usada em toda comparação de
// status e marcador: limpeza de invisíveis, remoção de acentos, caixa alta
// e colapso de espaços. Centralizar aqui evita as regex repetidas que cada
// classificador carregava.
func normalizeText(s string) string {
	return strings.ToUpper(stripDiacritics(cleanText(s)))
}

// digitsOnly descarta tudo que não for dígito; usada nas chaves numéricas
// de setor e nos códigos de plano de preditivas.
func digitsOnly(s string) string {
	return reNonDigit.ReplaceAllString(s, "")
}

// removeNumericPrefix tira o prefixo "N - " de campos de status.
func removeNumericPrefix(s string) string {
	return strings.TrimSpace(reNumericPrefix.ReplaceAllString(s, ""))
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
