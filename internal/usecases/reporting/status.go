package reporting

import "regexp"

// Vocabulário de status do ERP. Os rótulos chegam como "1 - PENDENTE",
// "2-FINALIZADA" etc., com espaçamento e hífen inconsistentes; os padrões
// abaixo são o único ponto do código que os reconhece.
var (
	rePendente   = regexp.MustCompile(`^1\s*-?\s*PENDENTE\b`)
	reFinalizada = regexp.MustCompile(`\b2\s*-?\s*FINALIZADA\b`)
	reCancelada  = regexp.MustCompile(`\b3\s*-?\s*CANCELADA\b`)
	reReprovado  = regexp.MustCompile(`\b3\s*-?\s*REPROVADO\b`)
)

func statusPendente(s *string) bool {
	return s != nil && rePendente.MatchString(normalizeText(*s))
}

func statusFinalizada(s *string) bool {
	return s != nil && reFinalizada.MatchString(normalizeText(*s))
}

func statusCancelada(s *string) bool {
	return s != nil && reCancelada.MatchString(normalizeText(*s))
}

func statusReprovado(s *string) bool {
	return s != nil && reReprovado.MatchString(normalizeText(*s))
}
