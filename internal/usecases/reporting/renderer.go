package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

type sectionView struct {
	Label          string
	Pendentes      int
	Realizadas     int
	Meta           int
	PercentualMes  string
	Aderencia      string
	EsperadoAteHoje string
	IsSolicitacoes bool

	OrdensIndicador  string
	PendentesGerarOS string
	Reprovadas       string
}

type reportData struct {
	MesStr         string
	SetorStr       string
	DataStr        string
	GuiasIncluidas string
	Sections       []sectionView
}

const consolidatedTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
  <head>
    <meta charset="utf-8" />
    <title>Relatório de Indicadores - Processa Plano</title>
    <style>
      body { font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; margin: 24px; color: #111827; }
      h1 { font-size: 22px; margin-bottom: 4px; }
      h2 { font-size: 16px; margin-top: 20px; margin-bottom: 8px; }
      h3 { font-size: 14px; margin-top: 14px; margin-bottom: 6px; }
      p { margin: 2px 0; font-size: 12px; }
      .meta { font-size: 12px; color: #4b5563; margin-bottom: 16px; }
      .kpi-grid { display: grid; grid-template-columns: repeat(4, minmax(0, 1fr)); gap: 8px; margin-top: 8px; }
      .kpi-card { border-radius: 8px; padding: 8px 10px; border: 1px solid #e5e7eb; }
      .kpi-title { font-size: 11px; text-transform: uppercase; letter-spacing: .04em; color: #6b7280; margin-bottom: 4px; }
      .kpi-value { font-size: 16px; font-weight: 600; }
      .kpi-sub { font-size: 11px; color: #6b7280; margin-top: 2px; }
      table { border-collapse: collapse; width: 100%; margin-top: 8px; font-size: 11px; }
      th, td { border: 1px solid #d1d5db; padding: 4px 6px; text-align: left; }
      th { background: #f3f4f6; font-weight: 600; }
      ul { margin: 4px 0 0 18px; padding: 0; font-size: 11px; }
      li { margin: 2px 0; }
      @media print {
        body { margin: 10mm; }
        .no-print { display: none; }
      }
    </style>
  </head>
  <body>
    <h1>Relatório de Indicadores - Processa Plano (Consolidado)</h1>
    <div class="meta">
      <p><strong>Mês de referência:</strong> {{.MesStr}}</p>
      <p><strong>Setor:</strong> {{.SetorStr}}</p>
      <p><strong>Gerado em:</strong> {{.DataStr}}</p>
      <p><strong>Guias incluídas:</strong> {{.GuiasIncluidas}}</p>
    </div>
    {{range .Sections}}
    <h2>{{.Label}}</h2>
    <div class="kpi-grid">
      <div class="kpi-card">
        <div class="kpi-title">Pendentes</div>
        <div class="kpi-value">{{.Pendentes}}</div>
      </div>
      <div class="kpi-card">
        <div class="kpi-title">Realizadas no mês</div>
        <div class="kpi-value">{{.Realizadas}}</div>
      </div>
      <div class="kpi-card">
        <div class="kpi-title">Meta</div>
        <div class="kpi-value">{{.Meta}}</div>
        <div class="kpi-sub">{{if .PercentualMes}}{{.PercentualMes}}% do mês{{end}}</div>
      </div>
      <div class="kpi-card">
        <div class="kpi-title">Aderência ao plano</div>
        <div class="kpi-value">{{if .Aderencia}}{{.Aderencia}}%{{else}}--{{end}}</div>
        <div class="kpi-sub">{{if .EsperadoAteHoje}}Esperado até hoje: {{.EsperadoAteHoje}}{{end}}</div>
      </div>
    </div>
    {{end}}
    {{range .Sections}}{{if .IsSolicitacoes}}
    <h3>Indicadores específicos de Solicitações</h3>
    <table>
      <thead>
        <tr>
          <th>Ordens para indicador</th>
          <th>Pendentes para gerar O.S</th>
          <th>Solicitações reprovadas</th>
        </tr>
      </thead>
      <tbody>
        <tr>
          <td>{{.OrdensIndicador}}</td>
          <td>{{.PendentesGerarOS}}</td>
          <td>{{.Reprovadas}}</td>
        </tr>
      </tbody>
    </table>
    {{end}}{{end}}

    <h2>Notas para análise</h2>
    <ul>
      <li>Use este relatório como base para apresentações e reuniões de acompanhamento.</li>
      <li>Os números refletem a combinação entre pendentes e ordens concluídas de acordo com o filtro de mês e setor.</li>
      <li>Para detalhes linha a linha, utilize a própria tela do Processa Plano ou exporte via copiar/colar para o Excel.</li>
    </ul>

    <p class="no-print" style="margin-top:16px; font-size:11px; color:#6b7280;">Dica: utilize a opção "Imprimir" do navegador e selecione "Salvar como PDF" para gerar o arquivo.</p>
  </body>
</html>`

var consolidatedTmpl = template.Must(template.New("consolidated").Parse(consolidatedTemplate))

func formatMonthLabel(selectedMonth string) string {
	if reSelectedMonth.MatchString(selectedMonth) {
		return selectedMonth[5:] + "/" + selectedMonth[:4]
	}
	return "Todos os meses"
}

func buildSectionView(sec domain.ReportSection) sectionView {
	comp := sec.Comparison
	view := sectionView{
		Label:      sec.Label,
		Pendentes:  comp.TotalPendentes,
		Realizadas: comp.CompletedInMonth,
		Meta:       comp.Meta,
	}
	if comp.PercentCompleted != nil {
		view.PercentualMes = fmt.Sprintf("%.1f", *comp.PercentCompleted)
	}
	if sec.Adherence != nil {
		view.EsperadoAteHoje = fmt.Sprintf("%d", int(math.Round(sec.Adherence.ExpectedToDate)))
		if sec.Adherence.AdherencePercent != nil {
			view.Aderencia = fmt.Sprintf("%.1f", *sec.Adherence.AdherencePercent)
		}
	}
	if sec.Category == domain.CategorySolicitacoes {
		view.IsSolicitacoes = true
		view.OrdensIndicador = fmt.Sprintf("%d", comp.Meta-comp.CompletedInMonth)
		view.PendentesGerarOS = fmt.Sprintf("%d", comp.OrdensPendentesParaGerarOS)
		view.Reprovadas = fmt.Sprintf("%d", comp.SolicitacoesReprovadas)
	}
	return view
}

// renderConsolidatedHTML monta o HTML final do relatório consolidado.
func renderConsolidatedHTML(
	sections []domain.ReportSection,
	selectedMonth string,
	setorFiltro []string,
	now time.Time,
) (string, error) {
	labels := make([]string, 0, len(sections))
	views := make([]sectionView, 0, len(sections))
	for _, sec := range sections {
		labels = append(labels, sec.Label)
		views = append(views, buildSectionView(sec))
	}

	data := reportData{
		MesStr:         formatMonthLabel(selectedMonth),
		SetorStr:       formatSetorFiltroLabel(setorFiltro),
		DataStr:        now.Format("02/01/2006 15:04:05"),
		GuiasIncluidas: strings.Join(labels, ", "),
		Sections:       views,
	}

	var buf bytes.Buffer
	if err := consolidatedTmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "falha ao executar template do relatório")
	}
	return buf.String(), nil
}
