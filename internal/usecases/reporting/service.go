package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/wagnerjunior3121/pc-backend/infrastructure/repository"
	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/pkg/log"
)

var (
	// ErrNoData indica que não há planilha de pendentes carregada ou que
	// nenhuma seção produziu resultado para o filtro pedido.
	ErrNoData = errors.New("sem dados para gerar o relatório")
	// ErrBuildFailed indica falha na montagem dos indicadores.
	ErrBuildFailed = errors.New("falha ao montar o relatório consolidado")
	// ErrRenderFailed indica falha na conversão do HTML para PDF.
	ErrRenderFailed = errors.New("falha ao renderizar o PDF do relatório")
)

// PDFRenderer converte o HTML do relatório em um documento PDF.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ReportOptions são os filtros aceitos pelo relatório consolidado.
type ReportOptions struct {
	SelectedMonth string
	SetorFiltro   []string
}

type Service interface {
	BuildConsolidatedHTML(ctx context.Context, opts ReportOptions) (string, error)
	BuildConsolidatedPDF(ctx context.Context, opts ReportOptions) ([]byte, error)
}

type service struct {
	sheets repository.UploadedSheetRepository
	pdf    PDFRenderer
	now    func() time.Time
}

func NewService(sheets repository.UploadedSheetRepository, pdf PDFRenderer) Service {
	return &service{
		sheets: sheets,
		pdf:    pdf,
		now:    time.Now,
	}
}

// Ordem fixa das seções do relatório. Higienização é classificada para o
// casamento de realizadas mas não ganha seção própria.
var reportCategories = []domain.Category{
	domain.CategoryPreventivaNivel1,
	domain.CategoryPreventivaNivel2,
	domain.CategoryLubrificacao,
	domain.CategoryPreditivas,
	domain.CategorySolicitacoes,
}

func dataRows(sheet *domain.UploadedSheet) (header domain.RawRow, rows []domain.RawRow) {
	if sheet == nil || len(sheet.Rows) == 0 {
		return nil, nil
	}
	return sheet.Rows[0], sheet.Rows[1:]
}

func (s *service) BuildConsolidatedHTML(ctx context.Context, opts ReportOptions) (string, error) {
	logger := log.ForContext(ctx)

	pendentes, err := s.sheets.GetLatestByType(domain.SheetPendentes)
	if err != nil {
		return "", errors.Wrap(err, "consultando planilha de pendentes")
	}
	if pendentes == nil || len(pendentes.Rows) == 0 {
		return "", ErrNoData
	}

	completed, err := s.sheets.GetLatestByType(domain.SheetCompleted)
	if err != nil {
		return "", errors.Wrap(err, "consultando planilha de realizadas")
	}
	solicitacoes, err := s.sheets.GetLatestByType(domain.SheetSolicitacoes)
	if err != nil {
		return "", errors.Wrap(err, "consultando planilha de solicitações")
	}

	pendHeader, pendRows := dataRows(pendentes)
	planLayout, err := resolvePlanLayout(pendHeader)
	if err != nil {
		logger.WithError(err).Error("cabeçalho da planilha de pendentes fora do esperado")
		return "", errors.Wrap(ErrBuildFailed, err.Error())
	}

	now := s.now()

	// Todas as realizadas entram num único conjunto; o comparador de cada
	// categoria refiltra por marcador e frequência.
	var completedAll []*domain.WorkOrder
	if compHeader, compRows := dataRows(completed); len(compRows) > 0 {
		compLayout, layoutErr := resolvePlanLayout(compHeader)
		if layoutErr != nil {
			logger.WithError(layoutErr).Error("cabeçalho da planilha de realizadas fora do esperado")
			return "", errors.Wrap(ErrBuildFailed, layoutErr.Error())
		}
		for _, cat := range []domain.Category{
			domain.CategoryPreventivaNivel1,
			domain.CategoryPreventivaNivel2,
			domain.CategoryPreditivas,
			domain.CategoryLubrificacao,
			domain.CategoryHigienizacao,
		} {
			completedAll = append(completedAll,
				classifyPlan(compRows, compLayout, planRules[cat], nil, opts.SelectedMonth, now)...)
		}
		if solLayout, solErr := resolveSolicitacaoLayout(compHeader); solErr == nil {
			completedAll = append(completedAll,
				classifySolicitacoes(compRows, solLayout, nil)...)
		}
	}

	sections := make([]domain.ReportSection, 0, len(reportCategories))
	for _, cat := range reportCategories {
		orders, catErr := s.ordersForCategory(
			ctx, cat, planLayout, pendHeader, pendRows, solicitacoes, opts, now, logger)
		if catErr != nil {
			return "", catErr
		}
		if len(orders) == 0 {
			continue
		}

		comp := compare(cat, orders, completedAll, opts.SelectedMonth, opts.SetorFiltro)
		if comp == nil {
			continue
		}

		sections = append(sections, domain.ReportSection{
			Category:   cat,
			Label:      cat.Label(),
			Comparison: comp,
			Adherence:  computeAdherence(cat, comp, now),
		})
	}

	if len(sections) == 0 {
		return "", ErrNoData
	}

	html, err := renderConsolidatedHTML(sections, opts.SelectedMonth, opts.SetorFiltro, now)
	if err != nil {
		return "", errors.Wrap(ErrBuildFailed, err.Error())
	}

	logger.WithFields(log.Fields{
		"secoes": len(sections),
		"mes":    opts.SelectedMonth,
	}).Info("relatório consolidado gerado")

	return html, nil
}

// ordersForCategory resolve a fonte de dados de cada seção. Solicitações
// preferem a planilha própria e caem para a de pendentes quando ausente.
func (s *service) ordersForCategory(
	_ context.Context,
	cat domain.Category,
	pendLayout *planLayout,
	pendHeader domain.RawRow,
	pendRows []domain.RawRow,
	solicitacoes *domain.UploadedSheet,
	opts ReportOptions,
	now time.Time,
	logger log.Logger,
) ([]*domain.WorkOrder, error) {
	if cat == domain.CategorySolicitacoes {
		header, rows := dataRows(solicitacoes)
		if len(rows) == 0 {
			header, rows = pendHeader, pendRows
		}
		if len(rows) == 0 {
			return nil, nil
		}
		layout, err := resolveSolicitacaoLayout(header)
		if err != nil {
			logger.WithError(err).Warn("planilha de solicitações com layout inesperado, seção ignorada")
			return nil, nil
		}
		return classifySolicitacoes(rows, layout, opts.SetorFiltro), nil
	}

	rule := planRules[cat]
	if cat == domain.CategoryPreditivas {
		rule.preditivaCodes = nil
	}
	return classifyPlan(pendRows, pendLayout, rule, opts.SetorFiltro, opts.SelectedMonth, now), nil
}

func (s *service) BuildConsolidatedPDF(ctx context.Context, opts ReportOptions) ([]byte, error) {
	html, err := s.BuildConsolidatedHTML(ctx, opts)
	if err != nil {
		return nil, err
	}
	pdf, err := s.pdf.RenderPDF(ctx, html)
	if err != nil {
		return nil, errors.Wrap(ErrRenderFailed, err.Error())
	}
	return pdf, nil
}
