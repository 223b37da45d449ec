package sheeting

import (
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/wagnerjunior3121/pc-backend/infrastructure/repository"
	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/internal/ingest"
	"github.com/wagnerjunior3121/pc-backend/internal/ws"
	"github.com/wagnerjunior3121/pc-backend/pkg/log"
	"github.com/wagnerjunior3121/pc-backend/pkg/utils"
)

var (
	ErrInvalidSheetType = errors.New("tipo de planilha desconhecido")
	ErrEmptySheet       = errors.New("planilha sem linhas de dados")
)

// Notifier avisa os clientes conectados que os dados mudaram.
type Notifier interface {
	Broadcast(event string)
}

type Service interface {
	Upload(sheetType string, filename string, file io.Reader) (*domain.UploadedSheet, error)
	ListUploads() ([]*domain.UploadedSheet, error)
}

type service struct {
	sheets   repository.UploadedSheetRepository
	notifier Notifier
}

func NewService(sheets repository.UploadedSheetRepository, notifier Notifier) Service {
	return &service{
		sheets:   sheets,
		notifier: notifier,
	}
}

// Upload lê o xlsx, grava a matriz de células e notifica o painel. O
// envio mais recente de cada tipo passa a valer para os relatórios.
func (s *service) Upload(sheetType string, filename string, file io.Reader) (*domain.UploadedSheet, error) {
	if !domain.ValidSheetType(domain.SheetType(sheetType)) {
		return nil, ErrInvalidSheetType
	}

	rows, err := ingest.ParseXLSX(file)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	publicID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	sheet := &domain.UploadedSheet{
		PublicID:   publicID,
		Type:       domain.SheetType(sheetType),
		Filename:   filename,
		Rows:       rows,
		UploadedAt: time.Now(),
	}

	sheet, err = s.sheets.Save(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "gravando planilha enviada")
	}

	log.L.WithFields(log.Fields{
		"tipo":   sheet.Type,
		"linhas": sheet.RowCount,
	}).Info("planilha recebida e armazenada")

	s.notifier.Broadcast(ws.EventSheetUpdated)

	return sheet, nil
}

func (s *service) ListUploads() ([]*domain.UploadedSheet, error) {
	return s.sheets.ListMetadata()
}
