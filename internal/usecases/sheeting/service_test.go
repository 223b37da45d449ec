package sheeting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/wagnerjunior3121/pc-backend/infrastructure/repository/mocks"
	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/internal/ws"
)

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Broadcast(event string) {
	f.events = append(f.events, event)
}

func xlsxBuffer(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUploadedSheetRepository(ctrl)
	notifier := &fakeNotifier{}
	service := NewService(mockRepo, notifier)

	buf := xlsxBuffer(t, [][]interface{}{
		{"Equipamento", "Frequência"},
		{"5063", 31},
	})

	mockRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(sheet *domain.UploadedSheet) (*domain.UploadedSheet, error) {
		assert.Equal(t, domain.SheetPendentes, sheet.Type)
		assert.Equal(t, "pendentes.xlsx", sheet.Filename)
		assert.NotEmpty(t, sheet.PublicID)
		assert.Len(t, sheet.Rows, 2)
		sheet.ID = 1
		sheet.RowCount = len(sheet.Rows)
		return sheet, nil
	})

	sheet, err := service.Upload("pendentes", "pendentes.xlsx", buf)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sheet.ID)
	assert.Equal(t, []string{ws.EventSheetUpdated}, notifier.events)
}

func TestUploadTipoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUploadedSheetRepository(ctrl), &fakeNotifier{})

	_, err := service.Upload("faturamento", "qualquer.xlsx", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrInvalidSheetType)
}

func TestUploadPlanilhaSemDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := &fakeNotifier{}
	service := NewService(mocks.NewMockUploadedSheetRepository(ctrl), notifier)

	buf := xlsxBuffer(t, [][]interface{}{
		{"Equipamento", "Frequência"},
	})

	_, err := service.Upload("pendentes", "vazia.xlsx", buf)
	assert.ErrorIs(t, err, ErrEmptySheet)
	assert.Empty(t, notifier.events, "upload rejeitado não notifica clientes")
}

func TestUploadArquivoCorrompido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUploadedSheetRepository(ctrl), &fakeNotifier{})

	_, err := service.Upload("pendentes", "ruim.xlsx", bytes.NewReader([]byte("nada de xlsx")))
	assert.Error(t, err)
}
