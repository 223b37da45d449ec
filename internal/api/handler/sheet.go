package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wagnerjunior3121/pc-backend/internal/usecases/sheeting"
	"github.com/wagnerjunior3121/pc-backend/pkg/apiErrors"
)

// Limite do corpo multipart de upload de planilha.
const maxSheetUploadBytes = 32 << 20

// UploadSheet recebe um xlsx via multipart, com o campo "file" e o campo
// "type" indicando pendentes, completed ou solicitacoes.
func UploadSheet(service sheeting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxSheetUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido", nil)
			return
		}

		sheetType := r.FormValue("type")
		if sheetType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'type' é obrigatório", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		sheet, err := service.Upload(sheetType, header.Filename, file)
		if err != nil {
			handleSheetError(w, err)
			return
		}

		// As linhas não voltam na resposta do upload.
		sheet.Rows = nil

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(sheet)
	}
}

func ListSheets(service sheeting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheets, err := service.ListUploads()
		if err != nil {
			logrus.WithError(err).Error("erro ao listar planilhas enviadas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar planilhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sheets)
	}
}

func handleSheetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sheeting.ErrInvalidSheetType):
		apiErrors.WriteError(w, apiErrors.ErrSheetInvalidType, "Tipo de planilha desconhecido", nil)
	case errors.Is(err, sheeting.ErrEmptySheet):
		apiErrors.WriteError(w, apiErrors.ErrSheetUnreadable, "Planilha sem linhas de dados", nil)
	default:
		logrus.WithError(err).Error("erro ao processar upload de planilha")
		apiErrors.WriteError(w, apiErrors.ErrSheetUnreadable, "Não foi possível ler o arquivo enviado", nil)
	}
}
