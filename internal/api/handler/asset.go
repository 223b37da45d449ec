package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/asseting"
	"github.com/wagnerjunior3121/pc-backend/pkg/apiErrors"
)

type createAssetRequest struct {
	Name              string  `json:"name"`
	ParentID          *string `json:"parentId"`
	IsCritical        bool    `json:"isCritical"`
	IsPinned          bool    `json:"isPinned"`
	ItemERP           string  `json:"itemErp"`
	EquipmentFunction string  `json:"equipmentFunction"`
}

func ListAssets(service asseting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets, err := service.ListAssets()
		if err != nil {
			logrus.WithError(err).Error("erro ao listar ativos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ativos", nil)
			return
		}

		if assets == nil {
			assets = []*domain.Asset{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(assets)
	}
}

func CreateAsset(service asseting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAssetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'name' é obrigatório", nil)
			return
		}

		asset, err := service.CreateAsset(&domain.Asset{
			Name:              req.Name,
			ParentID:          req.ParentID,
			IsCritical:        req.IsCritical,
			IsPinned:          req.IsPinned,
			ItemERP:           req.ItemERP,
			EquipmentFunction: req.EquipmentFunction,
		})
		if err != nil {
			logrus.WithError(err).Error("erro ao criar ativo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar ativo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(asset)
	}
}

// UpdateAsset aceita atualização parcial; "parentId": null move o ativo
// para a raiz da árvore.
func UpdateAsset(service asseting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do ativo não informado", nil)
			return
		}

		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		var req domain.UpdateAssetRequest
		for key, value := range raw {
			var err error
			switch key {
			case "name":
				err = json.Unmarshal(value, &req.Name)
			case "parentId":
				req.ParentIDSet = true
				err = json.Unmarshal(value, &req.ParentID)
			case "isCritical":
				err = json.Unmarshal(value, &req.IsCritical)
			case "isPinned":
				err = json.Unmarshal(value, &req.IsPinned)
			case "itemErp":
				err = json.Unmarshal(value, &req.ItemERP)
			case "equipmentFunction":
				err = json.Unmarshal(value, &req.EquipmentFunction)
			}
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor inválido para o campo "+key, nil)
				return
			}
		}

		asset, err := service.UpdateAsset(id, &req)
		if err != nil {
			if errors.Is(err, asseting.ErrAssetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ativo não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("erro ao atualizar ativo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar ativo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(asset)
	}
}

func DeleteAsset(service asseting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do ativo não informado", nil)
			return
		}

		if err := service.DeleteAsset(id); err != nil {
			if errors.Is(err, asseting.ErrAssetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ativo não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("erro ao excluir ativo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir ativo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Ativo excluído com sucesso",
		})
	}
}
