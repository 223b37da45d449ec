package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/internal/usecases/asseting"
)

type fakeAssetService struct {
	asseting.Service

	updatedID  string
	updatedReq *domain.UpdateAssetRequest
	updateErr  error
}

func (f *fakeAssetService) UpdateAsset(id string, req *domain.UpdateAssetRequest) (*domain.Asset, error) {
	f.updatedID = id
	f.updatedReq = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &domain.Asset{ID: id}, nil
}

func putAssetRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/v1/assets/"+id, strings.NewReader(body))
	params := httprouter.Params{{Key: "id", Value: id}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestUpdateAssetHandler(t *testing.T) {
	t.Run("parentId null move o ativo para a raiz", func(t *testing.T) {
		service := &fakeAssetService{}
		rec := httptest.NewRecorder()

		UpdateAsset(service)(rec, putAssetRequest("abc123", `{"name":"Torre","parentId":null}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abc123", service.updatedID)
		require.NotNil(t, service.updatedReq)
		assert.True(t, service.updatedReq.ParentIDSet)
		assert.Nil(t, service.updatedReq.ParentID)
		require.NotNil(t, service.updatedReq.Name)
		assert.Equal(t, "Torre", *service.updatedReq.Name)
	})

	t.Run("parentId ausente preserva o pai atual", func(t *testing.T) {
		service := &fakeAssetService{}
		rec := httptest.NewRecorder()

		UpdateAsset(service)(rec, putAssetRequest("abc123", `{"name":"Torre"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, service.updatedReq)
		assert.False(t, service.updatedReq.ParentIDSet)
	})

	t.Run("parentId preenchido reaponta o ativo", func(t *testing.T) {
		service := &fakeAssetService{}
		rec := httptest.NewRecorder()

		UpdateAsset(service)(rec, putAssetRequest("abc123", `{"parentId":"raiz-01"}`))

		require.NotNil(t, service.updatedReq)
		assert.True(t, service.updatedReq.ParentIDSet)
		require.NotNil(t, service.updatedReq.ParentID)
		assert.Equal(t, "raiz-01", *service.updatedReq.ParentID)
	})

	t.Run("Ativo inexistente devolve 404", func(t *testing.T) {
		service := &fakeAssetService{updateErr: asseting.ErrAssetNotFound}
		rec := httptest.NewRecorder()

		UpdateAsset(service)(rec, putAssetRequest("nao-existe", `{"name":"X"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Valor de campo inválido devolve 400", func(t *testing.T) {
		service := &fakeAssetService{}
		rec := httptest.NewRecorder()

		UpdateAsset(service)(rec, putAssetRequest("abc123", `{"isCritical":"sim"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
