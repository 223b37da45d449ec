package asseting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestCreateAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssetRepository(ctrl)
	notifier := &fakeNotifier{}
	service := NewService(mockRepo, notifier)

	t.Run("Gera ID quando cliente não envia", func(t *testing.T) {
		mockRepo.EXPECT().CreateAsset(gomock.Any()).DoAndReturn(func(a *domain.Asset) (*domain.Asset, error) {
			assert.NotEmpty(t, a.ID)
			return a, nil
		})

		asset, err := service.CreateAsset(&domain.Asset{Name: "Torre de Resfriamento"})
		require.NoError(t, err)
		assert.NotEmpty(t, asset.ID)
		assert.Equal(t, []string{ws.EventAssetUpdated}, notifier.events)
	})

	t.Run("Nome é obrigatório", func(t *testing.T) {
		_, err := service.CreateAsset(&domain.Asset{})
		assert.Error(t, err)
	})
}

func TestUpdateAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssetRepository(ctrl)
	notifier := &fakeNotifier{}
	service := NewService(mockRepo, notifier)

	t.Run("Ativo inexistente", func(t *testing.T) {
		mockRepo.EXPECT().UpdateAsset("nao-existe", gomock.Any()).Return(nil, nil)

		_, err := service.UpdateAsset("nao-existe", &domain.UpdateAssetRequest{})
		assert.ErrorIs(t, err, ErrAssetNotFound)
		assert.Empty(t, notifier.events, "atualização fracassada não notifica")
	})

	t.Run("Atualização notifica os clientes", func(t *testing.T) {
		name := "Novo Nome"
		mockRepo.EXPECT().UpdateAsset("abc123", gomock.Any()).Return(&domain.Asset{ID: "abc123", Name: name}, nil)

		asset, err := service.UpdateAsset("abc123", &domain.UpdateAssetRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, asset.Name)
		assert.Equal(t, []string{ws.EventAssetUpdated}, notifier.events)
	})
}

func TestDeleteAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssetRepository(ctrl)
	notifier := &fakeNotifier{}
	service := NewService(mockRepo, notifier)

	t.Run("Exclusão de ativo existente", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAsset("abc123").Return(true, nil)

		require.NoError(t, service.DeleteAsset("abc123"))
		assert.Equal(t, []string{ws.EventAssetUpdated}, notifier.events)
	})

	t.Run("Exclusão de ativo inexistente", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAsset("nao-existe").Return(false, nil)

		err := service.DeleteAsset("nao-existe")
		assert.ErrorIs(t, err, ErrAssetNotFound)
	})
}
