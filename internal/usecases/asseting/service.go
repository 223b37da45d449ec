package asseting

import (
	"github.com/pkg/errors"

	"github.com/wagnerjunior3121/pc-backend/infrastructure/repository"
	"github.com/wagnerjunior3121/pc-backend/internal/domain"
	"github.com/wagnerjunior3121/pc-backend/internal/ws"
	"github.com/wagnerjunior3121/pc-backend/pkg/utils"
)

var ErrAssetNotFound = errors.New("ativo não encontrado")

// Notifier avisa os clientes conectados que a árvore de ativos mudou.
type Notifier interface {
	Broadcast(event string)
}

type Service interface {
	CreateAsset(asset *domain.Asset) (*domain.Asset, error)
	UpdateAsset(id string, req *domain.UpdateAssetRequest) (*domain.Asset, error)
	ListAssets() ([]*domain.Asset, error)
	DeleteAsset(id string) error
}

type service struct {
	assets   repository.AssetRepository
	notifier Notifier
}

func NewService(assets repository.AssetRepository, notifier Notifier) Service {
	return &service{
		assets:   assets,
		notifier: notifier,
	}
}

func (s *service) CreateAsset(asset *domain.Asset) (*domain.Asset, error) {
	if asset.Name == "" {
		return nil, errors.New("nome do ativo é obrigatório")
	}

	if asset.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		asset.ID = id
	}

	asset, err := s.assets.CreateAsset(asset)
	if err != nil {
		return nil, errors.Wrap(err, "criando ativo")
	}

	s.notifier.Broadcast(ws.EventAssetUpdated)

	return asset, nil
}

func (s *service) UpdateAsset(id string, req *domain.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.assets.UpdateAsset(id, req)
	if err != nil {
		return nil, errors.Wrap(err, "atualizando ativo")
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}

	s.notifier.Broadcast(ws.EventAssetUpdated)

	return asset, nil
}

func (s *service) ListAssets() ([]*domain.Asset, error) {
	return s.assets.ListAssets()
}

func (s *service) DeleteAsset(id string) error {
	deleted, err := s.assets.DeleteAsset(id)
	if err != nil {
		return errors.Wrap(err, "excluindo ativo")
	}
	if !deleted {
		return ErrAssetNotFound
	}

	s.notifier.Broadcast(ws.EventAssetUpdated)

	return nil
}
