package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/wagnerjunior3121/pc-backend/infrastructure/database/postgres"
	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

const assetsTable = "assets"

type AssetRepository interface {
	CreateAsset(asset *domain.Asset) (*domain.Asset, error)
	UpdateAsset(id string, req *domain.UpdateAssetRequest) (*domain.Asset, error)
	ListAssets() ([]*domain.Asset, error)
	DeleteAsset(id string) (bool, error)
}

type assetRepository struct {
	conn *postgres.Connection
}

func NewAssetRepository(conn *postgres.Connection) AssetRepository {
	return &assetRepository{
		conn: conn,
	}
}

const assetColumns = "id, name, parent_id, is_critical, is_pinned, item_erp, equipment_function, created_at, updated_at"

func scanAsset(row *sql.Row) (*domain.Asset, error) {
	var asset domain.Asset
	err := row.Scan(
		&asset.ID,
		&asset.Name,
		&asset.ParentID,
		&asset.IsCritical,
		&asset.IsPinned,
		&asset.ItemERP,
		&asset.EquipmentFunction,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) CreateAsset(asset *domain.Asset) (*domain.Asset, error) {
	queryBuilder := squirrel.
		Insert(assetsTable).
		Columns("id", "name", "parent_id", "is_critical", "is_pinned", "item_erp", "equipment_function").
		Values(asset.ID, asset.Name, asset.ParentID, asset.IsCritical, asset.IsPinned, asset.ItemERP, asset.EquipmentFunction).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(assetSQL, assetArgs...).Scan(&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateAsset altera apenas os campos presentes na requisição e devolve o
// ativo atualizado, ou nil quando o id não existe.
func (r *assetRepository) UpdateAsset(id string, req *domain.UpdateAssetRequest) (*domain.Asset, error) {
	queryBuilder := squirrel.
		Update(assetsTable).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if req.Name != nil {
		queryBuilder = queryBuilder.Set("name", *req.Name)
	}

	// parentId aceita nulo explícito para mover o ativo para a raiz.
	if req.ParentIDSet {
		queryBuilder = queryBuilder.Set("parent_id", req.ParentID)
	}

	if req.IsCritical != nil {
		queryBuilder = queryBuilder.Set("is_critical", *req.IsCritical)
	}

	if req.IsPinned != nil {
		queryBuilder = queryBuilder.Set("is_pinned", *req.IsPinned)
	}

	if req.ItemERP != nil {
		queryBuilder = queryBuilder.Set("item_erp", *req.ItemERP)
	}

	if req.EquipmentFunction != nil {
		queryBuilder = queryBuilder.Set("equipment_function", *req.EquipmentFunction)
	}

	queryBuilder = queryBuilder.
		Suffix("RETURNING " + assetColumns).
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanAsset(r.conn.QueryRow(assetSQL, assetArgs...))
}

func (r *assetRepository) ListAssets() ([]*domain.Asset, error) {
	queryBuilder := squirrel.
		Select(assetColumns).
		From(assetsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(assetSQL, assetArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		var asset domain.Asset
		if err := rows.Scan(
			&asset.ID,
			&asset.Name,
			&asset.ParentID,
			&asset.IsCritical,
			&asset.IsPinned,
			&asset.ItemERP,
			&asset.EquipmentFunction,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, &asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *assetRepository) DeleteAsset(id string) (bool, error) {
	queryBuilder := squirrel.
		Delete(assetsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	assetSQL, assetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(assetSQL, assetArgs...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
