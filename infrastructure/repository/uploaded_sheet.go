package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"

	"github.com/wagnerjunior3121/pc-backend/infrastructure/database/postgres"
	"github.com/wagnerjunior3121/pc-backend/internal/domain"
)

const uploadedSheetsTable = "uploaded_sheets"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type UploadedSheetRepository interface {
	Save(sheet *domain.UploadedSheet) (*domain.UploadedSheet, error)
	GetLatestByType(sheetType domain.SheetType) (*domain.UploadedSheet, error)
	ListMetadata() ([]*domain.UploadedSheet, error)
}

type uploadedSheetRepository struct {
	conn *postgres.Connection
}

func NewUploadedSheetRepository(conn *postgres.Connection) UploadedSheetRepository {
	return &uploadedSheetRepository{
		conn: conn,
	}
}

func (r *uploadedSheetRepository) Save(sheet *domain.UploadedSheet) (*domain.UploadedSheet, error) {
	rowsJSON, err := json.Marshal(sheet.Rows)
	if err != nil {
		return nil, err
	}

	queryBuilder := squirrel.
		Insert(uploadedSheetsTable).
		Columns("public_id", "type", "filename", "rows", "row_count", "uploaded_at").
		Values(sheet.PublicID, sheet.Type, sheet.Filename, rowsJSON, len(sheet.Rows), sheet.UploadedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sheetSQL, sheetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	// Insere a nova planilha e descarta as versões anteriores do mesmo tipo
	// na mesma transação. Apenas a planilha mais recente de cada tipo é
	// usada nos relatórios.
	err = r.conn.RunInTransaction(func(tx *sql.Tx) error {
		if err := tx.QueryRow(sheetSQL, sheetArgs...).Scan(&sheet.ID); err != nil {
			return err
		}

		_, err := tx.Exec(
			"DELETE FROM uploaded_sheets WHERE type = $1 AND id <> $2",
			sheet.Type, sheet.ID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	sheet.RowCount = len(sheet.Rows)

	return sheet, nil
}

func (r *uploadedSheetRepository) GetLatestByType(sheetType domain.SheetType) (*domain.UploadedSheet, error) {
	queryBuilder := squirrel.
		Select("id", "public_id", "type", "filename", "rows", "row_count", "uploaded_at").
		From(uploadedSheetsTable).
		Where(squirrel.Eq{"type": sheetType}).
		OrderBy("uploaded_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sheetSQL, sheetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var sheet domain.UploadedSheet
	var rowsJSON []byte
	err = r.conn.QueryRow(sheetSQL, sheetArgs...).Scan(
		&sheet.ID,
		&sheet.PublicID,
		&sheet.Type,
		&sheet.Filename,
		&rowsJSON,
		&sheet.RowCount,
		&sheet.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rowsJSON, &sheet.Rows); err != nil {
		return nil, err
	}

	return &sheet, nil
}

// ListMetadata devolve os envios sem as linhas, para a listagem do painel.
func (r *uploadedSheetRepository) ListMetadata() ([]*domain.UploadedSheet, error) {
	queryBuilder := squirrel.
		Select("id", "public_id", "type", "filename", "row_count", "uploaded_at").
		From(uploadedSheetsTable).
		OrderBy("uploaded_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sheetSQL, sheetArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(sheetSQL, sheetArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []*domain.UploadedSheet
	for rows.Next() {
		var sheet domain.UploadedSheet
		if err := rows.Scan(
			&sheet.ID,
			&sheet.PublicID,
			&sheet.Type,
			&sheet.Filename,
			&sheet.RowCount,
			&sheet.UploadedAt,
		); err != nil {
			return nil, err
		}
		sheets = append(sheets, &sheet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sheets, nil
}
