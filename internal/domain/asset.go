package domain

import "time"

// Asset é um ativo físico da árvore de equipamentos. ParentID nulo indica
// um ativo raiz.
type Asset struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ParentID          *string   `json:"parentId"`
	IsCritical        bool      `json:"isCritical"`
	IsPinned          bool      `json:"isPinned"`
	ItemERP           string    `json:"itemErp"`
	EquipmentFunction string    `json:"equipmentFunction"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateAssetRequest carrega apenas os campos enviados no PUT; ponteiros
// nulos preservam o valor atual. ParentIDSet distingue "parentId": null
// (mover para a raiz) de campo ausente.
type UpdateAssetRequest struct {
	Name              *string `json:"name"`
	ParentID          *string `json:"parentId"`
	ParentIDSet       bool    `json:"-"`
	IsCritical        *bool   `json:"isCritical"`
	IsPinned          *bool   `json:"isPinned"`
	ItemERP           *string `json:"itemErp"`
	EquipmentFunction *string `json:"equipmentFunction"`
}
