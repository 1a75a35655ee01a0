package dto

import "time"

// CreateCentralRequest body para POST /api/centrais.
type CreateCentralRequest struct {
	Nome  string `json:"nome"`
	Ativa *bool  `json:"ativa,omitempty"`
}

// UpdateCentralRequest body para PUT /api/centrais/:id (campos opcionais).
type UpdateCentralRequest struct {
	Nome  *string `json:"nome,omitempty"`
	Ativa *bool   `json:"ativa,omitempty"`
}

// CentralResponse resposta de Central.
type CentralResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Ativa     bool      `json:"ativa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CentralListResponse listado paginado de centrais.
type CentralListResponse struct {
	Items []CentralResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateAlmoxarifadoRequest body para POST /api/almoxarifados.
type CreateAlmoxarifadoRequest struct {
	CentralID string `json:"central_id"`
	Nome      string `json:"nome"`
}

// UpdateAlmoxarifadoRequest body para PUT /api/almoxarifados/:id.
type UpdateAlmoxarifadoRequest struct {
	Nome *string `json:"nome,omitempty"`
}

// AlmoxarifadoResponse resposta de Almoxarifado.
type AlmoxarifadoResponse struct {
	ID        string    `json:"id"`
	CentralID string    `json:"central_id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AlmoxarifadoListResponse listado paginado.
type AlmoxarifadoListResponse struct {
	Items []AlmoxarifadoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreateSubAlmoxarifadoRequest body para POST /api/sub_almoxarifados.
type CreateSubAlmoxarifadoRequest struct {
	AlmoxarifadoID string `json:"almoxarifado_id"`
	Nome           string `json:"nome"`
}

// UpdateSubAlmoxarifadoRequest body para PUT /api/sub_almoxarifados/:id.
type UpdateSubAlmoxarifadoRequest struct {
	Nome *string `json:"nome,omitempty"`
}

// SubAlmoxarifadoResponse resposta de SubAlmoxarifado.
type SubAlmoxarifadoResponse struct {
	ID             string    `json:"id"`
	AlmoxarifadoID string    `json:"almoxarifado_id"`
	Nome           string    `json:"nome"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SubAlmoxarifadoListResponse listado paginado.
type SubAlmoxarifadoListResponse struct {
	Items []SubAlmoxarifadoResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// CreateSetorRequest body para POST /api/setores. SubAlmoxarifadoIDs pode
// ser vazio (setor pendurado direto no almoxarifado) ou ter vários vínculos.
type CreateSetorRequest struct {
	AlmoxarifadoID     string   `json:"almoxarifado_id"`
	Nome               string   `json:"nome"`
	SubAlmoxarifadoIDs []string `json:"sub_almoxarifado_ids,omitempty"`
}

// UpdateSetorRequest body para PUT /api/setores/:id.
type UpdateSetorRequest struct {
	Nome               *string   `json:"nome,omitempty"`
	SubAlmoxarifadoIDs *[]string `json:"sub_almoxarifado_ids,omitempty"`
}

// SetorResponse resposta de Setor.
type SetorResponse struct {
	ID                 string    `json:"id"`
	AlmoxarifadoID     string    `json:"almoxarifado_id"`
	Nome               string    `json:"nome"`
	SubAlmoxarifadoIDs []string  `json:"sub_almoxarifado_ids"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SetorListResponse listado paginado.
type SetorListResponse struct {
	Items []SetorResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ArvoreNode é um nó da árvore da hierarquia. Um Setor vinculado a vários
// sub-almoxarifados aparece duplicado sob cada pai (comportamento
// preservado do produto original).
type ArvoreNode struct {
	Tipo   string       `json:"tipo"`
	ID     string       `json:"id"`
	Nome   string       `json:"nome"`
	Filhos []ArvoreNode `json:"filhos,omitempty"`
}
