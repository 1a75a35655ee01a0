package entity

import "time"

// Tipos de local na hierarquia Central → Almoxarifado → Sub-Almoxarifado → Setor.
const (
	LocalTipoCentral         = "central"
	LocalTipoAlmoxarifado    = "almoxarifado"
	LocalTipoSubAlmoxarifado = "sub_almoxarifado"
	LocalTipoSetor           = "setor"
)

// Central é a unidade organizacional raiz, dona dos almoxarifados.
type Central struct {
	ID        string
	Nome      string
	Ativa     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Almoxarifado é um armazém pertencente a uma Central.
type Almoxarifado struct {
	ID        string
	CentralID string
	Nome      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubAlmoxarifado é um sub-armazém pertencente a um Almoxarifado.
type SubAlmoxarifado struct {
	ID             string
	AlmoxarifadoID string
	Nome           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Setor é a folha da hierarquia: o departamento consumidor que origina
// demandas e consumo. Pertence a um Almoxarifado e pode estar vinculado a
// zero ou vários Sub-Almoxarifados (multi-pai).
type Setor struct {
	ID                 string
	AlmoxarifadoID     string
	Nome               string
	SubAlmoxarifadoIDs []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Local identifica genericamente um nó da hierarquia (tipo + id).
// Usado na validação de origens e destinos de movimentações.
type Local struct {
	Tipo string
	ID   string
	Nome string
}

// ValidLocalTipo informa se o tipo de local é um dos quatro níveis conhecidos.
func ValidLocalTipo(tipo string) bool {
	switch tipo {
	case LocalTipoCentral, LocalTipoAlmoxarifado, LocalTipoSubAlmoxarifado, LocalTipoSetor:
		return true
	}
	return false
}
