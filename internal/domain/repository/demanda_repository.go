package repository

import (
	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/domain/entity"
)

// DemandaFilter filtros do listado de demandas.
type DemandaFilter struct {
	SetorID string
	Status  string
	Limit   int
	Offset  int
}

// DemandaRepository define o porto de persistência para Demanda e seus
// atendimentos. GetByID carrega os itens; ListAtendimentos carrega o
// histórico com os itens entregues.
type DemandaRepository interface {
	Create(d *entity.Demanda) error
	GetByID(id string) (*entity.Demanda, error)
	// GetByIDForUpdate bloqueia a linha da demanda (SELECT FOR UPDATE).
	// Serializa atendimentos concorrentes da mesma demanda.
	GetByIDForUpdate(id string) (*entity.Demanda, error)
	List(f DemandaFilter) ([]*entity.Demanda, error)
	UpdateStatus(id, status string) error
	UpdateItemAtendido(itemID string, atendido decimal.Decimal) error
	CreateAtendimento(a *entity.Atendimento) error
	ListAtendimentos(demandaID string) ([]*entity.Atendimento, error)
}
