package repository

import "github.com/pluckapp/almox-api/internal/domain/entity"

// CentralRepository define o porto de persistência para Central (DIP).
type CentralRepository interface {
	Create(central *entity.Central) error
	GetByID(id string) (*entity.Central, error)
	Update(central *entity.Central) error
	List(limit, offset int) ([]*entity.Central, error)
	Delete(id string) error
}

// AlmoxarifadoRepository define o porto de persistência para Almoxarifado.
type AlmoxarifadoRepository interface {
	Create(a *entity.Almoxarifado) error
	GetByID(id string) (*entity.Almoxarifado, error)
	Update(a *entity.Almoxarifado) error
	List(limit, offset int) ([]*entity.Almoxarifado, error)
	ListByCentral(centralID string) ([]*entity.Almoxarifado, error)
	Delete(id string) error
}

// SubAlmoxarifadoRepository define o porto de persistência para SubAlmoxarifado.
type SubAlmoxarifadoRepository interface {
	Create(s *entity.SubAlmoxarifado) error
	GetByID(id string) (*entity.SubAlmoxarifado, error)
	Update(s *entity.SubAlmoxarifado) error
	List(limit, offset int) ([]*entity.SubAlmoxarifado, error)
	ListByAlmoxarifado(almoxarifadoID string) ([]*entity.SubAlmoxarifado, error)
	Delete(id string) error
}

// SetorRepository define o porto de persistência para Setor, incluindo os
// vínculos multi-pai com sub-almoxarifados.
type SetorRepository interface {
	Create(s *entity.Setor) error
	GetByID(id string) (*entity.Setor, error)
	Update(s *entity.Setor) error
	List(limit, offset int) ([]*entity.Setor, error)
	Delete(id string) error
}

// LocalRepository resolve um nó genérico (tipo + id) da hierarquia.
// Usado para validar origens e destinos de movimentações.
type LocalRepository interface {
	Get(tipo, id string) (*entity.Local, error)
}
