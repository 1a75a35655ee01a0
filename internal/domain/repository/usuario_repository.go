package repository

import "github.com/pluckapp/almox-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
	Delete(id string) error
}
