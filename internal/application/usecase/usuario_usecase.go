package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// UsuarioUseCase gestão de usuários. Senhas são armazenadas com bcrypt.
type UsuarioUseCase struct {
	repo      repository.UsuarioRepository
	setorRepo repository.SetorRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, setorRepo repository.SetorRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, setorRepo: setorRepo}
}

func validPerfil(p string) bool {
	switch p {
	case entity.PerfilAdminGeral, entity.PerfilGestorAlmoxarifado, entity.PerfilOperadorSetor:
		return true
	}
	return false
}

// Create cria um usuário. Email deve ser único; operadores de setor exigem
// setor existente.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Senha == "" || in.Nome == "" || !validPerfil(in.Perfil) {
		return nil, domain.ErrInvalidInput
	}
	if existente, err := uc.repo.GetByEmail(email); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if in.Perfil == entity.PerfilOperadorSetor {
		if in.SetorID == "" {
			return nil, domain.ErrInvalidInput
		}
		setor, err := uc.setorRepo.GetByID(in.SetorID)
		if err != nil {
			return nil, err
		}
		if setor == nil {
			return nil, domain.ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Email:     email,
		Nome:      in.Nome,
		SenhaHash: string(hash),
		Perfil:    in.Perfil,
		SetorID:   in.SetorID,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// GetByID obtém um usuário por ID.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
}

// Update atualiza um usuário. Senha, quando presente, é re-hasheada.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.Perfil != nil {
		if !validPerfil(*in.Perfil) {
			return nil, domain.ErrInvalidInput
		}
		u.Perfil = *in.Perfil
	}
	if in.SetorID != nil {
		if *in.SetorID != "" {
			setor, err := uc.setorRepo.GetByID(*in.SetorID)
			if err != nil {
				return nil, err
			}
			if setor == nil {
				return nil, domain.ErrNotFound
			}
		}
		u.SetorID = *in.SetorID
	}
	if in.Status != nil {
		if *in.Status != "active" && *in.Status != "inactive" {
			return nil, domain.ErrInvalidInput
		}
		u.Status = *in.Status
	}
	if in.Senha != nil {
		if *in.Senha == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.SenhaHash = string(hash)
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// List lista usuários com paginação.
func (uc *UsuarioUseCase) List(limit, offset int) (*dto.UsuarioListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina um usuário por ID.
func (uc *UsuarioUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nome:      u.Nome,
		Perfil:    u.Perfil,
		SetorID:   u.SetorID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
