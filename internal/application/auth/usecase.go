package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/repository"
	"github.com/pluckapp/almox-api/pkg/config"
	"github.com/pluckapp/almox-api/pkg/jwt"
)

// UseCase autenticação por email e senha, emitindo JWT.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      config.JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login valida as credenciais e devolve o token com o usuário.
// Credencial inválida e usuário inativo respondem igual, sem vazar qual caso.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Perfil, u.SetorID, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:        u.ID,
			Email:     u.Email,
			Nome:      u.Nome,
			Perfil:    u.Perfil,
			SetorID:   u.SetorID,
			Status:    u.Status,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
	}, nil
}
