package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain/repository"
	"github.com/pluckapp/almox-api/pkg/jwt"
)

// Locals keys após o middleware de auth.
const (
	LocalUserID  = "user_id"
	LocalPerfil  = "perfil"
	LocalSetorID = "setor_id"
)

// AuthMiddleware valida o Bearer token JWT e extrai usuário, perfil e setor
// a c.Locals. Com allowLegacyHeader ligado, aceita também o esquema antigo
// por header X-User-Id, resolvendo o usuário no banco.
func AuthMiddleware(jwtSecret string, allowLegacyHeader bool, usuarioRepo repository.UsuarioRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if allowLegacyHeader {
				if legacyID := strings.TrimSpace(c.Get("X-User-Id")); legacyID != "" {
					return legacyAuth(c, usuarioRepo, legacyID)
				}
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, perfil, setorID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalPerfil, perfil)
		c.Locals(LocalSetorID, setorID)
		return c.Next()
	}
}

// legacyAuth resolve o usuário do header X-User-Id. O perfil vem do banco,
// não do cliente.
func legacyAuth(c *fiber.Ctx, usuarioRepo repository.UsuarioRepository, userID string) error {
	u, err := usuarioRepo.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if u == nil || u.Status != "active" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_USER", Message: "usuário inválido"})
	}
	c.Locals(LocalUserID, u.ID)
	c.Locals(LocalPerfil, u.Perfil)
	c.Locals(LocalSetorID, u.SetorID)
	return c.Next()
}

// RequirePerfil restringe a rota aos perfis dados. Roda após AuthMiddleware.
func RequirePerfil(perfis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		atual := GetPerfil(c)
		for _, p := range perfis {
			if atual == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "perfil sem permissão para esta operação"})
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetPerfil devolve o perfil do contexto.
func GetPerfil(c *fiber.Ctx) string {
	return localString(c, LocalPerfil)
}

// GetSetorID devolve o setor vinculado do contexto (vazio para perfis sem setor).
func GetSetorID(c *fiber.Ctx) string {
	return localString(c, LocalSetorID)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
