package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluckapp/almox-api/internal/domain/entity"
	apphttp "github.com/pluckapp/almox-api/internal/interfaces/http"
	pkgjwt "github.com/pluckapp/almox-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testSetorID   = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "almox-api-test"
	testExpMin    = 60
)

// fakeUsuarioRepo resolve usuários do header legado nos testes.
type fakeUsuarioRepo struct {
	porID map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) Create(*entity.Usuario) error { return nil }
func (f *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return f.porID[id], nil
}
func (f *fakeUsuarioRepo) GetByEmail(string) (*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarioRepo) Update(*entity.Usuario) error               { return nil }
func (f *fakeUsuarioRepo) List(int, int) ([]*entity.Usuario, error)   { return nil, nil }
func (f *fakeUsuarioRepo) Delete(string) error                        { return nil }

// buildTestApp monta uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o token e carregar locals
//   - RequirePerfil para autorizar o acesso
//   - Um handler dummy que devolve 200 se passa pelos middlewares
func buildTestApp(allowLegacy bool, repo *fakeUsuarioRepo, perfis ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret, allowLegacy, repo),
		apphttp.RequirePerfil(perfis...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":     true,
				"perfil": apphttp.GetPerfil(c),
			})
		},
	)
	return app
}

// tokenPara gera um JWT com o perfil indicado.
func tokenPara(t *testing.T, perfil, setorID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, perfil, setorID, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /protegida e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePerfil
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePerfil_AdminAcessaRotaAdmin(t *testing.T) {
	app := buildTestApp(false, nil, entity.PerfilAdminGeral)
	resp := doRequest(t, app, map[string]string{"Authorization": tokenPara(t, entity.PerfilAdminGeral, "")})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin_geral deve poder acessar rota restrita a admin_geral")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.PerfilAdminGeral, body["perfil"])
}

func TestRequirePerfil_GestorAcessaRotaMultiPerfil(t *testing.T) {
	app := buildTestApp(false, nil, entity.PerfilAdminGeral, entity.PerfilGestorAlmoxarifado)
	resp := doRequest(t, app, map[string]string{"Authorization": tokenPara(t, entity.PerfilGestorAlmoxarifado, "")})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePerfil_OperadorBloqueadoEmRotaAdmin(t *testing.T) {
	app := buildTestApp(false, nil, entity.PerfilAdminGeral)
	resp := doRequest(t, app, map[string]string{"Authorization": tokenPara(t, entity.PerfilOperadorSetor, testSetorID)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"operador_setor não deve acessar rota restrita a admin_geral")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp(false, nil, entity.PerfilAdminGeral)
	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(false, nil, entity.PerfilAdminGeral)
	resp := doRequest(t, app, map[string]string{"Authorization": "Bearer token.invalido.aqui"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests esquema legado X-User-Id
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_HeaderLegado_ResolveUsuario(t *testing.T) {
	repo := &fakeUsuarioRepo{porID: map[string]*entity.Usuario{
		testUserID: {ID: testUserID, Perfil: entity.PerfilGestorAlmoxarifado, Status: "active"},
	}}
	app := buildTestApp(true, repo, entity.PerfilGestorAlmoxarifado)
	resp := doRequest(t, app, map[string]string{"X-User-Id": testUserID})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"header legado deve funcionar com o flag ligado")
}

func TestAuthMiddleware_HeaderLegado_Desligado_Retorna401(t *testing.T) {
	repo := &fakeUsuarioRepo{porID: map[string]*entity.Usuario{
		testUserID: {ID: testUserID, Perfil: entity.PerfilAdminGeral, Status: "active"},
	}}
	app := buildTestApp(false, repo, entity.PerfilAdminGeral)
	resp := doRequest(t, app, map[string]string{"X-User-Id": testUserID})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"com o flag desligado, só Bearer token é aceito")
}

func TestAuthMiddleware_HeaderLegado_UsuarioInativo_Retorna401(t *testing.T) {
	repo := &fakeUsuarioRepo{porID: map[string]*entity.Usuario{
		testUserID: {ID: testUserID, Perfil: entity.PerfilAdminGeral, Status: "inactive"},
	}}
	app := buildTestApp(true, repo, entity.PerfilAdminGeral)
	resp := doRequest(t, app, map[string]string{"X-User-Id": testUserID})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.PerfilOperadorSetor, testSetorID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, perfil, setorID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.PerfilOperadorSetor, perfil)
	assert.Equal(t, testSetorID, setorID)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.PerfilAdminGeral, "", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretIncorreto_RetornaErro(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.PerfilAdminGeral, "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err, "secret incorreto deve invalidar o token")
}
