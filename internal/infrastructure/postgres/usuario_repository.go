package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
// setor_id é NULL no banco quando o usuário não está vinculado a setor.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const usuarioCols = `id, email, nome, senha_hash, perfil, setor_id, status, created_at, updated_at`

func setorIDParam(setorID string) any {
	if setorID == "" {
		return nil
	}
	return setorID
}

// Create persiste um novo usuário.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + usuarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Email, u.Nome, u.SenhaHash, u.Perfil, setorIDParam(u.SetorID), u.Status,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getOne(`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtém um usuário pelo email.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.getOne(`SELECT `+usuarioCols+` FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) getOne(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	var setorID *string
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.Nome, &u.SenhaHash, &u.Perfil, &setorID, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	if setorID != nil {
		u.SetorID = *setorID
	}
	return &u, nil
}

// Update atualiza um usuário existente.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET nome = $2, senha_hash = $3, perfil = $4, setor_id = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Nome, u.SenhaHash, u.Perfil, setorIDParam(u.SetorID), u.Status, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuários com paginação.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioCols + ` FROM usuarios ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		var setorID *string
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Nome, &u.SenhaHash, &u.Perfil, &setorID, &u.Status,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		if setorID != nil {
			u.SetorID = *setorID
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Delete elimina um usuário por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
