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

var _ repository.AlmoxarifadoRepository = (*AlmoxarifadoRepo)(nil)

// AlmoxarifadoRepo implementação do porto AlmoxarifadoRepository sobre PostgreSQL.
type AlmoxarifadoRepo struct {
	pool *pgxpool.Pool
}

// NewAlmoxarifadoRepository constrói o adaptador de persistência para almoxarifados.
func NewAlmoxarifadoRepository(pool *pgxpool.Pool) *AlmoxarifadoRepo {
	return &AlmoxarifadoRepo{pool: pool}
}

// Create persiste um novo almoxarifado.
func (r *AlmoxarifadoRepo) Create(a *entity.Almoxarifado) error {
	query := `
		INSERT INTO almoxarifados (id, central_id, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.CentralID, a.Nome, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert almoxarifado: %w", err)
	}
	return nil
}

// GetByID obtém um almoxarifado por ID.
func (r *AlmoxarifadoRepo) GetByID(id string) (*entity.Almoxarifado, error) {
	query := `
		SELECT id, central_id, nome, created_at, updated_at
		FROM almoxarifados WHERE id = $1`
	var a entity.Almoxarifado
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CentralID, &a.Nome, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get almoxarifado: %w", err)
	}
	return &a, nil
}

// Update atualiza um almoxarifado existente.
func (r *AlmoxarifadoRepo) Update(a *entity.Almoxarifado) error {
	query := `
		UPDATE almoxarifados SET central_id = $2, nome = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, a.ID, a.CentralID, a.Nome, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update almoxarifado: %w", err)
	}
	return nil
}

// List lista almoxarifados com paginação.
func (r *AlmoxarifadoRepo) List(limit, offset int) ([]*entity.Almoxarifado, error) {
	query := `
		SELECT id, central_id, nome, created_at, updated_at
		FROM almoxarifados ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list almoxarifados: %w", err)
	}
	defer rows.Close()
	return scanAlmoxarifados(rows)
}

// ListByCentral lista os almoxarifados de uma central.
func (r *AlmoxarifadoRepo) ListByCentral(centralID string) ([]*entity.Almoxarifado, error) {
	query := `
		SELECT id, central_id, nome, created_at, updated_at
		FROM almoxarifados WHERE central_id = $1 ORDER BY nome`
	rows, err := r.pool.Query(context.Background(), query, centralID)
	if err != nil {
		return nil, fmt.Errorf("list almoxarifados por central: %w", err)
	}
	defer rows.Close()
	return scanAlmoxarifados(rows)
}

func scanAlmoxarifados(rows pgx.Rows) ([]*entity.Almoxarifado, error) {
	var out []*entity.Almoxarifado
	for rows.Next() {
		var a entity.Almoxarifado
		if err := rows.Scan(&a.ID, &a.CentralID, &a.Nome, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan almoxarifado: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Delete elimina um almoxarifado por ID.
func (r *AlmoxarifadoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM almoxarifados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete almoxarifado: %w", err)
	}
	return nil
}
