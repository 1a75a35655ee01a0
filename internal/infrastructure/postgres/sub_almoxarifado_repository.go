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

var _ repository.SubAlmoxarifadoRepository = (*SubAlmoxarifadoRepo)(nil)

// SubAlmoxarifadoRepo implementação do porto SubAlmoxarifadoRepository sobre PostgreSQL.
type SubAlmoxarifadoRepo struct {
	pool *pgxpool.Pool
}

// NewSubAlmoxarifadoRepository constrói o adaptador de persistência para sub-almoxarifados.
func NewSubAlmoxarifadoRepository(pool *pgxpool.Pool) *SubAlmoxarifadoRepo {
	return &SubAlmoxarifadoRepo{pool: pool}
}

// Create persiste um novo sub-almoxarifado.
func (r *SubAlmoxarifadoRepo) Create(s *entity.SubAlmoxarifado) error {
	query := `
		INSERT INTO sub_almoxarifados (id, almoxarifado_id, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.AlmoxarifadoID, s.Nome, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sub-almoxarifado: %w", err)
	}
	return nil
}

// GetByID obtém um sub-almoxarifado por ID.
func (r *SubAlmoxarifadoRepo) GetByID(id string) (*entity.SubAlmoxarifado, error) {
	query := `
		SELECT id, almoxarifado_id, nome, created_at, updated_at
		FROM sub_almoxarifados WHERE id = $1`
	var s entity.SubAlmoxarifado
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AlmoxarifadoID, &s.Nome, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub-almoxarifado: %w", err)
	}
	return &s, nil
}

// Update atualiza um sub-almoxarifado existente.
func (r *SubAlmoxarifadoRepo) Update(s *entity.SubAlmoxarifado) error {
	query := `
		UPDATE sub_almoxarifados SET almoxarifado_id = $2, nome = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, s.ID, s.AlmoxarifadoID, s.Nome, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update sub-almoxarifado: %w", err)
	}
	return nil
}

// List lista sub-almoxarifados com paginação.
func (r *SubAlmoxarifadoRepo) List(limit, offset int) ([]*entity.SubAlmoxarifado, error) {
	query := `
		SELECT id, almoxarifado_id, nome, created_at, updated_at
		FROM sub_almoxarifados ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sub-almoxarifados: %w", err)
	}
	defer rows.Close()
	return scanSubAlmoxarifados(rows)
}

// ListByAlmoxarifado lista os sub-almoxarifados de um almoxarifado.
func (r *SubAlmoxarifadoRepo) ListByAlmoxarifado(almoxarifadoID string) ([]*entity.SubAlmoxarifado, error) {
	query := `
		SELECT id, almoxarifado_id, nome, created_at, updated_at
		FROM sub_almoxarifados WHERE almoxarifado_id = $1 ORDER BY nome`
	rows, err := r.pool.Query(context.Background(), query, almoxarifadoID)
	if err != nil {
		return nil, fmt.Errorf("list sub-almoxarifados por almoxarifado: %w", err)
	}
	defer rows.Close()
	return scanSubAlmoxarifados(rows)
}

func scanSubAlmoxarifados(rows pgx.Rows) ([]*entity.SubAlmoxarifado, error) {
	var out []*entity.SubAlmoxarifado
	for rows.Next() {
		var s entity.SubAlmoxarifado
		if err := rows.Scan(&s.ID, &s.AlmoxarifadoID, &s.Nome, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sub-almoxarifado: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete elimina um sub-almoxarifado por ID.
func (r *SubAlmoxarifadoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM sub_almoxarifados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sub-almoxarifado: %w", err)
	}
	return nil
}
