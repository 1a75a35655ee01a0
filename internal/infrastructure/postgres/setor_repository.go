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

var _ repository.SetorRepository = (*SetorRepo)(nil)

// SetorRepo implementação do porto SetorRepository sobre PostgreSQL.
// Os vínculos multi-pai ficam na tabela setor_sub_almoxarifados.
type SetorRepo struct {
	pool *pgxpool.Pool
}

// NewSetorRepository constrói o adaptador de persistência para setores.
func NewSetorRepository(pool *pgxpool.Pool) *SetorRepo {
	return &SetorRepo{pool: pool}
}

// Create persiste um novo setor com seus vínculos.
func (r *SetorRepo) Create(s *entity.Setor) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO setores (id, almoxarifado_id, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, query, s.ID, s.AlmoxarifadoID, s.Nome, s.CreatedAt, s.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert setor: %w", err)
	}
	if err := insertVinculos(ctx, tx, s.ID, s.SubAlmoxarifadoIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertVinculos(ctx context.Context, q Querier, setorID string, subIDs []string) error {
	for _, subID := range subIDs {
		query := `
			INSERT INTO setor_sub_almoxarifados (setor_id, sub_almoxarifado_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := q.Exec(ctx, query, setorID, subID); err != nil {
			return fmt.Errorf("insert vinculo setor: %w", err)
		}
	}
	return nil
}

// GetByID obtém um setor por ID, com os vínculos carregados.
func (r *SetorRepo) GetByID(id string) (*entity.Setor, error) {
	query := `
		SELECT id, almoxarifado_id, nome, created_at, updated_at
		FROM setores WHERE id = $1`
	var s entity.Setor
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.AlmoxarifadoID, &s.Nome, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setor: %w", err)
	}
	subIDs, err := r.vinculos([]string{s.ID})
	if err != nil {
		return nil, err
	}
	s.SubAlmoxarifadoIDs = subIDs[s.ID]
	return &s, nil
}

// Update atualiza um setor e reescreve seus vínculos.
func (r *SetorRepo) Update(s *entity.Setor) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE setores SET almoxarifado_id = $2, nome = $3, updated_at = $4
		WHERE id = $1`
	if _, err := tx.Exec(ctx, query, s.ID, s.AlmoxarifadoID, s.Nome, s.UpdatedAt); err != nil {
		return fmt.Errorf("update setor: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM setor_sub_almoxarifados WHERE setor_id = $1`, s.ID); err != nil {
		return fmt.Errorf("delete vinculos setor: %w", err)
	}
	if err := insertVinculos(ctx, tx, s.ID, s.SubAlmoxarifadoIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List lista setores com paginação, com os vínculos carregados.
func (r *SetorRepo) List(limit, offset int) ([]*entity.Setor, error) {
	query := `
		SELECT id, almoxarifado_id, nome, created_at, updated_at
		FROM setores ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list setores: %w", err)
	}
	defer rows.Close()

	var out []*entity.Setor
	var ids []string
	for rows.Next() {
		var s entity.Setor
		if err := rows.Scan(&s.ID, &s.AlmoxarifadoID, &s.Nome, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setor: %w", err)
		}
		out = append(out, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	subIDs, err := r.vinculos(ids)
	if err != nil {
		return nil, err
	}
	for _, s := range out {
		s.SubAlmoxarifadoIDs = subIDs[s.ID]
	}
	return out, nil
}

// vinculos carrega o mapa setor_id -> sub_almoxarifado_ids para os setores dados.
func (r *SetorRepo) vinculos(setorIDs []string) (map[string][]string, error) {
	query := `
		SELECT setor_id, sub_almoxarifado_id
		FROM setor_sub_almoxarifados WHERE setor_id = ANY($1)`
	rows, err := r.pool.Query(context.Background(), query, setorIDs)
	if err != nil {
		return nil, fmt.Errorf("list vinculos setor: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var setorID, subID string
		if err := rows.Scan(&setorID, &subID); err != nil {
			return nil, fmt.Errorf("scan vinculo setor: %w", err)
		}
		out[setorID] = append(out[setorID], subID)
	}
	return out, rows.Err()
}

// Delete elimina um setor e seus vínculos.
func (r *SetorRepo) Delete(id string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM setor_sub_almoxarifados WHERE setor_id = $1`, id); err != nil {
		return fmt.Errorf("delete vinculos setor: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM setores WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete setor: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
