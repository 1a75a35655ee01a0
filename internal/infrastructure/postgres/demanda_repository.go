package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

var _ repository.DemandaRepository = (*DemandaRepo)(nil)

// DemandaRepo implementação do porto DemandaRepository sobre PostgreSQL
// (usável com pool ou tx).
type DemandaRepo struct {
	q Querier
}

// NewDemandaRepository constrói o adaptador de demandas. Passar pool ou tx (Querier).
func NewDemandaRepository(q Querier) *DemandaRepo {
	return &DemandaRepo{q: q}
}

// Create persiste a demanda e seus itens.
func (r *DemandaRepo) Create(d *entity.Demanda) error {
	ctx := context.Background()
	query := `
		INSERT INTO demandas (id, setor_id, status, observacao, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query,
		d.ID, d.SetorID, d.Status, d.Observacao, d.CreatedAt, d.UpdatedAt, d.CreatedBy,
	); err != nil {
		return fmt.Errorf("insert demanda: %w", err)
	}
	for i := range d.Itens {
		it := &d.Itens[i]
		itemQuery := `
			INSERT INTO demanda_itens (id, demanda_id, produto_id, quantidade, atendido)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(ctx, itemQuery,
			it.ID, it.DemandaID, it.ProdutoID, it.Quantidade, it.Atendido,
		); err != nil {
			return fmt.Errorf("insert demanda item: %w", err)
		}
	}
	return nil
}

// GetByID obtém a demanda com os itens carregados.
func (r *DemandaRepo) GetByID(id string) (*entity.Demanda, error) {
	return r.getByID(id, false)
}

// GetByIDForUpdate obtém a demanda bloqueando a linha até o fim da
// transação. Atendimentos concorrentes serializam neste lock e releem os
// contadores já comitados pelo anterior.
func (r *DemandaRepo) GetByIDForUpdate(id string) (*entity.Demanda, error) {
	return r.getByID(id, true)
}

func (r *DemandaRepo) getByID(id string, lock bool) (*entity.Demanda, error) {
	query := `
		SELECT id, setor_id, status, observacao, created_at, updated_at, created_by
		FROM demandas WHERE id = $1`
	if lock {
		query += " FOR UPDATE"
	}
	var d entity.Demanda
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.SetorID, &d.Status, &d.Observacao, &d.CreatedAt, &d.UpdatedAt, &d.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get demanda: %w", err)
	}
	itens, err := r.itens([]string{d.ID})
	if err != nil {
		return nil, err
	}
	d.Itens = itens[d.ID]
	return &d, nil
}

// List lista demandas com filtros, itens carregados.
func (r *DemandaRepo) List(f repository.DemandaFilter) ([]*entity.Demanda, error) {
	var cond []string
	var args []any
	if f.SetorID != "" {
		args = append(args, f.SetorID)
		cond = append(cond, "setor_id = $"+strconv.Itoa(len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		cond = append(cond, "status = $"+strconv.Itoa(len(args)))
	}
	query := `
		SELECT id, setor_id, status, observacao, created_at, updated_at, created_by
		FROM demandas`
	if len(cond) > 0 {
		query += " WHERE " + strings.Join(cond, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, f.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list demandas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Demanda
	var ids []string
	for rows.Next() {
		var d entity.Demanda
		if err := rows.Scan(
			&d.ID, &d.SetorID, &d.Status, &d.Observacao, &d.CreatedAt, &d.UpdatedAt, &d.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan demanda: %w", err)
		}
		out = append(out, &d)
		ids = append(ids, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	itens, err := r.itens(ids)
	if err != nil {
		return nil, err
	}
	for _, d := range out {
		d.Itens = itens[d.ID]
	}
	return out, nil
}

func (r *DemandaRepo) itens(demandaIDs []string) (map[string][]entity.DemandaItem, error) {
	query := `
		SELECT id, demanda_id, produto_id, quantidade, atendido
		FROM demanda_itens WHERE demanda_id = ANY($1) ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, demandaIDs)
	if err != nil {
		return nil, fmt.Errorf("list demanda itens: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.DemandaItem)
	for rows.Next() {
		var it entity.DemandaItem
		if err := rows.Scan(&it.ID, &it.DemandaID, &it.ProdutoID, &it.Quantidade, &it.Atendido); err != nil {
			return nil, fmt.Errorf("scan demanda item: %w", err)
		}
		out[it.DemandaID] = append(out[it.DemandaID], it)
	}
	return out, rows.Err()
}

// UpdateStatus grava o status derivado da demanda.
func (r *DemandaRepo) UpdateStatus(id, status string) error {
	query := `UPDATE demandas SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, status); err != nil {
		return fmt.Errorf("update status demanda: %w", err)
	}
	return nil
}

// UpdateItemAtendido grava o acumulado atendido de um item.
func (r *DemandaRepo) UpdateItemAtendido(itemID string, atendido decimal.Decimal) error {
	query := `UPDATE demanda_itens SET atendido = $2 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, itemID, atendido); err != nil {
		return fmt.Errorf("update demanda item: %w", err)
	}
	return nil
}

// CreateAtendimento persiste um evento de atendimento com seus itens.
func (r *DemandaRepo) CreateAtendimento(a *entity.Atendimento) error {
	ctx := context.Background()
	query := `
		INSERT INTO demanda_atendimentos (id, demanda_id, origem_tipo, origem_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query,
		a.ID, a.DemandaID, a.OrigemTipo, a.OrigemID, a.CreatedAt, a.CreatedBy,
	); err != nil {
		return fmt.Errorf("insert atendimento: %w", err)
	}
	for _, it := range a.Itens {
		itemQuery := `
			INSERT INTO demanda_atendimento_itens (atendimento_id, produto_id, quantidade)
			VALUES ($1, $2, $3)`
		if _, err := r.q.Exec(ctx, itemQuery, a.ID, it.ProdutoID, it.Quantidade); err != nil {
			return fmt.Errorf("insert atendimento item: %w", err)
		}
	}
	return nil
}

// ListAtendimentos lista o histórico de atendimentos de uma demanda.
func (r *DemandaRepo) ListAtendimentos(demandaID string) ([]*entity.Atendimento, error) {
	query := `
		SELECT id, demanda_id, origem_tipo, origem_id, created_at, created_by
		FROM demanda_atendimentos WHERE demanda_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, demandaID)
	if err != nil {
		return nil, fmt.Errorf("list atendimentos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Atendimento
	var ids []string
	for rows.Next() {
		var a entity.Atendimento
		if err := rows.Scan(&a.ID, &a.DemandaID, &a.OrigemTipo, &a.OrigemID, &a.CreatedAt, &a.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan atendimento: %w", err)
		}
		out = append(out, &a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}

	itemQuery := `
		SELECT atendimento_id, produto_id, quantidade
		FROM demanda_atendimento_itens WHERE atendimento_id = ANY($1)`
	itemRows, err := r.q.Query(context.Background(), itemQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list atendimento itens: %w", err)
	}
	defer itemRows.Close()

	porAtendimento := make(map[string][]entity.AtendimentoItem)
	for itemRows.Next() {
		var atendimentoID string
		var it entity.AtendimentoItem
		if err := itemRows.Scan(&atendimentoID, &it.ProdutoID, &it.Quantidade); err != nil {
			return nil, fmt.Errorf("scan atendimento item: %w", err)
		}
		porAtendimento[atendimentoID] = append(porAtendimento[atendimentoID], it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	for _, a := range out {
		a.Itens = porAtendimento[a.ID]
	}
	return out, nil
}
