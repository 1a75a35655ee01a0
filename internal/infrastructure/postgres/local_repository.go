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

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo resolve um nó genérico da hierarquia consultando a tabela do
// tipo correspondente.
type LocalRepo struct {
	pool *pgxpool.Pool
}

// NewLocalRepository constrói o resolvedor de locais.
func NewLocalRepository(pool *pgxpool.Pool) *LocalRepo {
	return &LocalRepo{pool: pool}
}

// Get devolve o local (tipo + id + nome) ou nil se não existir.
func (r *LocalRepo) Get(tipo, id string) (*entity.Local, error) {
	var query string
	switch tipo {
	case entity.LocalTipoCentral:
		query = `SELECT nome FROM centrais WHERE id = $1`
	case entity.LocalTipoAlmoxarifado:
		query = `SELECT nome FROM almoxarifados WHERE id = $1`
	case entity.LocalTipoSubAlmoxarifado:
		query = `SELECT nome FROM sub_almoxarifados WHERE id = $1`
	case entity.LocalTipoSetor:
		query = `SELECT nome FROM setores WHERE id = $1`
	default:
		return nil, domain.ErrInvalidInput
	}

	var nome string
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local %s: %w", tipo, err)
	}
	return &entity.Local{Tipo: tipo, ID: id, Nome: nome}, nil
}
