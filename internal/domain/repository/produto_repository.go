package repository

import "github.com/pluckapp/almox-api/internal/domain/entity"

// CategoriaRepository define o porto de persistência para Categoria.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	List(limit, offset int) ([]*entity.Categoria, error)
	Delete(id string) error
}

// ProdutoRepository define o porto de persistência para Produto.
// Search recebe o termo já normalizado (sem acentos, minúsculas) e compara
// contra nome e código normalizados.
type ProdutoRepository interface {
	Create(p *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetByCodigo(codigo string) (*entity.Produto, error)
	Update(p *entity.Produto) error
	List(limit, offset int) ([]*entity.Produto, error)
	Search(termo string, limit int) ([]*entity.Produto, error)
	// NextCodigoSeq devolve o próximo número livre para códigos com o prefixo dado.
	NextCodigoSeq(prefixo string) (int, error)
	Delete(id string) error
}

// LoteRepository define o porto de persistência para Lote.
type LoteRepository interface {
	Create(l *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	// GetByNumero localiza um lote pelo número dentro de um local.
	GetByNumero(produtoID, localTipo, localID, numero string) (*entity.Lote, error)
	Update(l *entity.Lote) error
	ListByProduto(produtoID string) ([]*entity.Lote, error)
}
