package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pluckapp/almox-api/internal/application/dto"
	"github.com/pluckapp/almox-api/internal/domain"
	"github.com/pluckapp/almox-api/internal/domain/entity"
	"github.com/pluckapp/almox-api/internal/domain/repository"
)

// Prefixo usado quando o produto não tem categoria com prefixo definido.
const prefixoPadrao = "PRD"

// ProdutoUseCase casos de uso do catálogo: CRUD, busca normalizada e
// geração de código por prefixo de categoria.
type ProdutoUseCase struct {
	repo          repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository, categoriaRepo repository.CategoriaRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// NormalizaTermo remove acentos, baixa a caixa e apara espaços. Usado tanto
// na indexação quanto na consulta, para busca acento-insensível.
func NormalizaTermo(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// Create cria um produto. Código vazio é gerado a partir do prefixo da categoria.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.Unidade == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNotFound
	}
	codigo := in.Codigo
	if codigo == "" {
		codigo, err = uc.gerarCodigo(categoria)
		if err != nil {
			return nil, err
		}
	} else if existente, err := uc.repo.GetByCodigo(codigo); err != nil {
		return nil, err
	} else if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	p := &entity.Produto{
		ID:           uuid.New().String(),
		Codigo:       codigo,
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		CategoriaID:  in.CategoriaID,
		Unidade:      strings.ToUpper(in.Unidade),
		ControleLote: in.ControleLote,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// GerarCodigo devolve o próximo código livre para a categoria informada
// (prefixo + sequência de 4 dígitos), sem reservá-lo.
func (uc *ProdutoUseCase) GerarCodigo(categoriaID string) (*dto.GerarCodigoResponse, error) {
	var categoria *entity.Categoria
	if categoriaID != "" {
		var err error
		categoria, err = uc.categoriaRepo.GetByID(categoriaID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrNotFound
		}
	}
	codigo, err := uc.gerarCodigo(categoria)
	if err != nil {
		return nil, err
	}
	return &dto.GerarCodigoResponse{Codigo: codigo}, nil
}

func (uc *ProdutoUseCase) gerarCodigo(categoria *entity.Categoria) (string, error) {
	prefixo := prefixoPadrao
	if categoria != nil && categoria.Prefixo != "" {
		prefixo = strings.ToUpper(categoria.Prefixo)
	}
	seq, err := uc.repo.NextCodigoSeq(prefixo)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%04d", prefixo, seq), nil
}

// GetByID obtém um produto por ID.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProdutoResponse(p), nil
}

// Update atualiza um produto.
func (uc *ProdutoUseCase) Update(id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nome != nil {
		p.Nome = *in.Nome
	}
	if in.Descricao != nil {
		p.Descricao = *in.Descricao
	}
	if in.CategoriaID != nil {
		categoria, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrNotFound
		}
		p.CategoriaID = *in.CategoriaID
	}
	if in.Unidade != nil {
		p.Unidade = strings.ToUpper(*in.Unidade)
	}
	if in.ControleLote != nil {
		p.ControleLote = *in.ControleLote
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// List lista produtos com paginação.
func (uc *ProdutoUseCase) List(limit, offset int) (*dto.ProdutoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProdutoList(list, limit, offset), nil
}

// Search busca produtos por nome ou código, acento- e caixa-insensível.
func (uc *ProdutoUseCase) Search(termo string, limit int) (*dto.ProdutoListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	list, err := uc.repo.Search(NormalizaTermo(termo), limit)
	if err != nil {
		return nil, err
	}
	return toProdutoList(list, limit, 0), nil
}

// Delete elimina um produto por ID.
func (uc *ProdutoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProdutoList(list []*entity.Produto, limit, offset int) *dto.ProdutoListResponse {
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:           p.ID,
		Codigo:       p.Codigo,
		Nome:         p.Nome,
		Descricao:    p.Descricao,
		CategoriaID:  p.CategoriaID,
		Unidade:      p.Unidade,
		ControleLote: p.ControleLote,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
