package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Referencia dados de referência que a interface carrega de uma vez ao
// abrir a tela de saída para setor.
type Referencia struct {
	Centrais         []Central
	Almoxarifados    []Almoxarifado
	SubAlmoxarifados []SubAlmoxarifado
	Setores          []Setor
	Categorias       []Categoria
	Produtos         []Produto
}

// CarregarReferencia busca todas as listas em paralelo. Qualquer falha
// cancela as demais e devolve o erro; não há retry.
func (c *Client) CarregarReferencia(ctx context.Context) (*Referencia, error) {
	ref := &Referencia{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var out listResponse[Central]
		if err := c.get(ctx, "/centrais", nil, &out); err != nil {
			return err
		}
		ref.Centrais = out.Items
		return nil
	})
	g.Go(func() error {
		var out listResponse[Almoxarifado]
		if err := c.get(ctx, "/almoxarifados", nil, &out); err != nil {
			return err
		}
		ref.Almoxarifados = out.Items
		return nil
	})
	g.Go(func() error {
		var out listResponse[SubAlmoxarifado]
		if err := c.get(ctx, "/sub_almoxarifados", nil, &out); err != nil {
			return err
		}
		ref.SubAlmoxarifados = out.Items
		return nil
	})
	g.Go(func() error {
		var out listResponse[Setor]
		if err := c.get(ctx, "/setores", nil, &out); err != nil {
			return err
		}
		ref.Setores = out.Items
		return nil
	})
	g.Go(func() error {
		var out listResponse[Categoria]
		if err := c.get(ctx, "/categorias", nil, &out); err != nil {
			return err
		}
		ref.Categorias = out.Items
		return nil
	})
	g.Go(func() error {
		var out listResponse[Produto]
		if err := c.get(ctx, "/produtos", nil, &out); err != nil {
			return err
		}
		ref.Produtos = out.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ref, nil
}

// SearchProdutos busca produtos por nome ou código (sem acentos,
// caso-insensível no servidor).
func (c *Client) SearchProdutos(ctx context.Context, termo string, limit int) ([]Produto, error) {
	q := map[string]string{"q": termo}
	if limit > 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	var out listResponse[Produto]
	if err := c.get(ctx, "/produtos/search", q, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// EstoquePorLocal saldos de um local da hierarquia.
func (c *Client) EstoquePorLocal(ctx context.Context, tipo, id string) ([]EstoqueItem, error) {
	var out listResponse[EstoqueItem]
	if err := c.get(ctx, "/estoque/local", map[string]string{"tipo": tipo, "id": id}, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Origens devolve, por produto, os locais com saldo disponível.
func (c *Client) Origens(ctx context.Context, produtoIDs []string) (map[string][]OrigemEstoque, error) {
	var out origensResponse
	q := map[string]string{"produto_ids": strings.Join(produtoIDs, ",")}
	if err := c.get(ctx, "/estoque/origens", q, &out); err != nil {
		return nil, err
	}
	return out.Origens, nil
}

// Etiqueta devolve o PNG da etiqueta QR de um produto.
func (c *Client) Etiqueta(ctx context.Context, produtoID string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/produtos/" + url.PathEscape(produtoID) + "/etiqueta")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, parseErro(resp)
	}
	return resp.Body(), nil
}
