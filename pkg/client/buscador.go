package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const debouncePadrao = 250 * time.Millisecond

// Buscador agenda buscas de produto com debounce e descarta respostas
// obsoletas: cada disparo incrementa um contador de sequência e só a
// resposta cuja sequência ainda é a mais recente chega ao callback. Assim
// uma busca lenta por "ca" nunca sobrescreve o resultado de "cane".
type Buscador struct {
	c        *Client
	debounce time.Duration
	limit    int
	onResult func(termo string, produtos []Produto)
	onError  func(termo string, err error)

	seq   atomic.Uint64
	mu    sync.Mutex
	timer *time.Timer
}

// NewBuscador cria o buscador. onResult recebe o termo e os produtos da
// última busca válida; onError é opcional.
func NewBuscador(c *Client, onResult func(termo string, produtos []Produto), onError func(termo string, err error)) *Buscador {
	return &Buscador{
		c:        c,
		debounce: debouncePadrao,
		limit:    20,
		onResult: onResult,
		onError:  onError,
	}
}

// SetDebounce ajusta a janela de debounce (útil em testes).
func (b *Buscador) SetDebounce(d time.Duration) { b.debounce = d }

// Buscar agenda uma busca pelo termo. Chamadas dentro da janela de
// debounce substituem a anterior; termo vazio só cancela a pendente.
func (b *Buscador) Buscar(ctx context.Context, termo string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	if termo == "" {
		return
	}
	b.timer = time.AfterFunc(b.debounce, func() {
		b.executa(ctx, termo)
	})
}

func (b *Buscador) executa(ctx context.Context, termo string) {
	id := b.seq.Add(1)
	produtos, err := b.c.SearchProdutos(ctx, termo, b.limit)
	if b.seq.Load() != id {
		return // já houve busca mais nova; resultado obsoleto
	}
	if err != nil {
		if b.onError != nil {
			b.onError(termo, err)
		}
		return
	}
	b.onResult(termo, produtos)
}
