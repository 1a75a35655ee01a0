package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coletor guarda os resultados entregues pelo buscador.
type coletor struct {
	mu     sync.Mutex
	termos []string
}

func (col *coletor) onResult(termo string, _ []Produto) {
	col.mu.Lock()
	defer col.mu.Unlock()
	col.termos = append(col.termos, termo)
}

func (col *coletor) entregues() []string {
	col.mu.Lock()
	defer col.mu.Unlock()
	return append([]string(nil), col.termos...)
}

func TestBuscadorDebounceSubstituiPendente(t *testing.T) {
	var mu sync.Mutex
	var consultas []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		consultas = append(consultas, r.URL.Query().Get("q"))
		mu.Unlock()
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	col := &coletor{}
	b := NewBuscador(New(srv.URL), col.onResult, nil)
	b.SetDebounce(30 * time.Millisecond)

	// três teclas dentro da janela: só a última vira requisição
	ctx := context.Background()
	b.Buscar(ctx, "c")
	b.Buscar(ctx, "ca")
	b.Buscar(ctx, "cane")

	require.Eventually(t, func() bool {
		return len(col.entregues()) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, consultas, 1)
	assert.Equal(t, "cane", consultas[0])
	assert.Equal(t, []string{"cane"}, col.entregues())
}

func TestBuscadorDescartaRespostaObsoleta(t *testing.T) {
	lenta := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "ca" {
			<-lenta // segura a resposta antiga até a nova já ter chegado
		}
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	col := &coletor{}
	b := NewBuscador(New(srv.URL), col.onResult, nil)
	b.SetDebounce(time.Millisecond)

	ctx := context.Background()
	b.Buscar(ctx, "ca")
	time.Sleep(20 * time.Millisecond) // deixa "ca" disparar e ficar presa no servidor

	b.Buscar(ctx, "cane")
	require.Eventually(t, func() bool {
		return len(col.entregues()) == 1
	}, time.Second, 5*time.Millisecond)

	close(lenta) // libera a resposta antiga; deve ser descartada
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []string{"cane"}, col.entregues())
}

func TestBuscadorTermoVazioCancelaPendente(t *testing.T) {
	var mu sync.Mutex
	var consultas int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		consultas++
		mu.Unlock()
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	col := &coletor{}
	b := NewBuscador(New(srv.URL), col.onResult, nil)
	b.SetDebounce(20 * time.Millisecond)

	ctx := context.Background()
	b.Buscar(ctx, "ca")
	b.Buscar(ctx, "") // o usuário apagou o campo

	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, consultas)
	assert.Empty(t, col.entregues())
}
