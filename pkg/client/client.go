// Package client é o SDK tipado da API Pluck | Almox: base URL + auth
// (Bearer token ou header legado X-User-Id), JSON e extração de erro no
// formato {code,message} da API (com fallback para {detail}). Cobre os
// fluxos do fluxo de saída para setor: carga paralela de dados de
// referência, busca de produtos com debounce e carrinho de envio.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// APIError é um erro devolvido pela API com o status HTTP e o corpo
// decodificado.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%s, status %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// Client é o cliente HTTP da API.
type Client struct {
	http *resty.Client
}

// Option configura o cliente.
type Option func(*Client)

// WithToken autentica com Bearer token (JWT emitido por /api/auth/login).
func WithToken(token string) Option {
	return func(c *Client) { c.http.SetAuthToken(token) }
}

// WithLegacyUser autentica pelo header legado X-User-Id. Só funciona
// enquanto o servidor mantiver AUTH_ALLOW_LEGACY_HEADER ligado.
func WithLegacyUser(userID string) Option {
	return func(c *Client) { c.http.SetHeader("X-User-Id", userID) }
}

// WithTimeout ajusta o timeout por requisição.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New cria o cliente apontando para a base da API (ex.:
// "http://localhost:8080/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Content-Type", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login autentica e passa a usar o token devolvido nas próximas chamadas.
func (c *Client) Login(ctx context.Context, email, senha string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.post(ctx, "/auth/login", map[string]string{"email": email, "senha": senha}, &out)
	if err != nil {
		return nil, err
	}
	c.http.SetAuthToken(out.Token)
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(path)
	return c.decode(resp, err, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	return c.decode(resp, err, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Put(path)
	return c.decode(resp, err, out)
}

// decode trata o transporte, extrai o erro da API quando o status não é 2xx
// e decodifica o corpo em out.
func (c *Client) decode(resp *resty.Response, err error, out any) error {
	if err != nil {
		return fmt.Errorf("requisição à API: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return parseErro(resp)
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decodificar resposta: %w", err)
	}
	return nil
}

// parseErro extrai {code,message}; APIs antigas devolviam {detail}.
func parseErro(resp *resty.Response) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Message
	if msg == "" {
		msg = body.Detail
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return &APIError{Status: resp.StatusCode(), Code: body.Code, Message: msg}
}
