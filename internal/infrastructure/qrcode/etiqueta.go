// Package qrcode gera as etiquetas QR dos produtos.
package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// Tamanho em pixels do PNG quadrado da etiqueta.
const etiquetaPx = 256

// GeradorEtiqueta gera o PNG da etiqueta codificando o código do produto.
type GeradorEtiqueta struct{}

// NewGeradorEtiqueta constrói o gerador.
func NewGeradorEtiqueta() *GeradorEtiqueta { return &GeradorEtiqueta{} }

// PNG devolve os bytes do PNG com o QR do código dado.
func (g *GeradorEtiqueta) PNG(codigo string) ([]byte, error) {
	png, err := qr.Encode(codigo, qr.Medium, etiquetaPx)
	if err != nil {
		return nil, fmt.Errorf("gerar etiqueta: %w", err)
	}
	return png, nil
}
