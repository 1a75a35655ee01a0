package entity

import "time"

// Perfis válidos para Usuario.
const (
	PerfilAdminGeral         = "admin_geral"
	PerfilGestorAlmoxarifado = "gestor_almoxarifado"
	PerfilOperadorSetor      = "operador_setor"
)

// Usuario representa um usuário do sistema. Operadores de setor ficam
// vinculados ao Setor que podem movimentar.
type Usuario struct {
	ID        string
	Email     string
	Nome      string
	SenhaHash string // bcrypt, nunca em claro após persistido
	Perfil    string
	SetorID   string // vazio para perfis não vinculados a setor
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
