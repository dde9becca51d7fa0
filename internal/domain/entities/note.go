package entities

import (
	"errors"
	"time"
)

// TipoNota representa a categoria de uma anotação
type TipoNota string

const (
	NotaAlertaCritico TipoNota = "Alerta Crítico"
	NotaAlertaNormal  TipoNota = "Alerta Normal"
	NotaAviso         TipoNota = "Aviso"
	NotaPendencia     TipoNota = "Pendência"
	NotaReenvio       TipoNota = "Reenvio de Documentos"
)

func (t TipoNota) IsValid() bool {
	switch t {
	case NotaAlertaCritico, NotaAlertaNormal, NotaAviso, NotaPendencia, NotaReenvio:
		return true
	}
	return false
}

// Note representa uma anotação sobre uma empresa ou representante legal.
// Mesma regra de autoria dos fluxos: edição e exclusão só pelo autor.
type Note struct {
	ID        string
	Subject   Subject
	Tipo      TipoNota
	Content   string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserRef
}

// Validate valida regras de negócio da entidade Note
func (n *Note) Validate() error {
	if err := n.Subject.Validate(); err != nil {
		return err
	}
	if !n.Tipo.IsValid() {
		return errors.New("invalid tipo")
	}
	if n.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// CanBeEditedBy verifica se o usuário pode editar ou excluir a nota
func (n *Note) CanBeEditedBy(userID string) bool {
	return n.CreatedBy == userID
}
