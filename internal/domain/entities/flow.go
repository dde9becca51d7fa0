package entities

import (
	"errors"
	"time"
)

// NomeFluxo representa o tipo de verificação documental registrada
type NomeFluxo string

const (
	FluxoContratoSocial      NomeFluxo = "contrato social"
	FluxoCNPJ                NomeFluxo = "cnpj"
	FluxoRepresentanteLegal  NomeFluxo = "representante legal"
	FluxoCapitalSocial       NomeFluxo = "capital social"
	FluxoComprovanteEndereco NomeFluxo = "comprovante endereço"
)

func (n NomeFluxo) IsValid() bool {
	switch n {
	case FluxoContratoSocial, FluxoCNPJ, FluxoRepresentanteLegal,
		FluxoCapitalSocial, FluxoComprovanteEndereco:
		return true
	}
	return false
}

// CheckFluxo representa o resultado de uma verificação
type CheckFluxo string

const (
	CheckValido        CheckFluxo = "válido"
	CheckInvalido      CheckFluxo = "inválido"
	CheckCompativel    CheckFluxo = "compatível"
	CheckInconsistente CheckFluxo = "inconsistente"
	CheckPositivo      CheckFluxo = "positivo"
	CheckNegativo      CheckFluxo = "negativo"
)

func (c CheckFluxo) IsValid() bool {
	switch c {
	case CheckValido, CheckInvalido, CheckCompativel,
		CheckInconsistente, CheckPositivo, CheckNegativo:
		return true
	}
	return false
}

// Flow representa um evento de verificação documental.
// Histórico append-only: edição e exclusão só pelo autor.
type Flow struct {
	ID         string
	Subject    Subject
	NomeFluxo  NomeFluxo
	CheckFluxo CheckFluxo
	Observacao string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserRef
}

// Validate valida regras de negócio da entidade Flow
func (f *Flow) Validate() error {
	if err := f.Subject.Validate(); err != nil {
		return err
	}
	if !f.NomeFluxo.IsValid() {
		return errors.New("invalid nome_fluxo")
	}
	if !f.CheckFluxo.IsValid() {
		return errors.New("invalid check_fluxo")
	}
	return nil
}

// CanBeEditedBy verifica se o usuário pode editar ou excluir o fluxo
func (f *Flow) CanBeEditedBy(userID string) bool {
	return f.CreatedBy == userID
}
