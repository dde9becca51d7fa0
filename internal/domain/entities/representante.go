package entities

import (
	"errors"
	"time"
)

// RepresentanteLegal representa o representante legal de uma empresa.
// Invariante: no máximo um por empresa — criações sobre uma empresa que
// já possui representante viram atualização do registro existente.
type RepresentanteLegal struct {
	ID        string
	CompanyID string
	Nome      string
	CPF       string
	Telefone  string
	Endereco  string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	Flows        []*Flow
	Notes        []*Note
	ParecerFinal *ParecerFinal
}

// Validate valida regras de negócio da entidade RepresentanteLegal
func (r *RepresentanteLegal) Validate() error {
	if r.CompanyID == "" {
		return errors.New("company_id is required")
	}
	if r.Nome == "" {
		return errors.New("nome is required")
	}
	if r.CPF == "" {
		return errors.New("cpf is required")
	}
	return nil
}
