package entities

import (
	"errors"
	"time"
)

// Orientacao representa a recomendação do parecer final
type Orientacao string

const (
	OrientacaoAprovar  Orientacao = "Aprovar"
	OrientacaoRejeitar Orientacao = "Rejeitar"
)

func (o Orientacao) IsValid() bool {
	return o == OrientacaoAprovar || o == OrientacaoRejeitar
}

// ParecerFinal representa o parecer de risco conclusivo de um subject.
// Invariante: no máximo um por subject — criações sobre um subject que
// já possui parecer viram atualização do registro existente.
type ParecerFinal struct {
	ID         string
	Subject    Subject
	Risco      Risco
	Orientacao Orientacao
	Parecer    string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserRef
}

// Validate valida regras de negócio da entidade ParecerFinal.
// Pareceres de representante legal não admitem risco Crítico.
func (p *ParecerFinal) Validate() error {
	if err := p.Subject.Validate(); err != nil {
		return err
	}
	if !p.Risco.IsValid() {
		return errors.New("invalid risco")
	}
	if p.Subject.IsRepresentante() && p.Risco == RiscoCritico {
		return errors.New("risco Crítico is not allowed for representante legal")
	}
	if !p.Orientacao.IsValid() {
		return errors.New("invalid orientacao")
	}
	if p.Parecer == "" {
		return errors.New("parecer is required")
	}
	return nil
}
