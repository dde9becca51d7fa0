package entities

import "errors"

// Subject identifica a quem um fluxo, nota ou parecer pertence:
// exatamente um entre empresa e representante legal.
type Subject struct {
	CompanyID       *string
	RepresentanteID *string
}

// NewCompanySubject cria um Subject vinculado a uma empresa
func NewCompanySubject(companyID string) Subject {
	return Subject{CompanyID: &companyID}
}

// NewRepresentanteSubject cria um Subject vinculado a um representante legal
func NewRepresentanteSubject(representanteID string) Subject {
	return Subject{RepresentanteID: &representanteID}
}

// Validate garante que exatamente um dos lados está preenchido
func (s Subject) Validate() error {
	hasCompany := s.CompanyID != nil && *s.CompanyID != ""
	hasRep := s.RepresentanteID != nil && *s.RepresentanteID != ""

	if hasCompany == hasRep {
		return errors.New("subject must reference exactly one of company or representante legal")
	}
	return nil
}

// IsRepresentante indica se o subject aponta para um representante legal
func (s Subject) IsRepresentante() bool {
	return s.RepresentanteID != nil && *s.RepresentanteID != ""
}
