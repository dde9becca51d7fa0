package repositories

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// CompanyUpdate contém os campos atualizáveis de uma empresa.
// Campos nil são ignorados (update parcial).
type CompanyUpdate struct {
	CNPJ        *string
	NomeEmpresa *string
	Porte       *entities.Porte
	Estado      *string
	Cidade      *string
	Endereco    *string
	CNAE        *string
	Telefone    *string
	Email       *string
	Abertura    *string
	Risco       *entities.Risco
	Status      *entities.CompanyStatus
	Priority    *entities.Priority
	DueDate     *string
	Archived    *bool
}

// CompanyFilters contém filtros para listagem de empresas
type CompanyFilters struct {
	Archived *bool
	Status   *entities.CompanyStatus
}

// CompanyRepository define a interface para persistência de empresas.
// Listagens retornam o agregado completo: representante legal (com seus
// fluxos, notas e parecer), fluxos, notas e parecer da própria empresa.
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	FindByID(ctx context.Context, id string) (*entities.Company, error)
	Update(ctx context.Context, id string, update CompanyUpdate) (*entities.Company, error)
	List(ctx context.Context, filters CompanyFilters) ([]*entities.Company, error)
}

// RepresentanteRepository define a interface para persistência de
// representantes legais (no máximo um por empresa)
type RepresentanteRepository interface {
	Create(ctx context.Context, rep *entities.RepresentanteLegal) error
	FindByID(ctx context.Context, id string) (*entities.RepresentanteLegal, error)
	FindByCompany(ctx context.Context, companyID string) (*entities.RepresentanteLegal, error)
	Update(ctx context.Context, rep *entities.RepresentanteLegal) error
}

// FlowRepository define a interface para persistência de fluxos
type FlowRepository interface {
	Create(ctx context.Context, flow *entities.Flow) error
	FindByID(ctx context.Context, id string) (*entities.Flow, error)
	Update(ctx context.Context, flow *entities.Flow) error
	Delete(ctx context.Context, id string) error
	ListBySubject(ctx context.Context, subject entities.Subject) ([]*entities.Flow, error)
}

// NoteRepository define a interface para persistência de notas
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) error
	FindByID(ctx context.Context, id string) (*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) error
	Delete(ctx context.Context, id string) error
	ListBySubject(ctx context.Context, subject entities.Subject) ([]*entities.Note, error)
}

// ParecerRepository define a interface para persistência de pareceres
// finais (no máximo um por subject)
type ParecerRepository interface {
	Create(ctx context.Context, parecer *entities.ParecerFinal) error
	FindByID(ctx context.Context, id string) (*entities.ParecerFinal, error)
	FindBySubject(ctx context.Context, subject entities.Subject) (*entities.ParecerFinal, error)
	Update(ctx context.Context, parecer *entities.ParecerFinal) error
	Delete(ctx context.Context, id string) error
}
