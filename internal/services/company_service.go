package services

import (
	"context"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/errors"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// CompanyService contém a lógica de negócio da análise de conformidade:
// o ciclo de vida da empresa, os fluxos de verificação, as notas, o
// representante legal e o parecer final.
type CompanyService struct {
	companyRepo repositories.CompanyRepository
	repRepo     repositories.RepresentanteRepository
	flowRepo    repositories.FlowRepository
	noteRepo    repositories.NoteRepository
	parecerRepo repositories.ParecerRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewCompanyService cria um novo CompanyService
func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	repRepo repositories.RepresentanteRepository,
	flowRepo repositories.FlowRepository,
	noteRepo repositories.NoteRepository,
	parecerRepo repositories.ParecerRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		repRepo:     repRepo,
		flowRepo:    flowRepo,
		noteRepo:    noteRepo,
		parecerRepo: parecerRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateCompanyInput representa os dados para criar uma empresa
type CreateCompanyInput struct {
	CNPJ        string
	NomeEmpresa string
	Porte       entities.Porte
	Estado      string
	Cidade      string
	Endereco    string
	CNAE        string
	Telefone    string
	Email       string
	Abertura    string
	Priority    entities.Priority
	DueDate     string
}

// Create cria uma empresa com os defaults de análise:
// status=todo, priority=medium, risco=Baixo, archived=false
func (s *CompanyService) Create(ctx context.Context, actorID string, input CreateCompanyInput) (*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	// O CNPJ é armazenado como digitado: o cadastro legado contém valores
	// sem dígito verificador válido. A validação estrita fica restrita à
	// consulta do registro público, onde ela é exigida pela API externa.
	if input.CNPJ == "" {
		return nil, errors.NewValidationError("cnpj", "cnpj is required")
	}

	company := &entities.Company{
		CNPJ:        input.CNPJ,
		NomeEmpresa: input.NomeEmpresa,
		Porte:       input.Porte,
		Estado:      input.Estado,
		Cidade:      input.Cidade,
		Endereco:    input.Endereco,
		CNAE:        input.CNAE,
		Telefone:    input.Telefone,
		Email:       input.Email,
		Abertura:    input.Abertura,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedBy:   actorID,
	}
	company.ApplyDefaults()

	if err := company.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("company created", "company_id", company.ID, "cnpj", company.CNPJ)
	return company, nil
}

// List retorna todas as empresas como agregados completos
func (s *CompanyService) List(ctx context.Context, actorID string) ([]*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	return s.companyRepo.List(ctx, repositories.CompanyFilters{})
}

// ListActive retorna as empresas não arquivadas
func (s *CompanyService) ListActive(ctx context.Context, actorID string) ([]*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	archived := false
	return s.companyRepo.List(ctx, repositories.CompanyFilters{Archived: &archived})
}

// ListArchived retorna as empresas arquivadas
func (s *CompanyService) ListArchived(ctx context.Context, actorID string) ([]*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	archived := true
	return s.companyRepo.List(ctx, repositories.CompanyFilters{Archived: &archived})
}

// Get retorna uma empresa por id, como agregado completo
func (s *CompanyService) Get(ctx context.Context, actorID, id string) (*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	return company, nil
}

// UpdateCompanyInput representa os campos atualizáveis de uma empresa
type UpdateCompanyInput struct {
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
	Priority    *entities.Priority
	DueDate     *string
}

// Update aplica um update parcial nos campos cadastrais da empresa
func (s *CompanyService) Update(ctx context.Context, actorID, id string, input UpdateCompanyInput) (*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	if input.CNPJ != nil && *input.CNPJ == "" {
		return nil, errors.NewValidationError("cnpj", "cnpj is required")
	}
	if input.Porte != nil && !input.Porte.IsValid() {
		return nil, errors.NewValidationError("porte", "invalid porte")
	}
	if input.Risco != nil && !input.Risco.IsValid() {
		return nil, errors.NewValidationError("risco", "invalid risco")
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, errors.NewValidationError("priority", "invalid priority")
	}

	company, err := s.companyRepo.Update(ctx, id, repositories.CompanyUpdate{
		CNPJ:        input.CNPJ,
		NomeEmpresa: input.NomeEmpresa,
		Porte:       input.Porte,
		Estado:      input.Estado,
		Cidade:      input.Cidade,
		Endereco:    input.Endereco,
		CNAE:        input.CNAE,
		Telefone:    input.Telefone,
		Email:       input.Email,
		Abertura:    input.Abertura,
		Risco:       input.Risco,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	return company, nil
}

// ChangeStatus troca o status da empresa. Não há grafo de transições:
// qualquer valor do enum é aceito, inclusive reabrir completed→todo.
// A permissividade é intencional, não uma validação esquecida.
func (s *CompanyService) ChangeStatus(ctx context.Context, actorID, id string, status entities.CompanyStatus) (*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}
	if !status.IsValid() {
		return nil, errors.NewValidationError("status", "invalid status")
	}

	company, err := s.companyRepo.Update(ctx, id, repositories.CompanyUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	return company, nil
}

// Archive tira a empresa dos buckets ativos sem excluí-la
func (s *CompanyService) Archive(ctx context.Context, actorID, id string) (*entities.Company, error) {
	return s.setArchived(ctx, actorID, id, true)
}

// Restore devolve a empresa arquivada aos buckets ativos
func (s *CompanyService) Restore(ctx context.Context, actorID, id string) (*entities.Company, error) {
	return s.setArchived(ctx, actorID, id, false)
}

func (s *CompanyService) setArchived(ctx context.Context, actorID, id string, archived bool) (*entities.Company, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	company, err := s.companyRepo.Update(ctx, id, repositories.CompanyUpdate{Archived: &archived})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	return company, nil
}

// AttachFlowInput representa os dados para registrar um fluxo
type AttachFlowInput struct {
	Subject    entities.Subject
	NomeFluxo  entities.NomeFluxo
	CheckFluxo entities.CheckFluxo
	Observacao string
}

// AttachFlow registra um evento de verificação documental no histórico
func (s *CompanyService) AttachFlow(ctx context.Context, actorID string, input AttachFlowInput) (*entities.Flow, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	flow := &entities.Flow{
		Subject:    input.Subject,
		NomeFluxo:  input.NomeFluxo,
		CheckFluxo: input.CheckFluxo,
		Observacao: input.Observacao,
		CreatedBy:  actorID,
	}

	if err := flow.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.flowRepo.Create(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// UpdateFlowInput representa os campos editáveis de um fluxo
type UpdateFlowInput struct {
	NomeFluxo  *entities.NomeFluxo
	CheckFluxo *entities.CheckFluxo
	Observacao *string
}

// UpdateFlow edita um fluxo. Só o autor pode.
func (s *CompanyService) UpdateFlow(ctx context.Context, actorID, flowID string, input UpdateFlowInput) (*entities.Flow, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	flow, err := s.flowRepo.FindByID(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, errors.ErrFlowNotFound
	}
	if !flow.CanBeEditedBy(actorID) {
		return nil, errors.ErrForbidden
	}

	if input.NomeFluxo != nil {
		flow.NomeFluxo = *input.NomeFluxo
	}
	if input.CheckFluxo != nil {
		flow.CheckFluxo = *input.CheckFluxo
	}
	if input.Observacao != nil {
		flow.Observacao = *input.Observacao
	}

	if err := flow.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.flowRepo.Update(ctx, flow); err != nil {
		return nil, err
	}
	return flow, nil
}

// DeleteFlow exclui um fluxo. Só o autor pode.
func (s *CompanyService) DeleteFlow(ctx context.Context, actorID, flowID string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}

	flow, err := s.flowRepo.FindByID(ctx, flowID)
	if err != nil {
		return err
	}
	if flow == nil {
		return errors.ErrFlowNotFound
	}
	if !flow.CanBeEditedBy(actorID) {
		return errors.ErrForbidden
	}

	return s.flowRepo.Delete(ctx, flowID)
}

// AttachNoteInput representa os dados para registrar uma nota
type AttachNoteInput struct {
	Subject entities.Subject
	Tipo    entities.TipoNota
	Content string
}

// AttachNote registra uma anotação sobre o subject
func (s *CompanyService) AttachNote(ctx context.Context, actorID string, input AttachNoteInput) (*entities.Note, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	note := &entities.Note{
		Subject:   input.Subject,
		Tipo:      input.Tipo,
		Content:   input.Content,
		CreatedBy: actorID,
	}

	if err := note.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNoteInput representa os campos editáveis de uma nota
type UpdateNoteInput struct {
	Tipo    *entities.TipoNota
	Content *string
}

// UpdateNote edita uma nota. Só o autor pode.
func (s *CompanyService) UpdateNote(ctx context.Context, actorID, noteID string, input UpdateNoteInput) (*entities.Note, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, errors.ErrNoteNotFound
	}
	if !note.CanBeEditedBy(actorID) {
		return nil, errors.ErrForbidden
	}

	if input.Tipo != nil {
		note.Tipo = *input.Tipo
	}
	if input.Content != nil {
		note.Content = *input.Content
	}

	if err := note.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote exclui uma nota. Só o autor pode.
func (s *CompanyService) DeleteNote(ctx context.Context, actorID, noteID string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}

	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.ErrNoteNotFound
	}
	if !note.CanBeEditedBy(actorID) {
		return errors.ErrForbidden
	}

	return s.noteRepo.Delete(ctx, noteID)
}

// UpsertRepresentanteInput representa os dados do representante legal
type UpsertRepresentanteInput struct {
	Nome     string
	CPF      string
	Telefone string
	Endereco string
}

// UpsertRepresentante cria o representante legal da empresa ou, se já
// existir um, atualiza o registro existente preservando id e created_at.
// O índice único em company_id fecha a janela de corrida: inserção
// concorrente que perder a disputa recai no caminho de update.
func (s *CompanyService) UpsertRepresentante(ctx context.Context, actorID, companyID string, input UpsertRepresentanteInput) (*entities.RepresentanteLegal, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	// CPF segue a mesma regra do CNPJ da empresa: aceito como digitado
	if input.CPF == "" {
		return nil, errors.NewValidationError("cpf", "cpf is required")
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}

	var result *entities.RepresentanteLegal
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.repRepo.FindByCompany(txCtx, companyID)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Nome = input.Nome
			existing.CPF = input.CPF
			existing.Telefone = input.Telefone
			existing.Endereco = input.Endereco
			if err := existing.Validate(); err != nil {
				return errors.NewValidationError("", err.Error())
			}
			if err := s.repRepo.Update(txCtx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		rep := &entities.RepresentanteLegal{
			CompanyID: companyID,
			Nome:      input.Nome,
			CPF:       input.CPF,
			Telefone:  input.Telefone,
			Endereco:  input.Endereco,
			CreatedBy: actorID,
		}
		if err := rep.Validate(); err != nil {
			return errors.NewValidationError("", err.Error())
		}
		if err := s.repRepo.Create(txCtx, rep); err != nil {
			return err
		}
		result = rep
		return nil
	})

	if err != nil {
		// Duas submissões simultâneas: a que perdeu a disputa do índice
		// único recai no update do registro que acabou de ser criado
		if errors.IsConstraintConflict(err) {
			return s.updateExistingRepresentante(ctx, companyID, input)
		}
		return nil, err
	}

	return result, nil
}

func (s *CompanyService) updateExistingRepresentante(ctx context.Context, companyID string, input UpsertRepresentanteInput) (*entities.RepresentanteLegal, error) {
	existing, err := s.repRepo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrRepresentanteNotFound
	}

	existing.Nome = input.Nome
	existing.CPF = input.CPF
	existing.Telefone = input.Telefone
	existing.Endereco = input.Endereco

	if err := s.repRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpsertParecerInput representa os dados do parecer final
type UpsertParecerInput struct {
	Risco      entities.Risco
	Orientacao entities.Orientacao
	Parecer    string
}

// UpsertParecer cria o parecer final do subject ou atualiza o existente,
// preservando id e created_at. Mesma proteção de corrida do
// representante legal, via índices únicos parciais por subject.
func (s *CompanyService) UpsertParecer(ctx context.Context, actorID string, subject entities.Subject, input UpsertParecerInput) (*entities.ParecerFinal, error) {
	if actorID == "" {
		return nil, errors.ErrNotAuthenticated
	}

	parecer := &entities.ParecerFinal{
		Subject:    subject,
		Risco:      input.Risco,
		Orientacao: input.Orientacao,
		Parecer:    input.Parecer,
		CreatedBy:  actorID,
	}
	if err := parecer.Validate(); err != nil {
		return nil, errors.NewValidationError("", err.Error())
	}

	var result *entities.ParecerFinal
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.parecerRepo.FindBySubject(txCtx, subject)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Risco = input.Risco
			existing.Orientacao = input.Orientacao
			existing.Parecer = input.Parecer
			if err := s.parecerRepo.Update(txCtx, existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		if err := s.parecerRepo.Create(txCtx, parecer); err != nil {
			return err
		}
		result = parecer
		return nil
	})

	if err != nil {
		if errors.IsConstraintConflict(err) {
			return s.updateExistingParecer(ctx, subject, input)
		}
		return nil, err
	}

	return result, nil
}

func (s *CompanyService) updateExistingParecer(ctx context.Context, subject entities.Subject, input UpsertParecerInput) (*entities.ParecerFinal, error) {
	existing, err := s.parecerRepo.FindBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrParecerNotFound
	}

	existing.Risco = input.Risco
	existing.Orientacao = input.Orientacao
	existing.Parecer = input.Parecer

	if err := s.parecerRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteParecer exclui um parecer final. Só o autor pode.
func (s *CompanyService) DeleteParecer(ctx context.Context, actorID, parecerID string) error {
	if actorID == "" {
		return errors.ErrNotAuthenticated
	}

	parecer, err := s.parecerRepo.FindByID(ctx, parecerID)
	if err != nil {
		return err
	}
	if parecer == nil {
		return errors.ErrParecerNotFound
	}
	if parecer.CreatedBy != actorID {
		return errors.ErrForbidden
	}

	return s.parecerRepo.Delete(ctx, parecerID)
}
