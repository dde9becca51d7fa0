package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/errors"
)

// CNPJ válido usado nos testes (dígitos verificadores corretos)
const validCNPJ = "11.222.333/0001-81"

// CPF válido usado nos testes
const validCPF = "529.982.247-25"

var _ = Describe("CompanyService", func() {
	var (
		ctx         context.Context
		companyRepo *fakeCompanyRepo
		repRepo     *fakeRepresentanteRepo
		flowRepo    *fakeFlowRepo
		noteRepo    *fakeNoteRepo
		parecerRepo *fakeParecerRepo
		service     *CompanyService
	)

	BeforeEach(func() {
		ctx = context.Background()
		companyRepo = newFakeCompanyRepo()
		repRepo = newFakeRepresentanteRepo()
		flowRepo = newFakeFlowRepo()
		noteRepo = newFakeNoteRepo()
		parecerRepo = newFakeParecerRepo()
		service = NewCompanyService(companyRepo, repRepo, flowRepo, noteRepo, parecerRepo, fakeUnitOfWork{}, fakeLogger{})
	})

	createCompany := func() *entities.Company {
		company, err := service.Create(ctx, "user-1", CreateCompanyInput{
			CNPJ:        validCNPJ,
			NomeEmpresa: "Acme Ltda",
			DueDate:     "2026-12-31",
		})
		Expect(err).NotTo(HaveOccurred())
		return company
	}

	Describe("Create", func() {
		It("aplica os defaults de análise", func() {
			company := createCompany()

			Expect(company.ID).NotTo(BeEmpty())
			Expect(company.Status).To(Equal(entities.CompanyStatusTodo))
			Expect(company.Priority).To(Equal(entities.PriorityMedium))
			Expect(company.Risco).To(Equal(entities.RiscoBaixo))
			Expect(company.Archived).To(BeFalse())
			Expect(company.CreatedBy).To(Equal("user-1"))
		})

		It("aceita CNPJ como digitado, mesmo sem dígito verificador válido", func() {
			// O cadastro legado contém CNPJs que não passam no algoritmo
			// de dígito verificador; eles continuam sendo aceitos
			company, err := service.Create(ctx, "user-1", CreateCompanyInput{
				CNPJ:        "12.345.678/0001-99",
				NomeEmpresa: "Acme Ltda",
				DueDate:     "2025-12-31",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(company.CNPJ).To(Equal("12.345.678/0001-99"))
			Expect(company.Status).To(Equal(entities.CompanyStatusTodo))
			Expect(company.Risco).To(Equal(entities.RiscoBaixo))
			Expect(company.Archived).To(BeFalse())
		})

		It("rejeita CNPJ vazio", func() {
			_, err := service.Create(ctx, "user-1", CreateCompanyInput{
				NomeEmpresa: "Acme Ltda",
				DueDate:     "2026-12-31",
			})

			var validationErr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})

		It("exige ator autenticado", func() {
			_, err := service.Create(ctx, "", CreateCompanyInput{
				CNPJ:        validCNPJ,
				NomeEmpresa: "Acme Ltda",
				DueDate:     "2026-12-31",
			})
			Expect(err).To(MatchError(errors.ErrNotAuthenticated))
		})
	})

	Describe("ChangeStatus", func() {
		It("aceita qualquer valor do enum, inclusive reabertura", func() {
			company := createCompany()

			updated, err := service.ChangeStatus(ctx, "user-1", company.ID, entities.CompanyStatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.CompanyStatusCompleted))

			reopened, err := service.ChangeStatus(ctx, "user-1", company.ID, entities.CompanyStatusTodo)
			Expect(err).NotTo(HaveOccurred())
			Expect(reopened.Status).To(Equal(entities.CompanyStatusTodo))
		})

		It("rejeita status fora do enum", func() {
			company := createCompany()

			_, err := service.ChangeStatus(ctx, "user-1", company.ID, entities.CompanyStatus("done"))
			var validationErr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})

		It("retorna not found para empresa inexistente", func() {
			_, err := service.ChangeStatus(ctx, "user-1", "missing", entities.CompanyStatusCompleted)
			Expect(err).To(MatchError(errors.ErrCompanyNotFound))
		})
	})

	Describe("Archive e Restore", func() {
		It("arquiva e restaura sem perder o status", func() {
			company := createCompany()
			_, err := service.ChangeStatus(ctx, "user-1", company.ID, entities.CompanyStatusInProgress)
			Expect(err).NotTo(HaveOccurred())

			archived, err := service.Archive(ctx, "user-1", company.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(archived.Archived).To(BeTrue())
			Expect(archived.Status).To(Equal(entities.CompanyStatusInProgress))

			restored, err := service.Restore(ctx, "user-1", company.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(restored.Archived).To(BeFalse())
			Expect(restored.Status).To(Equal(entities.CompanyStatusInProgress))
		})
	})

	Describe("Flows", func() {
		It("registra fluxo para empresa", func() {
			company := createCompany()

			flow, err := service.AttachFlow(ctx, "user-1", AttachFlowInput{
				Subject:    entities.NewCompanySubject(company.ID),
				NomeFluxo:  entities.FluxoContratoSocial,
				CheckFluxo: entities.CheckValido,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(flow.ID).NotTo(BeEmpty())
			Expect(flow.CreatedBy).To(Equal("user-1"))
		})

		It("rejeita subject com os dois lados preenchidos", func() {
			_, err := service.AttachFlow(ctx, "user-1", AttachFlowInput{
				Subject: entities.Subject{
					CompanyID:       strPtr("company-1"),
					RepresentanteID: strPtr("rep-1"),
				},
				NomeFluxo:  entities.FluxoCNPJ,
				CheckFluxo: entities.CheckValido,
			})
			var validationErr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})

		It("só o autor edita", func() {
			company := createCompany()
			flow, err := service.AttachFlow(ctx, "user-1", AttachFlowInput{
				Subject:    entities.NewCompanySubject(company.ID),
				NomeFluxo:  entities.FluxoCNPJ,
				CheckFluxo: entities.CheckValido,
			})
			Expect(err).NotTo(HaveOccurred())

			obs := "documento vencido"
			_, err = service.UpdateFlow(ctx, "user-2", flow.ID, UpdateFlowInput{Observacao: &obs})
			Expect(err).To(MatchError(errors.ErrForbidden))
		})

		It("só o autor exclui", func() {
			company := createCompany()
			flow, err := service.AttachFlow(ctx, "user-1", AttachFlowInput{
				Subject:    entities.NewCompanySubject(company.ID),
				NomeFluxo:  entities.FluxoCNPJ,
				CheckFluxo: entities.CheckValido,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteFlow(ctx, "user-2", flow.ID)).To(MatchError(errors.ErrForbidden))
			Expect(service.DeleteFlow(ctx, "user-1", flow.ID)).To(Succeed())
		})
	})

	Describe("Notes", func() {
		It("registra e edita nota pelo autor", func() {
			company := createCompany()
			note, err := service.AttachNote(ctx, "user-1", AttachNoteInput{
				Subject: entities.NewCompanySubject(company.ID),
				Tipo:    entities.NotaPendencia,
				Content: "falta contrato social",
			})
			Expect(err).NotTo(HaveOccurred())

			content := "documentação completa"
			updated, err := service.UpdateNote(ctx, "user-1", note.ID, UpdateNoteInput{Content: &content})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Content).To(Equal(content))
		})

		It("rejeita nota sem conteúdo", func() {
			company := createCompany()
			_, err := service.AttachNote(ctx, "user-1", AttachNoteInput{
				Subject: entities.NewCompanySubject(company.ID),
				Tipo:    entities.NotaAviso,
			})
			var validationErr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})
	})

	Describe("UpsertRepresentante", func() {
		It("cria na primeira chamada e atualiza nas seguintes", func() {
			company := createCompany()

			rep, err := service.UpsertRepresentante(ctx, "user-1", company.ID, UpsertRepresentanteInput{
				Nome: "Maria Silva",
				CPF:  validCPF,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.ID).NotTo(BeEmpty())

			updated, err := service.UpsertRepresentante(ctx, "user-1", company.ID, UpsertRepresentanteInput{
				Nome:     "Maria Silva Santos",
				CPF:      validCPF,
				Telefone: "11999990000",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(rep.ID))
			Expect(updated.Nome).To(Equal("Maria Silva Santos"))
		})

		It("recai no update quando perde a disputa do índice único", func() {
			company := createCompany()

			// Outro processo criou o representante entre o find e o create
			repRepo.errOnCreate = errors.ErrConstraintConflict
			concurrent := &entities.RepresentanteLegal{
				ID:        "rep-concurrent",
				CompanyID: company.ID,
				Nome:      "João Souza",
				CPF:       validCPF,
				CreatedBy: "user-2",
			}
			repRepo.reps[concurrent.ID] = concurrent

			rep, err := service.UpsertRepresentante(ctx, "user-1", company.ID, UpsertRepresentanteInput{
				Nome: "Maria Silva",
				CPF:  validCPF,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.ID).To(Equal("rep-concurrent"))
			Expect(rep.Nome).To(Equal("Maria Silva"))
		})

		It("aceita CPF como digitado, mesmo sem dígito verificador válido", func() {
			company := createCompany()
			rep, err := service.UpsertRepresentante(ctx, "user-1", company.ID, UpsertRepresentanteInput{
				Nome: "Maria Silva",
				CPF:  "529.982.247-24",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.CPF).To(Equal("529.982.247-24"))
		})

		It("rejeita CPF vazio", func() {
			company := createCompany()
			_, err := service.UpsertRepresentante(ctx, "user-1", company.ID, UpsertRepresentanteInput{
				Nome: "Maria Silva",
			})
			var validationErr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})

		It("exige empresa existente", func() {
			_, err := service.UpsertRepresentante(ctx, "user-1", "missing", UpsertRepresentanteInput{
				Nome: "Maria Silva",
				CPF:  validCPF,
			})
			Expect(err).To(MatchError(errors.ErrCompanyNotFound))
		})
	})

	Describe("UpsertParecer", func() {
		It("mantém no máximo um parecer por subject", func() {
			company := createCompany()
			subject := entities.NewCompanySubject(company.ID)

			first, err := service.UpsertParecer(ctx, "user-1", subject, UpsertParecerInput{
				Risco:      entities.RiscoAlto,
				Orientacao: entities.OrientacaoRejeitar,
				Parecer:    "pendências graves",
			})
			Expect(err).NotTo(HaveOccurred())

			second, err := service.UpsertParecer(ctx, "user-1", subject, UpsertParecerInput{
				Risco:      entities.RiscoBaixo,
				Orientacao: entities.OrientacaoAprovar,
				Parecer:    "pendências sanadas",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.Risco).To(Equal(entities.RiscoBaixo))
		})

		It("rejeita risco Crítico para representante legal", func() {
			_, err := service.UpsertParecer(ctx, "user-1", entities.NewRepresentanteSubject("rep-1"), UpsertParecerInput{
				Risco:      entities.RiscoCritico,
				Orientacao: entities.OrientacaoRejeitar,
				Parecer:    "antecedentes",
			})
			var validationErr *errors.ValidationError
			Expect(err).To(BeAssignableToTypeOf(validationErr))
		})

		It("aceita risco Crítico para empresa", func() {
			company := createCompany()
			_, err := service.UpsertParecer(ctx, "user-1", entities.NewCompanySubject(company.ID), UpsertParecerInput{
				Risco:      entities.RiscoCritico,
				Orientacao: entities.OrientacaoRejeitar,
				Parecer:    "empresa de fachada",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("recai no update quando perde a disputa do índice único", func() {
			company := createCompany()
			subject := entities.NewCompanySubject(company.ID)

			parecerRepo.errOnCreate = errors.ErrConstraintConflict
			concurrent := &entities.ParecerFinal{
				ID:         "parecer-concurrent",
				Subject:    subject,
				Risco:      entities.RiscoMedio,
				Orientacao: entities.OrientacaoAprovar,
				Parecer:    "sem restrições",
				CreatedBy:  "user-2",
			}
			parecerRepo.pareceres[concurrent.ID] = concurrent

			parecer, err := service.UpsertParecer(ctx, "user-1", subject, UpsertParecerInput{
				Risco:      entities.RiscoAlto,
				Orientacao: entities.OrientacaoRejeitar,
				Parecer:    "novas pendências",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(parecer.ID).To(Equal("parecer-concurrent"))
			Expect(parecer.Risco).To(Equal(entities.RiscoAlto))
		})
	})

	Describe("DeleteParecer", func() {
		It("só o autor exclui", func() {
			company := createCompany()
			parecer, err := service.UpsertParecer(ctx, "user-1", entities.NewCompanySubject(company.ID), UpsertParecerInput{
				Risco:      entities.RiscoBaixo,
				Orientacao: entities.OrientacaoAprovar,
				Parecer:    "sem restrições",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteParecer(ctx, "user-2", parecer.ID)).To(MatchError(errors.ErrForbidden))
			Expect(service.DeleteParecer(ctx, "user-1", parecer.ID)).To(Succeed())
		})
	})
})

func strPtr(s string) *string {
	return &s
}
