package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/handlers/dto"
	"github.com/ccjb/compliance-backend/internal/handlers/middleware"
	"github.com/ccjb/compliance-backend/internal/services"
)

// CompanyHandler lida com requisições HTTP da análise de conformidade:
// empresas, fluxos, notas, representante legal e parecer final
type CompanyHandler struct {
	companyService *services.CompanyService
	logger         ports.Logger
}

// NewCompanyHandler cria um novo CompanyHandler
func NewCompanyHandler(companyService *services.CompanyService, logger ports.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		logger:         logger,
	}
}

// CreateCompany cria uma nova empresa
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), middleware.ActorID(c), services.CreateCompanyInput{
		CNPJ:        req.CNPJ,
		NomeEmpresa: req.NomeEmpresa,
		Porte:       entities.Porte(req.Porte),
		Estado:      req.Estado,
		Cidade:      req.Cidade,
		Endereco:    req.Endereco,
		CNAE:        req.CNAE,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Abertura:    req.Abertura,
		Priority:    entities.Priority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// ListCompanies lista empresas. ?archived=true|false filtra por
// arquivamento. Falha de leitura degrada para lista vazia: o quadro
// carrega mesmo com o banco instável.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	actorID := middleware.ActorID(c)

	var companies []*entities.Company
	var err error

	switch c.Query("archived") {
	case "true":
		companies, err = h.companyService.ListArchived(c.Request.Context(), actorID)
	case "false":
		companies, err = h.companyService.ListActive(c.Request.Context(), actorID)
	default:
		companies, err = h.companyService.List(c.Request.Context(), actorID)
	}

	if err != nil {
		h.logger.Warn("company listing degraded to empty", "error", err)
		c.JSON(http.StatusOK, []dto.CompanyResponse{})
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponses(companies))
}

// ListBuckets lista empresas agrupadas por estágio de análise
func (h *CompanyHandler) ListBuckets(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		h.logger.Warn("company buckets degraded to empty", "error", err)
		c.JSON(http.StatusOK, dto.ToBucketsResponse(nil))
		return
	}

	c.JSON(http.StatusOK, dto.ToBucketsResponse(companies))
}

// GetCompany busca uma empresa por ID
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.Get(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// UpdateCompany aplica um update parcial em uma empresa
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	input := services.UpdateCompanyInput{
		CNPJ:        req.CNPJ,
		NomeEmpresa: req.NomeEmpresa,
		Estado:      req.Estado,
		Cidade:      req.Cidade,
		Endereco:    req.Endereco,
		CNAE:        req.CNAE,
		Telefone:    req.Telefone,
		Email:       req.Email,
		Abertura:    req.Abertura,
		DueDate:     req.DueDate,
	}
	if req.Porte != nil {
		porte := entities.Porte(*req.Porte)
		input.Porte = &porte
	}
	if req.Risco != nil {
		risco := entities.Risco(*req.Risco)
		input.Risco = &risco
	}
	if req.Priority != nil {
		priority := entities.Priority(*req.Priority)
		input.Priority = &priority
	}

	company, err := h.companyService.Update(c.Request.Context(), middleware.ActorID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// ChangeCompanyStatus troca o estágio de análise da empresa
func (h *CompanyHandler) ChangeCompanyStatus(c *gin.Context) {
	var req dto.ChangeCompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	company, err := h.companyService.ChangeStatus(
		c.Request.Context(),
		middleware.ActorID(c),
		c.Param("id"),
		entities.CompanyStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// ArchiveCompany arquiva uma empresa
func (h *CompanyHandler) ArchiveCompany(c *gin.Context) {
	company, err := h.companyService.Archive(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// RestoreCompany restaura uma empresa arquivada
func (h *CompanyHandler) RestoreCompany(c *gin.Context) {
	company, err := h.companyService.Restore(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// CreateFlow registra um fluxo de verificação documental
func (h *CompanyHandler) CreateFlow(c *gin.Context) {
	var req dto.CreateFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	flow, err := h.companyService.AttachFlow(c.Request.Context(), middleware.ActorID(c), services.AttachFlowInput{
		Subject:    req.Subject.ToSubject(),
		NomeFluxo:  entities.NomeFluxo(req.NomeFluxo),
		CheckFluxo: entities.CheckFluxo(req.CheckFluxo),
		Observacao: req.Observacao,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFlowResponse(flow))
}

// UpdateFlow edita um fluxo (somente o autor)
func (h *CompanyHandler) UpdateFlow(c *gin.Context) {
	var req dto.UpdateFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	input := services.UpdateFlowInput{Observacao: req.Observacao}
	if req.NomeFluxo != nil {
		nome := entities.NomeFluxo(*req.NomeFluxo)
		input.NomeFluxo = &nome
	}
	if req.CheckFluxo != nil {
		check := entities.CheckFluxo(*req.CheckFluxo)
		input.CheckFluxo = &check
	}

	flow, err := h.companyService.UpdateFlow(c.Request.Context(), middleware.ActorID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFlowResponse(flow))
}

// DeleteFlow exclui um fluxo (somente o autor)
func (h *CompanyHandler) DeleteFlow(c *gin.Context) {
	if err := h.companyService.DeleteFlow(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateNote registra uma nota
func (h *CompanyHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	note, err := h.companyService.AttachNote(c.Request.Context(), middleware.ActorID(c), services.AttachNoteInput{
		Subject: req.Subject.ToSubject(),
		Tipo:    entities.TipoNota(req.Tipo),
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// UpdateNote edita uma nota (somente o autor)
func (h *CompanyHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	input := services.UpdateNoteInput{Content: req.Content}
	if req.Tipo != nil {
		tipo := entities.TipoNota(*req.Tipo)
		input.Tipo = &tipo
	}

	note, err := h.companyService.UpdateNote(c.Request.Context(), middleware.ActorID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// DeleteNote exclui uma nota (somente o autor)
func (h *CompanyHandler) DeleteNote(c *gin.Context) {
	if err := h.companyService.DeleteNote(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpsertRepresentante cria ou atualiza o representante legal da empresa
func (h *CompanyHandler) UpsertRepresentante(c *gin.Context) {
	var req dto.UpsertRepresentanteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	rep, err := h.companyService.UpsertRepresentante(
		c.Request.Context(),
		middleware.ActorID(c),
		c.Param("id"),
		services.UpsertRepresentanteInput{
			Nome:     req.Nome,
			CPF:      req.CPF,
			Telefone: req.Telefone,
			Endereco: req.Endereco,
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRepresentanteResponse(rep))
}

// UpsertParecer cria ou atualiza o parecer final de um subject
func (h *CompanyHandler) UpsertParecer(c *gin.Context) {
	var req dto.UpsertParecerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingErrorResponse(c)
		return
	}

	parecer, err := h.companyService.UpsertParecer(
		c.Request.Context(),
		middleware.ActorID(c),
		req.Subject.ToSubject(),
		services.UpsertParecerInput{
			Risco:      entities.Risco(req.Risco),
			Orientacao: entities.Orientacao(req.Orientacao),
			Parecer:    req.Parecer,
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParecerResponse(parecer))
}

// DeleteParecer exclui um parecer final (somente o autor)
func (h *CompanyHandler) DeleteParecer(c *gin.Context) {
	if err := h.companyService.DeleteParecer(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
