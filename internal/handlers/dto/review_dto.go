package dto

import (
	"time"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// CreateFlowRequest representa a requisição para registrar um fluxo
type CreateFlowRequest struct {
	Subject    SubjectRequest `json:"subject" binding:"required"`
	NomeFluxo  string         `json:"nome_fluxo" binding:"required"`
	CheckFluxo string         `json:"check_fluxo" binding:"required"`
	Observacao string         `json:"observacao" binding:"omitempty,max=2000"`
}

// UpdateFlowRequest representa a requisição para editar um fluxo
type UpdateFlowRequest struct {
	NomeFluxo  *string `json:"nome_fluxo" binding:"omitempty"`
	CheckFluxo *string `json:"check_fluxo" binding:"omitempty"`
	Observacao *string `json:"observacao" binding:"omitempty,max=2000"`
}

// FlowResponse representa a resposta de um fluxo de verificação
type FlowResponse struct {
	ID              string           `json:"id"`
	CompanyID       *string          `json:"company_id,omitempty"`
	RepresentanteID *string          `json:"representante_legal_id,omitempty"`
	NomeFluxo       string           `json:"nome_fluxo"`
	CheckFluxo      string           `json:"check_fluxo"`
	Observacao      string           `json:"observacao,omitempty"`
	CreatedBy       string           `json:"created_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	User            *UserRefResponse `json:"user,omitempty"`
}

// ToFlowResponse converte uma entidade Flow para FlowResponse
func ToFlowResponse(flow *entities.Flow) FlowResponse {
	return FlowResponse{
		ID:              flow.ID,
		CompanyID:       flow.Subject.CompanyID,
		RepresentanteID: flow.Subject.RepresentanteID,
		NomeFluxo:       string(flow.NomeFluxo),
		CheckFluxo:      string(flow.CheckFluxo),
		Observacao:      flow.Observacao,
		CreatedBy:       flow.CreatedBy,
		CreatedAt:       flow.CreatedAt,
		UpdatedAt:       flow.UpdatedAt,
		User:            ToUserRefResponse(flow.User),
	}
}

// ToFlowResponses converte uma lista de entidades Flow
func ToFlowResponses(flows []*entities.Flow) []FlowResponse {
	responses := make([]FlowResponse, len(flows))
	for i, flow := range flows {
		responses[i] = ToFlowResponse(flow)
	}
	return responses
}

// CreateNoteRequest representa a requisição para registrar uma nota
type CreateNoteRequest struct {
	Subject SubjectRequest `json:"subject" binding:"required"`
	Tipo    string         `json:"tipo" binding:"required"`
	Content string         `json:"content" binding:"required,max=5000"`
}

// UpdateNoteRequest representa a requisição para editar uma nota
type UpdateNoteRequest struct {
	Tipo    *string `json:"tipo" binding:"omitempty"`
	Content *string `json:"content" binding:"omitempty,min=1,max=5000"`
}

// NoteResponse representa a resposta de uma nota
type NoteResponse struct {
	ID              string           `json:"id"`
	CompanyID       *string          `json:"company_id,omitempty"`
	RepresentanteID *string          `json:"representante_legal_id,omitempty"`
	Tipo            string           `json:"tipo"`
	Content         string           `json:"content"`
	CreatedBy       string           `json:"created_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	User            *UserRefResponse `json:"user,omitempty"`
}

// ToNoteResponse converte uma entidade Note para NoteResponse
func ToNoteResponse(note *entities.Note) NoteResponse {
	return NoteResponse{
		ID:              note.ID,
		CompanyID:       note.Subject.CompanyID,
		RepresentanteID: note.Subject.RepresentanteID,
		Tipo:            string(note.Tipo),
		Content:         note.Content,
		CreatedBy:       note.CreatedBy,
		CreatedAt:       note.CreatedAt,
		UpdatedAt:       note.UpdatedAt,
		User:            ToUserRefResponse(note.User),
	}
}

// ToNoteResponses converte uma lista de entidades Note
func ToNoteResponses(notes []*entities.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}

// UpsertRepresentanteRequest representa a requisição do representante legal
type UpsertRepresentanteRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=255"`
	CPF      string `json:"cpf" binding:"required,max=20"`
	Telefone string `json:"telefone" binding:"omitempty,max=20"`
	Endereco string `json:"endereco" binding:"omitempty,max=255"`
}

// RepresentanteResponse representa a resposta de um representante legal
type RepresentanteResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Nome      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Telefone  string    `json:"telefone,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParecerFinal *ParecerResponse `json:"parecer_final,omitempty"`
	Flows        []FlowResponse   `json:"flows"`
	Notes        []NoteResponse   `json:"notes"`
}

// ToRepresentanteResponse converte uma entidade RepresentanteLegal
func ToRepresentanteResponse(rep *entities.RepresentanteLegal) RepresentanteResponse {
	response := RepresentanteResponse{
		ID:        rep.ID,
		CompanyID: rep.CompanyID,
		Nome:      rep.Nome,
		CPF:       rep.CPF,
		Telefone:  rep.Telefone,
		Endereco:  rep.Endereco,
		CreatedBy: rep.CreatedBy,
		CreatedAt: rep.CreatedAt,
		UpdatedAt: rep.UpdatedAt,
		Flows:     ToFlowResponses(rep.Flows),
		Notes:     ToNoteResponses(rep.Notes),
	}

	if rep.ParecerFinal != nil {
		parecer := ToParecerResponse(rep.ParecerFinal)
		response.ParecerFinal = &parecer
	}
	return response
}

// UpsertParecerRequest representa a requisição do parecer final
type UpsertParecerRequest struct {
	Subject    SubjectRequest `json:"subject" binding:"required"`
	Risco      string         `json:"risco" binding:"required,oneof=Baixo Médio Alto Crítico"`
	Orientacao string         `json:"orientacao" binding:"required,oneof=Aprovar Rejeitar"`
	Parecer    string         `json:"parecer" binding:"required,max=5000"`
}

// ParecerResponse representa a resposta de um parecer final
type ParecerResponse struct {
	ID              string           `json:"id"`
	CompanyID       *string          `json:"company_id,omitempty"`
	RepresentanteID *string          `json:"representante_legal_id,omitempty"`
	Risco           string           `json:"risco"`
	Orientacao      string           `json:"orientacao"`
	Parecer         string           `json:"parecer"`
	CreatedBy       string           `json:"created_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	User            *UserRefResponse `json:"user,omitempty"`
}

// ToParecerResponse converte uma entidade ParecerFinal
func ToParecerResponse(parecer *entities.ParecerFinal) ParecerResponse {
	return ParecerResponse{
		ID:              parecer.ID,
		CompanyID:       parecer.Subject.CompanyID,
		RepresentanteID: parecer.Subject.RepresentanteID,
		Risco:           string(parecer.Risco),
		Orientacao:      string(parecer.Orientacao),
		Parecer:         parecer.Parecer,
		CreatedBy:       parecer.CreatedBy,
		CreatedAt:       parecer.CreatedAt,
		UpdatedAt:       parecer.UpdatedAt,
		User:            ToUserRefResponse(parecer.User),
	}
}
