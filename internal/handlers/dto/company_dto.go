package dto

import (
	"time"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
)

// SubjectRequest identifica o dono de um fluxo, nota ou parecer:
// exatamente um dos dois campos deve vir preenchido
type SubjectRequest struct {
	CompanyID       *string `json:"company_id" binding:"omitempty,uuid"`
	RepresentanteID *string `json:"representante_legal_id" binding:"omitempty,uuid"`
}

// ToSubject converte o request para o value object de domínio
func (r SubjectRequest) ToSubject() entities.Subject {
	return entities.Subject{
		CompanyID:       r.CompanyID,
		RepresentanteID: r.RepresentanteID,
	}
}

// CreateCompanyRequest representa a requisição para criar uma empresa.
// O CNPJ não passa por validação de dígito verificador: o cadastro
// aceita o valor como digitado, como no sistema de origem.
type CreateCompanyRequest struct {
	CNPJ        string `json:"cnpj" binding:"required,max=20"`
	NomeEmpresa string `json:"nome_empresa" binding:"required,min=2,max=255"`
	Porte       string `json:"porte" binding:"omitempty,oneof=MEI ME EPP Grande"`
	Estado      string `json:"estado" binding:"omitempty,max=2"`
	Cidade      string `json:"cidade" binding:"omitempty,max=100"`
	Endereco    string `json:"endereco" binding:"omitempty,max=255"`
	CNAE        string `json:"cnae" binding:"omitempty,max=20"`
	Telefone    string `json:"telefone" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	Abertura    string `json:"abertura" binding:"omitempty"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date" binding:"required"`
}

// UpdateCompanyRequest representa a requisição de atualização parcial
type UpdateCompanyRequest struct {
	CNPJ        *string `json:"cnpj" binding:"omitempty,min=1,max=20"`
	NomeEmpresa *string `json:"nome_empresa" binding:"omitempty,min=2,max=255"`
	Porte       *string `json:"porte" binding:"omitempty,oneof=MEI ME EPP Grande"`
	Estado      *string `json:"estado" binding:"omitempty,max=2"`
	Cidade      *string `json:"cidade" binding:"omitempty,max=100"`
	Endereco    *string `json:"endereco" binding:"omitempty,max=255"`
	CNAE        *string `json:"cnae" binding:"omitempty,max=20"`
	Telefone    *string `json:"telefone" binding:"omitempty,max=20"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Abertura    *string `json:"abertura" binding:"omitempty"`
	Risco       *string `json:"risco" binding:"omitempty,oneof=Baixo Médio Alto Crítico"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date" binding:"omitempty"`
}

// ChangeCompanyStatusRequest representa a requisição de troca de status
type ChangeCompanyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in-progress completed"`
}

// CompanyResponse representa a resposta de uma empresa com o agregado completo
type CompanyResponse struct {
	ID          string    `json:"id"`
	CNPJ        string    `json:"cnpj"`
	NomeEmpresa string    `json:"nome_empresa"`
	Porte       string    `json:"porte,omitempty"`
	Estado      string    `json:"estado,omitempty"`
	Cidade      string    `json:"cidade,omitempty"`
	Endereco    string    `json:"endereco,omitempty"`
	CNAE        string    `json:"cnae,omitempty"`
	Telefone    string    `json:"telefone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Abertura    string    `json:"abertura,omitempty"`
	Risco       string    `json:"risco"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"due_date"`
	Archived    bool      `json:"archived"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	RepresentanteLegal *RepresentanteResponse `json:"representante_legal,omitempty"`
	ParecerFinal       *ParecerResponse       `json:"parecer_final,omitempty"`
	Flows              []FlowResponse         `json:"flows"`
	Notes              []NoteResponse         `json:"notes"`

	CreatedByUser *UserRefResponse `json:"created_by_user,omitempty"`
}

// BucketsResponse agrupa as empresas por estágio de análise
type BucketsResponse struct {
	Todo       []CompanyResponse `json:"todo"`
	InProgress []CompanyResponse `json:"in_progress"`
	Completed  []CompanyResponse `json:"completed"`
	Archived   []CompanyResponse `json:"archived"`
}

// UserRefResponse é a projeção enxuta de usuário embutida nas respostas
type UserRefResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// ToUserRefResponse converte a projeção de usuário
func ToUserRefResponse(ref *entities.UserRef) *UserRefResponse {
	if ref == nil {
		return nil
	}
	return &UserRefResponse{
		ID:        ref.ID,
		Name:      ref.Name,
		Email:     ref.Email,
		AvatarURL: ref.AvatarURL,
	}
}

// ToCompanyResponse converte uma entidade Company para CompanyResponse
func ToCompanyResponse(company *entities.Company) CompanyResponse {
	response := CompanyResponse{
		ID:            company.ID,
		CNPJ:          company.CNPJ,
		NomeEmpresa:   company.NomeEmpresa,
		Porte:         string(company.Porte),
		Estado:        company.Estado,
		Cidade:        company.Cidade,
		Endereco:      company.Endereco,
		CNAE:          company.CNAE,
		Telefone:      company.Telefone,
		Email:         company.Email,
		Abertura:      company.Abertura,
		Risco:         string(company.Risco),
		Status:        string(company.Status),
		Priority:      string(company.Priority),
		DueDate:       company.DueDate,
		Archived:      company.Archived,
		CreatedBy:     company.CreatedBy,
		CreatedAt:     company.CreatedAt,
		UpdatedAt:     company.UpdatedAt,
		Flows:         ToFlowResponses(company.Flows),
		Notes:         ToNoteResponses(company.Notes),
		CreatedByUser: ToUserRefResponse(company.CreatedByUser),
	}

	if company.Representante != nil {
		rep := ToRepresentanteResponse(company.Representante)
		response.RepresentanteLegal = &rep
	}
	if company.ParecerFinal != nil {
		parecer := ToParecerResponse(company.ParecerFinal)
		response.ParecerFinal = &parecer
	}
	return response
}

// ToCompanyResponses converte uma lista de entidades Company
func ToCompanyResponses(companies []*entities.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = ToCompanyResponse(company)
	}
	return responses
}

// ToBucketsResponse agrupa empresas por status e arquivamento
func ToBucketsResponse(companies []*entities.Company) BucketsResponse {
	buckets := entities.PartitionCompanies(companies)
	return BucketsResponse{
		Todo:       ToCompanyResponses(buckets.Todo),
		InProgress: ToCompanyResponses(buckets.InProgress),
		Completed:  ToCompanyResponses(buckets.Completed),
		Archived:   ToCompanyResponses(buckets.Archived),
	}
}
