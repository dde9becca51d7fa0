package entities

import (
	"errors"
	"time"
)

// CompanyStatus representa o estágio de análise de uma empresa
type CompanyStatus string

const (
	CompanyStatusTodo       CompanyStatus = "todo"
	CompanyStatusInProgress CompanyStatus = "in-progress"
	CompanyStatusCompleted  CompanyStatus = "completed"
)

// IsValid verifica se o status é um dos valores aceitos
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusTodo, CompanyStatusInProgress, CompanyStatusCompleted:
		return true
	}
	return false
}

// Priority representa a prioridade de análise
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Porte representa o porte da empresa
type Porte string

const (
	PorteMEI    Porte = "MEI"
	PorteME     Porte = "ME"
	PorteEPP    Porte = "EPP"
	PorteGrande Porte = "Grande"
)

func (p Porte) IsValid() bool {
	switch p {
	case PorteMEI, PorteME, PorteEPP, PorteGrande:
		return true
	}
	return false
}

// Risco representa o nível de risco atribuído
type Risco string

const (
	RiscoBaixo   Risco = "Baixo"
	RiscoMedio   Risco = "Médio"
	RiscoAlto    Risco = "Alto"
	RiscoCritico Risco = "Crítico"
)

func (r Risco) IsValid() bool {
	switch r {
	case RiscoBaixo, RiscoMedio, RiscoAlto, RiscoCritico:
		return true
	}
	return false
}

// Company representa uma empresa em análise de conformidade.
// É a raiz do agregado: carrega o representante legal, os fluxos de
// verificação, as notas e o parecer final vinculados diretamente a ela.
type Company struct {
	ID          string
	CNPJ        string
	NomeEmpresa string
	Porte       Porte
	Estado      string
	Cidade      string
	Endereco    string
	CNAE        string
	Telefone    string
	Email       string
	Abertura    string
	Risco       Risco
	Status      CompanyStatus
	Priority    Priority
	DueDate     string
	Archived    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Representante *RepresentanteLegal
	ParecerFinal  *ParecerFinal
	Flows         []*Flow
	Notes         []*Note

	CreatedByUser *UserRef
}

// ApplyDefaults preenche os valores iniciais de uma empresa recém-criada
func (c *Company) ApplyDefaults() {
	if c.Status == "" {
		c.Status = CompanyStatusTodo
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if c.Risco == "" {
		c.Risco = RiscoBaixo
	}
	c.Archived = false
}

// Validate valida regras de negócio da entidade Company
func (c *Company) Validate() error {
	if c.CNPJ == "" {
		return errors.New("cnpj is required")
	}
	if c.NomeEmpresa == "" {
		return errors.New("nome_empresa is required")
	}
	if c.DueDate == "" {
		return errors.New("due_date is required")
	}
	if !c.Status.IsValid() {
		return errors.New("invalid status")
	}
	if !c.Priority.IsValid() {
		return errors.New("invalid priority")
	}
	if !c.Risco.IsValid() {
		return errors.New("invalid risco")
	}
	if c.Porte != "" && !c.Porte.IsValid() {
		return errors.New("invalid porte")
	}
	return nil
}

// Buckets particiona empresas ativas por status e separa as arquivadas.
// Toda empresa ativa cai em exatamente um dos três buckets.
type Buckets struct {
	Todo       []*Company
	InProgress []*Company
	Completed  []*Company
	Archived   []*Company
}

// PartitionCompanies separa a coleção em buckets de status e arquivadas
func PartitionCompanies(companies []*Company) Buckets {
	var b Buckets
	for _, c := range companies {
		if c.Archived {
			b.Archived = append(b.Archived, c)
			continue
		}
		switch c.Status {
		case CompanyStatusInProgress:
			b.InProgress = append(b.InProgress, c)
		case CompanyStatusCompleted:
			b.Completed = append(b.Completed, c)
		default:
			b.Todo = append(b.Todo, c)
		}
	}
	return b
}
