package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string  `gorm:"type:varchar(500);not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         string  `gorm:"type:varchar(50);not null;index"`
	AvatarURL    *string `gorm:"type:varchar(500)"`
	CreatedAt    int64   `gorm:"autoCreateTime;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// CompanyModel é o model GORM para empresas
type CompanyModel struct {
	ID          string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CNPJ        string `gorm:"type:varchar(18);uniqueIndex;not null"`
	NomeEmpresa string `gorm:"type:varchar(500);not null"`
	Porte       string `gorm:"type:varchar(20)"`
	Estado      string `gorm:"type:varchar(2)"`
	Cidade      string `gorm:"type:varchar(255)"`
	Endereco    string `gorm:"type:varchar(500)"`
	CNAE        string `gorm:"type:varchar(20)"`
	Telefone    string `gorm:"type:varchar(30)"`
	Email       string `gorm:"type:varchar(255)"`
	Abertura    string `gorm:"type:varchar(20)"`
	Risco       string `gorm:"type:varchar(20);not null"`
	Status      string `gorm:"type:varchar(20);not null;index"`
	Priority    string `gorm:"type:varchar(10);not null"`
	DueDate     string `gorm:"type:varchar(20);not null"`
	Archived    bool   `gorm:"not null;default:false;index"`
	CreatedBy   string `gorm:"type:uuid;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

// RepresentanteModel é o model GORM para representantes legais.
// O uniqueIndex em company_id sustenta o invariante de no máximo um
// representante por empresa mesmo sob submissões concorrentes.
type RepresentanteModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyID string `gorm:"type:uuid;uniqueIndex;not null"`
	Nome      string `gorm:"type:varchar(500);not null"`
	CPF       string `gorm:"type:varchar(14);not null"`
	Telefone  string `gorm:"type:varchar(30)"`
	Endereco  string `gorm:"type:varchar(500)"`
	CreatedBy string `gorm:"type:uuid;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (RepresentanteModel) TableName() string {
	return "representantes_legais"
}

// FlowModel é o model GORM para fluxos de verificação.
// Exatamente um entre company_id e representante_legal_id é preenchido.
type FlowModel struct {
	ID                   string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyID            *string `gorm:"type:uuid;index"`
	RepresentanteLegalID *string `gorm:"type:uuid;index"`
	NomeFluxo            string  `gorm:"type:varchar(50);not null"`
	CheckFluxo           string  `gorm:"type:varchar(20);not null"`
	Observacao           string  `gorm:"type:text"`
	CreatedBy            string  `gorm:"type:uuid;not null"`
	CreatedAt            int64   `gorm:"autoCreateTime;index"`
	UpdatedAt            int64   `gorm:"autoUpdateTime"`
}

func (FlowModel) TableName() string {
	return "flows"
}

// NoteModel é o model GORM para notas
type NoteModel struct {
	ID                   string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyID            *string `gorm:"type:uuid;index"`
	RepresentanteLegalID *string `gorm:"type:uuid;index"`
	Tipo                 string  `gorm:"type:varchar(50);not null"`
	Content              string  `gorm:"type:text;not null"`
	CreatedBy            string  `gorm:"type:uuid;not null"`
	CreatedAt            int64   `gorm:"autoCreateTime;index"`
	UpdatedAt            int64   `gorm:"autoUpdateTime"`
}

func (NoteModel) TableName() string {
	return "notes"
}

// ParecerModel é o model GORM para pareceres finais.
// Os índices únicos parciais garantem no máximo um parecer por subject
// (empresa ou representante legal) sob concorrência.
type ParecerModel struct {
	ID                   string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyID            *string `gorm:"type:uuid;uniqueIndex:ux_parecer_company,where:company_id IS NOT NULL"`
	RepresentanteLegalID *string `gorm:"type:uuid;uniqueIndex:ux_parecer_representante,where:representante_legal_id IS NOT NULL"`
	Risco                string  `gorm:"type:varchar(20);not null"`
	Orientacao           string  `gorm:"type:varchar(20);not null"`
	Parecer              string  `gorm:"type:text;not null"`
	CreatedBy            string  `gorm:"type:uuid;not null"`
	CreatedAt            int64   `gorm:"autoCreateTime"`
	UpdatedAt            int64   `gorm:"autoUpdateTime"`
}

func (ParecerModel) TableName() string {
	return "parecer_final"
}

// TaskModel é o model GORM para tarefas
type TaskModel struct {
	ID         string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Titulo     string  `gorm:"type:varchar(500);not null"`
	Descricao  string  `gorm:"type:text"`
	Status     string  `gorm:"type:varchar(20);not null;index"`
	Priority   string  `gorm:"type:varchar(10);not null"`
	DueDate    string  `gorm:"type:varchar(20);not null"`
	AssignedTo *string `gorm:"type:uuid;index"`
	CreatedBy  string  `gorm:"type:uuid;not null;index"`
	CreatedAt  int64   `gorm:"autoCreateTime;index"`
	UpdatedAt  int64   `gorm:"autoUpdateTime"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// NotificationModel é o model GORM para notificações
type NotificationModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string `gorm:"type:uuid;not null;index"`
	TaskID    string `gorm:"type:uuid;not null;index"`
	Title     string `gorm:"type:varchar(255);not null"`
	Message   string `gorm:"type:text;not null"`
	Read      bool   `gorm:"not null;default:false;index"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// IDs são gerados no cliente para que o agregado volte completo da
// criação sem depender do RETURNING do driver

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *CompanyModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *RepresentanteModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *FlowModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *NoteModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *ParecerModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *TaskModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *NotificationModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
