package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrCompanyNotFound       = errors.New("error.company_not_found")
	ErrRepresentanteNotFound = errors.New("error.representante_not_found")
	ErrFlowNotFound          = errors.New("error.flow_not_found")
	ErrNoteNotFound          = errors.New("error.note_not_found")
	ErrParecerNotFound       = errors.New("error.parecer_not_found")
	ErrTaskNotFound          = errors.New("error.task_not_found")
	ErrNotificationNotFound  = errors.New("error.notification_not_found")
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrEmailAlreadyExists    = errors.New("error.email_already_exists")
	ErrNotAuthenticated      = errors.New("error.not_authenticated")
	ErrForbidden             = errors.New("error.forbidden")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidCNPJ  = errors.New("error.invalid_cnpj")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeRemoteStore  = "/problems/remote-store-error"
)

// ValidationError indica campo obrigatório ausente ou malformado.
// É detectado antes de qualquer chamada ao banco.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// NewValidationError cria um ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// RemoteStoreError encapsula qualquer falha vinda do banco de dados.
// Não há retry automático: o chamador decide repetir a operação.
type RemoteStoreError struct {
	Op  string
	Err error
}

func (e *RemoteStoreError) Error() string {
	return "remote store failure in " + e.Op + ": " + e.Err.Error()
}

func (e *RemoteStoreError) Unwrap() error {
	return e.Err
}

// NewRemoteStoreError encapsula um erro do banco com a operação de origem
func NewRemoteStoreError(op string, err error) *RemoteStoreError {
	return &RemoteStoreError{Op: op, Err: err}
}

// ErrConstraintConflict sinaliza violação de unicidade no upsert por
// subject. Não é fatal: o chamador recai no caminho de update.
var ErrConstraintConflict = errors.New("error.constraint_conflict")

// IsConstraintConflict verifica se o erro é (ou embrulha) uma violação de unicidade
func IsConstraintConflict(err error) bool {
	return errors.Is(err, ErrConstraintConflict)
}

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
