package services

import (
	"context"
	"fmt"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// Fakes em memória para os testes de serviço. Sem concorrência: cada
// teste monta o seu próprio conjunto.

type fakeLogger struct{}

func (fakeLogger) Info(string, ...any)        {}
func (fakeLogger) Error(string, ...any)       {}
func (fakeLogger) Debug(string, ...any)       {}
func (fakeLogger) Warn(string, ...any)        {}
func (l fakeLogger) With(...any) ports.Logger { return l }

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeCompanyRepo struct {
	companies map[string]*entities.Company
	seq       int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[string]*entities.Company{}}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entities.Company) error {
	r.seq++
	company.ID = fmt.Sprintf("company-%d", r.seq)
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id string) (*entities.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, id string, update repositories.CompanyUpdate) (*entities.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	if update.CNPJ != nil {
		company.CNPJ = *update.CNPJ
	}
	if update.NomeEmpresa != nil {
		company.NomeEmpresa = *update.NomeEmpresa
	}
	if update.Porte != nil {
		company.Porte = *update.Porte
	}
	if update.Estado != nil {
		company.Estado = *update.Estado
	}
	if update.Cidade != nil {
		company.Cidade = *update.Cidade
	}
	if update.Endereco != nil {
		company.Endereco = *update.Endereco
	}
	if update.CNAE != nil {
		company.CNAE = *update.CNAE
	}
	if update.Telefone != nil {
		company.Telefone = *update.Telefone
	}
	if update.Email != nil {
		company.Email = *update.Email
	}
	if update.Abertura != nil {
		company.Abertura = *update.Abertura
	}
	if update.Risco != nil {
		company.Risco = *update.Risco
	}
	if update.Status != nil {
		company.Status = *update.Status
	}
	if update.Priority != nil {
		company.Priority = *update.Priority
	}
	if update.DueDate != nil {
		company.DueDate = *update.DueDate
	}
	if update.Archived != nil {
		company.Archived = *update.Archived
	}
	return company, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, filters repositories.CompanyFilters) ([]*entities.Company, error) {
	var result []*entities.Company
	for _, company := range r.companies {
		if filters.Archived != nil && company.Archived != *filters.Archived {
			continue
		}
		if filters.Status != nil && company.Status != *filters.Status {
			continue
		}
		result = append(result, company)
	}
	return result, nil
}

type fakeRepresentanteRepo struct {
	reps map[string]*entities.RepresentanteLegal
	seq  int

	// errOnCreate simula a perda da disputa do índice único
	errOnCreate error
}

func newFakeRepresentanteRepo() *fakeRepresentanteRepo {
	return &fakeRepresentanteRepo{reps: map[string]*entities.RepresentanteLegal{}}
}

func (r *fakeRepresentanteRepo) Create(_ context.Context, rep *entities.RepresentanteLegal) error {
	if r.errOnCreate != nil {
		return r.errOnCreate
	}
	r.seq++
	rep.ID = fmt.Sprintf("rep-%d", r.seq)
	r.reps[rep.ID] = rep
	return nil
}

func (r *fakeRepresentanteRepo) FindByID(_ context.Context, id string) (*entities.RepresentanteLegal, error) {
	return r.reps[id], nil
}

func (r *fakeRepresentanteRepo) FindByCompany(_ context.Context, companyID string) (*entities.RepresentanteLegal, error) {
	for _, rep := range r.reps {
		if rep.CompanyID == companyID {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *fakeRepresentanteRepo) Update(_ context.Context, rep *entities.RepresentanteLegal) error {
	r.reps[rep.ID] = rep
	return nil
}

type fakeFlowRepo struct {
	flows map[string]*entities.Flow
	seq   int
}

func newFakeFlowRepo() *fakeFlowRepo {
	return &fakeFlowRepo{flows: map[string]*entities.Flow{}}
}

func (r *fakeFlowRepo) Create(_ context.Context, flow *entities.Flow) error {
	r.seq++
	flow.ID = fmt.Sprintf("flow-%d", r.seq)
	r.flows[flow.ID] = flow
	return nil
}

func (r *fakeFlowRepo) FindByID(_ context.Context, id string) (*entities.Flow, error) {
	return r.flows[id], nil
}

func (r *fakeFlowRepo) Update(_ context.Context, flow *entities.Flow) error {
	r.flows[flow.ID] = flow
	return nil
}

func (r *fakeFlowRepo) Delete(_ context.Context, id string) error {
	delete(r.flows, id)
	return nil
}

func (r *fakeFlowRepo) ListBySubject(_ context.Context, subject entities.Subject) ([]*entities.Flow, error) {
	var result []*entities.Flow
	for _, flow := range r.flows {
		if sameSubject(flow.Subject, subject) {
			result = append(result, flow)
		}
	}
	return result, nil
}

type fakeNoteRepo struct {
	notes map[string]*entities.Note
	seq   int
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*entities.Note{}}
}

func (r *fakeNoteRepo) Create(_ context.Context, note *entities.Note) error {
	r.seq++
	note.ID = fmt.Sprintf("note-%d", r.seq)
	r.notes[note.ID] = note
	return nil
}

func (r *fakeNoteRepo) FindByID(_ context.Context, id string) (*entities.Note, error) {
	return r.notes[id], nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *entities.Note) error {
	r.notes[note.ID] = note
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id string) error {
	delete(r.notes, id)
	return nil
}

func (r *fakeNoteRepo) ListBySubject(_ context.Context, subject entities.Subject) ([]*entities.Note, error) {
	var result []*entities.Note
	for _, note := range r.notes {
		if sameSubject(note.Subject, subject) {
			result = append(result, note)
		}
	}
	return result, nil
}

type fakeParecerRepo struct {
	pareceres map[string]*entities.ParecerFinal
	seq       int

	errOnCreate error
}

func newFakeParecerRepo() *fakeParecerRepo {
	return &fakeParecerRepo{pareceres: map[string]*entities.ParecerFinal{}}
}

func (r *fakeParecerRepo) Create(_ context.Context, parecer *entities.ParecerFinal) error {
	if r.errOnCreate != nil {
		return r.errOnCreate
	}
	r.seq++
	parecer.ID = fmt.Sprintf("parecer-%d", r.seq)
	r.pareceres[parecer.ID] = parecer
	return nil
}

func (r *fakeParecerRepo) FindByID(_ context.Context, id string) (*entities.ParecerFinal, error) {
	return r.pareceres[id], nil
}

func (r *fakeParecerRepo) FindBySubject(_ context.Context, subject entities.Subject) (*entities.ParecerFinal, error) {
	for _, parecer := range r.pareceres {
		if sameSubject(parecer.Subject, subject) {
			return parecer, nil
		}
	}
	return nil, nil
}

func (r *fakeParecerRepo) Update(_ context.Context, parecer *entities.ParecerFinal) error {
	r.pareceres[parecer.ID] = parecer
	return nil
}

func (r *fakeParecerRepo) Delete(_ context.Context, id string) error {
	delete(r.pareceres, id)
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*entities.Task
	seq   int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entities.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	r.seq++
	task.ID = fmt.Sprintf("task-%d", r.seq)
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id string) (*entities.Task, error) {
	return r.tasks[id], nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id string, update repositories.TaskUpdate) (*entities.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	if update.Titulo != nil {
		task.Titulo = *update.Titulo
	}
	if update.Descricao != nil {
		task.Descricao = *update.Descricao
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.DueDate != nil {
		task.DueDate = *update.DueDate
	}
	if update.AssignedTo != nil {
		task.AssignedTo = update.AssignedTo
	}
	return task, nil
}

func (r *fakeTaskRepo) List(_ context.Context) ([]*entities.Task, error) {
	var result []*entities.Task
	for _, task := range r.tasks {
		result = append(result, task)
	}
	return result, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) DeleteByStatus(_ context.Context, status entities.TaskStatus) error {
	for id, task := range r.tasks {
		if task.Status == status {
			delete(r.tasks, id)
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications map[string]*entities.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[string]*entities.Notification{}}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entities.Notification) error {
	r.seq++
	notification.ID = fmt.Sprintf("notification-%d", r.seq)
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) FindByID(_ context.Context, id string) (*entities.Notification, error) {
	return r.notifications[id], nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, filters repositories.NotificationFilters) ([]*entities.Notification, error) {
	var result []*entities.Notification
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if filters.OnlyUnread && notification.Read {
			continue
		}
		result = append(result, notification)
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	if notification, ok := r.notifications[id]; ok {
		notification.Read = true
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id string) error {
	delete(r.notifications, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*entities.User{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email.String() == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*entities.User, error) {
	result := map[string]*entities.User{}
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result[id] = user
		}
	}
	return result, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var result []*entities.User
	for _, user := range r.users {
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		result = append(result, user)
	}
	return result, nil
}

func sameSubject(a, b entities.Subject) bool {
	return strPtrEqual(a.CompanyID, b.CompanyID) && strPtrEqual(a.RepresentanteID, b.RepresentanteID)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || *a == "" {
		return b == nil || *b == ""
	}
	return b != nil && *a == *b
}
