package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// CompanyRepository implementa repositories.CompanyRepository.
// As listagens montam o agregado completo (representante legal, fluxos,
// notas, parecer) com uma consulta por tabela, chaveada pelos ids
// coletados — nunca uma consulta por empresa.
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository cria um novo CompanyRepository
func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	model := toCompanyModel(company)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("companies.create", err)
	}

	company.ID = model.ID
	company.CreatedAt = time.Unix(model.CreatedAt, 0)
	company.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entities.Company, error) {
	var model CompanyModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("companies.find_by_id", err)
	}

	companies, err := r.loadAggregates(db, []*CompanyModel{&model})
	if err != nil {
		return nil, err
	}
	return companies[0], nil
}

func (r *CompanyRepository) Update(ctx context.Context, id string, update repositories.CompanyUpdate) (*entities.Company, error) {
	values := map[string]interface{}{}

	if update.CNPJ != nil {
		values["cnpj"] = *update.CNPJ
	}
	if update.NomeEmpresa != nil {
		values["nome_empresa"] = *update.NomeEmpresa
	}
	if update.Porte != nil {
		values["porte"] = string(*update.Porte)
	}
	if update.Estado != nil {
		values["estado"] = *update.Estado
	}
	if update.Cidade != nil {
		values["cidade"] = *update.Cidade
	}
	if update.Endereco != nil {
		values["endereco"] = *update.Endereco
	}
	if update.CNAE != nil {
		values["cnae"] = *update.CNAE
	}
	if update.Telefone != nil {
		values["telefone"] = *update.Telefone
	}
	if update.Email != nil {
		values["email"] = *update.Email
	}
	if update.Abertura != nil {
		values["abertura"] = *update.Abertura
	}
	if update.Risco != nil {
		values["risco"] = string(*update.Risco)
	}
	if update.Status != nil {
		values["status"] = string(*update.Status)
	}
	if update.Priority != nil {
		values["priority"] = string(*update.Priority)
	}
	if update.DueDate != nil {
		values["due_date"] = *update.DueDate
	}
	if update.Archived != nil {
		values["archived"] = *update.Archived
	}

	db := dbFromContext(ctx, r.db)
	if len(values) > 0 {
		result := db.Model(&CompanyModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return nil, translateError("companies.update", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.FindByID(ctx, id)
}

func (r *CompanyRepository) List(ctx context.Context, filters repositories.CompanyFilters) ([]*entities.Company, error) {
	var models []*CompanyModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&CompanyModel{}).Order("created_at DESC")

	if filters.Archived != nil {
		query = query.Where("archived = ?", *filters.Archived)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, translateError("companies.list", err)
	}

	return r.loadAggregates(db, models)
}

// loadAggregates monta os agregados de empresa: uma consulta por tabela
// relacionada, usando os ids coletados das empresas e dos representantes
func (r *CompanyRepository) loadAggregates(db *gorm.DB, models []*CompanyModel) ([]*entities.Company, error) {
	companies := make([]*entities.Company, 0, len(models))
	if len(models) == 0 {
		return companies, nil
	}

	companyIDs := make([]string, 0, len(models))
	for _, model := range models {
		companyIDs = append(companyIDs, model.ID)
	}

	// Representantes legais (no máximo um por empresa)
	var repModels []*RepresentanteModel
	if err := db.Where("company_id IN ?", companyIDs).Find(&repModels).Error; err != nil {
		return nil, translateError("companies.load_representantes", err)
	}
	repByCompany := make(map[string]*entities.RepresentanteLegal, len(repModels))
	repIDs := make([]string, 0, len(repModels))
	for _, repModel := range repModels {
		rep := toRepresentanteEntity(repModel)
		repByCompany[rep.CompanyID] = rep
		repIDs = append(repIDs, rep.ID)
	}

	// Fluxos: da empresa (representante_legal_id nulo) e dos representantes
	var flowModels []*FlowModel
	query := db.Where("company_id IN ? AND representante_legal_id IS NULL", companyIDs)
	if len(repIDs) > 0 {
		query = query.Or("representante_legal_id IN ?", repIDs)
	}
	if err := query.Order("created_at DESC").Find(&flowModels).Error; err != nil {
		return nil, translateError("companies.load_flows", err)
	}

	// Notas: mesma separação dos fluxos
	var noteModels []*NoteModel
	query = db.Where("company_id IN ? AND representante_legal_id IS NULL", companyIDs)
	if len(repIDs) > 0 {
		query = query.Or("representante_legal_id IN ?", repIDs)
	}
	if err := query.Order("created_at DESC").Find(&noteModels).Error; err != nil {
		return nil, translateError("companies.load_notes", err)
	}

	// Pareceres finais (no máximo um por subject)
	var parecerModels []*ParecerModel
	query = db.Where("company_id IN ?", companyIDs)
	if len(repIDs) > 0 {
		query = query.Or("representante_legal_id IN ?", repIDs)
	}
	if err := query.Find(&parecerModels).Error; err != nil {
		return nil, translateError("companies.load_pareceres", err)
	}

	// Autores e criadores resolvidos em uma única consulta
	userIDSet := map[string]struct{}{}
	for _, model := range models {
		userIDSet[model.CreatedBy] = struct{}{}
	}
	for _, flowModel := range flowModels {
		userIDSet[flowModel.CreatedBy] = struct{}{}
	}
	for _, noteModel := range noteModels {
		userIDSet[noteModel.CreatedBy] = struct{}{}
	}
	for _, parecerModel := range parecerModels {
		userIDSet[parecerModel.CreatedBy] = struct{}{}
	}
	userRefs, err := r.loadUserRefs(db, userIDSet)
	if err != nil {
		return nil, err
	}

	flowsByCompany := map[string][]*entities.Flow{}
	flowsByRep := map[string][]*entities.Flow{}
	for _, flowModel := range flowModels {
		flow := toFlowEntity(flowModel)
		flow.User = userRefs[flow.CreatedBy]
		if flow.Subject.IsRepresentante() {
			flowsByRep[*flow.Subject.RepresentanteID] = append(flowsByRep[*flow.Subject.RepresentanteID], flow)
		} else {
			flowsByCompany[*flow.Subject.CompanyID] = append(flowsByCompany[*flow.Subject.CompanyID], flow)
		}
	}

	notesByCompany := map[string][]*entities.Note{}
	notesByRep := map[string][]*entities.Note{}
	for _, noteModel := range noteModels {
		note := toNoteEntity(noteModel)
		note.User = userRefs[note.CreatedBy]
		if note.Subject.IsRepresentante() {
			notesByRep[*note.Subject.RepresentanteID] = append(notesByRep[*note.Subject.RepresentanteID], note)
		} else {
			notesByCompany[*note.Subject.CompanyID] = append(notesByCompany[*note.Subject.CompanyID], note)
		}
	}

	parecerByCompany := map[string]*entities.ParecerFinal{}
	parecerByRep := map[string]*entities.ParecerFinal{}
	for _, parecerModel := range parecerModels {
		parecer := toParecerEntity(parecerModel)
		parecer.User = userRefs[parecer.CreatedBy]
		if parecer.Subject.IsRepresentante() {
			parecerByRep[*parecer.Subject.RepresentanteID] = parecer
		} else {
			parecerByCompany[*parecer.Subject.CompanyID] = parecer
		}
	}

	for _, model := range models {
		company := toCompanyEntity(model)
		company.CreatedByUser = userRefs[model.CreatedBy]
		company.Flows = flowsByCompany[model.ID]
		company.Notes = notesByCompany[model.ID]
		company.ParecerFinal = parecerByCompany[model.ID]

		if rep, ok := repByCompany[model.ID]; ok {
			rep.Flows = flowsByRep[rep.ID]
			rep.Notes = notesByRep[rep.ID]
			rep.ParecerFinal = parecerByRep[rep.ID]
			company.Representante = rep
		}

		companies = append(companies, company)
	}

	return companies, nil
}

func (r *CompanyRepository) loadUserRefs(db *gorm.DB, idSet map[string]struct{}) (map[string]*entities.UserRef, error) {
	refs := make(map[string]*entities.UserRef, len(idSet))
	if len(idSet) == 0 {
		return refs, nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	var userModels []*UserModel
	if err := db.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, translateError("companies.load_users", err)
	}

	for _, userModel := range userModels {
		refs[userModel.ID] = &entities.UserRef{
			ID:        userModel.ID,
			Name:      userModel.Name,
			Email:     userModel.Email,
			AvatarURL: userModel.AvatarURL,
		}
	}
	return refs, nil
}

// Conversores
func toCompanyModel(company *entities.Company) *CompanyModel {
	return &CompanyModel{
		ID:          company.ID,
		CNPJ:        company.CNPJ,
		NomeEmpresa: company.NomeEmpresa,
		Porte:       string(company.Porte),
		Estado:      company.Estado,
		Cidade:      company.Cidade,
		Endereco:    company.Endereco,
		CNAE:        company.CNAE,
		Telefone:    company.Telefone,
		Email:       company.Email,
		Abertura:    company.Abertura,
		Risco:       string(company.Risco),
		Status:      string(company.Status),
		Priority:    string(company.Priority),
		DueDate:     company.DueDate,
		Archived:    company.Archived,
		CreatedBy:   company.CreatedBy,
	}
}

func toCompanyEntity(model *CompanyModel) *entities.Company {
	return &entities.Company{
		ID:          model.ID,
		CNPJ:        model.CNPJ,
		NomeEmpresa: model.NomeEmpresa,
		Porte:       entities.Porte(model.Porte),
		Estado:      model.Estado,
		Cidade:      model.Cidade,
		Endereco:    model.Endereco,
		CNAE:        model.CNAE,
		Telefone:    model.Telefone,
		Email:       model.Email,
		Abertura:    model.Abertura,
		Risco:       entities.Risco(model.Risco),
		Status:      entities.CompanyStatus(model.Status),
		Priority:    entities.Priority(model.Priority),
		DueDate:     model.DueDate,
		Archived:    model.Archived,
		CreatedBy:   model.CreatedBy,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
