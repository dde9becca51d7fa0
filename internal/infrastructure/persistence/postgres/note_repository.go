package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/repositories"
)

// NoteRepository implementa repositories.NoteRepository
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository cria um novo NoteRepository
func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	model := toNoteModel(note)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateError("notes.create", err)
	}

	note.ID = model.ID
	note.CreatedAt = time.Unix(model.CreatedAt, 0)
	note.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.Note, error) {
	var model NoteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError("notes.find_by_id", err)
	}

	return toNoteEntity(&model), nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&NoteModel{}).Where("id = ?", note.ID).Updates(map[string]interface{}{
		"tipo":    string(note.Tipo),
		"content": note.Content,
	}).Error
	if err != nil {
		return translateError("notes.update", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).Delete(&NoteModel{}).Error; err != nil {
		return translateError("notes.delete", err)
	}
	return nil
}

func (r *NoteRepository) ListBySubject(ctx context.Context, subject entities.Subject) ([]*entities.Note, error) {
	var models []*NoteModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&NoteModel{}).Order("created_at DESC")

	if subject.IsRepresentante() {
		query = query.Where("representante_legal_id = ?", *subject.RepresentanteID)
	} else {
		query = query.Where("company_id = ? AND representante_legal_id IS NULL", *subject.CompanyID)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, translateError("notes.list_by_subject", err)
	}

	notes := make([]*entities.Note, 0, len(models))
	for _, model := range models {
		notes = append(notes, toNoteEntity(model))
	}
	return notes, nil
}

// Conversores
func toNoteModel(note *entities.Note) *NoteModel {
	return &NoteModel{
		ID:                   note.ID,
		CompanyID:            note.Subject.CompanyID,
		RepresentanteLegalID: note.Subject.RepresentanteID,
		Tipo:                 string(note.Tipo),
		Content:              note.Content,
		CreatedBy:            note.CreatedBy,
	}
}

func toNoteEntity(model *NoteModel) *entities.Note {
	return &entities.Note{
		ID: model.ID,
		Subject: entities.Subject{
			CompanyID:       model.CompanyID,
			RepresentanteID: model.RepresentanteLegalID,
		},
		Tipo:      entities.TipoNota(model.Tipo),
		Content:   model.Content,
		CreatedBy: model.CreatedBy,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
