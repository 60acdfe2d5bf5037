package repository

import (
	"github.com/linskybing/request-portal/internal/domain/form"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row lock strengths for LockForm.
const (
	LockForUpdate = "UPDATE"
	LockForShare  = "SHARE"
)

// FormListFilter narrows form listings. VisibleToDepartment keeps global
// forms plus the ones owned by that department.
type FormListFilter struct {
	VisibleToDepartment *uint
	IncludeInactive     bool
}

type FormRepo interface {
	CreateForm(d *form.Definition) error
	GetFormByID(id uint) (form.Definition, error)
	ListForms(filter FormListFilter) ([]form.Definition, error)
	UpdateForm(id uint, changes map[string]any) error
	ReplaceFields(formID uint, fields []form.Field) error
	LockForm(id uint, strength string) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func orderedFields(db *gorm.DB) *gorm.DB {
	return db.Order("form_fields.position ASC, form_fields.id ASC")
}

func (r *DBFormRepo) CreateForm(d *form.Definition) error {
	return r.db.Create(d).Error
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Definition, error) {
	var d form.Definition
	err := r.db.Preload("Fields", orderedFields).First(&d, id).Error
	return d, err
}

func (r *DBFormRepo) ListForms(filter FormListFilter) ([]form.Definition, error) {
	var forms []form.Definition
	query := r.db.Model(&form.Definition{}).Preload("Fields", orderedFields)
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.VisibleToDepartment != nil {
		query = query.Where("department_id IS NULL OR department_id = ?", *filter.VisibleToDepartment)
	}
	err := query.Order("created_at DESC, id DESC").Find(&forms).Error
	return forms, err
}

// UpdateForm writes only the given columns; a map keeps false and empty values.
func (r *DBFormRepo) UpdateForm(id uint, changes map[string]any) error {
	return updateColumns(r.db.Model(&form.Definition{}), id, changes)
}

func (r *DBFormRepo) ReplaceFields(formID uint, fields []form.Field) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", formID).Delete(&form.Field{}).Error; err != nil {
			return err
		}
		for i := range fields {
			fields[i].ID = 0
			fields[i].FormID = formID
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Create(&fields).Error
	})
}

// LockForm row-locks the form until the surrounding transaction ends.
func (r *DBFormRepo) LockForm(id uint, strength string) error {
	var d form.Definition
	return r.db.Clauses(clause.Locking{Strength: strength}).
		Select("id").
		First(&d, id).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}
