package repository

import (
	"github.com/linskybing/request-portal/internal/domain/org"
	"gorm.io/gorm"
)

type OrgRepo interface {
	CreateDepartment(d *org.Department) error
	GetDepartmentByID(id uint) (org.Department, error)
	ListDepartments() ([]org.Department, error)
	CreateCourse(c *org.Course) error
	GetCourseByID(id uint) (org.Course, error)
	ListCourses(departmentID *uint) ([]org.Course, error)
	UpdateDepartment(id uint, changes map[string]any) error
	UpdateCourse(id uint, changes map[string]any) error
	WithTx(tx *gorm.DB) OrgRepo
}

type DBOrgRepo struct {
	db *gorm.DB
}

func NewOrgRepo(db *gorm.DB) *DBOrgRepo {
	return &DBOrgRepo{
		db: db,
	}
}

func (r *DBOrgRepo) CreateDepartment(d *org.Department) error {
	return r.db.Create(d).Error
}

func (r *DBOrgRepo) GetDepartmentByID(id uint) (org.Department, error) {
	var d org.Department
	err := r.db.Preload("Courses", func(db *gorm.DB) *gorm.DB {
		return db.Order("courses.id")
	}).First(&d, id).Error
	return d, err
}

func (r *DBOrgRepo) ListDepartments() ([]org.Department, error) {
	var depts []org.Department
	err := r.db.Order("id").Find(&depts).Error
	return depts, err
}

func (r *DBOrgRepo) CreateCourse(c *org.Course) error {
	return r.db.Create(c).Error
}

func (r *DBOrgRepo) GetCourseByID(id uint) (org.Course, error) {
	var c org.Course
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBOrgRepo) ListCourses(departmentID *uint) ([]org.Course, error) {
	var courses []org.Course
	query := r.db.Model(&org.Course{})
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	err := query.Order("id").Find(&courses).Error
	return courses, err
}

func (r *DBOrgRepo) UpdateDepartment(id uint, changes map[string]any) error {
	return updateColumns(r.db.Model(&org.Department{}), id, changes)
}

func (r *DBOrgRepo) UpdateCourse(id uint, changes map[string]any) error {
	return updateColumns(r.db.Model(&org.Course{}), id, changes)
}

// updateColumns writes only the given columns of one row and reports a
// missing row as gorm.ErrRecordNotFound.
func updateColumns(model *gorm.DB, id uint, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	res := model.Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBOrgRepo) WithTx(tx *gorm.DB) OrgRepo {
	if tx == nil {
		return r
	}
	return &DBOrgRepo{
		db: tx,
	}
}
