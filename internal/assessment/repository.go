package assessment

import (
	"errors"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(a *Assessment) error
	GetByID(id string) (*Assessment, error)
	List() ([]*Assessment, error)
	ListByStudent(studentName string) ([]*Assessment, error)
	Delete(id string) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(a *Assessment) error {
	return r.db.Create(a).Error
}

func (r *assessmentRepository) GetByID(id string) (*Assessment, error) {
	var a Assessment
	if err := r.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepository) List() ([]*Assessment, error) {
	var assessments []*Assessment
	if err := r.db.
		Order("created_at DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) ListByStudent(studentName string) ([]*Assessment, error) {
	var assessments []*Assessment
	if err := r.db.
		Where("student_name = ?", studentName).
		Order("created_at DESC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) Delete(id string) error {
	return r.db.Delete(&Assessment{}, "id = ?", id).Error
}
