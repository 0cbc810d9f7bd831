package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/launchjobs/jobboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicantFields is the applicant-supplied input for a new application.
// The handler layer has already checked field bounds.
type ApplicantFields struct {
	FullName    string
	Email       string
	Phone       string
	CoverLetter string
	Resume      string
}

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// SubmitApplication appends a pending application to the job after the
// inactive and duplicate-email guards pass. The caller must hold the job
// exclusively for the check-then-append to be safe.
func SubmitApplication(job *models.Job, fields ApplicantFields, now time.Time) (*models.Applicant, error) {
	if !job.IsActive {
		return nil, ErrJobInactive
	}

	email := strings.ToLower(strings.TrimSpace(fields.Email))
	for _, app := range job.Applicants {
		if app.Email == email {
			return nil, ErrDuplicateApplication
		}
	}

	job.Applicants = append(job.Applicants, models.Applicant{
		ID:          uuid.New(),
		FullName:    fields.FullName,
		Email:       email,
		Phone:       fields.Phone,
		CoverLetter: fields.CoverLetter,
		Resume:      fields.Resume,
		AppliedAt:   now,
		Status:      models.StatusPending,
	})

	return &job.Applicants[len(job.Applicants)-1], nil
}

// ReviewApplication sets the status and review audit fields on one of the
// job's applications. Only the posting owner may review; notes are left
// untouched when empty. Any status may follow any other.
func ReviewApplication(job *models.Job, applicationID, reviewerID uuid.UUID, status, notes string, now time.Time) (*models.Applicant, error) {
	if job.PostedByID != reviewerID {
		return nil, ErrForbidden
	}

	for i := range job.Applicants {
		if job.Applicants[i].ID != applicationID {
			continue
		}
		app := &job.Applicants[i]
		app.Status = status
		app.ReviewedAt = &now
		app.ReviewedBy = &reviewerID
		if notes != "" {
			app.Notes = notes
		}
		return app, nil
	}

	return nil, ErrApplicationNotFound
}

// Apply submits an application to an active job. The job row is locked for
// the duration of the transaction so two concurrent applies with the same
// email cannot both pass the duplicate check.
func (s *ApplicationService) Apply(jobID string, fields ApplicantFields) (*models.Applicant, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var created models.Applicant
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		applicant, err := SubmitApplication(&job, fields, time.Now())
		if err != nil {
			return err
		}
		created = *applicant

		return tx.Model(&job).Update("applicants", job.Applicants).Error
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// ListForJob returns the job with its embedded applications. Only the
// posting owner may view them.
func (s *ApplicationService) ListForJob(jobID string, requesterID uuid.UUID) (*models.Job, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var job models.Job
	err = s.DB.Preload("PostedBy").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.PostedByID != requesterID {
		return nil, ErrForbidden
	}

	return &job, nil
}

// UpdateStatus moves one application to a new status and stamps the review
// audit fields, under the same row lock as Apply so concurrent reviews are
// not lost.
func (s *ApplicationService) UpdateStatus(jobID, applicationID string, requesterID uuid.UUID, status, notes string) (*models.Applicant, error) {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return nil, ErrInvalidID
	}
	appID, err := uuid.Parse(applicationID)
	if err != nil {
		return nil, ErrInvalidID
	}

	var updated models.Applicant
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var job models.Job
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&job, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		applicant, err := ReviewApplication(&job, appID, requesterID, status, notes, time.Now())
		if err != nil {
			return err
		}
		updated = *applicant

		return tx.Model(&job).Update("applicants", job.Applicants).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
