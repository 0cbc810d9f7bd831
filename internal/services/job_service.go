package services

import (
	"errors"
	"math"
	"net/mail"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/launchjobs/jobboard-api/internal/dtos"
	"github.com/launchjobs/jobboard-api/internal/models"
	"gorm.io/gorm"
)

// jobUpdateRule carries the column a patch key writes to and the bounds its
// value must satisfy, mirroring the create-time validation rules.
type jobUpdateRule struct {
	column  string
	boolean bool
	email   bool
	minLen  int
	maxLen  int
	enum    []string
}

func (r jobUpdateRule) validate(value interface{}) error {
	if r.boolean {
		if _, ok := value.(bool); !ok {
			return ErrInvalidUpdate
		}
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return ErrInvalidUpdate
	}
	if r.email {
		if _, err := mail.ParseAddress(s); err != nil {
			return ErrInvalidUpdate
		}
		return nil
	}
	n := utf8.RuneCountInString(s)
	if n < r.minLen {
		return ErrInvalidUpdate
	}
	if r.maxLen > 0 && n > r.maxLen {
		return ErrInvalidUpdate
	}
	if len(r.enum) > 0 {
		for _, allowed := range r.enum {
			if s == allowed {
				return nil
			}
		}
		return ErrInvalidUpdate
	}
	return nil
}

// allowedJobUpdates maps the patchable JSON keys to their columns and value
// bounds. Any other key in a patch rejects the whole update.
var allowedJobUpdates = map[string]jobUpdateRule{
	"title":        {column: "title", minLen: 5, maxLen: 100},
	"company":      {column: "company", minLen: 2, maxLen: 100},
	"location":     {column: "location", minLen: 2, maxLen: 100},
	"type":         {column: "type", enum: []string{models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeInternship}},
	"salary":       {column: "salary", maxLen: 50},
	"description":  {column: "description", minLen: 10, maxLen: 2000},
	"requirements": {column: "requirements", maxLen: 1000},
	"contactEmail": {column: "contact_email", email: true},
	"isActive":     {column: "is_active", boolean: true},
}

// Pagination describes one page of a job listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalJobs   int64 `json:"totalJobs"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit"`
}

// NewPagination computes page metadata for a total result count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalJobs:   total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       limit,
	}
}

// BuildJobPatch validates a raw update body against the allowed field set
// and rewrites its keys to column names. Returns ErrInvalidUpdate if any key
// falls outside the set or any value breaks that field's bounds.
func BuildJobPatch(patch map[string]interface{}) (map[string]interface{}, error) {
	columns := make(map[string]interface{}, len(patch))
	for key, value := range patch {
		rule, ok := allowedJobUpdates[key]
		if !ok {
			return nil, ErrInvalidUpdate
		}
		if err := rule.validate(value); err != nil {
			return nil, err
		}
		columns[rule.column] = value
	}
	return columns, nil
}

// ValidateJobUpdate runs the update guards in order: ownership first, then
// the patch's keys and value bounds.
func ValidateJobUpdate(job *models.Job, ownerID uuid.UUID, patch map[string]interface{}) (map[string]interface{}, error) {
	if job.PostedByID != ownerID {
		return nil, ErrForbidden
	}
	return BuildJobPatch(patch)
}

// JobWithStats pairs a job with its applicant counts for the owner
// dashboard listing.
type JobWithStats struct {
	Job   models.Job
	Stats ApplicationStats
}

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// List returns one page of active jobs matching the filter, newest first,
// along with pagination metadata for the full match count.
func (s *JobService) List(filter JobFilter, page, limit int) ([]models.Job, Pagination, error) {
	var total int64
	if err := filter.Apply(s.DB.Model(&models.Job{})).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var jobs []models.Job
	err := filter.Apply(s.DB.Preload("PostedBy")).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return jobs, NewPagination(page, limit, total), nil
}

// GetByID fetches a single job. Inactive jobs are invisible here: they
// return ErrNotFound just like absent ones.
func (s *JobService) GetByID(id string) (*models.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var job models.Job
	err = s.DB.Preload("PostedBy").First(&job, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !job.IsActive {
		return nil, ErrNotFound
	}

	return &job, nil
}

// Create persists a new job posting owned by ownerID.
func (s *JobService) Create(req *dtos.CreateJobRequest, ownerID uuid.UUID) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		ContactEmail: req.ContactEmail,
		PostedByID:   ownerID,
		IsActive:     true,
		Applicants:   models.ApplicantList{},
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	if err := s.DB.First(&job.PostedBy, "id = ?", ownerID).Error; err != nil {
		return nil, err
	}

	return job, nil
}

// Update patches a job's allowed fields. Only the posting owner may update,
// and any key outside the allowed set rejects the patch.
func (s *JobService) Update(id string, ownerID uuid.UUID, patch map[string]interface{}) (*models.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var job models.Job
	err = s.DB.First(&job, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	columns, err := ValidateJobUpdate(&job, ownerID, patch)
	if err != nil {
		return nil, err
	}

	if len(columns) > 0 {
		if err := s.DB.Model(&job).Updates(columns).Error; err != nil {
			return nil, err
		}
	}
	if err := s.DB.Preload("PostedBy").First(&job, "id = ?", jobID).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// Delete permanently removes a job and its embedded applications.
func (s *JobService) Delete(id string, ownerID uuid.UUID) error {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	var job models.Job
	err = s.DB.First(&job, "id = ?", jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if job.PostedByID != ownerID {
		return ErrForbidden
	}

	return s.DB.Delete(&job).Error
}

// ListByOwner returns every job posted by ownerID, newest first, active or
// not.
func (s *JobService) ListByOwner(ownerID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Preload("PostedBy").
		Where("posted_by_id = ?", ownerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByOwnerWithStats augments the owner listing with per-status applicant
// counts.
func (s *JobService) ListByOwnerWithStats(ownerID uuid.UUID) ([]JobWithStats, error) {
	jobs, err := s.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]JobWithStats, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, JobWithStats{
			Job:   job,
			Stats: CalculateApplicationStats(job.Applicants),
		})
	}
	return out, nil
}
