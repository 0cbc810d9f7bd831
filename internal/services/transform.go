package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/launchjobs/jobboard-api/internal/models"
)

// defaultExperience is shown on every listing; no stored field backs it yet.
const defaultExperience = "3+ years"

// JobView is the API-facing shape of a job posting.
type JobView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	ContactEmail string    `json:"contactEmail"`
	PostedBy     string    `json:"postedBy"`
	PostedAt     time.Time `json:"postedAt"`

	// Computed fields for the frontend
	Experience     string   `json:"experience"`
	Posted         string   `json:"posted"`
	Skills         []string `json:"skills"`
	Logo           string   `json:"logo"`
	Featured       bool     `json:"featured"`
	Remote         bool     `json:"remote"`
	ApplicantCount int      `json:"applicantCount"`
}

// JobWithStatsView augments a job view with per-status applicant counts for
// the poster's dashboard.
type JobWithStatsView struct {
	JobView
	TotalApplications       int `json:"totalApplications"`
	PendingApplications     int `json:"pendingApplications"`
	ShortlistedApplications int `json:"shortlistedApplications"`
	RejectedApplications    int `json:"rejectedApplications"`
	HiredApplications       int `json:"hiredApplications"`
}

// ApplicationView is the API-facing shape of an embedded application.
type ApplicationView struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	CoverLetter string     `json:"coverLetter"`
	Resume      string     `json:"resume"`
	AppliedAt   time.Time  `json:"appliedAt"`
	Status      string     `json:"status"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
	Notes       string     `json:"notes"`
	TimeAgo     string     `json:"timeAgo"`
}

// ApplicationStats aggregates applicant counts by status. "reviewed" is a
// valid status but has no bucket here; reviewed applications only count
// toward the total.
type ApplicationStats struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Shortlisted int `json:"shortlisted"`
	Rejected    int `json:"rejected"`
	Hired       int `json:"hired"`
}

// Transformer shapes stored jobs and applications for API responses. The
// featured flag comes from the injected source so tests can pin it.
type Transformer struct {
	featured func() bool
}

// NewTransformer builds a Transformer. A nil featured source falls back to a
// coin flip per call.
func NewTransformer(featured func() bool) *Transformer {
	if featured == nil {
		featured = func() bool { return rand.Intn(2) == 0 }
	}
	return &Transformer{featured: featured}
}

// TransformJob maps a stored job to its API shape. Computed fields are
// derived here so the stored document stays minimal.
func (t *Transformer) TransformJob(job *models.Job, now time.Time) JobView {
	return JobView{
		ID:             job.ID.String(),
		Title:          job.Title,
		Company:        job.Company,
		Location:       job.Location,
		Type:           job.Type,
		Salary:         job.Salary,
		Description:    job.Description,
		Requirements:   job.Requirements,
		ContactEmail:   job.ContactEmail,
		PostedBy:       job.PostedByID.String(),
		PostedAt:       job.CreatedAt,
		Experience:     defaultExperience,
		Posted:         TimeAgo(job.CreatedAt, now),
		Skills:         splitSkills(job.Requirements),
		Logo:           companyLogo(job.Company),
		Featured:       t.featured(),
		Remote:         strings.Contains(strings.ToLower(job.Location), "remote"),
		ApplicantCount: len(job.Applicants),
	}
}

// TransformJobWithStats maps a job plus precomputed stats to the dashboard
// shape.
func (t *Transformer) TransformJobWithStats(job *models.Job, stats ApplicationStats, now time.Time) JobWithStatsView {
	return JobWithStatsView{
		JobView:                 t.TransformJob(job, now),
		TotalApplications:       stats.Total,
		PendingApplications:     stats.Pending,
		ShortlistedApplications: stats.Shortlisted,
		RejectedApplications:    stats.Rejected,
		HiredApplications:       stats.Hired,
	}
}

// TransformApplication maps an embedded application to its API shape.
func TransformApplication(app *models.Applicant, now time.Time) ApplicationView {
	return ApplicationView{
		ID:          app.ID.String(),
		FullName:    app.FullName,
		Email:       app.Email,
		Phone:       app.Phone,
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		AppliedAt:   app.AppliedAt,
		Status:      app.Status,
		ReviewedAt:  app.ReviewedAt,
		Notes:       app.Notes,
		TimeAgo:     TimeAgo(app.AppliedAt, now),
	}
}

// TimeAgo renders a past instant as a coarse relative-age string. The
// buckets are whole days: same day, days, floored weeks, floored months.
func TimeAgo(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}

// CalculateApplicationStats counts applicants per status bucket.
func CalculateApplicationStats(apps models.ApplicantList) ApplicationStats {
	stats := ApplicationStats{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusShortlisted:
			stats.Shortlisted++
		case models.StatusRejected:
			stats.Rejected++
		case models.StatusHired:
			stats.Hired++
		}
	}
	return stats
}

func splitSkills(requirements string) []string {
	skills := []string{}
	if requirements == "" {
		return skills
	}
	for _, s := range strings.Split(requirements, ",") {
		skills = append(skills, strings.TrimSpace(s))
	}
	return skills
}

func companyLogo(company string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(company) {
		initials.WriteString(string([]rune(word)[0]))
	}
	return strings.ToUpper(initials.String())
}
