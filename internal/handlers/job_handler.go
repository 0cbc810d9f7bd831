package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchjobs/jobboard-api/internal/auth"
	"github.com/launchjobs/jobboard-api/internal/dtos"
	"github.com/launchjobs/jobboard-api/internal/services"
)

// Dependency injection: handlers only talk to the services they are given
type JobHandler struct {
	Jobs      *services.JobService
	Transform *services.Transformer
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, transform *services.Transformer) *JobHandler {
	return &JobHandler{
		Jobs:      jobs,
		Transform: transform,
	}
}

// GetJobs is the GET /jobs endpoint: filtered, paginated listing
func (h *JobHandler) GetJobs(c *gin.Context) {
	var query dtos.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := services.BuildFilter(services.FilterQuery{
		Search:   query.Search,
		Location: query.Location,
		Type:     query.Type,
		Remote:   query.Remote,
	})

	jobs, pagination, err := h.Jobs.List(filter, query.Page, query.Limit)
	if err != nil {
		respondError(c, err, errorText{Internal: "Server error while fetching jobs"})
		return
	}

	now := time.Now()
	views := make([]services.JobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, h.Transform.TransformJob(&jobs[i], now))
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":       views,
		"pagination": pagination,
	})
}

// GetJob is the GET /jobs/:id endpoint
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err, errorText{
			InvalidID: "Invalid job ID format",
			Internal:  "Server error while fetching job",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": h.Transform.TransformJob(job, time.Now())})
}

// CreateJob is the POST /jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Create(&req, auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err, errorText{Internal: "Server error while posting job"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job":     h.Transform.TransformJob(job, time.Now()),
	})
}

// UpdateJob is the PUT /jobs/:id endpoint. The body is read as a raw map so
// disallowed keys can be rejected as a whole.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.Update(c.Param("id"), auth.CurrentUserID(c), patch)
	if err != nil {
		respondError(c, err, errorText{
			InvalidID: "Invalid job ID format",
			Forbidden: "Not authorized to update this job",
			Internal:  "Server error while updating job",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     h.Transform.TransformJob(job, time.Now()),
	})
}

// DeleteJob is the DELETE /jobs/:id endpoint
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.Jobs.Delete(c.Param("id"), auth.CurrentUserID(c)); err != nil {
		respondError(c, err, errorText{
			InvalidID: "Invalid job ID format",
			Forbidden: "Not authorized to delete this job",
			Internal:  "Server error while deleting job",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// GetMyJobs is the GET /jobs/user/my-jobs endpoint
func (h *JobHandler) GetMyJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByOwner(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err, errorText{Internal: "Server error while fetching user jobs"})
		return
	}

	now := time.Now()
	views := make([]services.JobView, 0, len(jobs))
	for i := range jobs {
		views = append(views, h.Transform.TransformJob(&jobs[i], now))
	}

	c.JSON(http.StatusOK, gin.H{"jobs": views})
}

// GetMyJobsWithApplications is the GET /jobs/user/my-jobs-with-applications
// endpoint: the owner dashboard listing with per-status applicant counts
func (h *JobHandler) GetMyJobsWithApplications(c *gin.Context) {
	jobs, err := h.Jobs.ListByOwnerWithStats(auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err, errorText{Internal: "Server error while fetching user jobs"})
		return
	}

	now := time.Now()
	views := make([]services.JobWithStatsView, 0, len(jobs))
	for i := range jobs {
		views = append(views, h.Transform.TransformJobWithStats(&jobs[i].Job, jobs[i].Stats, now))
	}

	c.JSON(http.StatusOK, gin.H{"jobs": views})
}
