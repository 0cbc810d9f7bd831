package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchjobs/jobboard-api/internal/auth"
	"github.com/launchjobs/jobboard-api/internal/dtos"
	"github.com/launchjobs/jobboard-api/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

// NewApplicationHandler creates the handler with dependencies
func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: applications,
	}
}

// Apply is the POST /jobs/:id/apply endpoint. Public: applicants do not
// need an account.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	applicant, err := h.Applications.Apply(c.Param("id"), services.ApplicantFields{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	})
	if err != nil {
		respondError(c, err, errorText{Internal: "Server error while submitting application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": services.TransformApplication(applicant, time.Now()),
	})
}

// GetApplications is the GET /jobs/:id/applications endpoint (owner only)
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	job, err := h.Applications.ListForJob(c.Param("id"), auth.CurrentUserID(c))
	if err != nil {
		respondError(c, err, errorText{
			InvalidID: "Invalid job ID format",
			Forbidden: "Not authorized to view applications for this job",
			Internal:  "Server error while fetching applications",
		})
		return
	}

	now := time.Now()
	views := make([]services.ApplicationView, 0, len(job.Applicants))
	for i := range job.Applicants {
		views = append(views, services.TransformApplication(&job.Applicants[i], now))
	}

	c.JSON(http.StatusOK, gin.H{
		"job": gin.H{
			"id":       job.ID.String(),
			"title":    job.Title,
			"company":  job.Company,
			"location": job.Location,
			"type":     job.Type,
		},
		"applications": views,
		"stats":        services.CalculateApplicationStats(job.Applicants),
	})
}

// UpdateStatus is the PUT /jobs/:id/applications/:applicationId/status
// endpoint (owner only)
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	applicant, err := h.Applications.UpdateStatus(
		c.Param("id"),
		c.Param("applicationId"),
		auth.CurrentUserID(c),
		req.Status,
		req.Notes,
	)
	if err != nil {
		respondError(c, err, errorText{
			Forbidden: "Not authorized to update applications for this job",
			Internal:  "Server error while updating application status",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated successfully",
		"application": services.TransformApplication(applicant, time.Now()),
	})
}
