package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/launchjobs/jobboard-api/internal/models"
	"github.com/launchjobs/jobboard-api/internal/services"
)

func activeJob(owner uuid.UUID) *models.Job {
	return &models.Job{
		ID:         uuid.New(),
		Title:      "Backend Engineer",
		PostedByID: owner,
		IsActive:   true,
		Applicants: models.ApplicantList{},
	}
}

func TestSubmitApplication(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	job := activeJob(uuid.New())

	app, err := services.SubmitApplication(job, services.ApplicantFields{
		FullName: "Alice Nguyen",
		Email:    "Alice@Example.com",
		Phone:    "+1 555 0101",
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", app.Status, models.StatusPending)
	}
	if !app.AppliedAt.Equal(now) {
		t.Errorf("AppliedAt = %v, want %v", app.AppliedAt, now)
	}
	if app.Email != "alice@example.com" {
		t.Errorf("Email = %q, want lowercased %q", app.Email, "alice@example.com")
	}
	if len(job.Applicants) != 1 {
		t.Fatalf("job has %d applicants, want 1", len(job.Applicants))
	}
}

func TestSubmitApplication_DuplicateEmail(t *testing.T) {
	now := time.Now()
	job := activeJob(uuid.New())

	if _, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice", Email: "alice@example.com"}, now); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	_, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice Again", Email: "ALICE@example.com"}, now)
	if !errors.Is(err, services.ErrDuplicateApplication) {
		t.Fatalf("err = %v, want ErrDuplicateApplication", err)
	}
	if len(job.Applicants) != 1 {
		t.Errorf("job has %d applicants after failed apply, want 1", len(job.Applicants))
	}
}

func TestSubmitApplication_InactiveJob(t *testing.T) {
	job := activeJob(uuid.New())
	job.IsActive = false

	_, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice", Email: "alice@example.com"}, time.Now())
	if !errors.Is(err, services.ErrJobInactive) {
		t.Fatalf("err = %v, want ErrJobInactive", err)
	}
	if len(job.Applicants) != 0 {
		t.Errorf("job has %d applicants, want 0", len(job.Applicants))
	}
}

func TestReviewApplication(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	job := activeJob(owner)
	submitted, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice", Email: "alice@example.com"}, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	app, err := services.ReviewApplication(job, submitted.ID, owner, models.StatusShortlisted, "call her", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Status != models.StatusShortlisted {
		t.Errorf("Status = %q, want %q", app.Status, models.StatusShortlisted)
	}
	if app.ReviewedAt == nil || !app.ReviewedAt.Equal(now) {
		t.Errorf("ReviewedAt = %v, want %v", app.ReviewedAt, now)
	}
	if app.ReviewedBy == nil || *app.ReviewedBy != owner {
		t.Errorf("ReviewedBy = %v, want %v", app.ReviewedBy, owner)
	}
	if app.Notes != "call her" {
		t.Errorf("Notes = %q, want %q", app.Notes, "call her")
	}
}

func TestReviewApplication_NonOwnerForbidden(t *testing.T) {
	owner := uuid.New()
	job := activeJob(owner)
	submitted, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice", Email: "alice@example.com"}, time.Now())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err = services.ReviewApplication(job, submitted.ID, uuid.New(), models.StatusHired, "", time.Now())
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// application untouched after the rejected review
	app := job.Applicants[0]
	if app.Status != models.StatusPending {
		t.Errorf("Status = %q, want %q", app.Status, models.StatusPending)
	}
	if app.ReviewedAt != nil || app.ReviewedBy != nil {
		t.Error("review fields set despite Forbidden")
	}
}

func TestReviewApplication_UnknownApplication(t *testing.T) {
	owner := uuid.New()
	job := activeJob(owner)

	_, err := services.ReviewApplication(job, uuid.New(), owner, models.StatusReviewed, "", time.Now())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("err = %v, want a NotFound error", err)
	}
}

func TestReviewApplication_AnyTransitionAllowed(t *testing.T) {
	owner := uuid.New()
	job := activeJob(owner)
	submitted, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice", Email: "alice@example.com"}, time.Now())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	// hired straight from pending, then back again
	for _, status := range []string{models.StatusHired, models.StatusPending, models.StatusRejected} {
		app, err := services.ReviewApplication(job, submitted.ID, owner, status, "", time.Now())
		if err != nil {
			t.Fatalf("transition to %q failed: %v", status, err)
		}
		if app.Status != status {
			t.Errorf("Status = %q, want %q", app.Status, status)
		}
	}
}

func TestReviewApplication_EmptyNotesPreserved(t *testing.T) {
	owner := uuid.New()
	job := activeJob(owner)
	submitted, err := services.SubmitApplication(job, services.ApplicantFields{FullName: "Alice", Email: "alice@example.com"}, time.Now())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := services.ReviewApplication(job, submitted.ID, owner, models.StatusReviewed, "first pass", time.Now()); err != nil {
		t.Fatalf("review failed: %v", err)
	}
	app, err := services.ReviewApplication(job, submitted.ID, owner, models.StatusShortlisted, "", time.Now())
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}

	if app.Notes != "first pass" {
		t.Errorf("Notes = %q, want earlier notes kept when new notes are empty", app.Notes)
	}
}
