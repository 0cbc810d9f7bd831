package services_test

import (
	"testing"

	"github.com/launchjobs/jobboard-api/internal/services"
)

func TestBuildFilter_Defaults(t *testing.T) {
	f := services.BuildFilter(services.FilterQuery{})

	if f.Search != "" || f.Type != "" || f.Location != "" || f.ExcludeRemote {
		t.Errorf("empty query produced constraints: %+v", f)
	}
}

func TestBuildFilter_PassesThroughFields(t *testing.T) {
	f := services.BuildFilter(services.FilterQuery{
		Search:   "engineer",
		Location: "Austin",
		Type:     "contract",
	})

	if f.Search != "engineer" {
		t.Errorf("Search = %q, want %q", f.Search, "engineer")
	}
	if f.Location != "Austin" {
		t.Errorf("Location = %q, want %q", f.Location, "Austin")
	}
	if f.Type != "contract" {
		t.Errorf("Type = %q, want %q", f.Type, "contract")
	}
}

func TestBuildFilter_RemoteOverridesLocation(t *testing.T) {
	f := services.BuildFilter(services.FilterQuery{
		Remote:   "true",
		Location: "Austin",
	})

	if f.Location != "remote" {
		t.Errorf("Location = %q, want %q (remote=true overrides location)", f.Location, "remote")
	}
	if f.ExcludeRemote {
		t.Error("ExcludeRemote = true, want false when remote=true")
	}
}

func TestBuildFilter_RemoteFalseExcludes(t *testing.T) {
	f := services.BuildFilter(services.FilterQuery{
		Remote:   "false",
		Location: "Austin",
	})

	if !f.ExcludeRemote {
		t.Error("ExcludeRemote = false, want true when remote=false")
	}
	if f.Location != "" {
		t.Errorf("Location = %q, want empty when remote=false", f.Location)
	}
}
