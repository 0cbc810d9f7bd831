package services

import "gorm.io/gorm"

// FilterQuery carries the raw listing query parameters. Remote is the raw
// "true"/"false" string so that absent and false stay distinguishable.
type FilterQuery struct {
	Search   string
	Location string
	Type     string
	Remote   string
}

// JobFilter is the resolved listing constraint. Inactive jobs are always
// excluded; the remaining fields are applied only when set.
type JobFilter struct {
	Search string
	Type   string
	// Location is a case-insensitive substring the location must contain.
	Location string
	// ExcludeRemote requires the location to NOT contain "remote".
	ExcludeRemote bool
}

// BuildFilter resolves query parameters into a JobFilter. When remote is
// supplied it overrides any location value: remote=true forces the location
// to contain "remote", remote=false forces it not to.
func BuildFilter(q FilterQuery) JobFilter {
	f := JobFilter{
		Search:   q.Search,
		Type:     q.Type,
		Location: q.Location,
	}

	switch q.Remote {
	case "true":
		f.Location = "remote"
		f.ExcludeRemote = false
	case "false":
		f.Location = ""
		f.ExcludeRemote = true
	}

	return f
}

// Apply adds the filter's constraints to a job query. Search is an ILIKE
// over title, company and description, mirroring the text index on those
// three fields.
func (f JobFilter) Apply(db *gorm.DB) *gorm.DB {
	db = db.Where("is_active = ?", true)

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		db = db.Where("title ILIKE ? OR company ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if f.Type != "" {
		db = db.Where("type = ?", f.Type)
	}
	if f.Location != "" {
		db = db.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.ExcludeRemote {
		db = db.Where("location NOT ILIKE ?", "%remote%")
	}

	return db
}
