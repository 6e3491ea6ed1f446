package dtos

// JobRequest is the create/edit form body for a job posting.
type JobRequest struct {
	Title           string `json:"title" form:"title" binding:"required"`
	CompanyID       uint   `json:"company_id" form:"company_id" binding:"required"`
	Location        string `json:"location" form:"location" binding:"required"`
	Description     string `json:"description" form:"description" binding:"required"`
	JobType         string `json:"job_type" form:"job_type" binding:"required,oneof=Full-time Part-time Contract Remote"`
	ExperienceLevel string `json:"experience_level" form:"experience_level" binding:"required,oneof=Entry Mid Senior Executive"`

	// Optional Fields
	Requirements string `json:"requirements" form:"requirements"`
	SalaryMin    *int   `json:"salary_min" form:"salary_min"`
	SalaryMax    *int   `json:"salary_max" form:"salary_max"`
	Salary       string `json:"salary" form:"salary"`
	Deadline     string `json:"deadline" form:"deadline"` // YYYY-MM-DD, empty means none
}

// JobFilter carries the already-parsed listing query parameters. Empty
// string / nil fields mean "filter not applied".
type JobFilter struct {
	Search          string
	JobType         string
	ExperienceLevel string
	Location        string
	MinSalary       *int
	MaxSalary       *int
	Page            int
}
