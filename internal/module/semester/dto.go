package semester

// CreateSemesterRequest represents the input for creating a semester.
type CreateSemesterRequest struct {
	Title      string `json:"title" binding:"required"`
	Code       string `json:"code" binding:"required"`
	Year       int    `json:"year" binding:"required,min=1900"`
	StartMonth string `json:"startMonth" binding:"required"`
	EndMonth   string `json:"endMonth" binding:"required"`
}

// UpdateSemesterRequest represents a partial update. Absent fields are left
// unchanged.
type UpdateSemesterRequest struct {
	Title      *string `json:"title" binding:"omitempty"`
	Code       *string `json:"code" binding:"omitempty"`
	Year       *int    `json:"year" binding:"omitempty,min=1900"`
	StartMonth *string `json:"startMonth" binding:"omitempty"`
	EndMonth   *string `json:"endMonth" binding:"omitempty"`
	IsCurrent  *bool   `json:"isCurrent" binding:"omitempty"`
}
