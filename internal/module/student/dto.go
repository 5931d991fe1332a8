package student

// CreateStudentRequest represents the input for creating a student.
type CreateStudentRequest struct {
	StudentID          string `json:"studentId" binding:"required"`
	FirstName          string `json:"firstName" binding:"required"`
	MiddleName         string `json:"middleName"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	ContactNo          string `json:"contactNo"`
	Gender             string `json:"gender"`
	BloodGroup         string `json:"bloodGroup"`
	AcademicSemesterID string `json:"academicSemesterId" binding:"required,uuid"`
}

// UpdateStudentRequest represents a partial update. Absent fields are left
// unchanged.
type UpdateStudentRequest struct {
	FirstName  *string `json:"firstName" binding:"omitempty"`
	MiddleName *string `json:"middleName" binding:"omitempty"`
	LastName   *string `json:"lastName" binding:"omitempty"`
	Email      *string `json:"email" binding:"omitempty,email"`
	ContactNo  *string `json:"contactNo" binding:"omitempty"`
	Gender     *string `json:"gender" binding:"omitempty"`
	BloodGroup *string `json:"bloodGroup" binding:"omitempty"`
}
