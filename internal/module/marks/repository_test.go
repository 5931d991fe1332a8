package marks

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/campuscore/backend/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	if err := db.AutoMigrate(&domain.EnrolledCourse{}, &domain.CourseMark{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func TestFindOne_MatchesExamType(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	midterm := &domain.CourseMark{
		StudentID:          "stu-1",
		EnrolledCourseID:   "enr-1",
		AcademicSemesterID: "sem-1",
		ExamType:           domain.ExamMidterm,
		Marks:              50,
	}
	if err := repo.Create(ctx, midterm); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindOne(ctx, "stu-1", "enr-1", domain.ExamMidterm)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if got.ID != midterm.ID {
		t.Errorf("got %s; want %s", got.ID, midterm.ID)
	}

	if _, err := repo.FindOne(ctx, "stu-1", "enr-1", domain.ExamFinal); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing final mark, got %v", err)
	}
}

func TestFinalizeResult_PersistsMarksAndEnrollmentTogether(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	enrollment := &domain.EnrolledCourse{
		StudentID:          "stu-1",
		CourseID:           "course-1",
		AcademicSemesterID: "sem-1",
		Status:             domain.EnrollmentOngoing,
	}
	if err := db.Create(enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	examMarks := []domain.CourseMark{
		{StudentID: "stu-1", EnrolledCourseID: enrollment.ID, AcademicSemesterID: "sem-1", ExamType: domain.ExamMidterm, Marks: 50},
		{StudentID: "stu-1", EnrolledCourseID: enrollment.ID, AcademicSemesterID: "sem-1", ExamType: domain.ExamFinal, Marks: 70},
	}
	for i := range examMarks {
		if err := repo.Create(ctx, &examMarks[i]); err != nil {
			t.Fatalf("Create mark: %v", err)
		}
		examMarks[i].Grade, _ = GradeFromMarks(examMarks[i].Marks)
	}

	enrollment.Status = domain.EnrollmentCompleted
	enrollment.Grade = "A"
	enrollment.Point = 3.5
	enrollment.TotalMarks = 62

	if err := repo.FinalizeResult(ctx, enrollment, examMarks); err != nil {
		t.Fatalf("FinalizeResult: %v", err)
	}

	var storedEnrollment domain.EnrolledCourse
	if err := db.First(&storedEnrollment, "id = ?", enrollment.ID).Error; err != nil {
		t.Fatalf("load enrollment: %v", err)
	}
	if storedEnrollment.Status != domain.EnrollmentCompleted || storedEnrollment.Grade != "A" {
		t.Errorf("stored enrollment = %s/%s; want COMPLETED/A", storedEnrollment.Status, storedEnrollment.Grade)
	}

	stored, err := repo.FindByEnrollment(ctx, "stu-1", enrollment.ID)
	if err != nil {
		t.Fatalf("FindByEnrollment: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d marks; want 2", len(stored))
	}
	for _, mark := range stored {
		if mark.Grade == "" {
			t.Errorf("mark %s has no grade after finalize", mark.ID)
		}
	}
}
