package marks

import (
	"context"
	"testing"

	"github.com/campuscore/backend/internal/domain"
	"github.com/campuscore/backend/internal/query"
)

// --- mocks ---

type mockMarkRepo struct {
	createFn           func(ctx context.Context, mark *domain.CourseMark) error
	findOneFn          func(ctx context.Context, studentID, enrolledCourseID string, exam domain.ExamType) (*domain.CourseMark, error)
	findByEnrollmentFn func(ctx context.Context, studentID, enrolledCourseID string) ([]domain.CourseMark, error)
	listFn             func(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.CourseMark], error)
	updateFn           func(ctx context.Context, mark *domain.CourseMark) error
	finalizeFn         func(ctx context.Context, enrollment *domain.EnrolledCourse, marks []domain.CourseMark) error
}

func (m *mockMarkRepo) Create(ctx context.Context, mark *domain.CourseMark) error {
	return m.createFn(ctx, mark)
}

func (m *mockMarkRepo) FindOne(ctx context.Context, studentID, enrolledCourseID string, exam domain.ExamType) (*domain.CourseMark, error) {
	return m.findOneFn(ctx, studentID, enrolledCourseID, exam)
}

func (m *mockMarkRepo) FindByEnrollment(ctx context.Context, studentID, enrolledCourseID string) ([]domain.CourseMark, error) {
	return m.findByEnrollmentFn(ctx, studentID, enrolledCourseID)
}

func (m *mockMarkRepo) List(ctx context.Context, cond query.Node, opts query.Options) (*query.PagedResult[domain.CourseMark], error) {
	return m.listFn(ctx, cond, opts)
}

func (m *mockMarkRepo) Update(ctx context.Context, mark *domain.CourseMark) error {
	return m.updateFn(ctx, mark)
}

func (m *mockMarkRepo) FinalizeResult(ctx context.Context, enrollment *domain.EnrolledCourse, marks []domain.CourseMark) error {
	return m.finalizeFn(ctx, enrollment, marks)
}

// mockEnrollmentLookup implements domain.EnrolledCourseRepository for the
// subset of calls the marks service makes.
type mockEnrollmentLookup struct {
	getByIDFn func(ctx context.Context, id string) (*domain.EnrolledCourse, error)
}

func (m *mockEnrollmentLookup) Create(context.Context, *domain.EnrolledCourse) error {
	panic("not used")
}

func (m *mockEnrollmentLookup) GetByID(ctx context.Context, id string) (*domain.EnrolledCourse, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockEnrollmentLookup) FindActiveByStudent(context.Context, string) (*domain.EnrolledCourse, error) {
	panic("not used")
}

func (m *mockEnrollmentLookup) List(context.Context, query.Node, query.Options) (*query.PagedResult[domain.EnrolledCourse], error) {
	panic("not used")
}

func (m *mockEnrollmentLookup) Update(context.Context, *domain.EnrolledCourse) error {
	panic("not used")
}

func (m *mockEnrollmentLookup) Delete(context.Context, string) (*domain.EnrolledCourse, error) {
	panic("not used")
}

func enrollmentOf(studentID string) *mockEnrollmentLookup {
	return &mockEnrollmentLookup{
		getByIDFn: func(_ context.Context, id string) (*domain.EnrolledCourse, error) {
			return &domain.EnrolledCourse{
				BaseModel:          domain.BaseModel{ID: id},
				StudentID:          studentID,
				CourseID:           "course-1",
				AcademicSemesterID: "sem-1",
				Status:             domain.EnrollmentOngoing,
			}, nil
		},
	}
}

// --- UpdateMarks tests ---

func TestUpdateMarks_CreatesMarkOnFirstWrite(t *testing.T) {
	var created *domain.CourseMark
	repo := &mockMarkRepo{
		findOneFn: func(context.Context, string, string, domain.ExamType) (*domain.CourseMark, error) {
			return nil, domain.ErrNotFound
		},
		createFn: func(_ context.Context, mark *domain.CourseMark) error {
			created = mark
			return nil
		},
	}
	svc := NewService(repo, enrollmentOf("stu-1"), query.Defaults{})

	mark, err := svc.UpdateMarks(context.Background(), domain.UpdateMarksInput{
		StudentID:        "stu-1",
		EnrolledCourseID: "enr-1",
		ExamType:         domain.ExamMidterm,
		Marks:            65,
	})
	if err != nil {
		t.Fatalf("UpdateMarks: %v", err)
	}
	if created == nil {
		t.Fatal("expected a new mark row")
	}
	if mark.Marks != 65 || mark.Grade != "A" {
		t.Errorf("mark = %d/%s; want 65/A", mark.Marks, mark.Grade)
	}
	if mark.AcademicSemesterID != "sem-1" {
		t.Errorf("semester = %s; want sem-1 (taken from the enrollment)", mark.AcademicSemesterID)
	}
}

func TestUpdateMarks_UpdatesExistingMark(t *testing.T) {
	existing := &domain.CourseMark{
		StudentID:        "stu-1",
		EnrolledCourseID: "enr-1",
		ExamType:         domain.ExamFinal,
		Marks:            30,
		Grade:            "F",
	}
	repo := &mockMarkRepo{
		findOneFn: func(context.Context, string, string, domain.ExamType) (*domain.CourseMark, error) {
			return existing, nil
		},
		updateFn: func(context.Context, *domain.CourseMark) error { return nil },
		createFn: func(context.Context, *domain.CourseMark) error {
			t.Fatal("existing mark must be updated, not recreated")
			return nil
		},
	}
	svc := NewService(repo, enrollmentOf("stu-1"), query.Defaults{})

	mark, err := svc.UpdateMarks(context.Background(), domain.UpdateMarksInput{
		StudentID:        "stu-1",
		EnrolledCourseID: "enr-1",
		ExamType:         domain.ExamFinal,
		Marks:            55,
	})
	if err != nil {
		t.Fatalf("UpdateMarks: %v", err)
	}
	if mark.Marks != 55 || mark.Grade != "B" {
		t.Errorf("mark = %d/%s; want 55/B", mark.Marks, mark.Grade)
	}
}

func TestUpdateMarks_ValidatesInput(t *testing.T) {
	repo := &mockMarkRepo{}
	svc := NewService(repo, enrollmentOf("stu-1"), query.Defaults{})

	tests := []struct {
		name string
		in   domain.UpdateMarksInput
	}{
		{"marks above 100", domain.UpdateMarksInput{StudentID: "stu-1", EnrolledCourseID: "enr-1", ExamType: domain.ExamMidterm, Marks: 101}},
		{"negative marks", domain.UpdateMarksInput{StudentID: "stu-1", EnrolledCourseID: "enr-1", ExamType: domain.ExamMidterm, Marks: -1}},
		{"unknown exam type", domain.UpdateMarksInput{StudentID: "stu-1", EnrolledCourseID: "enr-1", ExamType: "QUIZ", Marks: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateMarks(context.Background(), tt.in); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateMarks_RejectsForeignEnrollment(t *testing.T) {
	repo := &mockMarkRepo{}
	svc := NewService(repo, enrollmentOf("stu-2"), query.Defaults{})

	_, err := svc.UpdateMarks(context.Background(), domain.UpdateMarksInput{
		StudentID:        "stu-1",
		EnrolledCourseID: "enr-1",
		ExamType:         domain.ExamMidterm,
		Marks:            50,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// --- FinalizeResult tests ---

func TestFinalizeResult_TotalsGradesAndCompletes(t *testing.T) {
	var finalized *domain.EnrolledCourse
	var savedMarks []domain.CourseMark
	repo := &mockMarkRepo{
		findByEnrollmentFn: func(context.Context, string, string) ([]domain.CourseMark, error) {
			return []domain.CourseMark{
				{ExamType: domain.ExamMidterm, Marks: 50},
				{ExamType: domain.ExamFinal, Marks: 70},
			}, nil
		},
		finalizeFn: func(_ context.Context, enrollment *domain.EnrolledCourse, marks []domain.CourseMark) error {
			finalized = enrollment
			savedMarks = marks
			return nil
		},
	}
	svc := NewService(repo, enrollmentOf("stu-1"), query.Defaults{})

	ec, err := svc.FinalizeResult(context.Background(), "stu-1", "enr-1")
	if err != nil {
		t.Fatalf("FinalizeResult: %v", err)
	}

	// total = 50*0.4 + 70*0.6 = 62 → A / 3.5
	if ec.TotalMarks != 62 {
		t.Errorf("TotalMarks = %d; want 62", ec.TotalMarks)
	}
	if ec.Grade != "A" || ec.Point != 3.5 {
		t.Errorf("grade = %s/%.1f; want A/3.5", ec.Grade, ec.Point)
	}
	if ec.Status != domain.EnrollmentCompleted {
		t.Errorf("status = %s; want COMPLETED", ec.Status)
	}
	if finalized != ec {
		t.Error("the completed enrollment should be handed to the store")
	}

	if len(savedMarks) != 2 {
		t.Fatalf("saved %d marks; want 2", len(savedMarks))
	}
	for _, mark := range savedMarks {
		switch mark.ExamType {
		case domain.ExamMidterm:
			if mark.Grade != "B" {
				t.Errorf("midterm grade = %s; want B", mark.Grade)
			}
		case domain.ExamFinal:
			if mark.Grade != "A" {
				t.Errorf("final grade = %s; want A", mark.Grade)
			}
		}
	}
}

func TestFinalizeResult_RequiresBothExams(t *testing.T) {
	repo := &mockMarkRepo{
		findByEnrollmentFn: func(context.Context, string, string) ([]domain.CourseMark, error) {
			return []domain.CourseMark{{ExamType: domain.ExamMidterm, Marks: 50}}, nil
		},
		finalizeFn: func(context.Context, *domain.EnrolledCourse, []domain.CourseMark) error {
			t.Fatal("finalize must not run without both exam marks")
			return nil
		},
	}
	svc := NewService(repo, enrollmentOf("stu-1"), query.Defaults{})

	_, err := svc.FinalizeResult(context.Background(), "stu-1", "enr-1")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFinalizeResult_FailingTotalStillCompletes(t *testing.T) {
	repo := &mockMarkRepo{
		findByEnrollmentFn: func(context.Context, string, string) ([]domain.CourseMark, error) {
			return []domain.CourseMark{
				{ExamType: domain.ExamMidterm, Marks: 20},
				{ExamType: domain.ExamFinal, Marks: 30},
			}, nil
		},
		finalizeFn: func(context.Context, *domain.EnrolledCourse, []domain.CourseMark) error {
			return nil
		},
	}
	svc := NewService(repo, enrollmentOf("stu-1"), query.Defaults{})

	ec, err := svc.FinalizeResult(context.Background(), "stu-1", "enr-1")
	if err != nil {
		t.Fatalf("FinalizeResult: %v", err)
	}

	// total = 20*0.4 + 30*0.6 = 26 → F, but the course is still completed.
	if ec.TotalMarks != 26 || ec.Grade != "F" || ec.Point != 0.0 {
		t.Errorf("result = %d/%s/%.1f; want 26/F/0.0", ec.TotalMarks, ec.Grade, ec.Point)
	}
	if ec.Status != domain.EnrollmentCompleted {
		t.Errorf("status = %s; want COMPLETED", ec.Status)
	}
}

func TestFinalizeResult_RejectsForeignEnrollment(t *testing.T) {
	repo := &mockMarkRepo{}
	svc := NewService(repo, enrollmentOf("stu-2"), query.Defaults{})

	_, err := svc.FinalizeResult(context.Background(), "stu-1", "enr-1")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
