package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"career-connect/internal/domain/catalog"
	"career-connect/internal/domain/recommend"
	"career-connect/internal/domain/roadmap"
	"career-connect/internal/domain/skillgap"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
)

type mockStudentRepo struct {
	profile    student.Profile
	profileErr error

	activities    int
	activitiesErr error

	savedProfile  *student.Profile
	loggedEntries []string
}

func (m *mockStudentRepo) GetByUserID(context.Context, uuid.UUID) (student.Profile, error) {
	if m.profileErr != nil {
		return student.Profile{}, m.profileErr
	}
	return m.profile, nil
}

func (m *mockStudentRepo) Save(_ context.Context, p student.Profile) error {
	m.savedProfile = &p
	return nil
}

func (m *mockStudentRepo) LogActivity(_ context.Context, _ uuid.UUID, activity string) error {
	m.loggedEntries = append(m.loggedEntries, activity)
	return nil
}

func (m *mockStudentRepo) CountActivities(context.Context, uuid.UUID) (int, error) {
	if m.activitiesErr != nil {
		return 0, m.activitiesErr
	}
	return m.activities, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func csTestProfile() student.Profile {
	return student.NewProfile(
		uuid.New(),
		string(student.BranchComputerScience),
		"Python, SQL",
		8.2,
		"Chat App",
		"Backend",
	)
}

func TestRecommendationUsecase_ProfileNotFound(t *testing.T) {
	repo := &mockStudentRepo{profileErr: student.ErrProfileNotFound}
	uc := NewRecommendationUsecase(repo, recommend.NewRecommender(catalog.New(), discardLogger()))

	_, err := uc.GetRecommendations(context.Background(), uuid.New(), 0)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestRecommendationUsecase_Success(t *testing.T) {
	repo := &mockStudentRepo{profile: csTestProfile()}
	uc := NewRecommendationUsecase(repo, recommend.NewRecommender(catalog.New(), discardLogger()))

	recs, err := uc.GetRecommendations(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}
}

func TestSkillGapUsecase_Success(t *testing.T) {
	repo := &mockStudentRepo{profile: csTestProfile()}
	uc := NewSkillGapUsecase(
		repo,
		recommend.NewRecommender(catalog.New(), discardLogger()),
		skillgap.NewAnalyzer(discardLogger()),
	)

	gaps, err := uc.AnalyzeGaps(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gaps) == 0 || len(gaps) > 5 {
		t.Fatalf("expected 1-5 gaps, got %d", len(gaps))
	}
}

func TestSkillGapUsecase_RepoFailure(t *testing.T) {
	repo := &mockStudentRepo{profileErr: errors.New("connection refused")}
	uc := NewSkillGapUsecase(
		repo,
		recommend.NewRecommender(catalog.New(), discardLogger()),
		skillgap.NewAnalyzer(discardLogger()),
	)

	_, err := uc.AnalyzeGaps(context.Background(), uuid.New())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestReadinessUsecase_Breakdown(t *testing.T) {
	repo := &mockStudentRepo{profile: csTestProfile(), activities: 4}
	uc := NewReadinessUsecase(repo)

	got, err := uc.GetReadiness(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Total < 0 || got.Total > 100 {
		t.Fatalf("total out of range: %d", got.Total)
	}
	if got.Academic != 85 {
		t.Fatalf("academic = %d, want 85", got.Academic)
	}
	if got.Activities != 40 {
		t.Fatalf("activities = %d, want 40", got.Activities)
	}
}

func TestReadinessUsecase_ActivityCountFailureFallsBack(t *testing.T) {
	repo := &mockStudentRepo{profile: csTestProfile(), activitiesErr: errors.New("timeout")}
	uc := NewReadinessUsecase(repo)

	got, err := uc.GetReadiness(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Activities != 30 {
		t.Fatalf("activities = %d, want default 30", got.Activities)
	}
}

func TestRoadmapUsecase_Success(t *testing.T) {
	repo := &mockStudentRepo{profile: csTestProfile(), activities: 2}
	uc := NewRoadmapUsecase(
		repo,
		recommend.NewRecommender(catalog.New(), discardLogger()),
		skillgap.NewAnalyzer(discardLogger()),
		roadmap.NewGenerator(discardLogger()),
	)

	plan, err := uc.GetRoadmap(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(plan.Steps) != roadmap.StepCount {
		t.Fatalf("expected %d steps, got %d", roadmap.StepCount, len(plan.Steps))
	}
	if plan.TotalTimeline == "" {
		t.Fatalf("missing total timeline")
	}
}

func TestRoadmapUsecase_ProfileNotFound(t *testing.T) {
	repo := &mockStudentRepo{profileErr: student.ErrProfileNotFound}
	uc := NewRoadmapUsecase(
		repo,
		recommend.NewRecommender(catalog.New(), discardLogger()),
		skillgap.NewAnalyzer(discardLogger()),
		roadmap.NewGenerator(discardLogger()),
	)

	_, err := uc.GetRoadmap(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileUsecase_SaveValidates(t *testing.T) {
	repo := &mockStudentRepo{}
	uc := NewProfileUsecase(repo)

	if _, err := uc.Save(context.Background(), uuid.New(), ProfileInput{Branch: "  "}); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}

	prof, err := uc.Save(context.Background(), uuid.New(), ProfileInput{
		Branch: "Computer Science",
		Skills: "Python, SQL",
		CGPA:   12, // out of range, defaults
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if prof.CGPA != student.DefaultCGPA {
		t.Fatalf("cgpa = %v, want default", prof.CGPA)
	}
	if repo.savedProfile == nil {
		t.Fatalf("profile not persisted")
	}
}
