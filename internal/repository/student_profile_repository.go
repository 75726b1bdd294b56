package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-connect/internal/database"
	"career-connect/internal/domain/student"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresStudentRepository stores profiles in the comma-separated text
// form the intake forms produce; student.NewProfile applies the defaults
// on the way out, so a half-filled row still yields a usable profile.
type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (student.Profile, error) {
	var (
		branch    string
		skills    string
		cgpa      float64
		projects  string
		interests string
	)
	err := r.db.QueryRow(ctx,
		`SELECT branch, skills, cgpa, projects, interests
		 FROM student_profiles WHERE user_id = $1`,
		userID,
	).Scan(&branch, &skills, &cgpa, &projects, &interests)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Profile{}, student.ErrProfileNotFound
		}
		return student.Profile{}, err
	}

	return student.NewProfile(userID, branch, skills, cgpa, projects, interests), nil
}

func (r *PostgresStudentRepository) Save(ctx context.Context, p student.Profile) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx,
		`INSERT INTO student_profiles (user_id, branch, skills, cgpa, projects, interests, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
			branch = EXCLUDED.branch,
			skills = EXCLUDED.skills,
			cgpa = EXCLUDED.cgpa,
			projects = EXCLUDED.projects,
			interests = EXCLUDED.interests,
			updated_at = EXCLUDED.updated_at`,
		p.UserID,
		string(p.Branch),
		strings.Join(p.Skills, ", "),
		p.CGPA,
		strings.Join(p.Projects, ", "),
		strings.Join(p.Interests, ", "),
		now,
	)
	return err
}

func (r *PostgresStudentRepository) LogActivity(ctx context.Context, userID uuid.UUID, activity string) error {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO learning_activities (id, user_id, activity, created_at)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New(), userID, activity, time.Now().UTC(),
	)
	return err
}

func (r *PostgresStudentRepository) CountActivities(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM learning_activities WHERE user_id = $1`,
		userID,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
