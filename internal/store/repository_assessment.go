// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-medcare/internal/logger"
	"github.com/MKhiriev/go-medcare/models"
)

// assessmentRepository is the SQL implementation of [AssessmentRepository]
// and [PurgeRepository].
type assessmentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAssessmentRepository(db *DB, logger *logger.Logger) AssessmentRepository {
	logger.Debug().Msg("creating assessment repository")
	return &assessmentRepository{
		db:     db,
		logger: logger,
	}
}

// NewPurgeRepository constructs a [PurgeRepository] over the assessment and
// consent tables.
func NewPurgeRepository(db *DB, logger *logger.Logger) PurgeRepository {
	return &assessmentRepository{
		db:     db,
		logger: logger,
	}
}

// SaveAssessment appends a submission and returns it with its id.
func (r *assessmentRepository) SaveAssessment(ctx context.Context, a models.Assessment) (models.Assessment, error) {
	log := logger.FromContext(ctx)

	if len(a.Answers) == 0 {
		a.Answers = models.EmptyAnswers
	}

	query, args, err := buildSaveAssessmentQuery(r.db.builder, a)
	if err != nil {
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.SaveAssessment").Msg("error inserting assessment")
		return models.Assessment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return a, nil
}

// GetHistory returns a user's assessments ordered by recorded_at and id,
// newest first. A user without submissions gets an empty slice.
func (r *assessmentRepository) GetHistory(ctx context.Context, pseudonymousID string) ([]models.Assessment, error) {
	query, args, err := buildHistoryQuery(r.db.builder, pseudonymousID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*assessmentRepository.GetHistory", query, args)
}

// GetAll returns every stored assessment ordered by id.
func (r *assessmentRepository) GetAll(ctx context.Context) ([]models.Assessment, error) {
	query, args, err := buildAllAssessmentsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "*assessmentRepository.GetAll", query, args)
}

func (r *assessmentRepository) list(ctx context.Context, funcName, query string, args []any) ([]models.Assessment, error) {
	log := logger.FromContext(ctx)

	var result []models.Assessment
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = make([]models.Assessment, 0)
		for rows.Next() {
			a, err := scanAssessment(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			result = append(result, a)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing assessments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

func scanAssessment(rows *sql.Rows) (models.Assessment, error) {
	var (
		a       models.Assessment
		label   string
		answers []byte
	)
	if err := rows.Scan(&a.ID, &a.PseudonymousID, &a.Score, &label, &answers, &a.RecordedAt); err != nil {
		return models.Assessment{}, err
	}

	a.Label = models.Label(label)
	a.Answers = append([]byte(nil), answers...)
	if len(a.Answers) == 0 {
		a.Answers = models.EmptyAnswers
	}
	a.RecordedAt = a.RecordedAt.UTC()
	return a, nil
}

// PurgeUserData deletes the user's assessments and consent records in one
// transaction. The users row is kept.
func (r *assessmentRepository) PurgeUserData(ctx context.Context, pseudonymousID string) (models.PurgeResult, error) {
	log := logger.FromContext(ctx)

	deleteAssessments, assessmentArgs, err := buildDeleteByPseudonymQuery(r.db.builder, models.Assessment{}.TableName(), pseudonymousID)
	if err != nil {
		return models.PurgeResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteConsents, consentArgs, err := buildDeleteByPseudonymQuery(r.db.builder, models.ConsentRecord{}.TableName(), pseudonymousID)
	if err != nil {
		return models.PurgeResult{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result models.PurgeResult
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		result = models.PurgeResult{}

		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if result.Assessments, err = execAffected(ctx, tx, deleteAssessments, assessmentArgs); err != nil {
			return err
		}
		if result.Consents, err = execAffected(ctx, tx, deleteConsents, consentArgs); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*assessmentRepository.PurgeUserData").Msg("error purging user data")
		return models.PurgeResult{}, err
	}

	return result, nil
}

func execAffected(ctx context.Context, tx *sql.Tx, query string, args []any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
