package assessmentRepository

import (
	"PhysioGolang/internal/api/assessment"
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AssessmentDB struct {
	ID           sql.NullString `db:"id"`
	SessionID    sql.NullString `db:"session_id"`
	UserName     sql.NullString `db:"user_name"`
	UserConcerns sql.NullString `db:"user_concerns"`
	ProblemAreas sql.NullString `db:"problem_areas"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *assessmentRepository) CreateAssessment(ctx context.Context, assessmentData entity.Assessment) error {
	requestID := contextPkg.GetRequestID(ctx)

	areasJSON, err := json.Marshal(assessmentData.ProblemAreas)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal problem areas")
		return err
	}

	argsKV := map[string]interface{}{
		"id":            assessmentData.ID,
		"session_id":    assessmentData.SessionID,
		"user_name":     assessmentData.UserName,
		"user_concerns": assessmentData.UserConcerns,
		"problem_areas": string(areasJSON),
		"created_at":    assessmentData.CreatedAt,
		"updated_at":    assessmentData.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAssessment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAssessment")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating assessment")
		return err
	}

	return nil
}

func (r *assessmentRepository) GetAssessmentBySessionID(ctx context.Context, sessionID string) (entity.Assessment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var assessmentDB AssessmentDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetAssessmentBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAssessmentBySessionID named query preparation err")
		return entity.Assessment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&assessmentDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": sessionID,
			}).Debug("GetAssessmentBySessionID no assessment found")
			return entity.Assessment{}, assessment.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAssessmentBySessionID execution err")
		return entity.Assessment{}, err
	}

	return r.makeAssessment(assessmentDB), nil
}

func (r *assessmentRepository) UpdateAssessment(ctx context.Context, assessmentData entity.Assessment) error {
	requestID := contextPkg.GetRequestID(ctx)

	areasJSON, err := json.Marshal(assessmentData.ProblemAreas)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal problem areas")
		return err
	}

	argsKV := map[string]interface{}{
		"session_id":    assessmentData.SessionID,
		"user_concerns": assessmentData.UserConcerns,
		"problem_areas": string(areasJSON),
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAssessment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAssessment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAssessment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAssessment rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": assessmentData.SessionID,
		}).Warn("UpdateAssessment no rows affected")
		return assessment.ErrSessionNotFound
	}

	return nil
}

func (r *assessmentRepository) makeAssessment(assessmentDB AssessmentDB) entity.Assessment {
	var problemAreas []string
	if assessmentDB.ProblemAreas.Valid && assessmentDB.ProblemAreas.String != "" {
		json.Unmarshal([]byte(assessmentDB.ProblemAreas.String), &problemAreas)
	}

	return entity.Assessment{
		ID:           assessmentDB.ID.String,
		SessionID:    assessmentDB.SessionID.String,
		UserName:     assessmentDB.UserName.String,
		UserConcerns: assessmentDB.UserConcerns.String,
		ProblemAreas: problemAreas,
		CreatedAt:    assessmentDB.CreatedAt,
		UpdatedAt:    assessmentDB.UpdatedAt,
	}
}
