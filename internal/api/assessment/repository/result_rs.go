package assessmentRepository

import (
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AssessmentResultDB struct {
	ID            sql.NullString  `db:"id"`
	SessionID     sql.NullString  `db:"session_id"`
	TestID        sql.NullString  `db:"test_id"`
	Passed        sql.NullBool    `db:"passed"`
	Angle         sql.NullFloat64 `db:"angle"`
	Depth         sql.NullString  `db:"depth"`
	Details       sql.NullString  `db:"details"`
	Checks        sql.NullString  `db:"checks"`
	Compensations sql.NullString  `db:"compensations"`
	CaptureURL    sql.NullString  `db:"capture_url"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (r *resultRepository) CreateResult(ctx context.Context, result entity.AssessmentResult) error {
	requestID := contextPkg.GetRequestID(ctx)

	checksJSON, err := json.Marshal(result.Checks)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal result checks")
		return err
	}

	compensationsJSON, err := json.Marshal(result.Compensations)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal result compensations")
		return err
	}

	argsKV := map[string]interface{}{
		"id":            result.ID,
		"session_id":    result.SessionID,
		"test_id":       result.TestID,
		"passed":        result.Passed,
		"angle":         result.Angle,
		"depth":         result.Depth,
		"details":       result.Details,
		"checks":        string(checksJSON),
		"compensations": string(compensationsJSON),
		"capture_url":   result.CaptureURL,
		"created_at":    result.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateResult, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateResult")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating assessment result")
		return err
	}

	return nil
}

func (r *resultRepository) GetResultsBySessionID(ctx context.Context, sessionID string) ([]entity.AssessmentResult, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var resultsDB []AssessmentResultDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetResultsBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetResultsBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &resultsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetResultsBySessionID execution err")
		return nil, err
	}

	results := make([]entity.AssessmentResult, 0, len(resultsDB))
	for _, resultDB := range resultsDB {
		results = append(results, r.makeAssessmentResult(resultDB))
	}

	return results, nil
}

func (r *resultRepository) makeAssessmentResult(resultDB AssessmentResultDB) entity.AssessmentResult {
	var checks map[string]bool
	if resultDB.Checks.Valid && resultDB.Checks.String != "" {
		json.Unmarshal([]byte(resultDB.Checks.String), &checks)
	}

	var compensations []string
	if resultDB.Compensations.Valid && resultDB.Compensations.String != "" {
		json.Unmarshal([]byte(resultDB.Compensations.String), &compensations)
	}

	return entity.AssessmentResult{
		ID:            resultDB.ID.String,
		SessionID:     resultDB.SessionID.String,
		TestID:        resultDB.TestID.String,
		Passed:        resultDB.Passed.Bool,
		Angle:         resultDB.Angle.Float64,
		Depth:         resultDB.Depth.String,
		Details:       resultDB.Details.String,
		Checks:        checks,
		Compensations: compensations,
		CaptureURL:    resultDB.CaptureURL.String,
		CreatedAt:     resultDB.CreatedAt,
	}
}
