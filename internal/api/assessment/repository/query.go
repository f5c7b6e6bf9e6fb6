package assessmentRepository

const (
	queryCreateAssessment = `
		INSERT INTO assessments (
			id, session_id, user_name, user_concerns,
			problem_areas, created_at, updated_at
		) VALUES (
			:id, :session_id, :user_name, :user_concerns,
			:problem_areas, :created_at, :updated_at
		)
	`

	queryGetAssessmentBySessionID = `
		SELECT
			id, session_id, user_name, user_concerns,
			problem_areas, created_at, updated_at
		FROM assessments
		WHERE session_id = :session_id
	`

	queryUpdateAssessment = `
		UPDATE assessments
		SET
			user_concerns = :user_concerns,
			problem_areas = :problem_areas,
			updated_at = :updated_at
		WHERE session_id = :session_id
	`

	queryCreateResult = `
		INSERT INTO assessment_results (
			id, session_id, test_id, passed, angle,
			depth, details, checks, compensations,
			capture_url, created_at
		) VALUES (
			:id, :session_id, :test_id, :passed, :angle,
			:depth, :details, :checks, :compensations,
			:capture_url, :created_at
		)
	`

	queryGetResultsBySessionID = `
		SELECT
			id, session_id, test_id, passed, angle,
			depth, details, checks, compensations,
			capture_url, created_at
		FROM assessment_results
		WHERE session_id = :session_id
		ORDER BY created_at ASC
	`
)
