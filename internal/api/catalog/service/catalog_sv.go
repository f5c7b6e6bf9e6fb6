package catalogService

import (
	"PhysioGolang/internal/api/catalog"
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	"PhysioGolang/pkg/log"

	"golang.org/x/net/context"
)

// GetAllTests returns every movement test grouped by body area, the way the
// frontend renders the catalog screen.
func (s *catalogService) GetAllTests(ctx context.Context) (*catalog.TestListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	grouped := make(map[string][]entity.MobilityTest, len(entity.MobilityAreas))
	total := 0
	for _, area := range entity.MobilityAreas {
		tests := entity.TestsByArea(area)
		grouped[area] = tests
		total += len(tests)
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"total":      total,
	}).Debug("Listing movement test catalog")

	return &catalog.TestListResponse{
		Tests: grouped,
		Total: total,
	}, nil
}

func (s *catalogService) GetTestsByArea(ctx context.Context, area string) (*catalog.AreaTestsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	tests := entity.TestsByArea(area)
	if len(tests) == 0 {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"area":       area,
		}).Warn("Unknown mobility area requested")
		return nil, catalog.ErrAreaNotFound
	}

	return &catalog.AreaTestsResponse{
		Area:  area,
		Tests: tests,
	}, nil
}

func (s *catalogService) GetTestByID(ctx context.Context, testID string) (*entity.MobilityTest, error) {
	requestID := contextPkg.GetRequestID(ctx)

	test, ok := entity.TestByID(testID)
	if !ok {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"test_id":    testID,
		}).Warn("Unknown movement test requested")
		return nil, catalog.ErrTestNotFound
	}

	return &test, nil
}
