package catalogService

import (
	"PhysioGolang/internal/api/catalog"
	"PhysioGolang/internal/entity"
	"golang.org/x/net/context"

	"github.com/sirupsen/logrus"
)

type ICatalogService interface {
	GetAllTests(ctx context.Context) (*catalog.TestListResponse, error)
	GetTestsByArea(ctx context.Context, area string) (*catalog.AreaTestsResponse, error)
	GetTestByID(ctx context.Context, testID string) (*entity.MobilityTest, error)
}

type catalogService struct {
	log *logrus.Logger
}

func NewCatalogService(log *logrus.Logger) ICatalogService {
	return &catalogService{
		log: log,
	}
}
