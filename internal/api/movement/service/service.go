package movementService

import (
	"PhysioGolang/internal/api/movement"
	"PhysioGolang/pkg/utils"
	websocketPkg "PhysioGolang/pkg/websocket"
	"golang.org/x/net/context"

	"github.com/sirupsen/logrus"
)

type IMovementService interface {
	AnalyzeMovement(ctx context.Context, req movement.AnalyzeRequest) (*movement.AnalyzeResponse, error)
	ProcessLiveFrame(testID string, frame []byte) (*movement.AnalyzeResponse, error)
}

type movementService struct {
	log          *logrus.Logger
	websocketPkg websocketPkg.IWebsocket
	utils        utils.IUtils
}

func NewMovementService(
	log *logrus.Logger,
	websocket websocketPkg.IWebsocket,
	utils utils.IUtils,
) IMovementService {
	return &movementService{
		log:          log,
		websocketPkg: websocket,
		utils:        utils,
	}
}
