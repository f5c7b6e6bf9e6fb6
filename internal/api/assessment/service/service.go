package assessmentService

import (
	"errors"
	"os"

	"PhysioGolang/internal/api/assessment"
	assessmentRepository "PhysioGolang/internal/api/assessment/repository"
	movementService "PhysioGolang/internal/api/movement/service"
	"PhysioGolang/pkg/gemini"
	"PhysioGolang/pkg/nlp"
	"PhysioGolang/pkg/openai"
	"PhysioGolang/pkg/redis"
	"PhysioGolang/pkg/s3"
	"PhysioGolang/pkg/smtp"
	"PhysioGolang/pkg/utils"
	"PhysioGolang/pkg/whatsapp"
	"golang.org/x/net/context"

	"github.com/sirupsen/logrus"
)

// LLM providers selectable through LLM_PROVIDER. Anything else runs the
// assessment on canned responses only.
const (
	llmProviderOpenAI = "openai"
	llmProviderGemini = "gemini"
)

var errNoLLMConfigured = errors.New("no LLM provider configured")

type IAssessmentService interface {
	StartSession(ctx context.Context, req assessment.StartSessionRequest) (*assessment.StartSessionResponse, error)
	ProcessProblemAreas(ctx context.Context, req assessment.MessageRequest) (*assessment.ProblemAreasResponse, error)
	AnalyzeMovement(ctx context.Context, req assessment.SessionAnalyzeRequest) (*assessment.SessionAnalyzeResponse, error)
	GenerateRoutine(ctx context.Context, sessionID string) (*assessment.RoutineResponse, error)
	ShareRoutine(ctx context.Context, sessionID string, req assessment.ShareRoutineRequest) (*assessment.ShareRoutineResponse, error)
	GetResults(ctx context.Context, sessionID string) (*assessment.ResultsResponse, error)
}

type assessmentService struct {
	log             *logrus.Logger
	repository      assessmentRepository.Repository
	redis           redis.IRedis
	s3              s3.ItfS3
	smtp            smtp.ItfSmtp
	whatsapp        whatsapp.IWhatsappSender
	chatGPT         openai.IChatGPT
	gemini          gemini.IGemini
	painDetector    nlp.IPainDetector
	painExtractor   *nlp.PainExtractor
	movementService movementService.IMovementService
	utils           utils.IUtils
	llmProvider     string
}

func NewAssessmentService(
	log *logrus.Logger,
	repository assessmentRepository.Repository,
	redis redis.IRedis,
	s3 s3.ItfS3,
	smtp smtp.ItfSmtp,
	whatsapp whatsapp.IWhatsappSender,
	chatGPT openai.IChatGPT,
	gemini gemini.IGemini,
	painDetector nlp.IPainDetector,
	painExtractor *nlp.PainExtractor,
	ms movementService.IMovementService,
	utils utils.IUtils,
) IAssessmentService {
	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = llmProviderOpenAI
	}

	return &assessmentService{
		log:             log,
		repository:      repository,
		redis:           redis,
		s3:              s3,
		smtp:            smtp,
		whatsapp:        whatsapp,
		chatGPT:         chatGPT,
		gemini:          gemini,
		painDetector:    painDetector,
		painExtractor:   painExtractor,
		movementService: ms,
		utils:           utils,
		llmProvider:     llmProvider,
	}
}

// generateText routes one prompt to whichever LLM provider is configured.
// Either client may be nil when its credentials are absent.
func (s *assessmentService) generateText(ctx context.Context, userPrompt string) (string, error) {
	switch s.llmProvider {
	case llmProviderGemini:
		if s.gemini == nil {
			return "", errNoLLMConfigured
		}
		return s.gemini.GenerateText(ctx, taraSystemPrompt, userPrompt)
	case llmProviderOpenAI:
		if s.chatGPT == nil {
			return "", errNoLLMConfigured
		}
		return s.chatGPT.ProcessConversation(ctx, taraSystemPrompt, userPrompt, nil)
	default:
		return "", errNoLLMConfigured
	}
}
