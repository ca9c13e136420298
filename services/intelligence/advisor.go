package intelligence

import (
	"context"
	"fmt"
	"strings"

	"carebridge/database/repository"
	"carebridge/models"

	"go.uber.org/zap"
)

const advisorPreamble = "你是一名居家护理平台的智能咨询助手。" +
	"请根据用户的描述，从下方服务目录中推荐最合适的上门服务，并简要说明理由。" +
	"回答保持简短、口语化，不要给出诊断或用药建议；如情况紧急请提醒用户就医。"

// DefaultAdvisorService implements AdvisorService on the Gemini client,
// grounding each answer in the live service catalog and the user's recent
// conversation.
type DefaultAdvisorService struct {
	Client  *GeminiClient
	Catalog repository.CatalogRepository
	Logger  *zap.Logger
}

func NewAdvisorService(client *GeminiClient, catalog repository.CatalogRepository, logger *zap.Logger) *DefaultAdvisorService {
	return &DefaultAdvisorService{
		Client:  client,
		Catalog: catalog,
		Logger:  logger,
	}
}

// Ask answers one consultation query and appends the exchange to the user's
// conversation context.
func (s *DefaultAdvisorService) Ask(ctx context.Context, userID, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("empty query")
	}
	turns, err := loadTurns(ctx, userID)
	if err != nil {
		s.Logger.Warn("Advisor context unavailable", zap.Error(err))
		turns = nil
	}

	answer, err := s.Client.GenerateContent(ctx, s.buildPrompt(turns, query))
	if err != nil {
		s.Logger.Error("Advisor query failed", zap.Error(err))
		return "", err
	}

	turns = append(turns,
		models.AdvisorTurn{Role: "user", Text: query},
		models.AdvisorTurn{Role: "advisor", Text: answer},
	)
	if err := saveTurns(ctx, userID, turns); err != nil {
		s.Logger.Warn("Failed to save advisor context", zap.Error(err))
	}
	return answer, nil
}

// ClearContext drops the user's stored conversation.
func (s *DefaultAdvisorService) ClearContext(ctx context.Context, userID string) error {
	return clearTurns(ctx, userID)
}

func (s *DefaultAdvisorService) buildPrompt(turns []models.AdvisorTurn, query string) string {
	var sb strings.Builder
	sb.WriteString(advisorPreamble)
	sb.WriteString("\n\n服务目录：\n")
	for _, svc := range s.Catalog.ListServices() {
		fmt.Fprintf(&sb, "- %s（¥%.0f）：%s\n", svc.Name, svc.Price, svc.Description)
	}
	if len(turns) > 0 {
		sb.WriteString("\n最近对话：\n")
		for _, t := range turns {
			label := "用户"
			if t.Role == "advisor" {
				label = "助手"
			}
			fmt.Fprintf(&sb, "%s：%s\n", label, t.Text)
		}
	}
	sb.WriteString("\n用户：")
	sb.WriteString(query)
	return sb.String()
}
