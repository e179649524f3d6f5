package patient

import (
	"context"

	"cancercare-companion/internal/agent"
	"cancercare-companion/internal/prompt"
)

// Service turns validated patient input into completion-gateway calls. All
// failures come back inside the Reply; nothing here returns an error.
type Service struct {
	gateway *agent.Gateway
}

func NewService(gateway *agent.Gateway) *Service {
	return &Service{gateway: gateway}
}

func (s *Service) GenerateTreatmentPlan(ctx context.Context, details prompt.PatientDetails) agent.Reply {
	return s.gateway.Generate(ctx, prompt.TreatmentPlan(details))
}

func (s *Service) SupportRecommendations(ctx context.Context, details prompt.PatientDetails, symptoms []string) agent.Reply {
	return s.gateway.Generate(ctx, prompt.SupportRecommendations(details, symptoms))
}
