package service

import (
	"context"

	"requirement-pool/internal/domain"
)

// SeedService loads a small set of sample requirements so a fresh or reset
// pool is not empty.
type SeedService interface {
	Seed(ctx context.Context) error
	SeedIfEmpty(ctx context.Context) error
}

type seedService struct {
	requirements RequirementService
}

func NewSeedService(requirements RequirementService) SeedService {
	return &seedService{requirements: requirements}
}

type sampleRequirement struct {
	username string
	input    domain.CreateRequirementInput
}

func amount(v float64) *float64 { return &v }

var sampleRequirements = []sampleRequirement{
	{
		username: "busy product manager",
		input: domain.CreateRequirementInput{
			Title:            "AI assistant that writes weekly reports",
			Description:      "An assistant that turns a list of finished tasks into a polished weekly report, with summary, progress and next-week plan sections, exportable to Word or PDF.",
			AllowSuggestions: true,
			WillingToPay:     true,
			PaymentAmount:    amount(29),
			Tags:             []string{"office automation", "document generation", "productivity"},
		},
	},
	{
		username: "tired developer",
		input: domain.CreateRequirementInput{
			Title:            "Smart code refactoring helper",
			Description:      "Analyzes an existing codebase, spots code smells, proposes refactorings and applies the safe ones automatically. Should support JavaScript, Python and Java.",
			AllowSuggestions: true,
			WillingToPay:     false,
			Tags:             []string{"developer tools", "code quality", "programming"},
		},
	},
	{
		username: "anxious founder",
		input: domain.CreateRequirementInput{
			Title:            "Personal finance analysis AI",
			Description:      "Tracks income and spending, analyzes habits, builds a budget and suggests suitable investment products, with charts for the overall financial picture.",
			AllowSuggestions: false,
			WillingToPay:     true,
			PaymentAmount:    amount(99),
			Tags:             []string{"finance", "data analysis", "personal assistant"},
		},
	},
}

func (s *seedService) Seed(ctx context.Context) error {
	var created []domain.Requirement
	for _, sample := range sampleRequirements {
		req, err := s.requirements.Create(ctx, sample.username, sample.input)
		if err != nil {
			return err
		}
		created = append(created, *req)
	}

	if len(created) > 0 {
		_, err := s.requirements.AddComment(ctx, created[0].ID, domain.CreateCommentInput{
			Username: "freelance designer",
			Content:  "Great idea, I need exactly this tool.",
		})
		if err != nil {
			return err
		}
	}
	if len(created) > 1 && created[1].AllowSuggestions {
		_, err := s.requirements.AddSuggestion(ctx, created[1].ID, domain.CreateCommentInput{
			Username: "senior engineer",
			Content:  "Start with rename and extract-function refactorings, they are the safest to automate.",
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *seedService) SeedIfEmpty(ctx context.Context) error {
	existing, err := s.requirements.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return s.Seed(ctx)
}
