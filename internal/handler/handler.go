package handler

import "requirement-pool/internal/service"

type Handlers struct {
	Requirement *RequirementHandler
	Comment     *CommentHandler
	Suggestion  *SuggestionHandler
	Media       *MediaHandler
	System      *SystemHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Requirement: NewRequirementHandler(services.Requirement),
		Comment:     NewCommentHandler(services.Requirement),
		Suggestion:  NewSuggestionHandler(services.Requirement),
		Media:       NewMediaHandler(services.Media),
		System:      NewSystemHandler(services.Requirement, services.Seed),
	}
}
