package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Requirement RequirementRepository
	Comment     CommentRepository
	Suggestion  SuggestionRepository
	Like        LikeRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Requirement: NewRequirementRepository(db),
		Comment:     NewCommentRepository(db),
		Suggestion:  NewSuggestionRepository(db),
		Like:        NewLikeRepository(db),
	}
}
