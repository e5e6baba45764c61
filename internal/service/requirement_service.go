package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"requirement-pool/internal/domain"
	"requirement-pool/internal/repository"
)

const (
	cacheListKey  = "requirements:all"
	cacheTTL      = 5 * time.Minute
	cacheKeyScope = "requirements:*"
)

// TransitionPolicy decides whether a status change is allowed. The default
// (nil) accepts any change between valid statuses; a stricter workflow can
// be plugged in without touching the service contract.
type TransitionPolicy func(from, to domain.Status) error

type RequirementService interface {
	Create(ctx context.Context, username string, input domain.CreateRequirementInput) (*domain.Requirement, error)
	List(ctx context.Context) ([]domain.Requirement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error)
	AddComment(ctx context.Context, requirementID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	AddSuggestion(ctx context.Context, requirementID uuid.UUID, input domain.CreateCommentInput) (*domain.Suggestion, error)
	ToggleLike(ctx context.Context, requirementID uuid.UUID, username string) (bool, error)
	HasLiked(ctx context.Context, requirementID uuid.UUID, username string) (bool, error)
	UpdateStatus(ctx context.Context, requirementID uuid.UUID, status string) (*domain.Requirement, error)
	Delete(ctx context.Context, requirementID uuid.UUID) error
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	DeleteSuggestion(ctx context.Context, suggestionID uuid.UUID) error
	ClearAll(ctx context.Context) error
	SetTransitionPolicy(policy TransitionPolicy)
}

type requirementService struct {
	requirementRepo  repository.RequirementRepository
	commentRepo      repository.CommentRepository
	suggestionRepo   repository.SuggestionRepository
	likeRepo         repository.LikeRepository
	redis            *redis.Client
	transitionPolicy TransitionPolicy
}

func NewRequirementService(
	requirementRepo repository.RequirementRepository,
	commentRepo repository.CommentRepository,
	suggestionRepo repository.SuggestionRepository,
	likeRepo repository.LikeRepository,
	redis *redis.Client,
) RequirementService {
	return &requirementService{
		requirementRepo: requirementRepo,
		commentRepo:     commentRepo,
		suggestionRepo:  suggestionRepo,
		likeRepo:        likeRepo,
		redis:           redis,
	}
}

func (s *requirementService) SetTransitionPolicy(policy TransitionPolicy) {
	s.transitionPolicy = policy
}

func (s *requirementService) Create(ctx context.Context, username string, input domain.CreateRequirementInput) (*domain.Requirement, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("description is required")
	}
	if strings.TrimSpace(username) == "" {
		return nil, domain.NewValidationError("username is required")
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.Status(input.Status)
		if !status.Valid() {
			return nil, invalidStatusError(input.Status)
		}
	}

	paymentAmount := input.PaymentAmount
	if input.WillingToPay {
		if paymentAmount == nil || *paymentAmount <= 0 {
			return nil, domain.NewValidationError("paymentAmount must be a positive number when willingToPay is set")
		}
	} else {
		paymentAmount = nil
	}

	req := &domain.Requirement{
		ID:               uuid.New(),
		Title:            input.Title,
		Description:      input.Description,
		Username:         username,
		AllowSuggestions: input.AllowSuggestions,
		WillingToPay:     input.WillingToPay,
		PaymentAmount:    paymentAmount,
		Tags:             toStringArray(input.Tags),
		Images:           toStringArray(input.Images),
		Status:           status,
		Comments:         []domain.Comment{},
		Suggestions:      []domain.Suggestion{},
	}

	if err := s.requirementRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return req, nil
}

func (s *requirementService) List(ctx context.Context) ([]domain.Requirement, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheListKey).Result(); err == nil {
			var reqs []domain.Requirement
			if json.Unmarshal([]byte(cached), &reqs) == nil {
				return reqs, nil
			}
		}
	}

	reqs, err := s.requirementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.suggestionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	commentsByReq := make(map[uuid.UUID][]domain.Comment)
	for _, c := range comments {
		commentsByReq[c.RequirementID] = append(commentsByReq[c.RequirementID], c)
	}
	suggestionsByReq := make(map[uuid.UUID][]domain.Suggestion)
	for _, sg := range suggestions {
		suggestionsByReq[sg.RequirementID] = append(suggestionsByReq[sg.RequirementID], sg)
	}

	if reqs == nil {
		reqs = []domain.Requirement{}
	}
	for i := range reqs {
		hydrate(&reqs[i], commentsByReq[reqs[i].ID], suggestionsByReq[reqs[i].ID])
	}

	if s.redis != nil {
		if data, err := json.Marshal(reqs); err == nil {
			_ = s.redis.Set(ctx, cacheListKey, data, cacheTTL).Err()
		}
	}

	return reqs, nil
}

func (s *requirementService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error) {
	cacheKey := requirementCacheKey(id)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var req domain.Requirement
			if json.Unmarshal([]byte(cached), &req) == nil {
				return &req, nil
			}
		}
	}

	req, err := s.requirementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrRequirementNotFound
	}

	comments, err := s.commentRepo.ListByRequirement(ctx, id)
	if err != nil {
		return nil, err
	}
	suggestions, err := s.suggestionRepo.ListByRequirement(ctx, id)
	if err != nil {
		return nil, err
	}
	hydrate(req, comments, suggestions)

	if s.redis != nil {
		if data, err := json.Marshal(req); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, cacheTTL).Err()
		}
	}

	return req, nil
}

func (s *requirementService) AddComment(ctx context.Context, requirementID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	if err := validateCommentInput(input); err != nil {
		return nil, err
	}
	if err := s.requireRequirement(ctx, requirementID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:            uuid.New(),
		RequirementID: requirementID,
		Username:      input.Username,
		Content:       input.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return comment, nil
}

func (s *requirementService) AddSuggestion(ctx context.Context, requirementID uuid.UUID, input domain.CreateCommentInput) (*domain.Suggestion, error) {
	if err := validateCommentInput(input); err != nil {
		return nil, err
	}
	if err := s.requireRequirement(ctx, requirementID); err != nil {
		return nil, err
	}

	suggestion := &domain.Suggestion{
		ID:            uuid.New(),
		RequirementID: requirementID,
		Username:      input.Username,
		Content:       input.Content,
	}
	if err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return suggestion, nil
}

func (s *requirementService) ToggleLike(ctx context.Context, requirementID uuid.UUID, username string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, domain.NewValidationError("username is required")
	}

	liked, found, err := s.likeRepo.Toggle(ctx, requirementID, username)
	if err != nil {
		return false, err
	}
	if !found {
		return false, domain.ErrRequirementNotFound
	}

	s.invalidateCache(ctx)
	return liked, nil
}

func (s *requirementService) HasLiked(ctx context.Context, requirementID uuid.UUID, username string) (bool, error) {
	return s.likeRepo.Exists(ctx, requirementID, username)
}

func (s *requirementService) UpdateStatus(ctx context.Context, requirementID uuid.UUID, status string) (*domain.Requirement, error) {
	newStatus := domain.Status(status)
	if !newStatus.Valid() {
		return nil, invalidStatusError(status)
	}

	if s.transitionPolicy != nil {
		current, err := s.requirementRepo.GetByID(ctx, requirementID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, domain.ErrRequirementNotFound
		}
		if err := s.transitionPolicy(current.Status, newStatus); err != nil {
			return nil, domain.NewValidationError("status transition rejected: %v", err)
		}
	}

	updated, err := s.requirementRepo.UpdateStatus(ctx, requirementID, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domain.ErrRequirementNotFound
	}

	s.invalidateCache(ctx)
	return s.GetByID(ctx, requirementID)
}

func (s *requirementService) Delete(ctx context.Context, requirementID uuid.UUID) error {
	if err := s.requireRequirement(ctx, requirementID); err != nil {
		return err
	}

	if err := s.requirementRepo.DeleteCascade(ctx, requirementID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *requirementService) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	deleted, err := s.commentRepo.Delete(ctx, commentID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrCommentNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *requirementService) DeleteSuggestion(ctx context.Context, suggestionID uuid.UUID) error {
	deleted, err := s.suggestionRepo.Delete(ctx, suggestionID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSuggestionNotFound
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *requirementService) ClearAll(ctx context.Context) error {
	if err := s.requirementRepo.DeleteAll(ctx); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *requirementService) requireRequirement(ctx context.Context, id uuid.UUID) error {
	exists, err := s.requirementRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRequirementNotFound
	}
	return nil
}

func (s *requirementService) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, cacheKeyScope).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func requirementCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("requirements:id:%s", id)
}

func validateCommentInput(input domain.CreateCommentInput) error {
	if strings.TrimSpace(input.Username) == "" {
		return domain.NewValidationError("username is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return domain.NewValidationError("content is required")
	}
	return nil
}

func invalidStatusError(status string) *domain.ValidationError {
	valid := domain.ValidStatuses()
	names := make([]string, len(valid))
	for i, s := range valid {
		names[i] = string(s)
	}
	return domain.NewValidationError("invalid status: %s, valid statuses are: %s",
		status, strings.Join(names, ", "))
}

func toStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}

func hydrate(req *domain.Requirement, comments []domain.Comment, suggestions []domain.Suggestion) {
	if comments == nil {
		comments = []domain.Comment{}
	}
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}
	req.Comments = comments
	req.Suggestions = suggestions
	if req.Tags == nil {
		req.Tags = pq.StringArray{}
	}
	if req.Images == nil {
		req.Images = pq.StringArray{}
	}
}
