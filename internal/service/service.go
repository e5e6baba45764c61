package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"requirement-pool/internal/config"
	"requirement-pool/internal/repository"
)

type Services struct {
	Requirement RequirementService
	Media       MediaService
	Seed        SeedService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	requirementService := NewRequirementService(repos.Requirement, repos.Comment, repos.Suggestion, repos.Like, redis)
	mediaService := NewMediaService(minioClient, cfg)
	seedService := NewSeedService(requirementService)

	return &Services{
		Requirement: requirementService,
		Media:       mediaService,
		Seed:        seedService,
	}
}
