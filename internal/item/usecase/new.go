package usecase

import (
	"item-catalog/internal/item/repository"
	"item-catalog/pkg/log"
)

// implUseCase is the private implementation of item.UseCase. It holds
// no mutable state of its own and is safe for concurrent use.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
