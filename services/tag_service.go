package services

import (
	"backend/entity"
	"backend/repository"
)

type TagService struct{ Repo *repository.TagRepository }

func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{Repo: repo}
}

func (s *TagService) Options() ([]entity.TagOption, error) {
	return s.Repo.ListActive()
}
