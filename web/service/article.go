package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
	"edu-center/storage"
	"edu-center/validation"

	"github.com/google/uuid"
)

type ArticleService struct {
	store storage.Store
}

func NewArticleService(store storage.Store) *ArticleService {
	return &ArticleService{store: store}
}

type ArticlePatch struct {
	Title   *string
	Content *string
	Source  *string
}

func (s *ArticleService) List() ([]model.Article, error) {
	var articles []model.Article
	err := database.GetDB().Order("created_at desc").Find(&articles).Error
	return articles, err
}

func (s *ArticleService) Get(id string) (*model.Article, error) {
	article := &model.Article{}
	if err := database.GetDB().First(article, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) validate(article *model.Article) error {
	return validation.Collect(
		validation.NonEmpty("title", article.Title),
		validation.NonEmpty("content", article.Content),
	)
}

func (s *ArticleService) Create(article *model.Article) error {
	if err := s.validate(article); err != nil {
		return err
	}
	return database.GetDB().Create(article).Error
}

func (s *ArticleService) Update(id string, patch ArticlePatch) (*model.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.Source != nil {
		article.Source = *patch.Source
	}

	if err := s.validate(article); err != nil {
		return nil, err
	}
	if err := database.GetDB().Save(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) SetImage(ctx context.Context, id string, r io.Reader, size int64, filename, contentType string) (*model.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("articles/%s%s", uuid.NewString(), path.Ext(filename))
	ref, err := s.store.Store(ctx, key, r, size, contentType)
	if err != nil {
		return nil, err
	}

	oldRef := article.ImageRef
	article.ImageRef = ref
	if err := database.GetDB().Save(article).Error; err != nil {
		return nil, err
	}
	if oldRef != "" {
		if err := s.store.Delete(ctx, oldRef); err != nil {
			logger.Warningf("failed to delete old article image %s: %v", oldRef, err)
		}
	}
	return article, nil
}

func (s *ArticleService) Delete(id string) error {
	article, err := s.Get(id)
	if err != nil {
		return err
	}

	if article.ImageRef != "" {
		if err := s.store.Delete(context.Background(), article.ImageRef); err != nil {
			logger.Warningf("failed to delete article image %s: %v", article.ImageRef, err)
		}
	}
	return database.GetDB().Delete(&model.Article{}, "id = ?", id).Error
}
