package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sabdakosha/lexicon-backend/internal/domain"
)

// EntryService provides single-entry lookup. It exists mostly to keep the
// not-found mapping out of the transport layer.
type EntryService struct {
	// DB is the GORM handle used for lookups.
	DB *gorm.DB
	// Repo is the entry repository used by this service.
	Repo EntryRepo
}

// NewEntryService constructs an EntryService.
func NewEntryService(db *gorm.DB, r EntryRepo) *EntryService {
	return &EntryService{DB: db, Repo: r}
}

// Get fetches an entry by id, translating the repository's record-not-found
// into ErrEntryNotFound.
func (s *EntryService) Get(ctx context.Context, id string) (*domain.DictionaryEntry, error) {
	e, err := s.Repo.FindByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return e, nil
}
