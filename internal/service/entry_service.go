package service

import (
	"net/url"
	"strconv"

	"phhblog/internal/contract"
	"phhblog/internal/domain/entity"
	"phhblog/internal/utils"
	"phhblog/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type EntryRepository interface {
	FindAll() ([]*entity.Entry, error)
	FindByTag(tagID int) ([]*entity.Entry, error)
	FindByID(id int) (*entity.Entry, error)
	Save(entry *entity.Entry) error
	Delete(entry *entity.Entry) error
}

type TagRepository interface {
	FindAll() ([]*entity.Tag, error)
}

type DefaultEntryService struct {
	EntryRepo EntryRepository
	TagRepo   TagRepository
	Validate  *validator.Validate
}

func NewEntryService(entryRepo EntryRepository, tagRepo TagRepository, validate *validator.Validate) *DefaultEntryService {
	return &DefaultEntryService{
		EntryRepo: entryRepo,
		TagRepo:   tagRepo,
		Validate:  validate,
	}
}

// ListingPage assembles the top page: entries (optionally restricted
// to one tag) plus every tag paired with its filter query string.
func (s *DefaultEntryService) ListingPage(tagID *int) (*contract.ListingPage, apierror.ErrorResponse) {
	var entries []*entity.Entry
	var err error

	if tagID != nil {
		entries, err = s.EntryRepo.FindByTag(*tagID)
	} else {
		entries, err = s.EntryRepo.FindAll()
	}
	if err != nil {
		log.Errorf("failed to fetch entries: %v", err)
		return nil, apierror.InternalServerError
	}

	tags, err := s.TagRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch tags: %v", err)
		return nil, apierror.InternalServerError
	}

	links := make([]contract.TagLink, len(tags))
	for i, tag := range tags {
		links[i] = contract.TagLink{
			Tag:   tag,
			Query: encodeTagQuery(tag),
		}
	}

	return &contract.ListingPage{
		Entries: entries,
		Tags:    links,
	}, nil
}

func (s *DefaultEntryService) PostFormPage() (*contract.PostFormPage, apierror.ErrorResponse) {
	tags, err := s.TagRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch tags: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.PostFormPage{Tags: tags}, nil
}

func (s *DefaultEntryService) EditFormPage(entryID int) (*contract.EditFormPage, apierror.ErrorResponse) {
	entry, err := s.EntryRepo.FindByID(entryID)
	if err != nil {
		log.Errorf("failed to fetch entry: %v", err)
		return nil, apierror.InternalServerError
	}

	if entry == nil {
		return nil, apierror.NotFoundError
	}

	tags, err := s.TagRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch tags: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.EditFormPage{
		Entry: entry,
		Tags:  tags,
	}, nil
}

// CreateEntry inserts a new entry owned by the fixed author.
func (s *DefaultEntryService) CreateEntry(req *contract.EntryForm) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	entry := &entity.Entry{
		UserID: entity.AuthorID,
		Title:  req.Title,
		TagID:  parseTagID(req.Tag),
		Text:   req.Entry,
	}

	if err := s.EntryRepo.Save(entry); err != nil {
		log.Errorf("failed to save entry: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// UpdateEntry replaces title, tag and text of an existing entry. The
// id and the owner never change.
func (s *DefaultEntryService) UpdateEntry(req *contract.EditEntryForm) apierror.ErrorResponse {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return apierror.FromValidationError(valerr)
	}

	entry, err := s.EntryRepo.FindByID(req.ID)
	if err != nil {
		log.Errorf("failed to fetch entry: %v", err)
		return apierror.InternalServerError
	}

	if entry == nil {
		return apierror.NotFoundError
	}

	entry.Title = req.Title
	entry.TagID = parseTagID(req.Tag)
	entry.Text = req.Entry

	if err := s.EntryRepo.Save(entry); err != nil {
		log.Errorf("failed to update entry: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultEntryService) DeleteEntry(entryID int) apierror.ErrorResponse {
	entry, err := s.EntryRepo.FindByID(entryID)
	if err != nil {
		log.Errorf("failed to fetch entry: %v", err)
		return apierror.InternalServerError
	}

	if entry == nil {
		return apierror.NotFoundError
	}

	if err := s.EntryRepo.Delete(entry); err != nil {
		log.Errorf("failed to delete entry: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// encodeTagQuery builds the filter link query from the tag's own
// fields, e.g. "id=2&name=tech".
func encodeTagQuery(tag *entity.Tag) string {
	values := url.Values{}
	values.Set("id", strconv.Itoa(tag.ID))
	values.Set("name", tag.Name)
	return values.Encode()
}

// parseTagID has validation behind it ("omitempty,number"), so a
// non-empty value is numeric. Empty means no tag.
func parseTagID(raw string) *int {
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}
