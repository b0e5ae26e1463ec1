// Package app is the session service behind the command line: it owns the
// entity store and keeps it in step with the remote endpoint.
package app // import "github.com/herhimstory-source/Reading-Log/internal/app"

import (
	"context"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/config"
	"github.com/herhimstory-source/Reading-Log/internal/cover"
	"github.com/herhimstory-source/Reading-Log/internal/importer"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/remote"
	"github.com/herhimstory-source/Reading-Log/internal/store"
	"github.com/herhimstory-source/Reading-Log/internal/util"
	"go.uber.org/zap"
)

type Settings struct {
	Locale            string
	DateLayout        string
	ImportConcurrency int
}

type Service struct {
	store    *store.Store
	remote   remote.Syncer
	importer *importer.Importer
	settings Settings

	now         func() time.Time
	newID       func() string
	placeholder func() string
}

func New(syncer remote.Syncer, settings Settings) *Service {
	st := store.NewStore()
	return &Service{
		store:       st,
		remote:      syncer,
		importer:    importer.New(st, syncer, settings.ImportConcurrency),
		settings:    settings,
		now:         model.NewTimestamp,
		newID:       util.GenUUID,
		placeholder: cover.Placeholder,
	}
}

// NewFromOptions builds a service talking to the configured endpoint.
func NewFromOptions(o *config.Options) (*Service, error) {
	if !config.IsEndpointConfigured(o.EndpointURL) {
		return nil, &model.ValidationError{Field: "endpoint_url", Message: "the remote endpoint is not configured"}
	}
	client := remote.NewClient(o.EndpointURL, time.Duration(o.Timeout)*time.Second)
	return New(client, Settings{
		Locale:            o.Locale,
		DateLayout:        o.DateLayout,
		ImportConcurrency: o.ImportConcurrency,
	}), nil
}

// Load replaces the session state with the remote collections. Sentences
// whose book is missing are dropped.
func (s *Service) Load(ctx context.Context) error {
	books, sentences, err := s.remote.FetchAll(ctx)
	if err != nil {
		return err
	}
	orphans := s.store.Reset(books, sentences)
	for _, o := range orphans {
		log.Warn("Dropped sentence without book", zap.String("sentence", o.ID), zap.String("book", o.BookID))
	}
	log.Debug("Loaded collection",
		zap.Int("books", len(books)),
		zap.Int("sentences", len(sentences)-len(orphans)))
	return nil
}
