package importer

import (
	"context"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/cover"
	"github.com/herhimstory-source/Reading-Log/internal/log"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/remote"
	"github.com/herhimstory-source/Reading-Log/internal/store"
	"github.com/herhimstory-source/Reading-Log/internal/util"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ActionImport names the aggregate failure of a batch replay.
const ActionImport = "IMPORT"

// Result counts what a successful import added. A zero Result means there
// was nothing new to import.
type Result struct {
	Books     int
	Sentences int
}

func (r Result) Empty() bool {
	return r.Books == 0 && r.Sentences == 0
}

// Importer merges external rows into the store and replays the new entities
// to the remote.
type Importer struct {
	store  *store.Store
	remote remote.Syncer
	// limit caps in-flight remote calls, <= 0 means unbounded.
	limit int

	now         func() time.Time
	newID       func() string
	placeholder func() string
}

func New(st *store.Store, syncer remote.Syncer, limit int) *Importer {
	return &Importer{
		store:       st,
		remote:      syncer,
		limit:       limit,
		now:         model.NewTimestamp,
		newID:       util.GenUUID,
		placeholder: cover.Placeholder,
	}
}

// Import reconciles batch against the store. New entities are committed to
// the store first and then created remotely; if any create fails every
// entity of the batch is removed again and a *model.SyncError combining all
// failures is returned.
func (im *Importer) Import(ctx context.Context, batch model.Batch) (Result, error) {
	plan := im.Plan(batch)
	log.Info("Import planned",
		zap.Int("books", len(plan.Books)),
		zap.Int("sentences", len(plan.Sentences)),
		zap.Int("duplicates", plan.Duplicates),
		zap.Int("unresolved", plan.Unresolved),
		zap.Int("incomplete", plan.Incomplete))

	if plan.Empty() {
		return Result{}, nil
	}

	for _, b := range plan.Books {
		if err := im.store.AddBook(b); err != nil {
			im.rollback(plan)
			return Result{}, err
		}
	}
	for _, s := range plan.Sentences {
		if err := im.store.AddSentence(s); err != nil {
			im.rollback(plan)
			return Result{}, err
		}
	}

	if err := im.replay(ctx, plan); err != nil {
		im.rollback(plan)
		log.Warn("Import rolled back", zap.Error(err))
		return Result{}, err
	}

	res := Result{Books: len(plan.Books), Sentences: len(plan.Sentences)}
	log.Info("Import completed", zap.Int("books", res.Books), zap.Int("sentences", res.Sentences))
	return res, nil
}

// replay issues one create per planned entity and waits for all of them.
// A failing call does not cancel the others.
func (im *Importer) replay(ctx context.Context, plan *Plan) error {
	var g errgroup.Group
	if im.limit > 0 {
		g.SetLimit(im.limit)
	}

	errs := make([]error, len(plan.Books)+len(plan.Sentences))
	for i, b := range plan.Books {
		i, b := i, b
		g.Go(func() error {
			errs[i] = im.remote.CreateBook(ctx, b)
			return nil
		})
	}
	offset := len(plan.Books)
	for i, s := range plan.Sentences {
		i, s := i, s
		g.Go(func() error {
			errs[offset+i] = im.remote.CreateSentence(ctx, s)
			return nil
		})
	}
	g.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return &model.SyncError{Action: ActionImport, Err: err}
	}
	return nil
}

func (im *Importer) rollback(plan *Plan) {
	im.store.RemoveIDs(plan.bookIDs(), plan.sentenceIDs())
}
