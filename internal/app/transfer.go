package app

import (
	"context"
	"io"

	"github.com/herhimstory-source/Reading-Log/internal/exporter"
	"github.com/herhimstory-source/Reading-Log/internal/importer"
	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/herhimstory-source/Reading-Log/internal/query"
	"github.com/herhimstory-source/Reading-Log/internal/workbook"
)

const epubTitle = "Reading Log"

// Import reads a workbook and merges it into the collection. An unreadable
// workbook fails before anything changes.
func (s *Service) Import(ctx context.Context, r io.Reader) (importer.Result, error) {
	batch, err := workbook.Read(r)
	if err != nil {
		return importer.Result{}, err
	}
	return s.ImportBatch(ctx, batch)
}

func (s *Service) ImportBatch(ctx context.Context, batch model.Batch) (importer.Result, error) {
	return s.importer.Import(ctx, batch)
}

func (s *Service) Export() (model.Tables, bool) {
	return exporter.Export(s.store.Books(), s.store.Sentences(), s.settings.DateLayout)
}

// ExportWorkbook writes the collection as an .xlsx workbook. It writes
// nothing and reports false when there are no books.
func (s *Service) ExportWorkbook(w io.Writer) (bool, error) {
	tables, ok := s.Export()
	if !ok {
		return false, nil
	}
	if err := workbook.Write(w, tables); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) ExportEPUB(w io.Writer) (bool, error) {
	return exporter.WriteEPUB(w, epubTitle, s.store.Books(), s.store.Sentences(), s.settings.Locale)
}

func (s *Service) Search(q string, typ model.SearchType) query.Results {
	return query.Search(s.store.Books(), s.store.Sentences(), q, typ)
}
