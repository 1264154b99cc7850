// Package analytics binds a record repository, its engine schema and its export
// columns into the per-dataset services the admin API serves.
package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/packfinderz-admin/internal/engine"
	"github.com/angelmondragon/packfinderz-admin/internal/export"
	"github.com/angelmondragon/packfinderz-admin/internal/format"
	"github.com/angelmondragon/packfinderz-admin/internal/records"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
	"github.com/angelmondragon/packfinderz-admin/pkg/logger"
	"github.com/angelmondragon/packfinderz-admin/pkg/metrics"
	"github.com/angelmondragon/packfinderz-admin/pkg/pagination"
)

// Cache stores rendered export payloads.
type Cache interface {
	GetBytes(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ExportKey(dataset, format, hash string) string
}

// Options carries the collaborators shared by every dataset service.
type Options struct {
	Formatter   format.Formatter
	Cache       Cache
	CacheTTL    time.Duration
	TitlePrefix string
	// MaxRows caps exports; zero means unlimited.
	MaxRows int
	Metrics *metrics.PipelineMetrics
	Logger  *logger.Logger
	Now     func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

// Result is one page of a dataset plus aggregates over the whole filtered set.
type Result struct {
	Items      any                   `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
	TotalItems int                   `json:"total_items"`
	Groups     []engine.AggregateRow `json:"groups"`
	Summary    engine.Summary        `json:"summary"`
}

// ExportPayload is a rendered download. Rows is zero when Cached is true.
type ExportPayload struct {
	Data        []byte
	ContentType string
	FileName    string
	Rows        int
	Cached      bool
}

// Dataset is the type-erased view of a Service used by the registry and the API.
type Dataset interface {
	Name() enums.Dataset
	Title() string
	Query(ctx context.Context, q engine.Query) (*Result, error)
	Export(ctx context.Context, q engine.Query, ef enums.ExportFormat) (*ExportPayload, error)
}

// Service runs the filter → sort → paginate/aggregate/export pipeline for one record type.
type Service[T any] struct {
	name    enums.Dataset
	title   string
	repo    records.Repository[T]
	schema  engine.Schema[T]
	columns []export.Column[T]
	opts    Options
}

// NewService validates the schema and binds it to repo.
func NewService[T any](name enums.Dataset, title string, repo records.Repository[T], schema engine.Schema[T], columns []export.Column[T], opts Options) (*Service[T], error) {
	if !name.IsValid() {
		return nil, fmt.Errorf("invalid dataset %q", name)
	}
	if repo == nil {
		return nil, fmt.Errorf("%s: repository required", name)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%s: export columns required", name)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service[T]{
		name:    name,
		title:   title,
		repo:    repo,
		schema:  schema,
		columns: columns,
		opts:    opts,
	}, nil
}

func (s *Service[T]) Name() enums.Dataset { return s.name }

func (s *Service[T]) Title() string { return s.title }

// Query returns the requested page plus group and summary aggregates.
func (s *Service[T]) Query(ctx context.Context, q engine.Query) (*Result, error) {
	q = q.Normalize()
	if err := engine.ValidateQuery(q, s.schema); err != nil {
		return nil, err
	}
	prepared, err := s.prepare(ctx, q)
	if err != nil {
		return nil, err
	}

	done := s.opts.Metrics.Time(s.name.String(), metrics.StagePaginate)
	page := pagination.Paginate(prepared, pagination.Params{Page: q.Page, PageSize: q.PageSize})
	done()

	done = s.opts.Metrics.Time(s.name.String(), metrics.StageAggregate)
	groups := engine.Aggregate(prepared, s.schema)
	summary := engine.Summarize(prepared, s.schema)
	done()

	return &Result{
		Items:      page.Items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Groups:     groups,
		Summary:    summary,
	}, nil
}

// Export renders every record matching q, ignoring pagination. Identical queries
// over an unchanged record set are served from the cache when one is configured.
func (s *Service[T]) Export(ctx context.Context, q engine.Query, ef enums.ExportFormat) (*ExportPayload, error) {
	if !ef.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported export format %q", ef))
	}
	q = q.WithoutPaging()
	if err := engine.ValidateQuery(q, s.schema); err != nil {
		return nil, err
	}
	ctx = s.opts.Logger.WithFields(s.opts.Logger.WithDataset(ctx, s.name.String()), map[string]any{"format": ef.String()})

	recs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	key := ""
	if s.opts.Cache != nil {
		key = s.exportKey(ctx, q, ef, recs)
	}
	if key != "" {
		if data, ok := s.cached(ctx, key); ok {
			s.opts.Metrics.IncCacheHit(s.name.String())
			s.opts.Metrics.IncExport(s.name.String(), ef.String())
			return s.payload(data, ef, 0, true), nil
		}
		s.opts.Metrics.IncCacheMiss(s.name.String())
	}

	prepared := s.filter(recs, q)
	if s.opts.MaxRows > 0 && len(prepared) > s.opts.MaxRows {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "export too large").WithDetails(map[string]any{
			"rows":     len(prepared),
			"max_rows": s.opts.MaxRows,
		})
	}

	done := s.opts.Metrics.Time(s.name.String(), metrics.StageRender)
	data, err := export.Render(ef, prepared, s.columns, s.opts.Formatter, s.documentTitle())
	done()
	if err != nil {
		s.opts.Metrics.IncExportFailure(s.name.String(), ef.String())
		if pkgerrors.As(err) == nil {
			err = pkgerrors.Wrap(pkgerrors.CodeExport, err, "render export")
		}
		return nil, err
	}

	if key != "" {
		if err := s.opts.Cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
			s.opts.Logger.Warn(s.opts.Logger.WithField(ctx, "error", err.Error()), "export cache write failed")
		}
	}
	s.opts.Metrics.IncExport(s.name.String(), ef.String())
	s.opts.Logger.Info(s.opts.Logger.WithField(ctx, "rows", len(prepared)), "export rendered")
	return s.payload(data, ef, len(prepared), false), nil
}

func (s *Service[T]) cached(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := s.opts.Cache.GetBytes(ctx, key)
	if err != nil {
		s.opts.Logger.Warn(s.opts.Logger.WithField(ctx, "error", err.Error()), "export cache read failed")
		return nil, false
	}
	return data, ok
}

func (s *Service[T]) prepare(ctx context.Context, q engine.Query) ([]T, error) {
	recs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.filter(recs, q), nil
}

func (s *Service[T]) load(ctx context.Context) ([]T, error) {
	done := s.opts.Metrics.Time(s.name.String(), metrics.StageLoad)
	defer done()
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+s.name.String()+" records")
	}
	return recs, nil
}

func (s *Service[T]) filter(recs []T, q engine.Query) []T {
	done := s.opts.Metrics.Time(s.name.String(), metrics.StageFilter)
	defer done()
	return engine.Prepare(recs, s.schema, q)
}

// exportKey binds the query to the loaded snapshot so a changed record set never
// serves stale bytes. An empty key disables caching for this export.
func (s *Service[T]) exportKey(ctx context.Context, q engine.Query, ef enums.ExportFormat, recs []T) string {
	h := sha256.New()
	h.Write([]byte(q.CacheKey(s.name, ef)))
	if err := json.NewEncoder(h).Encode(recs); err != nil {
		s.opts.Logger.Warn(s.opts.Logger.WithField(ctx, "error", err.Error()), "export snapshot digest failed")
		return ""
	}
	return s.opts.Cache.ExportKey(s.name.String(), ef.String(), hex.EncodeToString(h.Sum(nil)))
}

func (s *Service[T]) payload(data []byte, ef enums.ExportFormat, rows int, cached bool) *ExportPayload {
	return &ExportPayload{
		Data:        data,
		ContentType: export.ContentType(ef),
		FileName:    export.FileName(s.name, ef, s.opts.now()),
		Rows:        rows,
		Cached:      cached,
	}
}

func (s *Service[T]) documentTitle() string {
	prefix := strings.TrimSpace(s.opts.TitlePrefix)
	switch {
	case prefix == "":
		return s.title
	case s.title == "":
		return prefix
	default:
		return prefix + " - " + s.title
	}
}
