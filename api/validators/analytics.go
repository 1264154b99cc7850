package validators

import (
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/packfinderz-admin/internal/engine"
	"github.com/angelmondragon/packfinderz-admin/internal/format"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
	"github.com/angelmondragon/packfinderz-admin/pkg/pagination"
)

const (
	filterParamPrefix = "filter."
	maxSearchLen      = 200
	maxPage           = 1_000_000
)

var presetDays = map[string]int{"7d": 7, "30d": 30, "90d": 90}

// AnalyticsQuery is the wire form of an engine query, shared by query-string and
// JSON callers.
type AnalyticsQuery struct {
	Search    string            `json:"search" validate:"max=200"`
	Filters   map[string]string `json:"filters" validate:"omitempty,dive,keys,min=1,max=64,endkeys,max=64"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Preset    string            `json:"preset" validate:"omitempty,oneof=7d 30d 90d"`
	Sort      string            `json:"sort" validate:"omitempty,max=64"`
	Direction string            `json:"direction" validate:"omitempty,oneof=asc desc"`
	Page      int               `json:"page" validate:"gte=0"`
	PageSize  int               `json:"page_size" validate:"gte=0,lte=100"`
}

// QueryRequest is the JSON body of a query call. Previous is the state the
// client last rendered; the page resets to 1 when the predicates changed.
type QueryRequest struct {
	Query    AnalyticsQuery  `json:"query"`
	Previous *AnalyticsQuery `json:"previous,omitempty"`
}

// ParseAnalyticsQuery reads search, filter.<field>, from, to, preset, sort,
// direction, page and page_size from the query string.
func ParseAnalyticsQuery(r *http.Request) (AnalyticsQuery, error) {
	values := r.URL.Query()
	page, err := ParseQueryInt(r, "page", 1, 1, maxPage)
	if err != nil {
		return AnalyticsQuery{}, err
	}
	pageSize, err := ParseQueryInt(r, "page_size", pagination.DefaultPageSize, 1, pagination.MaxPageSize)
	if err != nil {
		return AnalyticsQuery{}, err
	}

	q := AnalyticsQuery{
		Search:    SanitizeString(values.Get("search"), maxSearchLen),
		From:      strings.TrimSpace(values.Get("from")),
		To:        strings.TrimSpace(values.Get("to")),
		Preset:    strings.ToLower(strings.TrimSpace(values.Get("preset"))),
		Sort:      strings.TrimSpace(values.Get("sort")),
		Direction: strings.ToLower(strings.TrimSpace(values.Get("direction"))),
		Page:      page,
		PageSize:  pageSize,
	}
	for key, vals := range values {
		field, ok := strings.CutPrefix(key, filterParamPrefix)
		if !ok || len(vals) == 0 {
			continue
		}
		if q.Filters == nil {
			q.Filters = map[string]string{}
		}
		q.Filters[field] = strings.TrimSpace(vals[0])
	}

	if err := ValidateStruct(q); err != nil {
		return AnalyticsQuery{}, err
	}
	return q, nil
}

// ParseExportFormat reads the required format parameter.
func ParseExportFormat(r *http.Request) (enums.ExportFormat, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("format"))
	if raw == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "format is required").WithDetails(map[string]any{"field": "format"})
	}
	ef, err := enums.ParseExportFormat(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unsupported export format").WithDetails(map[string]any{
			"field":   "format",
			"allowed": []enums.ExportFormat{enums.ExportFormatCSV, enums.ExportFormatXLSX, enums.ExportFormatPDF},
		})
	}
	return ef, nil
}

// EngineQuery converts the wire form. An explicit from/to wins over a preset,
// which is anchored at now.
func (q AnalyticsQuery) EngineQuery(now time.Time) (engine.Query, error) {
	out := engine.Query{
		Search:   q.Search,
		Filters:  q.Filters,
		Sort:     engine.SortSpec{Key: q.Sort, Direction: enums.SortDirection(q.Direction)},
		Page:     q.Page,
		PageSize: q.PageSize,
	}

	from, err := parseBound("from", q.From)
	if err != nil {
		return engine.Query{}, err
	}
	to, err := parseBound("to", q.To)
	if err != nil {
		return engine.Query{}, err
	}
	switch {
	case from != nil || to != nil:
		out.DateRange = &engine.DateRange{From: from, To: to}
	case q.Preset != "":
		days, ok := presetDays[q.Preset]
		if !ok {
			return engine.Query{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid preset").WithDetails(map[string]any{"field": "preset"})
		}
		out.DateRange = engine.LastDays(now, days)
	}
	return out, nil
}

func parseBound(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, ok := format.ParseTimestamp(raw)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid "+field+" timestamp").WithDetails(map[string]any{
			"field":  field,
			"format": "RFC3339 or YYYY-MM-DD",
		})
	}
	return &t, nil
}
