package analytics

import (
	"net/http"
	"strconv"

	"github.com/angelmondragon/packfinderz-admin/api/responses"
	"github.com/angelmondragon/packfinderz-admin/api/validators"
	"github.com/angelmondragon/packfinderz-admin/internal/engine"
	"github.com/angelmondragon/packfinderz-admin/pkg/logger"
)

type datasetInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ListDatasets describes every enabled dataset.
func ListDatasets(datasets DatasetResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := datasets.Names()
		out := make([]datasetInfo, 0, len(names))
		for _, name := range names {
			ds, err := datasets.Get(name.String())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			out = append(out, datasetInfo{Name: name.String(), Title: ds.Title()})
		}
		responses.WriteSuccess(w, out)
	}
}

// QueryDataset serves one page of a dataset from query-string parameters.
func QueryDataset(datasets DatasetResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ds, err := resolveDataset(r, datasets)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		params, err := validators.ParseAnalyticsQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		q, err := params.EngineQuery(timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := ds.Query(logg.WithDataset(ctx, ds.Name().String()), q)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// QueryDatasetBody serves a page from a JSON query. When the body carries the
// previously rendered query and any predicate differs, the page resets to 1.
func QueryDatasetBody(datasets DatasetResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ds, err := resolveDataset(r, datasets)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var body validators.QueryRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		now := timeNowUTC()
		q, err := body.Query.EngineQuery(now)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if body.Previous != nil {
			prev, err := body.Previous.EngineQuery(now)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			q = engine.ResetOnChange(prev, q)
		}

		result, err := ds.Query(logg.WithDataset(ctx, ds.Name().String()), q)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// ExportDataset downloads every matching record, ignoring pagination.
func ExportDataset(datasets DatasetResolver, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ds, err := resolveDataset(r, datasets)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		ef, err := validators.ParseExportFormat(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		params, err := validators.ParseAnalyticsQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		q, err := params.EngineQuery(timeNowUTC())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		payload, err := ds.Export(logg.WithDataset(ctx, ds.Name().String()), q, ef)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		cache := "miss"
		if payload.Cached {
			cache = "hit"
		} else {
			w.Header().Set("X-Export-Rows", strconv.Itoa(payload.Rows))
		}
		w.Header().Set("X-Export-Cache", cache)
		responses.WriteFile(w, payload.ContentType, payload.FileName, payload.Data)
	}
}
