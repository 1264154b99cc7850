package analytics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/packfinderz-admin/internal/analytics"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// DatasetResolver is the registry surface the handlers depend on.
type DatasetResolver interface {
	Get(name string) (analytics.Dataset, error)
	Names() []enums.Dataset
}

func resolveDataset(r *http.Request, datasets DatasetResolver) (analytics.Dataset, error) {
	return datasets.Get(chi.URLParam(r, "dataset"))
}
