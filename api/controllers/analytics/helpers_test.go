package analytics

import (
	"context"

	"github.com/angelmondragon/packfinderz-admin/internal/analytics"
	"github.com/angelmondragon/packfinderz-admin/internal/engine"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
)

type testDataset struct {
	lastQuery  engine.Query
	lastFormat enums.ExportFormat
	queries    int
	result     *analytics.Result
	payload    *analytics.ExportPayload
	err        error
}

func (d *testDataset) Name() enums.Dataset { return enums.DatasetLogs }

func (d *testDataset) Title() string { return "API Usage Logs" }

func (d *testDataset) Query(_ context.Context, q engine.Query) (*analytics.Result, error) {
	d.lastQuery = q
	d.queries++
	if d.err != nil {
		return nil, d.err
	}
	if d.result == nil {
		d.result = &analytics.Result{Items: []string{}, Page: 1, PageSize: 25, TotalPages: 1}
	}
	return d.result, nil
}

func (d *testDataset) Export(_ context.Context, q engine.Query, ef enums.ExportFormat) (*analytics.ExportPayload, error) {
	d.lastQuery = q
	d.lastFormat = ef
	if d.err != nil {
		return nil, d.err
	}
	if d.payload == nil {
		d.payload = &analytics.ExportPayload{Data: []byte("\"ID\"\n"), ContentType: "text/csv; charset=utf-8", FileName: "logs.csv", Rows: 0}
	}
	return d.payload, nil
}

type testResolver struct {
	dataset *testDataset
}

func (r testResolver) Get(name string) (analytics.Dataset, error) {
	if name != enums.DatasetLogs.String() {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "dataset not found")
	}
	return r.dataset, nil
}

func (r testResolver) Names() []enums.Dataset {
	return []enums.Dataset{enums.DatasetLogs}
}
