package analytics

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/angelmondragon/packfinderz-admin/internal/records"
	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
)

// Registry resolves dataset names to services.
type Registry struct {
	datasets map[enums.Dataset]Dataset
	order    []enums.Dataset
}

// NewRegistry indexes datasets by name; names must be unique.
func NewRegistry(datasets ...Dataset) (*Registry, error) {
	r := &Registry{datasets: make(map[enums.Dataset]Dataset, len(datasets))}
	for _, ds := range datasets {
		if ds == nil {
			return nil, fmt.Errorf("nil dataset")
		}
		if _, exists := r.datasets[ds.Name()]; exists {
			return nil, fmt.Errorf("dataset %q registered twice", ds.Name())
		}
		r.datasets[ds.Name()] = ds
		r.order = append(r.order, ds.Name())
	}
	return r, nil
}

// Get returns the dataset named by raw input.
func (r *Registry) Get(name string) (Dataset, error) {
	parsed, err := enums.ParseDataset(name)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, err.Error())
	}
	ds, ok := r.datasets[parsed]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("dataset %q is not enabled", parsed))
	}
	return ds, nil
}

// Names lists registered datasets in registration order.
func (r *Registry) Names() []enums.Dataset {
	return append([]enums.Dataset(nil), r.order...)
}

// SeededRegistry wires every dataset to an in-memory repository loaded with seed data.
func SeededRegistry(opts Options) (*Registry, error) {
	logs, subs, refs, orders := records.SeedLogs(), records.SeedSubscriptions(), records.SeedReferrals(), records.SeedOrders()

	err := multierr.Combine(
		records.ValidateUniqueIDs(logs, func(l records.LogEntry) string { return l.ID }),
		records.ValidateUniqueIDs(subs, func(s records.Subscription) string { return s.ID }),
		records.ValidateUniqueIDs(refs, func(r records.Referral) string { return r.ID }),
		records.ValidateUniqueIDs(orders, func(o records.Order) string { return o.ID }),
	)
	if err != nil {
		return nil, fmt.Errorf("seed data: %w", err)
	}

	logSvc, err := NewService(enums.DatasetLogs, "API Usage Logs", records.NewMemoryRepository(logs), records.LogSchema(), records.LogColumns(), opts)
	if err != nil {
		return nil, err
	}
	revenueSvc, err := NewService(enums.DatasetRevenue, "Subscription Revenue", records.NewMemoryRepository(subs), records.SubscriptionSchema(), records.SubscriptionColumns(), opts)
	if err != nil {
		return nil, err
	}
	referralSvc, err := NewService(enums.DatasetReferrals, "Referrals", records.NewMemoryRepository(refs), records.ReferralSchema(), records.ReferralColumns(), opts)
	if err != nil {
		return nil, err
	}
	orderSvc, err := NewService(enums.DatasetOrders, "Orders", records.NewMemoryRepository(orders), records.OrderSchema(), records.OrderColumns(), opts)
	if err != nil {
		return nil, err
	}
	return NewRegistry(logSvc, revenueSvc, referralSvc, orderSvc)
}
