package engine

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/packfinderz-admin/pkg/enums"
)

// AggregateRow is the summary of one category, or of every record for the Total row.
type AggregateRow struct {
	GroupKey     string          `json:"group_key"`
	TotalCount   int             `json:"total_count"`
	SuccessCount int             `json:"success_count"`
	FailureCount int             `json:"failure_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

func (r *AggregateRow) add(outcome Outcome, amount decimal.NullDecimal) {
	r.TotalCount++
	switch outcome {
	case OutcomeSuccess:
		r.SuccessCount++
	case OutcomeFailure:
		r.FailureCount++
	}
	if amount.Valid {
		r.TotalAmount = r.TotalAmount.Add(amount.Decimal)
	}
}

// Aggregate groups records by the schema's GroupBy field.
func Aggregate[T any](records []T, schema Schema[T]) []AggregateRow {
	return AggregateBy(records, schema, schema.GroupBy)
}

// AggregateBy groups records by field in a single pass.
//
// Closed-enum fields get one row per declared value, in declared order, even when
// empty. Open fields get one row per distinct value in first-seen order. Values
// outside the enumeration, and nulls, are tallied in an Unknown row that is emitted
// only when non-empty. The Total row is always last and equals the sum of the rest.
func AggregateBy[T any](records []T, schema Schema[T], field string) []AggregateRow {
	f, hasField := schema.Fields[field]
	closed := hasField && len(f.Values) > 0

	rows := make([]AggregateRow, 0, len(f.Values)+2)
	index := make(map[string]int, len(f.Values))
	for _, v := range f.Values {
		index[v] = len(rows)
		rows = append(rows, AggregateRow{GroupKey: v})
	}

	unknown := AggregateRow{GroupKey: enums.GroupUnknown}
	total := AggregateRow{GroupKey: enums.GroupTotal}

	for _, rec := range records {
		outcome := OutcomeNone
		if schema.Outcome != nil {
			outcome = schema.Outcome(rec)
		}
		var amount decimal.NullDecimal
		if schema.Amount != nil {
			amount = schema.Amount(rec)
		}
		total.add(outcome, amount)

		key, ok := "", false
		if hasField {
			key, ok = f.text(rec)
		}
		if !ok {
			unknown.add(outcome, amount)
			continue
		}
		i, seen := index[key]
		if !seen {
			if closed {
				unknown.add(outcome, amount)
				continue
			}
			i = len(rows)
			index[key] = i
			rows = append(rows, AggregateRow{GroupKey: key})
		}
		rows[i].add(outcome, amount)
	}

	if unknown.TotalCount > 0 {
		rows = append(rows, unknown)
	}
	return append(rows, total)
}

// Totals returns the synthetic Total row from an Aggregate result.
func Totals(rows []AggregateRow) AggregateRow {
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].GroupKey == enums.GroupTotal {
			return rows[i]
		}
	}
	return AggregateRow{GroupKey: enums.GroupTotal}
}

// Summary backs the stat cards shown above each list.
type Summary struct {
	TotalRecords  int             `json:"total_records"`
	SuccessCount  int             `json:"success_count"`
	FailureCount  int             `json:"failure_count"`
	SuccessRate   float64         `json:"success_rate"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	DistinctUsers int             `json:"distinct_users,omitempty"`
}

// Summarize computes the stat-card figures over records.
// SuccessRate is a percentage of records with a success or failure outcome.
func Summarize[T any](records []T, schema Schema[T]) Summary {
	var acc AggregateRow
	users := map[string]struct{}{}
	for _, rec := range records {
		outcome := OutcomeNone
		if schema.Outcome != nil {
			outcome = schema.Outcome(rec)
		}
		var amount decimal.NullDecimal
		if schema.Amount != nil {
			amount = schema.Amount(rec)
		}
		acc.add(outcome, amount)
		if schema.Actor != nil {
			if id := schema.Actor(rec); id != "" {
				users[id] = struct{}{}
			}
		}
	}

	s := Summary{
		TotalRecords:  acc.TotalCount,
		SuccessCount:  acc.SuccessCount,
		FailureCount:  acc.FailureCount,
		TotalAmount:   acc.TotalAmount,
		AverageAmount: decimal.Zero,
		DistinctUsers: len(users),
	}
	if decided := acc.SuccessCount + acc.FailureCount; decided > 0 {
		rate := decimal.NewFromInt(int64(acc.SuccessCount)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(decided))).
			Round(2)
		s.SuccessRate = rate.InexactFloat64()
	}
	if acc.TotalCount > 0 {
		s.AverageAmount = acc.TotalAmount.Div(decimal.NewFromInt(int64(acc.TotalCount))).Round(4)
	}
	return s
}
