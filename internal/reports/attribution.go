package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ReduceShares folds per-order shares into total sales and a distinct order
// count. The per-order grouping has already happened (one share per order), so
// summing here cannot double-attribute multi-seller orders.
func ReduceShares(shares []OrderShare) (decimal.Decimal, int64) {
	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Amount)
	}
	return total, int64(len(shares))
}

type monthKey struct {
	year  int
	month time.Month
}

// MonthlyBuckets groups per-order shares by the calendar month of the order
// timestamp, summing shares and counting distinct orders per month. The result
// is ordered ascending by (year, month). Months with no activity are omitted;
// callers that need a continuous series apply ZeroFillBuckets afterwards.
func MonthlyBuckets(shares []OrderShare) []TrendBucket {
	grouped := map[monthKey]*TrendBucket{}
	for _, share := range shares {
		at := share.OrderedAt.UTC()
		key := monthKey{year: at.Year(), month: at.Month()}
		bucket, ok := grouped[key]
		if !ok {
			bucket = &TrendBucket{
				Year:  key.year,
				Month: int(key.month),
				Sales: decimal.Zero,
			}
			grouped[key] = bucket
		}
		bucket.Sales = bucket.Sales.Add(share.Amount)
		bucket.Orders++
	}

	buckets := make([]TrendBucket, 0, len(grouped))
	for _, bucket := range grouped {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}

// ZeroFillBuckets expands a sparse monthly series into a continuous one,
// inserting zero rows for the months between start and start+months-1 that
// have no activity. Offered as explicit post-processing; the report itself
// ships the sparse series.
func ZeroFillBuckets(buckets []TrendBucket, start time.Time, months int) []TrendBucket {
	if months <= 0 {
		return []TrendBucket{}
	}

	existing := map[monthKey]TrendBucket{}
	for _, bucket := range buckets {
		existing[monthKey{year: bucket.Year, month: time.Month(bucket.Month)}] = bucket
	}

	filled := make([]TrendBucket, 0, months)
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		key := monthKey{year: cursor.Year(), month: cursor.Month()}
		if bucket, ok := existing[key]; ok {
			filled = append(filled, bucket)
		} else {
			filled = append(filled, TrendBucket{
				Year:  key.year,
				Month: int(key.month),
				Sales: decimal.Zero,
			})
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return filled
}
