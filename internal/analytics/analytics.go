package analytics

import (
	"sort"

	"github.com/kudipay/billing-be/internal/domain"
)

// Thresholds for fraud rules, in kobo.
const (
	highAmountThreshold      = 100_000_000 // NGN 1,000,000
	failedHighValueThreshold = 50_000_000  // NGN 500,000
	largeTransferThreshold   = 20_000_000  // NGN 200,000
)

const topVolumeTypes = 3

const (
	AlertHighAmount      = "High transaction amount"
	AlertFailedHighValue = "Failed high-value transaction"
	AlertLargeTransfer   = "Large transfer"
	AlertUnusualType     = "Unusual transaction type"
)

type StatusBucket struct {
	Count         int     `json:"count"`
	TotalAmount   int64   `json:"total_amount"`
	AverageAmount float64 `json:"average_amount"`
	Rate          float64 `json:"rate"`
}

type TypeVolume struct {
	Type        domain.TransactionType `json:"type"`
	TotalAmount int64                  `json:"total_amount"`
	Count       int                    `json:"count"`
}

type Stats struct {
	Total        int          `json:"total"`
	Success      StatusBucket `json:"success"`
	Failed       StatusBucket `json:"failed"`
	Pending      StatusBucket `json:"pending"`
	VolumeByType []TypeVolume `json:"volume_by_type"`
}

// Summarize partitions transactions by status and aggregates volume by
// type. An empty input yields all-zero buckets, never a division by zero.
func Summarize(records []domain.TransactionRecord) Stats {
	stats := Stats{Total: len(records)}

	volumes := make(map[domain.TransactionType]*TypeVolume)
	var typeOrder []domain.TransactionType

	for _, record := range records {
		switch record.Status {
		case domain.TransactionStatusSuccess:
			addToBucket(&stats.Success, record.Amount)
		case domain.TransactionStatusFailed:
			addToBucket(&stats.Failed, record.Amount)
		case domain.TransactionStatusPending:
			addToBucket(&stats.Pending, record.Amount)
		}

		volume, seen := volumes[record.Type]
		if !seen {
			volume = &TypeVolume{Type: record.Type}
			volumes[record.Type] = volume
			typeOrder = append(typeOrder, record.Type)
		}
		volume.TotalAmount += record.Amount
		volume.Count++
	}

	finishBucket(&stats.Success, stats.Total)
	finishBucket(&stats.Failed, stats.Total)
	finishBucket(&stats.Pending, stats.Total)

	// Stable sort keeps first-encountered order on equal volumes.
	ordered := make([]TypeVolume, 0, len(typeOrder))
	for _, t := range typeOrder {
		ordered = append(ordered, *volumes[t])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalAmount > ordered[j].TotalAmount
	})
	if len(ordered) > topVolumeTypes {
		ordered = ordered[:topVolumeTypes]
	}
	stats.VolumeByType = ordered

	return stats
}

func addToBucket(bucket *StatusBucket, amount int64) {
	bucket.Count++
	bucket.TotalAmount += amount
}

func finishBucket(bucket *StatusBucket, total int) {
	if bucket.Count > 0 {
		bucket.AverageAmount = float64(bucket.TotalAmount) / float64(bucket.Count)
	}
	if total > 0 {
		bucket.Rate = float64(bucket.Count) / float64(total) * 100
	}
}

// DetectFraudAlerts evaluates each rule independently against a single
// transaction and returns matches in rule-declaration order.
func DetectFraudAlerts(record domain.TransactionRecord) []string {
	var alerts []string

	if record.Amount > highAmountThreshold {
		alerts = append(alerts, AlertHighAmount)
	}

	if record.Status == domain.TransactionStatusFailed && record.Amount > failedHighValueThreshold {
		alerts = append(alerts, AlertFailedHighValue)
	}

	if record.Type == domain.TransactionTypeTransfer && record.Amount > largeTransferThreshold {
		alerts = append(alerts, AlertLargeTransfer)
	}

	switch record.Type {
	case domain.TransactionTypeReversal, domain.TransactionTypeChargeback, domain.TransactionTypeRefund:
		alerts = append(alerts, AlertUnusualType)
	}

	return alerts
}
