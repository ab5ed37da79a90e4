package domain

// StatusBucket is one row of a group-by-status aggregation over a project's tasks.
type StatusBucket struct {
	Status     TaskStatus
	Count      int64
	TotalHours float64
}

type TaskStats struct {
	Todo       int64
	InProgress int64
	Review     int64
	Done       int64
	Total      int64
	TotalHours float64
}

// FoldStatusBuckets sums buckets into TaskStats. Statuses with no bucket stay at
// zero; unknown statuses only count toward the totals.
func FoldStatusBuckets(buckets []StatusBucket) TaskStats {
	var stats TaskStats
	for _, b := range buckets {
		switch b.Status {
		case TaskStatusTodo:
			stats.Todo += b.Count
		case TaskStatusInProgress:
			stats.InProgress += b.Count
		case TaskStatusReview:
			stats.Review += b.Count
		case TaskStatusDone:
			stats.Done += b.Count
		}
		stats.Total += b.Count
		stats.TotalHours += b.TotalHours
	}
	return stats
}

// GroupTasksByStatus is the in-memory equivalent of a store-side group-by on status.
func GroupTasksByStatus(tasks []Task) []StatusBucket {
	index := make(map[TaskStatus]int)
	buckets := make([]StatusBucket, 0, len(TaskStatuses))
	for _, t := range tasks {
		i, ok := index[t.Status]
		if !ok {
			i = len(buckets)
			index[t.Status] = i
			buckets = append(buckets, StatusBucket{Status: t.Status})
		}
		buckets[i].Count++
		if t.EstimatedHours != nil {
			buckets[i].TotalHours += *t.EstimatedHours
		}
	}
	return buckets
}
