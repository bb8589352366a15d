package postgres

// batchSize keeps multi-row inserts well under the 65535 bind parameter limit.
const batchSize = 1000

func chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}

	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
