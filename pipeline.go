package volume

import "sync"

// task splits data in contiguous chunks, one goroutine per worker.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(start, end)
	}
	wg.Wait()
}
