package screw

import "sync"

// task hands every element of data to fn, split in contiguous chunks with one
// goroutine per chunk, and returns once all chunks are done. An element is
// only ever seen by one goroutine.
func task[T any](workersCount int, data []T, fn func(data T)) {
	dataSize := len(data)
	workersCount = min(max(workersCount, 1), dataSize)
	if workersCount <= 1 {
		for _, d := range data {
			fn(d)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		start, end := workerID*chunkSize, min((workerID+1)*chunkSize, dataSize)
		if start >= end {
			break
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
