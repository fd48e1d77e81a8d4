package dict

import (
	"runtime"
	"sort"
	"sync"
)

const batchChunkSize = 1000

// chunkIndices splits [0, n) into batchChunkSize-sized index ranges.
func chunkIndices(n int) [][2]int {
	var chunks [][2]int
	for i := 0; i < n; i += batchChunkSize {
		end := i + batchChunkSize
		if end > n {
			end = n
		}
		chunks = append(chunks, [2]int{i, end})
	}
	return chunks
}

// CheckWords classifies every word in words concurrently across a worker
// pool sized to the available CPUs, returning one bool per input word in
// the same order as words.
func (d *Dictionary) CheckWords(words []string) []bool {
	out := make([]bool, len(words))
	runChunked(len(words), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = d.CheckWord(words[i])
		}
	})
	return out
}

// EntriesBatch classifies every word in words concurrently, returning one
// WordEntry per input word in the same order as words. Index on each
// WordEntry reflects its position in words, not a byte offset.
func (d *Dictionary) EntriesBatch(words []string) []*WordEntry {
	out := make([]*WordEntry, len(words))
	runChunked(len(words), func(start, end int) {
		for i := start; i < end; i++ {
			e := d.Entry(words[i])
			e.index = i
			out[i] = e
		}
	})
	return out
}

// runChunked dispatches [0, n) in batchChunkSize-sized ranges across
// runtime.NumCPU() workers and waits for all of them to finish, adapted
// from the chunked-channel worker-pool idiom used for bulk morphological
// analysis: a dispatcher chunks the range, a fixed pool of workers pulls
// chunks until the channel closes, and a final WaitGroup barrier ensures
// every chunk has been processed before returning. Unlike that idiom this
// writes directly into pre-sized output slices by index, so no final
// re-sort is needed to restore input order.
func runChunked(n int, work func(start, end int)) {
	if n == 0 {
		return
	}
	chunks := chunkIndices(n)
	numWorkers := runtime.NumCPU()
	if numWorkers > len(chunks) {
		numWorkers = len(chunks)
	}

	chunksCh := make(chan [2]int, len(chunks))
	for _, c := range chunks {
		chunksCh <- c
	}
	close(chunksCh)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for c := range chunksCh {
				work(c[0], c[1])
			}
		}()
	}
	wg.Wait()
}

// Misspelled filters a batch of WordEntry results down to the incorrect
// ones, sorted by word for a deterministic report independent of input
// order.
func Misspelled(entries []*WordEntry) []*WordEntry {
	out := make([]*WordEntry, 0, len(entries))
	for _, e := range entries {
		if !e.correct {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].word < out[j].word
	})
	return out
}
