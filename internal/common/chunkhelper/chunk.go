package chunkhelper

import (
	"context"
	"time"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
)

// Chunk partitions items into groups of at most size elements, preserving
// order. size <= 0 yields a single chunk.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}

	if size <= 0 || size >= len(items) {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for size < len(items) {
		items, chunks = items[size:], append(chunks, items[:size])
	}
	return append(chunks, items)
}

// SyncProgress tracks cabinet fan-out progress for monitoring.
type SyncProgress struct {
	OrderID       string
	StartTime     time.Time
	TotalChunks   int
	TotalCabinets int
}

func (p *SyncProgress) LogProgress(ctx context.Context, chunkNumber, chunkSize int) {
	elapsed := time.Since(p.StartTime)
	avgTimePerChunk := elapsed / time.Duration(chunkNumber)

	log.Info(ctx, "[SYNC-PROGRESS]",
		log.String("order_id", p.OrderID),
		log.Int("chunk_number", chunkNumber),
		log.Int("chunk_size", chunkSize),
		log.Int("total_chunks", p.TotalChunks),
		log.Int("total_cabinets", p.TotalCabinets),
		log.String("elapsed", elapsed.String()),
		log.String("avg_per_chunk", avgTimePerChunk.String()))
}
