// internal/system/parallel.go
package system

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"go-sky-shooter/internal/types"
)

// minChunk — меньше этого сущностей на горутину делить нет смысла.
const minChunk = 64

// forEachChunk раздаёт ids по горутинам errgroup кусками и ждёт завершения.
// fn получает индекс первого элемента куска; писать можно только в данные,
// принадлежащие своим сущностям.
func forEachChunk(ids []types.EntityID, fn func(offset int, chunk []types.EntityID)) {
	if len(ids) == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	size := (len(ids) + workers - 1) / workers
	if size < minChunk {
		size = minChunk
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		g.Go(func() error {
			fn(start, ids[start:end])
			return nil
		})
	}
	_ = g.Wait()
}
