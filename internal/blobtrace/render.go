package blobtrace

import (
	"runtime"
	"sync"
)

// RenderStats summarizes one marcher's pass over an image, logged by
// the caller alongside the timing of the pass.
type RenderStats struct {
	Method    Method
	TotalStep int64
	Hits      int
	Pixels    int
}

// MeanSteps returns the average per-pixel step count.
func (s RenderStats) MeanSteps() Real {
	if s.Pixels == 0 {
		return 0
	}
	return Real(s.TotalStep) / Real(s.Pixels)
}

// Render applies method over every pixel of scene's camera image,
// writing color and cost into two width*height grids. It shards rows
// across runtime.GOMAXPROCS(0) goroutines and joins with a WaitGroup,
// the same fan-out/join shape as photons4d's castRays worker pool
// (cast_rays.go), simplified: every pixel writes to a disjoint cell,
// so no shard locking (photons4d's shardLocks) is needed at all.
func Render(scene *Scene, method Method) (color, cost [][]RGB, stats RenderStats) {
	width, height := scene.Camera.Width, scene.Camera.Height
	color = make([][]RGB, height)
	cost = make([][]RGB, height)
	for row := range color {
		color[row] = make([]RGB, width)
		cost[row] = make([]RGB, width)
	}

	k := scene.Tree.K()

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	rowStats := make([]RenderStats, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	rowsPerWorker := (height + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		begin := w * rowsPerWorker
		end := begin + rowsPerWorker
		if end > height {
			end = height
		}
		go func() {
			defer wg.Done()
			if begin >= end {
				return
			}
			local := RenderStats{Method: method}
			for j := begin; j < end; j++ {
				for i := 0; i < width; i++ {
					ray := scene.Camera.RayForPixel(i, j)
					hit := March(scene.Tree, ray, method, k)

					local.Pixels++
					local.TotalStep += int64(hit.Steps)
					if hit.Hit {
						local.Hits++
						color[j][i] = Shade(scene.Tree, ray, hit.T, scene.SunDir)
					}
					cost[j][i] = CostColor(hit.Steps)
				}
			}
			rowStats[w] = local
		}()
	}
	wg.Wait()

	stats.Method = method
	for _, s := range rowStats {
		stats.Pixels += s.Pixels
		stats.Hits += s.Hits
		stats.TotalStep += s.TotalStep
	}
	return color, cost, stats
}
