package spatial

import "github.com/agrowatch/awd-atlas-cli/internal/grid"

// Summary describes the patch structure of one feasibility grid. With no
// patches every field is zero. The fragmentation index is mean over max patch
// size: a single dominant patch drives it toward 0, many equal patches toward 1.
type Summary struct {
	PatchCount         int     `csv:"n_patches"`
	MeanPatchSize      float64 `csv:"mean_patch_size"`
	MaxPatchSize       int     `csv:"max_patch_size"`
	MinPatchSize       int     `csv:"min_patch_size"`
	FragmentationIndex float64 `csv:"fragmentation_index"`
	TotalSuitableCells int     `csv:"total_suitable_cells"`
}

// patchSizes counts cells per label, background excluded. Index 0 is unused.
func patchSizes(labeled *grid.Int, patchCount int) []int {
	sizes := make([]int, patchCount+1)
	for _, v := range labeled.Cells {
		if v > 0 {
			sizes[v]++
		}
	}
	return sizes
}

// Summarize computes patch statistics from a labeled grid.
func Summarize(labeled *grid.Int, patchCount int) Summary {
	if patchCount == 0 {
		return Summary{}
	}

	sizes := patchSizes(labeled, patchCount)
	total, maxSize, minSize := 0, 0, 0
	for _, s := range sizes[1:] {
		total += s
		if s > maxSize {
			maxSize = s
		}
		if minSize == 0 || s < minSize {
			minSize = s
		}
	}

	mean := float64(total) / float64(patchCount)
	index := 0.0
	if maxSize > 0 {
		index = mean / float64(maxSize)
	}

	return Summary{
		PatchCount:         patchCount,
		MeanPatchSize:      mean,
		MaxPatchSize:       maxSize,
		MinPatchSize:       minSize,
		FragmentationIndex: index,
		TotalSuitableCells: total,
	}
}

// Comparison relates two fragmentation summaries as B over A ratios.
type Comparison struct {
	IndexRatio float64 `csv:"fragmentation_ratio"`
	PatchRatio float64 `csv:"patch_ratio"`
}

// Compare returns B/A ratios of fragmentation index and patch count, with 0
// standing in whenever the A-side value is 0.
func Compare(a, b Summary) Comparison {
	cmp := Comparison{}
	if a.FragmentationIndex > 0 {
		cmp.IndexRatio = b.FragmentationIndex / a.FragmentationIndex
	}
	if a.PatchCount > 0 {
		cmp.PatchRatio = float64(b.PatchCount) / float64(a.PatchCount)
	}
	return cmp
}
