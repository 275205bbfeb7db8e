package cell2rect

import (
	"sort"

	i2stypes "image2svg/type"
)

// Group 按颜色桶归类采样格，桶顺序为颜色首次出现的顺序
func Group(samples []i2stypes.Sample) []i2stypes.ColorGroup {
	buckets := make(map[i2stypes.ColorKey]int)
	var groups []i2stypes.ColorGroup
	for _, s := range samples {
		idx, ok := buckets[s.Key]
		if !ok {
			idx = len(groups)
			buckets[s.Key] = idx
			groups = append(groups, i2stypes.ColorGroup{Key: s.Key})
		}
		groups[idx].Rects = append(groups[idx].Rects, s.Rect)
	}
	return groups
}

// Merge 合并每个颜色桶中同行横向相邻的格子
// 先按 (y, x) 排序保证同行格子连续，再做单次线性扫描
// 只沿 x 轴合并，不做纵向合并
func Merge(groups []i2stypes.ColorGroup) []i2stypes.ColorGroup {
	merged := make([]i2stypes.ColorGroup, len(groups))
	for i, g := range groups {
		merged[i] = i2stypes.ColorGroup{
			Key:   g.Key,
			Rects: mergeRow(g.Rects),
		}
	}
	return merged
}

func mergeRow(rects []i2stypes.Rect) []i2stypes.Rect {
	if len(rects) == 0 {
		return nil
	}
	sorted := make([]i2stypes.Rect, len(rects))
	copy(sorted, rects)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	out := make([]i2stypes.Rect, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if r.Y == cur.Y && r.Height == cur.Height && r.X == cur.X+cur.Width {
			cur.Width += r.Width
			continue
		}
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}

// GroupAndMerge 归类后直接合并
func GroupAndMerge(samples []i2stypes.Sample) []i2stypes.ColorGroup {
	return Merge(Group(samples))
}
