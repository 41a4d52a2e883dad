package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	shaderr "github.com/amterp/shades/internal/errors"
	"github.com/amterp/shades/internal/model"
	"github.com/amterp/shades/internal/namepool"
)

// splitList splits on commas when there are any, otherwise on whitespace.
// Items are trimmed and empty ones dropped.
func splitList(s string) []string {
	if !strings.Contains(s, ",") {
		return strings.Fields(s)
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseColumnList turns "1,3" into zero-based column indexes for a palette
// of n columns. Duplicates collapse.
func parseColumnList(s string, n int) ([]int, error) {
	var out []int
	seen := make(map[int]bool)
	for _, item := range splitList(s) {
		num, err := strconv.Atoi(item)
		if err != nil {
			return nil, shaderr.InvalidField("lock", fmt.Sprintf("%q is not a column number", item))
		}
		if num < 1 || num > n {
			return nil, shaderr.InvalidField("lock", fmt.Sprintf("column %d is outside 1-%d", num, n))
		}
		if !seen[num-1] {
			seen[num-1] = true
			out = append(out, num-1)
		}
	}
	return out, nil
}

// parseShadeList resolves each item as a hex code or, failing that, a name
// from the pool. Without commas the whole input is tried as one name first,
// so multi-word names like "midnight ink" work on their own.
func parseShadeList(s string, pool *namepool.Pool) ([]model.Shade, error) {
	if whole := strings.TrimSpace(s); whole != "" && !strings.Contains(whole, ",") {
		if shade, ok := pool.HexFromName(whole); ok {
			return []model.Shade{shade}, nil
		}
	}

	items := splitList(s)
	if len(items) == 0 {
		return nil, shaderr.InvalidField("shades", "no shades given")
	}

	shades := make([]model.Shade, 0, len(items))
	for _, item := range items {
		if shade, ok := model.ParseShade(item); ok {
			shades = append(shades, shade)
			continue
		}
		shade, ok := pool.HexFromName(item)
		if !ok {
			return nil, shaderr.NameNotFound(item)
		}
		shades = append(shades, shade)
	}
	return shades, nil
}

// printPalette prints the tiles and the shareable fragment.
func printPalette(cols []model.Column, frag string) {
	fmt.Println(PaletteRow(cols))
	fmt.Println()
	fmt.Println(LabelValue("Fragment", RenderFragment(frag), 9))
}

// usageSummary renders session usage counts, most used first, for debug logs.
func usageSummary(counts map[model.Shade]int) string {
	shades := make([]model.Shade, 0, len(counts))
	for shade := range counts {
		shades = append(shades, shade)
	}
	sort.Slice(shades, func(i, j int) bool {
		if counts[shades[i]] != counts[shades[j]] {
			return counts[shades[i]] > counts[shades[j]]
		}
		return shades[i] < shades[j]
	})

	parts := make([]string, len(shades))
	for i, shade := range shades {
		parts[i] = fmt.Sprintf("%s=%d", shade, counts[shade])
	}
	return strings.Join(parts, " ")
}
