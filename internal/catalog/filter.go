package catalog

import "sort"

// HeroLimit is the number of paid items shown in the hero slider.
const HeroLimit = 4

// Active keeps items whose is_active is not explicitly false.
func Active(items []CatalogItem) []CatalogItem {
	out := make([]CatalogItem, 0, len(items))
	for _, it := range items {
		if it.Active() {
			out = append(out, it)
		}
	}
	return out
}

// Free returns active items explicitly marked free.
func Free(items []CatalogItem) []CatalogItem {
	free, _ := Partition(items)
	return free
}

// Paid returns active items not explicitly marked free.
func Paid(items []CatalogItem) []CatalogItem {
	_, paid := Partition(items)
	return paid
}

// Partition splits the active items into the free and paid sets, keeping input order.
func Partition(items []CatalogItem) (free, paid []CatalogItem) {
	free = []CatalogItem{}
	paid = []CatalogItem{}
	for _, it := range items {
		if !it.Active() {
			continue
		}
		if it.Free() {
			free = append(free, it)
		} else {
			paid = append(paid, it)
		}
	}
	return free, paid
}

// HeroRanking orders the paid set by sort_order desc, then id desc, and keeps the top HeroLimit.
func HeroRanking(items []CatalogItem) []CatalogItem {
	ranked := Paid(items)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Order() != b.Order() {
			return a.Order() > b.Order()
		}
		return a.ID > b.ID
	})
	if len(ranked) > HeroLimit {
		ranked = ranked[:HeroLimit]
	}
	return ranked
}
