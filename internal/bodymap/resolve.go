package bodymap

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/geo/r2"

	"github.com/jengzang/bodymap-backend-go/internal/spatial"
)

var (
	regionByID      map[string]*Region
	regionsByParent map[string][]*Region
	regionsByView   map[View][]*Region
	parentIDs       []string
)

func init() {
	regionByID = make(map[string]*Region, len(catalog))
	regionsByParent = make(map[string][]*Region)
	regionsByView = make(map[View][]*Region, len(Views))

	for i := range catalog {
		r := &catalog[i]

		polygon, err := spatial.ParsePath(r.Outline)
		if err != nil {
			panic(fmt.Sprintf("bodymap: region %q has invalid outline: %v", r.ID, err))
		}
		r.polygon = polygon
		r.bounds = spatial.Bounds(polygon)

		if _, dup := regionByID[r.ID]; dup {
			panic(fmt.Sprintf("bodymap: duplicate region id %q", r.ID))
		}
		regionByID[r.ID] = r

		if _, seen := regionsByParent[r.ParentRegion]; !seen {
			parentIDs = append(parentIDs, r.ParentRegion)
		}
		regionsByParent[r.ParentRegion] = append(regionsByParent[r.ParentRegion], r)
		regionsByView[r.View] = append(regionsByView[r.View], r)
	}
}

func copyRegions(rs []*Region) []Region {
	out := make([]Region, len(rs))
	for i, r := range rs {
		out[i] = *r
	}
	return out
}

// All returns every region in declaration order
func All() []Region {
	out := make([]Region, len(catalog))
	copy(out, catalog)
	return out
}

// RegionByID looks up a fine region. ok is false for coarse or unknown ids.
func RegionByID(id string) (Region, bool) {
	r, ok := regionByID[id]
	if !ok {
		return Region{}, false
	}
	return *r, true
}

// RegionsForView returns the regions drawn on view in declaration order
func RegionsForView(view View) []Region {
	return copyRegions(regionsByView[view])
}

// ChildRegions returns the regions whose parent is coarseID, in declaration
// order. The result is empty, never nil, when there are none.
func ChildRegions(coarseID string) []Region {
	return copyRegions(regionsByParent[coarseID])
}

// ParentOf returns the coarse id a fine region rolls up to.
// Coarse and unknown ids are returned unchanged.
func ParentOf(id string) string {
	if r, ok := regionByID[id]; ok {
		return r.ParentRegion
	}
	return id
}

// ParentIDs returns every distinct coarse id in first-appearance order
func ParentIDs() []string {
	out := make([]string, len(parentIDs))
	copy(out, parentIDs)
	return out
}

// IsCoarse reports whether id groups at least one catalog region
func IsCoarse(id string) bool {
	return len(regionsByParent[id]) > 0
}

// DisplayLabel returns the label for a catalog id, a title-cased form of a
// coarse id (e.g. "left_arm" -> "Left Arm"), or the id itself otherwise.
func DisplayLabel(id string) string {
	if r, ok := regionByID[id]; ok {
		return r.Label
	}
	if IsCoarse(id) {
		return humanize(id)
	}
	return id
}

// humanize splits on '_' and upper-cases the first letter of each word
func humanize(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// MatchesRegion reports whether a symptom stored under recordRegion should be
// listed when selected is chosen on the map: same id, the record's parent is
// the selection, or the record sits on the coarse id selected rolls up to.
func MatchesRegion(recordRegion, selected string) bool {
	if recordRegion == "" || selected == "" {
		return false
	}
	if recordRegion == selected {
		return true
	}
	if ParentOf(recordRegion) == selected {
		return true
	}
	for _, child := range regionsByParent[recordRegion] {
		if child.ID == selected {
			return true
		}
	}
	return false
}

// RegionAt returns the region of view whose outline contains (x, y).
// Where outlines overlap, the region declared last wins since it is painted
// on top.
func RegionAt(view View, x, y float64) (Region, bool) {
	p := r2.Point{X: x, Y: y}
	regions := regionsByView[view]
	for i := len(regions) - 1; i >= 0; i-- {
		if regions[i].Contains(p) {
			return *regions[i], true
		}
	}
	return Region{}, false
}
