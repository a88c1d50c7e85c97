package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/bodymap-backend-go/internal/bodymap"
	"github.com/jengzang/bodymap-backend-go/internal/models"
	"github.com/jengzang/bodymap-backend-go/pkg/response"
)

// RegionHandler serves the static region catalog
type RegionHandler struct{}

// NewRegionHandler creates a new region handler
func NewRegionHandler() *RegionHandler {
	return &RegionHandler{}
}

// ListRegions handles GET /api/v1/regions
func (h *RegionHandler) ListRegions(c *gin.Context) {
	var regions []bodymap.Region
	if v := c.Query("view"); v != "" {
		view, ok := bodymap.ParseView(v)
		if !ok {
			response.BadRequest(c, "Invalid view", errors.New("view must be front or back"))
			return
		}
		regions = bodymap.RegionsForView(view)
	} else {
		regions = bodymap.All()
	}

	infos := make([]models.RegionInfo, 0, len(regions))
	for _, r := range regions {
		infos = append(infos, regionInfo(r))
	}

	response.Success(c, gin.H{
		"data":     infos,
		"count":    len(infos),
		"view_box": viewBox(),
	})
}

// ListParents handles GET /api/v1/regions/parents
func (h *RegionHandler) ListParents(c *gin.Context) {
	parents := bodymap.ParentIDs()
	groups := make([]models.ParentGroup, 0, len(parents))
	for _, id := range parents {
		groups = append(groups, models.ParentGroup{
			ID:         id,
			Label:      bodymap.DisplayLabel(id),
			ChildCount: len(bodymap.ChildRegions(id)),
		})
	}

	response.Success(c, gin.H{
		"data":  groups,
		"count": len(groups),
	})
}

// GetRegion handles GET /api/v1/regions/:id
// Unknown ids resolve with known=false rather than 404.
func (h *RegionHandler) GetRegion(c *gin.Context) {
	response.Success(c, lookup(c.Param("id")))
}

// GetChildren handles GET /api/v1/regions/:id/children
func (h *RegionHandler) GetChildren(c *gin.Context) {
	children := bodymap.ChildRegions(c.Param("id"))
	infos := make([]models.RegionInfo, 0, len(children))
	for _, r := range children {
		infos = append(infos, regionInfo(r))
	}

	response.Success(c, gin.H{
		"data":  infos,
		"count": len(infos),
	})
}

// HitTest handles GET /api/v1/regions/hit?view=&x=&y=
func (h *RegionHandler) HitTest(c *gin.Context) {
	view, ok := bodymap.ParseView(c.DefaultQuery("view", string(bodymap.Front)))
	if !ok {
		response.BadRequest(c, "Invalid view", errors.New("view must be front or back"))
		return
	}
	x, err := strconv.ParseFloat(c.Query("x"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid x coordinate", err)
		return
	}
	y, err := strconv.ParseFloat(c.Query("y"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid y coordinate", err)
		return
	}

	region, found := bodymap.RegionAt(view, x, y)
	if !found {
		response.Success(c, gin.H{"found": false})
		return
	}

	info := regionInfo(region)
	response.Success(c, gin.H{
		"found":  true,
		"region": info,
	})
}

func lookup(id string) models.RegionLookup {
	l := models.RegionLookup{
		ID:           id,
		Coarse:       bodymap.IsCoarse(id),
		Label:        bodymap.DisplayLabel(id),
		ParentRegion: bodymap.ParentOf(id),
	}
	if r, ok := bodymap.RegionByID(id); ok {
		info := regionInfo(r)
		l.Known = true
		l.Region = &info
	}
	return l
}

func regionInfo(r bodymap.Region) models.RegionInfo {
	return models.RegionInfo{
		ID:           r.ID,
		Label:        r.Label,
		ParentRegion: r.ParentRegion,
		View:         string(r.View),
		Path:         r.Outline,
		Anchor:       models.Point{X: r.Anchor.X, Y: r.Anchor.Y},
	}
}

func viewBox() gin.H {
	b := bodymap.ViewBox
	return gin.H{
		"x":      b.X.Lo,
		"y":      b.Y.Lo,
		"width":  b.X.Length(),
		"height": b.Y.Length(),
	}
}
