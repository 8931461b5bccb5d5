package layout

import (
	"math"

	"github.com/tsawler/contour/model"
)

// DefaultMarginBand is the height in points of the header and footer bands
// excluded from heading scoring.
const DefaultMarginBand = 50.0

// DefaultCenterTolerance is the centering tolerance as a fraction of page
// width.
const DefaultCenterTolerance = 0.25

// InMarginBand reports whether a block touches the top or bottom margin
// band of a page. Headers and footers live there; headings do not.
func InMarginBand(b model.BBox, pageHeight, band float64) bool {
	return b.Top() < band || b.Bottom() > pageHeight-band
}

// IsCentered reports whether the block's horizontal center lies within
// tolerance×pageWidth of the page's true center.
func IsCentered(b model.BBox, pageWidth, tolerance float64) bool {
	return math.Abs(b.CenterX()-pageWidth/2) < pageWidth*tolerance
}
