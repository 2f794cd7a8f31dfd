package deckgen

import (
	"fmt"

	"github.com/alnah/go-deckgen/internal/chart"
)

// chartPNG renders a chart item through the shared rasterizer. Both output
// formats embed the same PNGs so charts look identical everywhere.
func chartPNG(theme Theme, item ContentItem) ([]byte, error) {
	opt := chart.Options{
		Title:   item.Series,
		XLabel:  item.XLabel,
		YLabel:  item.YLabel,
		Palette: theme.ChartPalette(),
	}
	switch item.Kind {
	case KindBarChart:
		return chart.Bar(item.Categories, item.Values, opt)
	case KindLineChart:
		return chart.Line(item.X, item.Y, opt)
	case KindScatterChart:
		return chart.Scatter(item.X, item.Y, opt)
	case KindPieChart:
		opt.XLabel, opt.YLabel = "", ""
		return chart.Pie(item.Labels, item.Values, opt)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, item.Kind)
}
