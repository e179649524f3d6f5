package charts

import "github.com/go-echarts/go-echarts/v2/components"

// Page stacks several figures into one renderable document.
func Page(figures ...components.Charter) *components.Page {
	page := components.NewPage()
	page.AddCharts(figures...)
	return page
}
