package layout

import (
	"fmt"
	"math"
)

// intrinsicColumnCap bounds intrinsic columns to this fraction of the
// available width, so one long cell cannot starve its neighbors.
const intrinsicColumnCap = 0.40

// columnKind discriminates column sizing strategies.
type columnKind int

const (
	columnFixed columnKind = iota
	columnFraction
	columnIntrinsic
	columnFlex
)

// ColumnWidth is one column's sizing strategy. Construct values with
// FixedColumn, FractionColumn, IntrinsicColumn or FlexColumn.
type ColumnWidth struct {
	kind  columnKind
	value float64
}

// FixedColumn consumes a literal width.
func FixedColumn(width float64) ColumnWidth {
	return ColumnWidth{kind: columnFixed, value: width}
}

// FractionColumn consumes a fraction of the available width. It
// collapses to zero when the available width is unbounded.
func FractionColumn(f float64) ColumnWidth {
	return ColumnWidth{kind: columnFraction, value: f}
}

// IntrinsicColumn sizes to the widest cell content in the column,
// never below floor and never above 40% of the available width.
func IntrinsicColumn(floor float64) ColumnWidth {
	return ColumnWidth{kind: columnIntrinsic, value: floor}
}

// FlexColumn receives an even share of whatever width remains after
// all other columns are resolved, zero if nothing remains.
func FlexColumn() ColumnWidth {
	return ColumnWidth{kind: columnFlex}
}

// String returns the string representation of the strategy.
func (w ColumnWidth) String() string {
	switch w.kind {
	case columnFixed:
		return fmt.Sprintf("Fixed(%g)", w.value)
	case columnFraction:
		return fmt.Sprintf("Fraction(%g)", w.value)
	case columnIntrinsic:
		return fmt.Sprintf("Intrinsic(floor %g)", w.value)
	case columnFlex:
		return "Flex"
	default:
		return unknownStr
	}
}

// TableCell is one cell of a table. The content kind is decided at
// construction: TextCell wraps content in a Text widget, WidgetCell
// takes any widget, EmptyCell renders nothing.
type TableCell struct {
	widget Widget
}

// TextCell creates a cell displaying text. Options style the
// underlying Text widget.
func TextCell(content string, opts ...TextOption) TableCell {
	return TableCell{widget: NewText(content, opts...)}
}

// WidgetCell creates a cell holding an arbitrary widget.
func WidgetCell(w Widget) TableCell {
	return TableCell{widget: w}
}

// EmptyCell creates a cell with no content.
func EmptyCell() TableCell {
	return TableCell{}
}

// Table lays out rectangular rows of cells under a column-width
// algebra. Column resolution is two-pass: fixed, fraction and
// intrinsic columns consume width first, then flex columns split the
// remainder evenly. Cells get their column width as a tight
// constraint and a loose height; each row grows to its tallest cell.
type Table struct {
	columns []ColumnWidth
	rows    [][]TableCell
	config  tableConfig

	// Settled by Layout, consumed by Paint.
	widths  []float64
	heights []float64
}

// TableOption configures a Table during creation.
type TableOption func(*tableConfig)

// tableConfig holds configuration for Table creation.
type tableConfig struct {
	cellPadding EdgeInsets
	rules       RGBA
	ruleWidth   float64
}

// WithCellPadding insets every cell's content.
func WithCellPadding(in EdgeInsets) TableOption {
	return func(c *tableConfig) {
		c.cellPadding = in
	}
}

// WithRules draws grid lines between rows and columns and around the
// table.
func WithRules(color RGBA, width float64) TableOption {
	return func(c *tableConfig) {
		c.rules = color
		c.ruleWidth = width
	}
}

// NewTable creates a table. Every row must have exactly one cell per
// column; a ragged row is a programming error and panics here rather
// than misplacing cells later.
func NewTable(columns []ColumnWidth, rows [][]TableCell, opts ...TableOption) *Table {
	for i, row := range rows {
		if len(row) != len(columns) {
			panic(fmt.Sprintf("layout: table row %d has %d cells, want %d", i, len(row), len(columns)))
		}
	}
	var config tableConfig
	for _, opt := range opts {
		opt(&config)
	}
	return &Table{columns: columns, rows: rows, config: config}
}

// Layout implements Widget.Layout.
func (tb *Table) Layout(ctx *LayoutContext) (LayoutResult, error) {
	c := ctx.Constraints
	if len(tb.columns) == 0 || len(tb.rows) == 0 {
		return LayoutResult{Size: c.Smallest()}, nil
	}

	avail := c.MaxWidth
	widths, err := tb.resolveColumns(ctx, avail)
	if err != nil {
		return LayoutResult{}, err
	}

	pad := tb.config.cellPadding
	res := LayoutResult{NeedsRepaint: tb.config.ruleWidth > 0}

	// Lay out cells with tight column widths; rows grow to their
	// tallest cell.
	heights := make([]float64, len(tb.rows))
	results := make([][]LayoutResult, len(tb.rows))
	for i, row := range tb.rows {
		results[i] = make([]LayoutResult, len(row))
		rowHeight := 0.0
		for j, cell := range row {
			if cell.widget == nil {
				continue
			}
			content := widths[j] - pad.Horizontal()
			if content < 0 {
				content = 0
			}
			cellRes, err := ctx.LayoutChild(cell.widget, Constraints{
				MinWidth: content, MaxWidth: content,
				MaxHeight: math.Inf(1),
			})
			if err != nil {
				return LayoutResult{}, err
			}
			results[i][j] = cellRes
			rowHeight = math.Max(rowHeight, cellRes.Size.Height+pad.Vertical())
		}
		heights[i] = rowHeight
	}

	// Place cells at their column and row origins.
	y := 0.0
	for i, row := range tb.rows {
		x := 0.0
		for j, cell := range row {
			if cell.widget != nil {
				offset := Pt(x+pad.Left, y+pad.Top)
				ctx.Place(cell.widget, offset)

				if !res.HasBaseline && results[i][j].HasBaseline {
					res.Baseline = offset.Y + results[i][j].Baseline
					res.HasBaseline = true
				}
				res.NeedsRepaint = res.NeedsRepaint || results[i][j].NeedsRepaint
			}
			x += widths[j]
		}
		y += heights[i]
	}

	total := 0.0
	for _, w := range widths {
		total += w
	}
	res.Size = c.Constrain(Sz(total, y))

	tb.widths = widths
	tb.heights = heights
	return res, nil
}

// resolveColumns turns the column strategies into concrete widths.
func (tb *Table) resolveColumns(ctx *LayoutContext, avail float64) ([]float64, error) {
	bounded := !math.IsInf(avail, 1)
	widths := make([]float64, len(tb.columns))

	// Pass 1: everything except flex.
	consumed := 0.0
	flexCount := 0
	for j, col := range tb.columns {
		switch col.kind {
		case columnFixed:
			widths[j] = math.Max(0, col.value)
		case columnFraction:
			if bounded {
				widths[j] = math.Max(0, col.value*avail)
			}
		case columnIntrinsic:
			natural, err := tb.intrinsicWidth(ctx, j)
			if err != nil {
				return nil, err
			}
			w := natural + tb.config.cellPadding.Horizontal()
			if bounded {
				w = math.Min(w, intrinsicColumnCap*avail)
			}
			widths[j] = math.Max(w, col.value)
		case columnFlex:
			flexCount++
			continue
		}
		consumed += widths[j]
	}

	// Pass 2: flex columns split the remainder evenly.
	if flexCount > 0 && bounded {
		remainder := avail - consumed
		if remainder > 0 {
			share := remainder / float64(flexCount)
			for j, col := range tb.columns {
				if col.kind == columnFlex {
					widths[j] = share
				}
			}
		}
	}
	return widths, nil
}

// intrinsicWidth probes every cell in a column with unbounded
// constraints and returns the widest natural content width.
func (tb *Table) intrinsicWidth(ctx *LayoutContext, col int) (float64, error) {
	widest := 0.0
	for _, row := range tb.rows {
		cell := row[col]
		if cell.widget == nil {
			continue
		}
		res, err := ctx.LayoutChild(cell.widget, Unbounded())
		if err != nil {
			return 0, err
		}
		widest = math.Max(widest, res.Size.Width)
	}
	return widest, nil
}

// Paint implements Widget.Paint.
func (tb *Table) Paint(ctx *PaintContext) error {
	if tb.config.ruleWidth > 0 {
		tb.paintRules(ctx)
	}
	for _, row := range tb.rows {
		for _, cell := range row {
			if cell.widget == nil {
				continue
			}
			if err := ctx.PaintChild(cell.widget); err != nil {
				return err
			}
		}
	}
	return nil
}

// paintRules draws the grid: one line per row and column boundary,
// including the outer edges.
func (tb *Table) paintRules(ctx *PaintContext) {
	p := ctx.Painter()
	color := tb.config.rules
	width := tb.config.ruleWidth

	totalW := 0.0
	for _, w := range tb.widths {
		totalW += w
	}
	totalH := 0.0
	for _, h := range tb.heights {
		totalH += h
	}

	y := 0.0
	p.Line(Pt(0, 0), Pt(totalW, 0), color, width)
	for _, h := range tb.heights {
		y += h
		p.Line(Pt(0, y), Pt(totalW, y), color, width)
	}

	x := 0.0
	p.Line(Pt(0, 0), Pt(0, totalH), color, width)
	for _, w := range tb.widths {
		x += w
		p.Line(Pt(x, 0), Pt(x, totalH), color, width)
	}
}
