// Command layoutdemo lays out a sample document and prints the
// recorded paint commands.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/layout"
	"github.com/gogpu/layout/recording"
	"github.com/gogpu/layout/text"
)

func main() {
	var (
		width  = flag.Float64("width", 612, "page width in points")
		height = flag.Float64("height", 792, "page height in points")
		dump   = flag.Bool("dump", false, "print every recorded command")
	)
	flag.Parse()

	page := buildDocument()
	tree := layout.NewTree(page)

	res, err := tree.Layout(layout.Tight(layout.Sz(*width, *height)))
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}

	rec := recording.NewRecorder()
	if err := tree.Paint(rec); err != nil {
		log.Fatalf("Paint failed: %v", err)
	}
	r := rec.FinishRecording()

	log.Printf("Page laid out at %.0fx%.0f", res.Size.Width, res.Size.Height)
	if res.HasBaseline {
		log.Printf("First baseline at %.1f", res.Baseline)
	}
	log.Printf("Recorded %d commands (balanced: %v)", r.Len(), r.Balanced())
	for _, t := range []recording.CommandType{
		recording.CmdSave,
		recording.CmdRestore,
		recording.CmdSetTransform,
		recording.CmdFillRect,
		recording.CmdStrokeRect,
		recording.CmdLine,
		recording.CmdText,
		recording.CmdPushClip,
		recording.CmdPopClip,
	} {
		if n := r.Count(t); n > 0 {
			log.Printf("  %-12s %d", t, n)
		}
	}

	if *dump {
		for i, cmd := range r.Commands() {
			fmt.Printf("%4d  %-12s %+v\n", i, cmd.Type(), cmd)
		}
	}
}

func buildDocument() layout.Widget {
	title := layout.NewText("Layout Engine Demonstration",
		layout.WithStyle(layout.TextStyle{Size: 24}),
		layout.WithTextAlign(layout.TextAlignCenter),
	)

	swatches := layout.NewRow([]layout.Widget{
		layout.NewExpanded(layout.NewBox(nil,
			layout.WithHeight(40),
			layout.WithFill(layout.Red),
		)),
		layout.NewExpanded(layout.NewBox(nil,
			layout.WithHeight(40),
			layout.WithFill(layout.Green),
		)),
		layout.NewExpanded(layout.NewBox(nil,
			layout.WithHeight(40),
			layout.WithFill(layout.Blue),
		)),
	}, layout.WithSpacing(8))

	table := layout.NewTable(
		[]layout.ColumnWidth{
			layout.IntrinsicColumn(60),
			layout.FlexColumn(),
			layout.FixedColumn(80),
		},
		[][]layout.TableCell{
			{layout.TextCell("Item"), layout.TextCell("Description"), layout.TextCell("Price")},
			{layout.TextCell("Compass"), layout.TextCell("Brass pocket compass with leather case"), layout.TextCell("24.00")},
			{layout.TextCell("Sextant"), layout.TextCell("Navigational instrument, calibrated"), layout.TextCell("180.00")},
		},
		layout.WithCellPadding(layout.InsetsAll(4)),
		layout.WithRules(layout.Black, 0.5),
	)

	body := layout.NewText(
		"The quick brown fox jumps over the lazy dog while the "+
			"typesetter watches every interword gap stretch toward the "+
			"margin. Justification marks each full line; hyphenation "+
			"splits overlong words at letter boundaries.",
		layout.WithTextAlign(layout.TextAlignJustify),
		layout.WithHyphenation(text.HyphenationPolicy{Enabled: true}),
	)

	badge := layout.NewStack([]layout.Widget{
		layout.NewBox(nil,
			layout.WithHeight(60),
			layout.WithBorder(layout.Black, 1),
		),
		layout.NewPositioned(
			layout.NewText("v1.0"),
			layout.AtRight(6), layout.AtTop(6),
		),
	}, layout.WithStackFit(layout.StackFitExpand))

	content := layout.NewColumn([]layout.Widget{
		title,
		swatches,
		table,
		body,
		badge,
	}, layout.WithSpacing(18), layout.WithCrossAlignment(layout.CrossAxisStretch))

	return layout.NewBox(content,
		layout.WithPadding(layout.InsetsAll(36)),
		layout.WithFill(layout.White),
	)
}
