package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/welltris/well"
)

// RowViewer tabulates how full every row of the stack is.
type RowViewer struct {
	hideEmpty bool
}

func NewRowViewer() *RowViewer {
	return &RowViewer{hideEmpty: true}
}

func (rv *RowViewer) Render(stack *well.Stack) {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Stack Rows", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Hide empty rows", &rv.hideEmpty)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("RowTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Fill")
		imgui.TableHeadersRow()

		for y := 0; y < well.WellHeight; y++ {
			count := stack.RowCount(y)
			if rv.hideEmpty && count == 0 {
				continue
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d/%d", count, well.WellWidth))
			imgui.TableNextColumn()
			imgui.Text(FillBar(count))
		}

		imgui.EndTable()
	}

	imgui.End()
}

// FillBar draws a row occupancy as a fixed-width text bar.
func FillBar(count int) string {
	count = max(0, min(count, well.WellWidth))
	return strings.Repeat("#", count) + strings.Repeat(".", well.WellWidth-count)
}
