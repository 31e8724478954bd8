package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/welltris/well"
)

// RoundInspector shows the fields of the running round, descending into
// nested structs. The view is read-only.
type RoundInspector struct {
	maxDepth int
}

func NewRoundInspector() *RoundInspector {
	return &RoundInspector{maxDepth: 3}
}

func (ri *RoundInspector) Render(state *well.RoundState) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Round Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(well.FormatPoints(state.Score))
	imgui.Text(fmt.Sprintf("Stack: %d blocks, top row %d", state.Stack.Len(), state.Stack.Top()))
	imgui.Separator()

	ri.renderStruct(reflect.ValueOf(state).Elem(), 0)

	imgui.End()
}

func (ri *RoundInspector) renderStruct(val reflect.Value, depth int) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)

		if !field.IsStruct || depth >= ri.maxDepth {
			imgui.Text(fmt.Sprintf("%s: %s", field.Name, FormatValue(fieldVal)))
			continue
		}
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}

		if imgui.TreeNodeStr(field.Name) {
			ri.renderStruct(fieldVal, depth+1)
			imgui.TreePop()
		}
	}
}
