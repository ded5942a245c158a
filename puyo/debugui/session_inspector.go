package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/popdrop/puyo"
)

// fieldInfo describes one exported field shown by the inspector.
type fieldInfo struct {
	Name   string
	Index  int
	Nested bool
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

func (fc *fieldCache) get(t reflect.Type) []fieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			nested := field.Type.Kind() == reflect.Struct && !field.Type.Implements(stringerType)
			fields = append(fields, fieldInfo{Name: field.Name, Index: i, Nested: nested})
		}
	}

	fc.fields[t] = fields
	return fields
}

var (
	stringerType    = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	inspectorFields = &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}
)

// formatValue renders a leaf value the way the inspector shows it.
// Durations, colors and states use their String methods.
func formatValue(val reflect.Value) string {
	if !val.IsValid() {
		return "<invalid>"
	}
	if val.Type().Implements(stringerType) {
		return val.Interface().(fmt.Stringer).String()
	}

	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.3f", val.Float())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	}
	return fmt.Sprintf("%v", val.Interface())
}

// SessionInspector is a read-only view of a session's scoreboard, rules,
// pieces and the groups of the wave being cleared.
type SessionInspector struct{}

func NewSessionInspector() *SessionInspector {
	return &SessionInspector{}
}

func (si *SessionInspector) Render(session *puyo.Session) {
	if !imgui.BeginV("Session Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", session.State()))
	imgui.Text(fmt.Sprintf("Clock: %s", session.Now()))
	if session.Resolving() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "RESOLVING")
	}
	if chain, ok := session.ChainBanner(); ok {
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.4, 1.0), fmt.Sprintf("%d CHAIN!", chain))
	}
	imgui.Separator()

	if imgui.TreeNodeStr("Stats") {
		si.renderStruct(reflect.ValueOf(session.Stats()))
		imgui.TreePop()
	}

	if cur, ok := session.Current(); ok && imgui.TreeNodeStr("Current Piece") {
		imgui.Text(cur.String())
		if ghost, ok := session.Ghost(); ok {
			imgui.Text(fmt.Sprintf("Lands at: %d,%d / %d,%d",
				ghost.Main.Pos.X, ghost.Main.Pos.Y, ghost.Sub.Pos.X, ghost.Sub.Pos.Y))
		}
		imgui.Text(fmt.Sprintf("Soft drop: %t", cur.FastDropping()))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Next Piece") {
		imgui.Text(session.Next().String())
		imgui.TreePop()
	}

	if groups := session.ClearingGroups(); len(groups) > 0 && imgui.TreeNodeStr("Clearing Groups") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ClearingGroupsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Color")
			imgui.TableSetupColumn("Size")
			imgui.TableSetupColumn("Cells")
			imgui.TableHeadersRow()

			for _, g := range groups {
				imgui.TableNextRow()
				imgui.TableSetColumnIndex(0)
				imgui.Text(g.Color.String())
				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%d", g.Size()))
				imgui.TableSetColumnIndex(2)
				imgui.Text(fmt.Sprintf("%v", g.Cells))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if session.State() == puyo.ContinuePrompt && imgui.TreeNodeStr("Continue Prompt") {
		v := session.Prompt()
		imgui.ProgressBarV(float32(v.DropProgress), imgui.NewVec2(-1, 0), "banner")
		si.renderStruct(reflect.ValueOf(v))
		imgui.TreePop()
	}

	if session.State() == puyo.FadeOut {
		imgui.ProgressBarV(float32(session.FadeProgress()), imgui.NewVec2(-1, 0), "fade")
	}

	if imgui.TreeNodeStr("Rules") {
		si.renderStruct(reflect.ValueOf(session.Rules()))
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SessionInspector) renderStruct(val reflect.Value) {
	for _, field := range inspectorFields.get(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.Nested {
			if imgui.TreeNodeStr(field.Name) {
				si.renderStruct(fieldVal)
				imgui.TreePop()
			}
			continue
		}
		imgui.Text(fmt.Sprintf("%s: %s", field.Name, formatValue(fieldVal)))
	}
}
