package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/popdrop/puyo"
)

// UnitInfo is one occupied cell as listed by the board viewer.
type UnitInfo struct {
	ID       puyo.UnitID
	Color    puyo.Color
	State    puyo.CellState
	Pos      puyo.Point
	Wobble   float64
	Wobbling bool
}

const (
	sortByID = iota
	sortByColor
	sortByState
	sortByPosition
)

// BoardViewer shows the playfield as a grid plus a sortable, filterable
// table of every placed unit.
type BoardViewer struct {
	units           []UnitInfo
	sortColumn      int
	sortAscending   bool
	filterText      string
	selectedUnit    puyo.UnitID
	maxUnitsPerPage int
	currentPage     int
}

func NewBoardViewer(maxUnitsPerPage int) *BoardViewer {
	return &BoardViewer{
		sortColumn:      sortByID,
		sortAscending:   true,
		maxUnitsPerPage: max(1, maxUnitsPerPage),
	}
}

// collectUnits lists every occupied cell in row-major order. wobble may be nil.
func collectUnits(b *puyo.Board, wobble func(puyo.UnitID) (float64, bool)) []UnitInfo {
	units := make([]UnitInfo, 0, puyo.Width*puyo.Height)
	for y := 0; y < puyo.Height; y++ {
		for x := 0; x < puyo.Width; x++ {
			p := puyo.Point{X: x, Y: y}
			cell := b.At(p)
			if !cell.Occupied() {
				continue
			}
			info := UnitInfo{ID: cell.Unit, Color: cell.Color, State: cell.State, Pos: p}
			if wobble != nil {
				info.Wobble, info.Wobbling = wobble(cell.Unit)
			}
			units = append(units, info)
		}
	}
	return units
}

func sortUnits(units []UnitInfo, column int, ascending bool) {
	sort.SliceStable(units, func(i, j int) bool {
		a, b := units[i], units[j]
		var less bool

		switch column {
		case sortByColor:
			less = a.Color < b.Color
		case sortByState:
			less = a.State < b.State
		case sortByPosition:
			less = a.Pos.Y < b.Pos.Y || (a.Pos.Y == b.Pos.Y && a.Pos.X < b.Pos.X)
		default:
			less = a.ID < b.ID
		}

		if !ascending {
			return !less
		}
		return less
	})
}

// filterUnits keeps units whose id, color or state contains text.
func filterUnits(units []UnitInfo, text string) []UnitInfo {
	if text == "" {
		return units
	}

	filtered := make([]UnitInfo, 0, len(units))
	filterLower := strings.ToLower(text)
	for _, u := range units {
		if strings.Contains(fmt.Sprintf("%d", u.ID), filterLower) ||
			strings.Contains(u.Color.String(), filterLower) ||
			strings.Contains(u.State.String(), filterLower) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func (bv *BoardViewer) Render(session *puyo.Session) {
	if !imgui.BeginV("Board Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := session.Board()
	bv.units = collectUnits(board, session.Wobble)
	sortUnits(bv.units, bv.sortColumn, bv.sortAscending)

	bv.renderGrid(board)
	imgui.Separator()

	imgui.InputTextWithHint("##search", "Search...", &bv.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		bv.filterText = ""
		bv.currentPage = 0
	}

	filtered := filterUnits(bv.units, bv.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("UnitTable", 5, tableFlags, imgui.NewVec2(0, 240), 0) {
		imgui.TableSetupColumn("Unit ID")
		imgui.TableSetupColumn("Color")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Position")
		imgui.TableSetupColumn("Wobble")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			bv.sortColumn = int(spec.ColumnIndex())
			bv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortUnits(filtered, bv.sortColumn, bv.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := min(bv.currentPage*bv.maxUnitsPerPage, len(filtered))
		endIdx := min(startIdx+bv.maxUnitsPerPage, len(filtered))

		for _, u := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", u.ID), bv.selectedUnit == u.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				bv.selectedUnit = u.ID
			}

			imgui.TableNextColumn()
			imgui.Text(u.Color.String())
			imgui.TableNextColumn()
			imgui.Text(u.State.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d,%d", u.Pos.X, u.Pos.Y))
			imgui.TableNextColumn()
			if u.Wobbling {
				imgui.Text(fmt.Sprintf("%.0f%%", u.Wobble*100))
			} else {
				imgui.Text("-")
			}
		}

		imgui.EndTable()
	}

	if len(filtered) > bv.maxUnitsPerPage {
		totalPages := (len(filtered) + bv.maxUnitsPerPage - 1) / bv.maxUnitsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d units)", bv.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && bv.currentPage > 0 {
			bv.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && bv.currentPage < totalPages-1 {
			bv.currentPage++
		}
	} else {
		bv.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d units", len(filtered)))
	}

	imgui.End()
}

func (bv *BoardViewer) renderGrid(board *puyo.Board) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("BoardGrid", puyo.Width+1, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	for y := 0; y < puyo.Height; y++ {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%2d", y))

		for x := 0; x < puyo.Width; x++ {
			imgui.TableNextColumn()
			cell := board.At(puyo.Point{X: x, Y: y})
			if !cell.Occupied() {
				imgui.Text(".")
				continue
			}

			label := string(cell.Color.Rune())
			if cell.State == puyo.Clearing {
				label = strings.ToLower(label)
			}
			if cell.Unit == bv.selectedUnit {
				label = "[" + label + "]"
			}

			imgui.PushStyleColorVec4(imgui.ColText, colorVec4(cell.Color))
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%d_%d", label, x, y), cell.Unit == bv.selectedUnit, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
				bv.selectedUnit = cell.Unit
			}
			imgui.PopStyleColor()
		}
	}

	// Stack height per column
	imgui.TableNextRow()
	imgui.TableNextColumn()
	imgui.TextColored(imgui.NewVec4(0.6, 0.6, 0.6, 1.0), " h")
	for x := 0; x < puyo.Width; x++ {
		imgui.TableNextColumn()
		imgui.TextColored(imgui.NewVec4(0.6, 0.6, 0.6, 1.0), fmt.Sprintf("%d", board.ColumnHeight(x)))
	}

	imgui.EndTable()
}

// Selected returns the unit last picked in the grid or the table.
func (bv *BoardViewer) Selected() puyo.UnitID {
	return bv.selectedUnit
}

func colorVec4(c puyo.Color) imgui.Vec4 {
	switch c {
	case puyo.Red:
		return imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	case puyo.Blue:
		return imgui.NewVec4(0.3, 0.5, 1.0, 1.0)
	case puyo.Yellow:
		return imgui.NewVec4(1.0, 0.9, 0.2, 1.0)
	case puyo.Green:
		return imgui.NewVec4(0.3, 0.9, 0.3, 1.0)
	case puyo.Purple:
		return imgui.NewVec4(0.7, 0.3, 0.9, 1.0)
	}
	return imgui.NewVec4(1, 1, 1, 1)
}
