package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/render"
)

// Panel shows the session's engine, its counters and scheduler timings.
type Panel struct {
	session   *game.Session
	history   *FrameHistory
	ShowBoard bool
}

func NewPanel(session *game.Session, historyFrames int) *Panel {
	return &Panel{
		session: session,
		history: NewFrameHistory(historyFrames),
	}
}

// Record feeds the frame-time graph. Call it once per frame with the frame's
// delta time.
func (p *Panel) Record(dt float64) {
	p.history.Push(dt)
}

// System returns a loop.System that records frame times, for frontends that
// do not call Record themselves.
func (p *Panel) System() loop.System {
	return loop.SystemFunc(func(frame *loop.UpdateFrame) {
		p.Record(frame.DeltaTime)
	})
}

func (p *Panel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 420), imgui.CondOnce)

	if !imgui.BeginV("Blockfall Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := p.session.Engine().Snapshot()
	active := snap.Active

	imgui.Text(fmt.Sprintf("Game: %d  State: %s", p.session.Games(), snap.State))
	imgui.Text(fmt.Sprintf("Board: %dx%d", snap.Width, snap.Height))
	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", active.Piece.Kind(), active.X, active.Y))

	imgui.Separator()
	for _, line := range statLines(snap.Stats) {
		imgui.Text(line)
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", p.history.Average(), p.history.FPS()))
	samples := p.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		stats := p.session.Scheduler().GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Name")
			imgui.TableSetupColumn("Avg (ms)")
			imgui.TableSetupColumn("Max (ms)")
			imgui.TableSetupColumn("Runs")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(millis(sys.AvgDuration))
				imgui.TableNextColumn()
				imgui.Text(millis(sys.MaxDuration))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if p.ShowBoard && imgui.TreeNodeStr("Board") {
		imgui.Text(render.Text(snap))
		imgui.TreePop()
	}

	imgui.End()
}

func statLines(stats engine.Stats) []string {
	return []string{
		fmt.Sprintf("Ticks: %d", stats.Ticks),
		fmt.Sprintf("Spawned: %d", stats.Spawned),
		fmt.Sprintf("Locked: %d", stats.Locked),
		fmt.Sprintf("Rows Cleared: %d (last %d)", stats.RowsCleared, stats.LastCleared),
		fmt.Sprintf("Rejected: %d", stats.Rejected),
	}
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}
