package main

import (
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/archery/pkg/config"
	"github.com/gonewx/archery/pkg/game"
)

// 终端配色
var (
	styleSky     = tcell.StyleDefault.Background(tcell.NewRGBColor(0x87, 0xce, 0xeb))
	styleGround  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2d, 0x8a, 0x2d))
	styleStatus  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x20, 0x20, 0x30)).Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
	ringStyles   = []tcell.Style{
		tcell.StyleDefault.Background(tcell.ColorWhite),
		tcell.StyleDefault.Background(tcell.ColorBlack),
		tcell.StyleDefault.Background(tcell.NewRGBColor(0x28, 0x50, 0xc8)),
		tcell.StyleDefault.Background(tcell.NewRGBColor(0xcc, 0x33, 0x33)),
	}
	colorBullseye = tcell.NewRGBColor(0xff, 0xdb, 0x4d)
	colorShaft    = tcell.NewRGBColor(0x5c, 0x3b, 0x1a)
	colorArcher   = tcell.NewRGBColor(0x3d, 0x2a, 0x14)
	colorPickup   = tcell.NewRGBColor(0x28, 0xa7, 0x45)
)

// tui 终端前端：把 tcell 事件映射为游戏输入，按帧绘制快照
type tui struct {
	screen   tcell.Screen
	game     *game.Game
	settings *game.SettingsManager

	view     viewport
	snapshot game.Snapshot

	// buttonDown 鼠标左键当前是否按下（tcell 只报告按键状态，按下/松开需要自己区分）
	buttonDown bool
}

func newTUI(screen tcell.Screen, g *game.Game, settings *game.SettingsManager) *tui {
	t := &tui{screen: screen, game: g, settings: settings}
	t.resize()
	t.snapshot = g.Snapshot()
	return t
}

func (t *tui) resize() {
	cols, rows := t.screen.Size()
	l := t.game.Layout()
	t.view = newViewport(cols, rows, l.Width, l.Height)
}

// run 事件循环：输入事件与 ~60 FPS 的帧计时器交替处理
func (t *tui) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			t.game.Advance()
			t.snapshot = t.game.Snapshot()
			t.draw()
		}
	}
}

// handleEvent 返回 false 表示退出
func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)

	case *tcell.EventMouse:
		t.handleMouse(ev)

	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

func (t *tui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if !t.game.Round().InProgress() {
			t.game.Start()
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'p', 'P':
		t.game.TogglePause()
	case 'r', 'R':
		t.game.Restart()
	case 's', 'S':
		if !t.game.Round().InProgress() {
			t.game.Start()
		}
	case ' ':
		t.game.QuickFire()
	case 'm', 'M':
		t.settings.SetSoundEnabled(!t.settings.GetSettings().SoundEnabled)
		t.saveSettings()
	case '1', '2', '3':
		d := config.AllDifficulties[ev.Rune()-'1']
		t.game.SelectDifficulty(d)
		t.settings.SetDifficulty(d)
		t.saveSettings()
	}
	return true
}

func (t *tui) saveSettings() {
	if err := t.settings.Save(); err != nil {
		log.Printf("[TUI] Warning: failed to save settings: %v", err)
	}
}

// handleMouse 左键按下开始蓄力，按住拖动瞄准，松开发射
func (t *tui) handleMouse(ev *tcell.EventMouse) {
	if !t.view.valid() {
		return
	}
	col, row := ev.Position()
	x, y := t.view.toWorld(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !t.buttonDown:
		t.buttonDown = true
		t.game.PointerDown(x, y)
	case !down && t.buttonDown:
		t.buttonDown = false
		t.game.PointerUp(x, y)
	default:
		t.game.PointerMove(x, y)
	}
}

// draw 绘制一帧：背景 → 靶 → 补给 → 箭 → 弓手 → 粒子 → 飘字 → 状态栏 → 提示层
func (t *tui) draw() {
	s := &t.snapshot
	t.screen.Clear()
	if !t.view.valid() {
		t.screen.Show()
		return
	}

	t.drawBackground(s)
	t.drawTarget(s)

	for _, p := range s.Pickups {
		t.putText(p.X, p.Y+math.Sin(p.Bob*3)*3, "+A", tcell.ColorBlack, colorPickup)
	}
	for _, a := range s.Arrows {
		t.drawArrow(s, a)
	}
	t.drawArcher(s)
	for _, p := range s.Particles {
		if p.Alpha > 0.2 {
			c := tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B))
			t.putRune(p.X, p.Y, '*', c)
		}
	}
	for _, p := range s.Popups {
		if p.Alpha > 0.2 {
			t.putText(p.X, p.Y, p.Text, tcell.ColorWhite, tcell.ColorDefault)
		}
	}

	t.drawStatus(s)
	t.drawOverlay(s)
	t.screen.Show()
}

func (t *tui) drawBackground(s *game.Snapshot) {
	for row := hudRows; row < t.view.rows+hudRows; row++ {
		for col := 0; col < t.view.cols; col++ {
			_, y := t.view.toWorld(col, row)
			style := styleSky
			if y >= s.Layout.GroundY {
				style = styleGround
			}
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawTarget 逐格采样：格子中心落在哪一环就用哪一环的颜色
func (t *tui) drawTarget(s *game.Snapshot) {
	tg := s.Target
	if tg.Radius <= 0 {
		return
	}
	y := tg.Y + math.Sin(tg.Wobble*0.07)
	c0, r0 := t.view.toCell(tg.X-tg.Radius, y-tg.Radius)
	c1, r1 := t.view.toCell(tg.X+tg.Radius, y+tg.Radius)
	center := math.Max(6, math.Floor(tg.Radius*0.12))

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !t.view.inside(col, row) {
				continue
			}
			wx, wy := t.view.toWorld(col, row)
			d := math.Hypot(wx-tg.X, wy-y)
			idx := ringIndex(tg.Rings, d)
			if idx < 0 {
				continue
			}
			style := ringStyles[idx%len(ringStyles)]
			if d <= center {
				style = tcell.StyleDefault.Background(colorBullseye)
			}
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	t.putRune(tg.X, y, '+', tcell.ColorBlack)
}

// drawArrow 沿箭杆方向画三个点：箭尾、中点、箭头
func (t *tui) drawArrow(s *game.Snapshot, a game.ArrowView) {
	half := s.Layout.ArrowLength / 2
	cos, sin := math.Cos(a.Angle), math.Sin(a.Angle)
	glyph := arrowGlyph(a.Angle)
	t.putRune(a.X-cos*half, a.Y-sin*half, glyph, colorShaft)
	t.putRune(a.X, a.Y, glyph, colorShaft)
	t.putRune(a.X+cos*half, a.Y+sin*half, '>', colorShaft)
}

func (t *tui) drawArcher(s *game.Snapshot) {
	l := &s.Layout
	bodyLen := math.Floor(l.MinDimension() * 0.12)
	t.putRune(l.ArcherX, l.ArcherY-bodyLen, 'o', colorArcher)
	t.putRune(l.ArcherX, l.ArcherY-bodyLen/2, '|', colorArcher)
	t.putRune(l.ArcherX, l.ArcherY, '^', colorArcher)

	// 瞄准线，蓄力越满越长
	reach := l.ArrowLength
	if s.Charging {
		reach += l.ArrowLength * 2 * s.ChargeFraction
	}
	for d := l.ArrowLength / 2; d <= reach; d += l.ArrowLength / 2 {
		t.putRune(l.ArcherX+math.Cos(s.Aim)*d, l.ArcherY+math.Sin(s.Aim)*d, '.', colorArcher)
	}
	t.putRune(l.ArcherX+math.Cos(s.Aim)*10, l.ArcherY+math.Sin(s.Aim)*10, ')', colorArcher)
}

func (t *tui) drawStatus(s *game.Snapshot) {
	line := []rune(statusLine(s))
	for col := 0; col < t.view.cols; col++ {
		r := ' '
		if col < len(line) {
			r = line[col]
		}
		t.screen.SetContent(col, 0, r, nil, styleStatus)
	}
}

func (t *tui) drawOverlay(s *game.Snapshot) {
	lines := s.OverlayLines(false)
	if len(lines) == 0 {
		return
	}
	top := hudRows + t.view.rows/3
	for i, ln := range lines {
		start := (t.view.cols - len(ln)) / 2
		for j, r := range ln {
			t.screen.SetContent(start+j, top+i, r, nil, styleOverlay)
		}
	}
}

// putRune 在世界坐标处写一个字符，保留格子原有背景色
func (t *tui) putRune(x, y float64, r rune, fg tcell.Color) {
	col, row := t.view.toCell(x, y)
	if !t.view.inside(col, row) {
		return
	}
	_, _, style, _ := t.screen.GetContent(col, row)
	t.screen.SetContent(col, row, r, nil, style.Foreground(fg))
}

// putText 从世界坐标处开始写一行文字
func (t *tui) putText(x, y float64, text string, fg, bg tcell.Color) {
	col, row := t.view.toCell(x, y)
	for i, r := range text {
		if !t.view.inside(col+i, row) {
			continue
		}
		_, _, style, _ := t.screen.GetContent(col+i, row)
		if bg != tcell.ColorDefault {
			style = style.Background(bg)
		}
		t.screen.SetContent(col+i, row, r, nil, style.Foreground(fg))
	}
}

// logEvent 记录游戏事件（仅 -log 时可见）
func logEvent(ev game.Event) {
	switch e := ev.(type) {
	case game.EventRoundEnded:
		log.Printf("[TUI] Round ended: score=%d high=%d new=%v", e.Score, e.HighScore, e.NewRecord)
	case game.EventTargetHit:
		log.Printf("[TUI] Hit: %d points (bullseye=%v)", e.Points, e.Bullseye)
	}
}
