package puyo

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Option configures a Session.
type Option func(*Session)

// WithRules replaces the default rules.
func WithRules(r Rules) Option {
	return func(s *Session) {
		s.rules = r
	}
}

// WithSeed makes piece colors reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand supplies the random source used for piece colors.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithBoard sets the layout every new game starts from. The board is copied.
func WithBoard(b *Board) Option {
	return func(s *Session) {
		layout := *b
		s.layout = &layout
	}
}

// SessionStats is the scoreboard exposed for rendering.
type SessionStats struct {
	Score        int
	Level        int
	FallInterval time.Duration
	PlayTime     time.Duration
	GameOver     bool
	Pieces       int

	Chain        int
	MaxChain     int
	TotalCleared int
	// ChainBonus is chain*50 for the latest wave. It is shown to the
	// player but never added to Score.
	ChainBonus int
}

// PromptView is the continue-prompt state exposed for rendering.
type PromptView struct {
	Choice Choice
	// DropProgress runs 0..1 while the game-over banner falls into place.
	DropProgress float64
	// Ready is set once the banner has landed and the countdown runs.
	Ready bool
	// Countdown is the whole seconds displayed to the player.
	Countdown int
	Remaining time.Duration
}

type phase uint8

const (
	phaseControl phase = iota
	phaseSettle
	phaseBlink
	phaseWaveDelay
)

func (p phase) String() string {
	switch p {
	case phaseControl:
		return "control"
	case phaseSettle:
		return "settle"
	case phaseBlink:
		return "blink"
	case phaseWaveDelay:
		return "wave-delay"
	}
	return "unknown"
}

// Session owns a whole game: board, pieces, chain engine and the
// title/playing/continue/fade state machine. It is driven by Update once
// per frame and by Handle for each decoded input. A Session is not safe for
// concurrent use.
type Session struct {
	rules     Rules
	rng       *rand.Rand
	scheduler *Scheduler
	layout    *Board

	board      Board
	engine     *ClearEngine
	current    Piece
	hasCurrent bool
	next       Piece
	nextID     UnitID

	state State
	phase phase
	now   time.Duration

	score        int
	level        int
	fallInterval time.Duration
	pieces       int
	gameOver     bool
	startedAt    time.Duration
	endedAt      time.Duration

	lastFall     time.Duration
	settleAt     time.Duration
	resolvedAt   time.Duration
	pending      []Group
	chainShownAt time.Duration
	chainBonus   int

	choice   Choice
	promptAt time.Duration
	fadeAt   time.Duration

	pops    []PopEffect
	wobbles *wobbleTracker
	events  []Event
}

// NewSession creates a session on the title screen. It panics if the
// configured rules are invalid; use TryNewSession to get the error instead.
func NewSession(opts ...Option) *Session {
	s, err := TryNewSession(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// TryNewSession creates a session on the title screen.
func TryNewSession(opts ...Option) (*Session, error) {
	s := &Session{
		rules: DefaultRules(),
		state: Title,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.rules.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s.engine = NewClearEngine(s.rules.BlinkFrames, s.rules.PopFrames)
	s.wobbles = newWobbleTracker(s.rules.WobbleDuration)
	s.level = 1
	s.fallInterval = s.rules.FallInterval(1)

	s.scheduler = NewScheduler(s)
	s.scheduler.Register(&EffectSystem{})
	s.scheduler.Register(&ChainSystem{})
	s.scheduler.Register(&FallSystem{})
	s.scheduler.Register(&PromptSystem{})
	s.scheduler.Register(&FadeSystem{})

	return s, nil
}

// Update advances the session by dt seconds of wall-clock time and runs
// one frame of every system.
func (s *Session) Update(dt float64) {
	s.scheduler.Once(dt)
}

// Register appends a system that runs after the built-in ones every frame.
func (s *Session) Register(system System) {
	s.scheduler.Register(system)
}

func (s *Session) Scheduler() *Scheduler {
	return s.scheduler
}

func (s *Session) advance(dt float64) time.Duration {
	if dt > 0 {
		s.now += time.Duration(dt * float64(time.Second))
	}
	return s.now
}

// Handle applies one decoded input command immediately. Commands that make
// no sense in the current state are ignored.
func (s *Session) Handle(cmd Command) {
	d := newDeferred()
	s.handle(cmd, d)
	d.Flush(s)
}

func (s *Session) handle(cmd Command, d *Deferred) {
	switch s.state {
	case Title:
		if cmd == ConfirmPrimary {
			s.start(d)
		}
	case Playing:
		s.handlePlaying(cmd, d)
	case ContinuePrompt:
		switch cmd {
		case ToggleChoice:
			s.choice = s.choice.toggle()
		case ConfirmPrimary:
			if s.choice == ChoiceRestart {
				s.start(d)
			} else {
				s.beginFade(d)
			}
		}
	}
}

func (s *Session) handlePlaying(cmd Command, d *Deferred) {
	// Input is held off while a chain resolves.
	if s.phase != phaseControl || !s.hasCurrent {
		return
	}

	p := &s.current
	switch cmd {
	case MoveLeft, MoveRight:
		dir := -1
		if cmd == MoveRight {
			dir = 1
		}
		if !p.MoveHorizontal(&s.board, dir) {
			d.Emit(Event{Kind: EventMoveRejected, At: s.now})
		}
	case RotateCW, RotateCCW:
		r := Clockwise
		if cmd == RotateCCW {
			r = CounterClockwise
		}
		if !p.Rotate(&s.board, r) {
			d.Emit(Event{Kind: EventRotationRejected, At: s.now})
		}
	case SoftDropStart:
		p.StartFastDrop()
	case SoftDropStop:
		p.StopFastDrop()
	case HardDrop:
		rows := p.HardDrop(&s.board)
		s.addScore(rows*s.rules.HardDropBonus, d)
		s.lock(d)
	}
}

func (s *Session) setState(st State, d *Deferred) {
	s.state = st
	d.Emit(Event{Kind: EventStateChanged, At: s.now, State: st})
}

func (s *Session) start(d *Deferred) {
	s.board = Board{}
	if s.layout != nil {
		s.board = *s.layout
	}
	s.nextID = s.board.maxUnitID()
	s.engine.Reset()
	s.wobbles.reset()
	s.pops = s.pops[:0]
	s.pending = nil

	s.score = 0
	s.level = 1
	s.fallInterval = s.rules.FallInterval(1)
	s.pieces = 0
	s.gameOver = false
	s.startedAt = s.now
	s.endedAt = 0
	s.chainBonus = 0
	s.chainShownAt = 0
	s.choice = ChoiceRestart

	s.phase = phaseControl
	s.hasCurrent = false
	s.current = Piece{}
	s.next = s.generate()

	s.setState(Playing, d)
	s.spawnNext(d)
}

func (s *Session) newUnit() Unit {
	s.nextID++
	return Unit{ID: s.nextID, Color: Color(s.rng.IntN(NumColors))}
}

func (s *Session) generate() Piece {
	main := s.newUnit()
	sub := s.newUnit()
	return NewPiece(main, sub)
}

// spawnNext promotes the staged piece and stages a fresh one. A staged piece
// whose spawn cells are blocked ends the game.
func (s *Session) spawnNext(d *Deferred) bool {
	piece := s.next
	s.next = s.generate()

	if !s.board.IsValidPosition(piece) {
		s.endGame(d)
		return false
	}

	s.current = piece
	s.hasCurrent = true
	s.pieces++
	s.lastFall = s.now
	d.Emit(Event{Kind: EventSpawned, At: s.now})
	return true
}

// lock commits the current piece to the board and starts settling. Units
// above the top row are dropped.
func (s *Session) lock(d *Deferred) {
	placed := 0
	for _, u := range s.current.Units() {
		if s.board.Place(u) {
			placed++
			s.wobbles.start(u.ID, s.now)
		}
	}
	s.hasCurrent = false
	s.current = Piece{}
	d.Emit(Event{Kind: EventLocked, At: s.now, Units: placed})
	s.beginSettle()
}

func (s *Session) beginSettle() {
	s.phase = phaseSettle
	s.settleAt = s.now
}

// scan runs after gravity has settled and decides what the chain does next.
func (s *Session) scan(d *Deferred) {
	groups := s.engine.Detect(&s.board)
	switch {
	case len(groups) == 0:
		s.finishChain(d)
	case s.engine.Chain().Count == 0:
		s.markWave(groups, d)
	case s.now-s.resolvedAt >= s.rules.WaveDelay:
		s.markWave(groups, d)
	default:
		s.pending = groups
		s.phase = phaseWaveDelay
	}
}

func (s *Session) markWave(groups []Group, d *Deferred) {
	s.engine.Mark(&s.board, groups)
	chain := s.engine.Chain().Count
	s.chainShownAt = s.now
	s.chainBonus = chain * ChainBonusPerWave
	s.pending = nil
	s.phase = phaseBlink

	units := 0
	for _, g := range groups {
		units += g.Size()
	}
	d.Emit(Event{Kind: EventChainStarted, At: s.now, Chain: chain, Units: units})
}

func (s *Session) resolveWave(d *Deferred) {
	res := s.engine.Resolve(&s.board)
	for _, p := range res.Pops {
		d.SpawnPop(p)
	}
	for _, id := range res.Removed {
		s.wobbles.forget(id)
	}
	s.resolvedAt = s.now
	d.Emit(Event{Kind: EventCleared, At: s.now, Chain: res.Chain, Units: res.Cleared, Points: res.Points})
	s.addScore(res.Points, d)
	s.beginSettle()
}

// finishChain hands control back once no groups remain: either the top row
// is occupied and the game ends, or the next piece spawns.
func (s *Session) finishChain(d *Deferred) {
	s.engine.End()
	s.pending = nil
	s.phase = phaseControl
	if s.board.IsGameOver() {
		s.endGame(d)
		return
	}
	s.spawnNext(d)
}

func (s *Session) addScore(points int, d *Deferred) {
	if points <= 0 {
		return
	}
	s.score += points
	if level := s.rules.LevelFor(s.score); level > s.level {
		s.level = level
		s.fallInterval = s.rules.FallInterval(level)
		d.Emit(Event{Kind: EventLevelUp, At: s.now, Level: level})
	}
}

func (s *Session) endGame(d *Deferred) {
	s.gameOver = true
	s.endedAt = s.now
	s.hasCurrent = false
	s.current = Piece{}
	s.phase = phaseControl
	s.choice = ChoiceRestart
	s.promptAt = s.now
	d.Emit(Event{Kind: EventGameOver, At: s.now})
	s.setState(ContinuePrompt, d)
}

func (s *Session) beginFade(d *Deferred) {
	s.fadeAt = s.now
	s.setState(FadeOut, d)
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Rules() Rules {
	return s.rules
}

// Now is the session clock: the sum of every dt passed to Update.
func (s *Session) Now() time.Duration {
	return s.now
}

// Board returns a copy of the playfield.
func (s *Session) Board() *Board {
	b := s.board
	return &b
}

// Current returns the piece under player control, if any.
func (s *Session) Current() (Piece, bool) {
	return s.current, s.hasCurrent
}

// Next returns the staged piece.
func (s *Session) Next() Piece {
	return s.next
}

// Ghost returns where the current piece would land.
func (s *Session) Ghost() (Piece, bool) {
	if !s.hasCurrent {
		return Piece{}, false
	}
	return s.current.Ghost(&s.board), true
}

// Resolving reports whether a lock is being settled or a chain is running.
func (s *Session) Resolving() bool {
	return s.state == Playing && s.phase != phaseControl
}

// ClearingGroups returns the groups blinking in the current wave.
func (s *Session) ClearingGroups() []Group {
	return s.engine.Groups()
}

func (s *Session) Stats() SessionStats {
	chain := s.engine.Chain()
	stats := SessionStats{
		Score:        s.score,
		Level:        s.level,
		FallInterval: s.fallInterval,
		GameOver:     s.gameOver,
		Pieces:       s.pieces,
		Chain:        chain.Count,
		MaxChain:     chain.Max,
		TotalCleared: chain.TotalCleared,
		ChainBonus:   s.chainBonus,
	}
	switch {
	case s.gameOver:
		stats.PlayTime = s.endedAt - s.startedAt
	case s.state == Playing:
		stats.PlayTime = s.now - s.startedAt
	}
	return stats
}

// ChainBanner reports the chain number to display, if a banner for a chain
// of two or more is currently showing.
func (s *Session) ChainBanner() (int, bool) {
	chain := s.engine.Chain().Count
	if !s.Resolving() || chain < 2 {
		return 0, false
	}
	if s.now-s.chainShownAt >= s.rules.ChainBannerDuration {
		return 0, false
	}
	return chain, true
}

// Prompt returns the continue-prompt view. It is meaningful only in the
// ContinuePrompt state.
func (s *Session) Prompt() PromptView {
	drop := s.rules.GameOverDrop
	elapsed := s.now - s.promptAt
	v := PromptView{
		Choice:       s.choice,
		DropProgress: 1,
		Countdown:    int(s.rules.ContinueCountdown / time.Second),
		Remaining:    s.rules.ContinueCountdown,
	}
	if drop > 0 {
		v.DropProgress = min(1, float64(elapsed)/float64(drop))
	}
	if elapsed < drop {
		return v
	}

	counted := elapsed - drop
	v.Ready = true
	v.Remaining = max(0, s.rules.ContinueCountdown-counted)
	v.Countdown = max(0, int(s.rules.ContinueCountdown/time.Second)-int(counted/time.Second))
	return v
}

// FadeProgress runs 0..1 during the FadeOut state.
func (s *Session) FadeProgress() float64 {
	if s.state != FadeOut {
		return 0
	}
	return min(1, float64(s.now-s.fadeAt)/float64(s.rules.FadeDuration))
}

// Pops returns the live pop effects.
func (s *Session) Pops() []PopEffect {
	out := make([]PopEffect, len(s.pops))
	copy(out, s.pops)
	return out
}

// Wobble returns the landing wobble progress (0..1) of a placed unit.
func (s *Session) Wobble(id UnitID) (float64, bool) {
	return s.wobbles.progress(id, s.now)
}

// DrainEvents returns and clears the events emitted since the last call.
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}
