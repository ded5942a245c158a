package puyo

// EffectSystem advances pop effects and expires landing wobbles.
type EffectSystem struct{}

func (e *EffectSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	s.pops = advancePops(s.pops)
	s.wobbles.prune(frame.Now)
}

// ChainSystem drives everything between a lock and the next spawn:
// settle passes, wave marking, blinking and removal.
type ChainSystem struct{}

func (c *ChainSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.state != Playing {
		return
	}

	switch s.phase {
	case phaseSettle:
		if frame.Now-s.settleAt < s.rules.SettleStepInterval {
			return
		}
		s.settleAt = frame.Now
		moved := s.board.applyGravityStep(func(u Unit) {
			s.wobbles.start(u.ID, frame.Now)
		})
		if !moved {
			s.scan(frame.Deferred)
		}

	case phaseWaveDelay:
		if frame.Now-s.resolvedAt < s.rules.WaveDelay {
			return
		}
		s.markWave(s.pending, frame.Deferred)

	case phaseBlink:
		if s.engine.Blink(&s.board) {
			s.resolveWave(frame.Deferred)
		}
	}
}

// FallSystem moves the controlled piece down on the fall timer and, while
// soft drop is held, on the faster soft-drop timer. A failed fall locks.
type FallSystem struct{}

func (f *FallSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.state != Playing || s.phase != phaseControl || !s.hasCurrent {
		return
	}

	p := &s.current
	if p.fastDrop && frame.Now-p.lastFastDrop > s.rules.SoftDropInterval {
		p.MoveDown(&s.board)
		p.lastFastDrop = frame.Now
	}

	if frame.Now-s.lastFall >= s.fallInterval {
		s.lastFall = frame.Now
		if !p.MoveDown(&s.board) {
			s.lock(frame.Deferred)
		}
	}
}

// PromptSystem auto-selects quit when the continue countdown runs out.
type PromptSystem struct{}

func (p *PromptSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.state != ContinuePrompt {
		return
	}
	if frame.Now-s.promptAt < s.rules.GameOverDrop+s.rules.ContinueCountdown {
		return
	}
	s.choice = ChoiceQuit
	s.beginFade(frame.Deferred)
}

// FadeSystem returns to the title once the fade has run its course.
type FadeSystem struct{}

func (f *FadeSystem) Execute(frame *UpdateFrame) {
	s := frame.Session
	if s.state != FadeOut {
		return
	}
	if frame.Now-s.fadeAt >= s.rules.FadeDuration {
		s.setState(Title, frame.Deferred)
	}
}
