package game

import "time"

// Won-state arrangement, design units.
const (
	wonLogoW           = 456
	wonLogoH           = 253
	wonLogoPortraitTop = 301
	wonCTAPortraitTop  = 735
	wonLandscapeX      = 683
	winFade            = 500 * time.Millisecond
	winMove            = time.Second
)

// playWinSequence fades the play area out and brings the logo and CTA
// forward. The layout data is rewritten so later resizes keep the won
// arrangement; the tweens themselves are dropped on resize.
func (s *Session) playWinSequence() {
	v := s.scene.Visuals
	f := s.layout.Factor
	logo, cta := v[visLogo], v[visCTA]

	s.tweens.Alpha(v[visCanvas], 0, winFade)
	s.tweens.Alpha(v[visDraw], 0, winFade)
	s.layout.Track(
		s.tweens.To(func() float64 { return logo.W }, func(w float64) { logo.W = w }, wonLogoW*f, winFade, Linear),
		s.tweens.To(func() float64 { return logo.H }, func(h float64) { logo.H = h }, wonLogoH*f, winFade, Linear),
	)
	if s.layout.Landscape {
		s.layout.Track(
			s.tweens.MoveX(logo, wonLandscapeX*f, winMove),
			s.tweens.MoveX(cta, wonLandscapeX*f, winMove),
		)
	} else {
		s.layout.Track(
			s.tweens.MoveY(logo, wonLogoPortraitTop*f, winMove),
			s.tweens.MoveY(cta, wonCTAPortraitTop*f, winMove),
		)
	}

	logo.Data.Dimensions = Size{W: wonLogoW, H: wonLogoH}
	setTop(&logo.Data.Offset.Portrait, wonLogoPortraitTop)
	setCenterX(&logo.Data.Offset.Landscape, 0)
	setTop(&cta.Data.Offset.Portrait, wonCTAPortraitTop)
	setCenterX(&cta.Data.Offset.Landscape, 0)
}

func setTop(a *Anchor, v float64) {
	a.Top, a.CenterY, a.Bottom = &v, nil, nil
}

func setCenterX(a *Anchor, v float64) {
	a.Left, a.CenterX, a.Right = nil, &v, nil
}
