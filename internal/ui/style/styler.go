package style

import "github.com/fsbteam/chat/internal/domain"

// Styler implements domain.Styler. Without a palette of its own it follows
// the one set by Init.
type Styler struct {
	palette *Palette
}

// NewStyler returns a Styler that follows Init.
func NewStyler() *Styler {
	return &Styler{}
}

// NewPlainStyler returns a Styler that never emits ANSI codes.
func NewPlainStyler() *Styler {
	return &Styler{palette: plain}
}

// NewStylerWith returns a Styler bound to p.
func NewStylerWith(p *Palette) *Styler {
	return &Styler{palette: p}
}

func (s *Styler) p() *Palette {
	if s.palette != nil {
		return s.palette
	}
	return current
}

func (s *Styler) Enabled() bool              { return s.p().Enabled() }
func (s *Styler) Success(text string) string { return s.p().Render(RoleSuccess, text) }
func (s *Styler) Warning(text string) string { return s.p().Render(RoleWarning, text) }
func (s *Styler) Error(text string) string   { return s.p().Render(RoleError, text) }
func (s *Styler) Info(text string) string    { return s.p().Render(RoleInfo, text) }
func (s *Styler) Muted(text string) string   { return s.p().Render(RoleMuted, text) }
func (s *Styler) Header(text string) string  { return s.p().Render(RoleHeader, text) }
func (s *Styler) Self(text string) string    { return s.p().Render(RoleSelf, text) }
func (s *Styler) Peer(text string) string    { return s.p().Render(RolePeer, text) }
func (s *Styler) Notice(text string) string  { return s.p().Render(RoleNotice, text) }

var _ domain.Styler = (*Styler)(nil)
