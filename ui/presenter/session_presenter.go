package presenter

import (
	"time"

	"github.com/soocke/screen-watch-go/ui/model"
)

// SessionView displays session and total monitoring durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter pushes monitoring durations from the model to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	active ActiveModel
	view   SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, active ActiveModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, active: active, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.active == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.active.Active(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
