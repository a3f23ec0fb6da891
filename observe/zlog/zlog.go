// Package zlog provides a zerolog-backed observer for spawnscope.
package zlog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/NetPo4ki/go-spawnscope/spawnscope"
)

// Observer logs scope lifecycle events at debug level.
type Observer struct {
	log *zerolog.Logger
}

var _ spawnscope.Observer = (*Observer)(nil)

// New returns an Observer writing to l. A nil logger yields a no-op observer.
func New(l *zerolog.Logger) *Observer {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	return &Observer{log: l}
}

func (o *Observer) ScopeCreated() { o.log.Debug().Msg("scope created") }

func (o *Observer) ScopeReleased(woken int) {
	o.log.Debug().Int("woken", woken).Msg("scope released")
}

func (o *Observer) WaitStarted() { o.log.Debug().Msg("wait started") }

func (o *Observer) WaitResolved(blocked time.Duration) {
	o.log.Debug().Dur("blocked", blocked).Msg("wait resolved")
}

func (o *Observer) WaitCanceled() { o.log.Debug().Msg("wait canceled") }

func (o *Observer) TaskSpawned() { o.log.Debug().Msg("task spawned") }

func (o *Observer) TaskFinished(dur time.Duration) {
	o.log.Debug().Dur("dur", dur).Msg("task finished")
}
