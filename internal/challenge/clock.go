package challenge

import (
	"errors"
	"time"

	"github.com/limbo/codestreak/pkg/entity"
)

// Clock tells which calendar day it is for the challenge.
type Clock interface {
	Now() time.Time
	Today() entity.Date
}

// ZoneClock anchors day boundaries to midnight of a fixed zone,
// so every client sees the same "today" regardless of its own clock.
type ZoneClock struct {
	loc *time.Location
	now func() time.Time
}

func NewZoneClock(zone string) (*ZoneClock, error) {
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, errors.New("loading challenge timezone error: " + err.Error())
	}
	return &ZoneClock{loc: loc, now: time.Now}, nil
}

// NewClockAt is a ZoneClock with a custom time source.
func NewClockAt(loc *time.Location, now func() time.Time) *ZoneClock {
	if loc == nil {
		loc = time.UTC
	}
	return &ZoneClock{loc: loc, now: now}
}

func (c *ZoneClock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *ZoneClock) Today() entity.Date {
	return entity.DateOf(c.now(), c.loc)
}
