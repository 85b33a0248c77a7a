package state

import (
	"time"

	"github.com/rs/xid"
)

type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
)

// AlertTTL is how long an alert stays up before the caller dispatches its
// AlertDismissed. Alerts are independent; each runs its own timer.
const AlertTTL = 5 * time.Second

type Alert struct {
	ID   string
	Msg  string
	Kind AlertKind
}

// NewAlert assembles an alert with a fresh id so simultaneous alerts can
// be dismissed individually.
func NewAlert(msg string, kind AlertKind) Alert {
	return Alert{ID: xid.New().String(), Msg: msg, Kind: kind}
}

type AlertSet struct {
	Alert Alert
}

type AlertDismissed struct {
	ID string
}

func (AlertSet) isAction()       {}
func (AlertDismissed) isAction() {}

func reduceAlerts(alerts []Alert, action Action) []Alert {
	switch a := action.(type) {
	case AlertSet:
		next := make([]Alert, len(alerts), len(alerts)+1)
		copy(next, alerts)
		return append(next, a.Alert)
	case AlertDismissed:
		next := make([]Alert, 0, len(alerts))
		for _, alert := range alerts {
			if alert.ID != a.ID {
				next = append(next, alert)
			}
		}
		return next
	}
	return alerts
}
