package notify

import "go.uber.org/zap"

// Dispatcher entrega notificações fora do fluxo da request. Falhas nunca
// chegam ao caller: são logadas e descartadas, e a fila cheia descarta o
// evento em vez de bloquear a API.

type Event struct {
	UserID uint
	Title  string
	Body   string
	Data   any
}

type Dispatcher struct {
	store  *Store
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(store *Store, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.store.Save(ev.UserID, ev.Title, ev.Body, ev.Data); err != nil {
			d.logger.Warn("notification save failed",
				zap.Uint("user_id", ev.UserID),
				zap.String("title", ev.Title),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enfileirado
	default:
		d.logger.Warn("notification queue full, dropping event",
			zap.Uint("user_id", ev.UserID),
			zap.String("title", ev.Title),
		)
	}
}
