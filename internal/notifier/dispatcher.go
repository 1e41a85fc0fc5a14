package notifier

import "go.uber.org/zap"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher delivers transactional mail off the request path. Booking and
// cancellation responses never wait on (or fail because of) SMTP.
type Dispatcher struct {
	mailer Mailer
	log    *zap.Logger
	queue  chan Message
}

func NewDispatcher(mailer Mailer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.mailer.Send(msg.To, msg.Subject, msg.Body); err != nil {
			d.log.Error("mail send failed",
				zap.Error(err),
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
			)
		}
	}
}

// Dispatch enqueues a message. When the queue is full the message is dropped
// with a log line; mail must never break the API.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn("mail queue full, dropping message",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}
