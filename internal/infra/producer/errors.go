package producer

import "errors"

var ErrProducerClosed = errors.New("producer is closed")
