package notifier

import "errors"

var ErrUnknownStatus = errors.New("unknown order status")
