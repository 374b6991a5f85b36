package notification

import "fmt"

// DeliveryError é a falha de um canal. Fica só no log; nunca volta para quem cadastrou.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notification delivery failed (%s): %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
