// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription identifies one Subscribe call. The zero value is not a subscription.
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются внутри тика,
// в порядке подписки, и не должны изменять состояние симуляции.
//
// Отписка идёт по Subscription, не по значению слушателя.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// SubscribeAll subscribes one listener to several event types, in order.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) []Subscription {
	subs := make([]Subscription, 0, len(types))
	for _, t := range types {
		subs = append(subs, d.Subscribe(t, listener))
	}
	return subs
}

// Unsubscribe — отписка. Повторная отписка и нулевая Subscription ничего не делают.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	if d == nil || sub.id == 0 {
		return
	}
	listeners := d.listeners[sub.eventType]
	for i, s := range listeners {
		if s.id != sub.id {
			continue
		}
		// новый срез: Dispatch мог держать старый
		rest := make([]subscriber, 0, len(listeners)-1)
		rest = append(rest, listeners[:i]...)
		rest = append(rest, listeners[i+1:]...)
		if len(rest) == 0 {
			delete(d.listeners, sub.eventType)
		} else {
			d.listeners[sub.eventType] = rest
		}
		return
	}
}

// UnsubscribeAll снимает все переданные подписки.
func (d *Dispatcher) UnsubscribeAll(subs []Subscription) {
	for _, sub := range subs {
		d.Unsubscribe(sub)
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
