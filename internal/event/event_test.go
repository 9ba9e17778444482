package event_test

import (
	"testing"

	"go-slingshot/internal/event"
	"go-slingshot/internal/event/mocks"

	"go.uber.org/mock/gomock"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := event.NewDispatcher()
	l := mocks.NewMockListener(ctrl)
	d.Subscribe(event.BlockDestroyed, l)

	ev := event.Event{Type: event.BlockDestroyed, Data: event.BlockData{Index: 2}}
	l.EXPECT().OnEvent(ev).Times(1)

	d.Dispatch(ev)
	d.Dispatch(event.Event{Type: event.BlockHit})
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := event.NewDispatcher()
	a := mocks.NewMockListener(ctrl)
	b := mocks.NewMockListener(ctrl)
	d.Subscribe(event.BirdLaunched, a)
	d.Subscribe(event.BirdLaunched, b)
	d.Unsubscribe(event.BirdLaunched, a)

	b.EXPECT().OnEvent(gomock.Any()).Times(1)
	d.Dispatch(event.Event{Type: event.BirdLaunched})
}

func TestSubscribeAllInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := event.NewDispatcher()
	l := mocks.NewMockListener(ctrl)
	d.SubscribeAll(l, event.LevelCompleted, event.SessionHalted)

	gomock.InOrder(
		l.EXPECT().OnEvent(gomock.Any()).Do(func(e event.Event) {
			if e.Type != event.LevelCompleted {
				t.Errorf("Expected LevelCompleted first, got %s", e.Type)
			}
		}),
		l.EXPECT().OnEvent(gomock.Any()),
	)
	d.Dispatch(event.Event{Type: event.LevelCompleted})
	d.Dispatch(event.Event{Type: event.SessionHalted})
}
