package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := New(NewMockRefresher(ctrl), "not a schedule", time.Second)
	assert.Error(t, s.Start(context.Background()))
}

func TestScheduler_RunsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{}, 1)
	refresher := NewMockRefresher(ctrl)
	refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}).MinTimes(1)

	s := New(refresher, "@every 1s", 5*time.Second)
	assert.NoError(t, s.Start(context.Background()))

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("refresh was not run")
	}
	<-s.Stop().Done()
}

func TestScheduler_RunLogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := NewMockRefresher(ctrl)
	refresher.EXPECT().Refresh(gomock.Any()).Return(errors.New("provider down"))

	s := New(refresher, "@every 1m", 0)
	s.run(context.Background())
}
