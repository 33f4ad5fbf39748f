package identity

import (
	"testing"
	"time"

	"github.com/popdriving/sessionbook/internal/common/clock/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSessionIDFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mocks.NewMockClock(ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC))

	gen := New(mockClock)

	assert.Equal(t, "123456789-1700000000", gen.SessionID("123456789"))
}

func TestSessionIDSameSecondCollides(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mocks.NewMockClock(ctrl)
	now := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	mockClock.EXPECT().Now().Return(now).Times(2)

	gen := New(mockClock)

	// Same channel, same second: the known collision window.
	assert.Equal(t, gen.SessionID("123456789"), gen.SessionID("123456789"))
}
