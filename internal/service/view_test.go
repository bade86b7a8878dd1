package service

import (
	"errors"
	"testing"

	"wortschatz/internal/domain"
	"wortschatz/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestViewService_Current(t *testing.T) {
	tests := []struct {
		name          string
		stored        string
		found         bool
		mockError     error
		expected      domain.View
		expectedError bool
	}{
		{name: "stored view", stored: "exercises", found: true, expected: domain.ViewExercises},
		{name: "nothing stored", found: false, expected: domain.ViewHome},
		{name: "unknown value", stored: "dashboard", found: true, expected: domain.ViewHome},
		{name: "database error", mockError: errors.New("db down"), expected: domain.ViewHome, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockPreferenceRepository)
			mockRepo.On("GetPreference", int64(123), "current_view").Return(tt.stored, tt.found, tt.mockError)

			service := NewViewService(mockRepo)

			view, err := service.Current(123)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, view)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestViewService_Switch(t *testing.T) {
	mockRepo := new(testutil.MockPreferenceRepository)
	mockRepo.On("SetPreference", int64(123), "current_view", "words").Return(nil)
	mockRepo.On("SetPreference", int64(123), "current_view", "home").Return(nil)

	service := NewViewService(mockRepo)

	assert.NoError(t, service.Switch(123, domain.ViewWords))
	// Unknown views are stored as home
	assert.NoError(t, service.Switch(123, domain.View("bogus")))
	mockRepo.AssertExpectations(t)
}

func TestViewService_SwitchError(t *testing.T) {
	mockRepo := new(testutil.MockPreferenceRepository)
	mockRepo.On("SetPreference", int64(123), "current_view", "settings").Return(errors.New("db down"))

	service := NewViewService(mockRepo)

	err := service.Switch(123, domain.ViewSettings)
	assert.ErrorContains(t, err, "set current view")
}
