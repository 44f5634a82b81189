package display_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/display"
	"github.com/tartampluch/go-contactbook/internal/entity"
)

func TestContactSetting_WithField(t *testing.T) {
	s := display.DefaultContactSetting()

	hidden, err := s.WithField(config.FieldEmail, false)
	require.NoError(t, err)
	assert.False(t, hidden.Email)
	assert.True(t, s.Email, "WithField must not modify the receiver")
	assert.NotEqual(t, s, hidden)

	back, _ := hidden.WithField(config.FieldEmail, true)
	assert.Equal(t, s, back, "Settings are equal iff all flags match")

	_, err = s.WithField("nickname", false)
	assert.ErrorIs(t, err, display.ErrUnknownField)
}

func TestEventSetting_AllFieldsAddressable(t *testing.T) {
	s := display.DefaultEventSetting()
	for _, f := range display.EventFields() {
		var err error
		s, err = s.WithField(f, false)
		require.NoError(t, err, f)
	}
	assert.Equal(t, display.EventSetting{}, s)
}

func TestFilter_Match(t *testing.T) {
	palette := entity.NewTagPalette(nil)
	name, _ := entity.NewName("Amy Lee")
	phone, _ := entity.NewPhone("12345")
	tags, _ := palette.Tags([]string{"friends", "work"})
	amy, err := entity.NewContact(entity.ContactFields{Name: name, Phone: phone, Tags: tags})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter display.Filter
		want   bool
	}{
		{"Zero filter", display.Filter{}, true},
		{"Keyword hit", display.NewFilter([]string{"bob", "lee"}, nil), true},
		{"Keyword miss", display.NewFilter([]string{"bob"}, nil), false},
		{"Tag hit", display.NewFilter(nil, []string{"WORK"}), true},
		{"All tags required", display.NewFilter(nil, []string{"work", "gym"}), false},
		{"Keyword and tag", display.NewFilter([]string{"amy"}, []string{"friends"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchContact(amy))
		})
	}
}

func TestNewFilter_NormalizesEmpty(t *testing.T) {
	assert.Equal(t, display.Filter{}, display.NewFilter([]string{}, []string{}))
	assert.True(t, display.NewFilter(nil, nil).IsZero())
	assert.Equal(t, "amy #work", display.NewFilter([]string{"amy"}, []string{"work"}).String())
}
