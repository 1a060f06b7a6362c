package login

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbenaiss/whatsapp-helpdesk/models"
)

func TestSubmitAcceptsValidForm(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want models.User
	}{
		{
			name: "default role",
			form: Form{Name: "Carol", Phone: "+15550000"},
			want: models.User{Name: "Carol", Role: models.RoleAttendant, Phone: "+15550000"},
		},
		{
			name: "selected role",
			form: Form{Name: "Dan", Phone: "(555) 123-4567", Role: "supervisor"},
			want: models.User{Name: "Dan", Role: models.RoleSupervisor, Phone: "(555) 123-4567"},
		},
		{
			name: "unknown role",
			form: Form{Name: "Eve", Phone: "555 0101", Role: "root"},
			want: models.User{Name: "Eve", Role: models.RoleAttendant, Phone: "555 0101"},
		},
		{
			name: "values kept as typed",
			form: Form{Name: " Frank ", Phone: "+1 555", Role: "admin"},
			want: models.User{Name: " Frank ", Role: models.RoleAdmin, Phone: "+1 555"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Submit(tt.form)
			require.NoError(t, err)
			assert.Equal(t, tt.want, user)
		})
	}
}

func TestSubmitRejectsEmptyFields(t *testing.T) {
	for _, f := range []Form{
		{Name: "", Phone: "+15550000"},
		{Name: "Carol", Phone: ""},
		{Name: "   ", Phone: "+15550000"},
		{Name: "Carol", Phone: "  "},
	} {
		user, err := Submit(f)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "fillAllFields", verr.Key)
		assert.Equal(t, "fill all fields", verr.Error())
		assert.Equal(t, models.User{}, user)
	}
}

func TestSubmitRejectsInvalidPhone(t *testing.T) {
	for _, phone := range []string{"abc", "+1555x000", "++1555", "555+1", "#123"} {
		user, err := Submit(Form{Name: "Carol", Phone: phone})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), phone)
		assert.Equal(t, "validPhoneNumber", verr.Key)
		assert.Equal(t, "invalid phone", verr.Error())
		assert.Equal(t, models.User{}, user)
	}
}

func TestEmptyCheckRunsFirst(t *testing.T) {
	_, err := Submit(Form{Name: "", Phone: "letters"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "fillAllFields", verr.Key)
}
