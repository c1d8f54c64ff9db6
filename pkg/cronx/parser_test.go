package cronx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"6필드 - 5분마다", "0 */5 * * * *", false},
		{"Descriptor - @hourly", "@hourly", false},
		{"Descriptor - @every", "@every 10m", false},
		{"5필드는 지원하지 않음", "*/5 * * * *", true},
		{"빈 문자열", "", true},
		{"범위 초과", "61 * * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
