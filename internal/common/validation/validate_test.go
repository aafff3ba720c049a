package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
)

func TestValidateStruct(t *testing.T) {
	type args struct {
		toValidate interface{}
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "success CreateCabinetRequest",
			args: args{
				toValidate: models.CreateCabinetRequest{
					Name:     "main cabinet",
					Login:    "cab-main",
					Password: "s3cret",
				},
			},
			wantErr: false,
		},
		{
			name: "validate CreateCabinetRequest missing fields",
			args: args{
				toValidate: models.CreateCabinetRequest{
					Name: "main cabinet",
				},
			},
			wantErr: true,
		},
		{
			name: "validate CreateCabinetRequest leading space",
			args: args{
				toValidate: models.CreateCabinetRequest{
					Name:     " main cabinet",
					Login:    "cab-main",
					Password: "s3cret",
				},
			},
			wantErr: true,
		},
		{
			name: "success CreateSyncOrderRequest",
			args: args{
				toValidate: models.CreateSyncOrderRequest{
					CabinetID: "all",
					Pages:     3,
				},
			},
			wantErr: false,
		},
		{
			name: "validate CreateSyncOrderRequest zero pages",
			args: args{
				toValidate: models.CreateSyncOrderRequest{
					CabinetID: "7",
				},
			},
			wantErr: true,
		},
		{
			name: "validate error not register",
			args: args{
				toValidate: struct {
					Name string `json:"name" validate:"required,date"`
				}{
					Name: "12345678901234",
				},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.args.toValidate)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
